package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	DB          *mongo.Database
	Collections *CollectionNames
	Logger      *slog.Logger
}

// CollectionNames holds dynamically prefixed collection names
type CollectionNames struct {
	Foods  string
	Orders string
}

// NewCollectionNames creates collection names with the given prefix
func NewCollectionNames(prefix string) *CollectionNames {
	return &CollectionNames{
		Foods:  fmt.Sprintf("%sfoods", prefix),
		Orders: fmt.Sprintf("%sorders", prefix),
	}
}

// Connect creates a client for uri and verifies it with a ping.
//
// The client pins Stable API v1 in strict mode. Nested documents are decoded
// as bson.M so that submitter-provided fields round-trip to JSON objects
// instead of key/value arrays.
//
// The returned client is safe for concurrent use; callers own its lifetime
// and must Disconnect it on shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true}).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return client, nil
}

// Ping reports whether the database is reachable.
func (c *RepositoryConfig) Ping(ctx context.Context) error {
	if err := c.DB.Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
