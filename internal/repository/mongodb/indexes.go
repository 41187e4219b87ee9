package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
)

// EnsureIndexes creates the indexes backing the list queries. Creating an
// index that already exists with the same definition is a no-op on the server.
func EnsureIndexes(ctx context.Context, config *RepositoryConfig) error {
	foods := config.DB.Collection(config.Collections.Foods)
	_, err := foods.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: models.FoodFieldCreatedAt, Value: -1}, {Key: models.FoodFieldID, Value: -1}}},
		{Keys: bson.D{{Key: models.FoodFieldOwnerEmail, Value: 1}, {Key: models.FoodFieldCreatedAt, Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create food indexes: %w", err)
	}

	orders := config.DB.Collection(config.Collections.Orders)
	_, err = orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: models.OrderFieldBuyerEmail, Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create order indexes: %w", err)
	}

	config.Logger.Info("indexes ensured",
		"foods", config.Collections.Foods,
		"orders", config.Collections.Orders,
	)
	return nil
}

// DropCollections removes both collections. Used by the seed command.
func DropCollections(ctx context.Context, config *RepositoryConfig) error {
	for _, name := range []string{config.Collections.Foods, config.Collections.Orders} {
		if err := config.DB.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("drop %s: %w", name, err)
		}
	}
	return nil
}
