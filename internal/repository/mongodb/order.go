package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/repositories"
)

// MongoOrderRepository implements the OrderRepository interface
type MongoOrderRepository struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(config *RepositoryConfig) repositories.OrderRepository {
	return &MongoOrderRepository{
		coll:   config.DB.Collection(config.Collections.Orders),
		logger: config.Logger,
	}
}

// Create inserts a new order
func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) error {
	id, err := insertOne(ctx, r.coll, order)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	order.ID = id
	return nil
}

// ListByBuyer retrieves the buyer's orders, newest first
func (r *MongoOrderRepository) ListByBuyer(ctx context.Context, buyerEmail string) ([]models.Order, error) {
	filter := bson.D{{Key: models.OrderFieldBuyerEmail, Value: buyerEmail}}
	sort := bson.D{{Key: models.OrderFieldID, Value: -1}}

	orders, err := findMany[models.Order](ctx, r.coll, filter, sort)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves an order by ID
func (r *MongoOrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	return findOneByID[models.Order](ctx, r.coll, "order", id)
}

// Delete removes an order
func (r *MongoOrderRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	n, err := deleteByID(ctx, r.coll, id)
	if err != nil {
		return 0, fmt.Errorf("delete order: %w", err)
	}
	return n, nil
}
