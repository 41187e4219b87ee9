package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/repositories"
)

// MongoFoodRepository implements the FoodRepository interface
type MongoFoodRepository struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewFoodRepository creates a new food repository
func NewFoodRepository(config *RepositoryConfig) repositories.FoodRepository {
	return &MongoFoodRepository{
		coll:   config.DB.Collection(config.Collections.Foods),
		logger: config.Logger,
	}
}

// Create inserts a new food item
func (r *MongoFoodRepository) Create(ctx context.Context, food *models.Food) error {
	id, err := insertOne(ctx, r.coll, food)
	if err != nil {
		return fmt.Errorf("create food: %w", err)
	}
	food.ID = id
	return nil
}

// List retrieves foods matching filter, newest first
func (r *MongoFoodRepository) List(ctx context.Context, filter models.FoodFilter) ([]models.Food, error) {
	query := bson.D{}
	if filter.NameContains != "" {
		query = append(query, bson.E{
			Key:   models.FoodFieldName,
			Value: primitive.Regex{Pattern: regexp.QuoteMeta(filter.NameContains), Options: "i"},
		})
	}
	if filter.OwnerEmail != "" {
		query = append(query, bson.E{Key: models.FoodFieldOwnerEmail, Value: filter.OwnerEmail})
	}

	foods, err := findMany[models.Food](ctx, r.coll, query, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return foods, nil
}

// GetByID retrieves a food by ID
func (r *MongoFoodRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Food, error) {
	return findOneByID[models.Food](ctx, r.coll, "food", id)
}

// Update applies a $set patch to a food
func (r *MongoFoodRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.JSONMap) (*models.UpdateResult, error) {
	res, err := setByID(ctx, r.coll, id, patch)
	if err != nil {
		return nil, err
	}
	if res.Matched == 0 {
		return nil, &domain.NotFoundError{Resource: "food", ID: id.Hex()}
	}
	return res, nil
}

// Purchase decrements quantity and increments purchaseCount in one guarded
// update, so concurrent purchases can never drive quantity below zero.
func (r *MongoFoodRepository) Purchase(ctx context.Context, id primitive.ObjectID, amount int) error {
	filter := bson.D{
		{Key: models.FoodFieldID, Value: id},
		{Key: models.FoodFieldQuantity, Value: bson.D{{Key: "$gte", Value: amount}}},
	}
	update := bson.D{{Key: "$inc", Value: bson.D{
		{Key: models.FoodFieldPurchaseCount, Value: amount},
		{Key: models.FoodFieldQuantity, Value: -amount},
	}}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("purchase food: %w", err)
	}

	if res.MatchedCount == 0 {
		// Guard failed: either the food is gone or there is not enough left.
		found, err := exists(ctx, r.coll, id)
		if err != nil {
			return fmt.Errorf("purchase food: %w", err)
		}
		if !found {
			return &domain.NotFoundError{Resource: "food", ID: id.Hex()}
		}
		return domain.ErrInsufficientQuantity
	}

	if res.ModifiedCount == 0 {
		return fmt.Errorf("purchase food %s: update matched but modified nothing", id.Hex())
	}

	r.logger.Debug("food purchased", "id", id.Hex(), "amount", amount)
	return nil
}
