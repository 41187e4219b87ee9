package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
)

// FoodRepository defines data access operations for shared food items
type FoodRepository interface {
	// Create inserts a food item and sets its generated ID
	Create(ctx context.Context, food *models.Food) error

	// List retrieves foods matching the filter, newest first (createdAt DESC, _id DESC)
	List(ctx context.Context, filter models.FoodFilter) ([]models.Food, error)

	// GetByID retrieves a food by ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Food, error)

	// Update applies a $set patch. The patch must not contain the identifier.
	Update(ctx context.Context, id primitive.ObjectID, patch models.JSONMap) (*models.UpdateResult, error)

	// Purchase atomically increments purchaseCount and decrements quantity by amount,
	// only if quantity >= amount. Returns domain.ErrNotFound or
	// domain.ErrInsufficientQuantity when the guard does not match.
	Purchase(ctx context.Context, id primitive.ObjectID, amount int) error
}
