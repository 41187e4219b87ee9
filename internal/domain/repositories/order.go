package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
)

// OrderRepository defines data access operations for orders
type OrderRepository interface {
	// Create inserts an order and sets its generated ID
	Create(ctx context.Context, order *models.Order) error

	// ListByBuyer retrieves all orders placed by the buyer, newest first
	ListByBuyer(ctx context.Context, buyerEmail string) ([]models.Order, error)

	// GetByID retrieves an order by ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)

	// Delete removes an order and returns the number of deleted documents (0 or 1)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
