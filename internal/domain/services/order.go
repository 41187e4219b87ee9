package services

import (
	"context"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
)

// OrderService defines business logic operations for orders
type OrderService interface {
	// CreateOrder stores an order placed by the principal
	CreateOrder(ctx context.Context, principal *models.Principal, order *models.Order) (*models.Order, error)

	// ListOrdersByBuyer lists the orders of email; email must be the principal's
	ListOrdersByBuyer(ctx context.Context, principal *models.Principal, email string) ([]models.Order, error)

	// DeleteOrder deletes an order owned by the principal
	DeleteOrder(ctx context.Context, principal *models.Principal, id string) error
}
