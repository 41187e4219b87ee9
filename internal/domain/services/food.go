package services

import (
	"context"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
)

// PurchaseRequest represents a request to buy some quantity of a food
type PurchaseRequest struct {
	PurchaseAmount *int `json:"purchaseAmount"`
}

// UpdateFoodResult reports whether a full update changed anything
type UpdateFoodResult struct {
	Modified bool
}

// FoodService defines business logic operations for food items
type FoodService interface {
	// CreateFood stamps createdAt and the owner email from the principal, then stores the food
	CreateFood(ctx context.Context, principal *models.Principal, food *models.Food) (*models.Food, error)

	// ListFoods lists all foods, optionally filtered by a case-insensitive name search
	ListFoods(ctx context.Context, search string) ([]models.Food, error)

	// ListFoodsByOwner lists the foods shared by email; email must be the principal's
	ListFoodsByOwner(ctx context.Context, principal *models.Principal, email string) ([]models.Food, error)

	// GetFood retrieves a food by ID
	GetFood(ctx context.Context, id string) (*models.Food, error)

	// UpdateFood applies a partial document to a food, ignoring any identifier field
	UpdateFood(ctx context.Context, id string, patch models.JSONMap) (*UpdateFoodResult, error)

	// PurchaseFood decrements quantity and increments purchaseCount atomically
	PurchaseFood(ctx context.Context, id string, req *PurchaseRequest) error
}
