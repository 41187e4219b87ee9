package auth

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/repositories"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/services"
)

// OwnerBasedAuthorizer implements ResourceAuthorizer using ownership checks.
// A user can see the foods they shared and the orders they placed, and can
// delete only their own orders.
type OwnerBasedAuthorizer struct {
	orderRepo repositories.OrderRepository
}

// NewOwnerBasedAuthorizer creates a new ownership-based authorizer
func NewOwnerBasedAuthorizer(orderRepo repositories.OrderRepository) services.ResourceAuthorizer {
	return &OwnerBasedAuthorizer{orderRepo: orderRepo}
}

// CanAccessOwnerScope checks that the path email is the principal's
func (a *OwnerBasedAuthorizer) CanAccessOwnerScope(principal *models.Principal, email string) error {
	if principal == nil {
		return domain.ErrUnauthorized
	}
	if email == "" {
		return domain.NewValidationError("email is required")
	}
	if !principal.Owns(email) {
		return domain.NewForbiddenError("forbidden: email does not match the authenticated user")
	}
	return nil
}

// CanAccessOrder checks that the order exists and was placed by the principal
func (a *OwnerBasedAuthorizer) CanAccessOrder(ctx context.Context, principal *models.Principal, orderID primitive.ObjectID) error {
	if principal == nil {
		return domain.ErrUnauthorized
	}

	order, err := a.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order for auth: %w", err)
	}

	if !principal.Owns(order.BuyerEmail) {
		return domain.NewForbiddenError("forbidden: order belongs to another user")
	}
	return nil
}
