package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
)

// ResourceAuthorizer checks if a principal can act on owner-scoped data.
// Current implementation: ownership by email as issued by the identity provider.
//
// Services call the authorizer before touching the store, so a mismatch is
// refused regardless of whether matching data exists.
type ResourceAuthorizer interface {
	// CanAccessOwnerScope checks that email is the principal's own
	CanAccessOwnerScope(principal *models.Principal, email string) error

	// CanAccessOrder checks that the principal placed the order
	CanAccessOrder(ctx context.Context, principal *models.Principal, orderID primitive.ObjectID) error
}
