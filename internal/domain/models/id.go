package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain"
)

// ParseID converts a hex string into an ObjectID.
// A malformed id is a validation failure, distinct from a missing document.
func ParseID(id string) (primitive.ObjectID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return primitive.NilObjectID, domain.NewValidationError("id is required")
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}
