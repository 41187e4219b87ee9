package services

import (
	"context"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
)

// ContactService relays contact-form messages to the site owner
type ContactService interface {
	SendContactEmail(ctx context.Context, msg *models.ContactMessage) error
}
