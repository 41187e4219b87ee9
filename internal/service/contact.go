package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/config"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/services"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/mail"
)

// ErrMailDispatch is returned when the mail relay refuses a message.
// The relay's own error is logged, not returned.
var ErrMailDispatch = errors.New("failed to send email")

// TemplateRenderer renders a named subject/body pair.
type TemplateRenderer interface {
	Render(name string, data any) (subject, body string, err error)
}

type contactService struct {
	mailer    mail.Mailer
	templates TemplateRenderer
	recipient string
	logger    *slog.Logger
}

// NewContactService creates a service that relays contact messages to recipient
func NewContactService(
	mailer mail.Mailer,
	templates TemplateRenderer,
	recipient string,
	logger *slog.Logger,
) services.ContactService {
	return &contactService{
		mailer:    mailer,
		templates: templates,
		recipient: recipient,
		logger:    logger,
	}
}

// SendContactEmail validates msg and forwards it with reply-to set to the submitter
func (s *contactService) SendContactEmail(ctx context.Context, msg *models.ContactMessage) error {
	if msg == nil {
		return domain.NewValidationError("message body is required")
	}
	msg.UserEmail = strings.TrimSpace(msg.UserEmail)
	msg.PhoneNumber = strings.TrimSpace(msg.PhoneNumber)

	if err := validateContactMessage(msg); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	subject, body, err := s.templates.Render(mail.TemplateContact, msg)
	if err != nil {
		s.logger.Error("failed to render contact email", "error", err)
		return fmt.Errorf("render contact email: %w", err)
	}

	err = s.mailer.Send(ctx, &mail.Message{
		To:      []string{s.recipient},
		ReplyTo: msg.UserEmail,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		s.logger.Error("failed to send contact email",
			"reply_to", msg.UserEmail,
			"error", err,
		)
		return ErrMailDispatch
	}

	s.logger.Info("contact email sent", "reply_to", msg.UserEmail)
	return nil
}

func validateContactMessage(msg *models.ContactMessage) error {
	return validation.ValidateStruct(msg,
		validation.Field(&msg.UserEmail, validation.Required, is.EmailFormat),
		validation.Field(&msg.PhoneNumber, validation.Length(0, 32)),
		validation.Field(&msg.Message,
			validation.Required,
			validation.Length(1, config.MaxContactMessageLength),
		),
	)
}
