package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/services"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/httputil"
)

// ContactHandler handles the public contact form
type ContactHandler struct {
	contactService services.ContactService
	logger         *slog.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService services.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// SendEmail forwards a contact message to the site owner
// POST /send-email
func (h *ContactHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var msg models.ContactMessage
	if !parseBody(w, r, &msg) {
		return
	}

	if err := h.contactService.SendContactEmail(r.Context(), &msg); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			handleError(w, r, h.logger, err)
			return
		}
		// Relay details are logged by the service
		httputil.RespondError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	httputil.RespondMessage(w, http.StatusOK, "Email sent successfully")
}
