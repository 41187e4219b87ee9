package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/httputil"
)

// handleError converts domain errors to HTTP responses.
// Anything unrecognised is logged and answered with a generic 500.
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var forbiddenErr *domain.ForbiddenError

	switch {
	case errors.Is(err, domain.ErrInsufficientQuantity):
		httputil.RespondError(w, http.StatusBadRequest, "Not enough quantity available")
	case errors.Is(err, domain.ErrInvalidID):
		httputil.RespondError(w, http.StatusBadRequest, "Invalid ID format")
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, "Unauthorized access")
	case errors.As(err, &forbiddenErr):
		httputil.RespondError(w, http.StatusForbidden, forbiddenErr.Message)
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, "Forbidden access")
	default:
		logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", httputil.GetRequestID(r),
			"error", err,
		)
		httputil.RespondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// parseBody decodes the request body, answering 400 itself on failure.
func parseBody(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := httputil.ParseJSON(w, r, dest); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
