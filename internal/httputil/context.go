package httputil

import (
	"context"
	"net/http"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const (
	principalKey contextKey = "principal"
	requestIDKey contextKey = "requestID"
)

// WithPrincipal adds the verified principal to the request context
func WithPrincipal(r *http.Request, principal *models.Principal) *http.Request {
	ctx := context.WithValue(r.Context(), principalKey, principal)
	return r.WithContext(ctx)
}

// GetPrincipal retrieves the principal from context, returns nil on unauthenticated routes
func GetPrincipal(r *http.Request) *models.Principal {
	principal, _ := r.Context().Value(principalKey).(*models.Principal)
	return principal
}

// WithRequestID adds the request ID to the request context
func WithRequestID(r *http.Request, requestID string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDKey, requestID)
	return r.WithContext(ctx)
}

// GetRequestID retrieves the request ID from context, returns empty string if not found
func GetRequestID(r *http.Request) string {
	requestID, _ := r.Context().Value(requestIDKey).(string)
	return requestID
}
