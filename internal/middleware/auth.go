package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/httputil"
)

// Authenticator turns an Authorization header into a verified principal.
type Authenticator interface {
	Authenticate(ctx context.Context, authHeader string) (*models.Principal, error)
}

// RequireAuth wraps routes that need a verified principal. Requests without a
// well-formed bearer header get 401; tokens the identity provider rejects get 403.
func RequireAuth(authenticator Authenticator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := authenticator.Authenticate(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				logger.Debug("authentication failed",
					"path", r.URL.Path,
					"method", r.Method,
					"request_id", httputil.GetRequestID(r),
					"error", err,
				)

				if errors.Is(err, domain.ErrUnauthorized) {
					httputil.RespondError(w, http.StatusUnauthorized, "Unauthorized access")
					return
				}
				httputil.RespondError(w, http.StatusForbidden, "Forbidden access")
				return
			}

			next.ServeHTTP(w, httputil.WithPrincipal(r, principal))
		})
	}
}
