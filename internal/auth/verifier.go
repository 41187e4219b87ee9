package auth

import (
	"context"
	"errors"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
)

// ErrInvalidToken is returned by verifiers when the identity provider rejects a token
// (bad signature, expired, wrong issuer or audience, missing claims).
var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier validates an ID token issued by the external identity provider.
// Implementations must not cache results: every call re-verifies.
type TokenVerifier interface {
	// VerifyToken validates the raw token and returns the verified principal.
	// Rejections wrap ErrInvalidToken.
	VerifyToken(ctx context.Context, rawToken string) (*models.Principal, error)

	// Close releases any resources held by the verifier (e.g., JWKS refresh goroutines).
	Close() error
}

// requireIdentity checks the claims every verifier insists on.
func requireIdentity(claims *models.IdentityClaims) error {
	if claims.Subject == "" {
		return errors.New("token missing subject claim")
	}
	if claims.Email == "" {
		return errors.New("token missing email claim")
	}
	return nil
}
