package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
)

// OIDCVerifier implements TokenVerifier using OpenID Connect discovery.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
	logger   *slog.Logger
}

// NewOIDCVerifier discovers the provider at issuerURL and verifies ID tokens
// issued for clientID.
func NewOIDCVerifier(ctx context.Context, issuerURL, clientID string, logger *slog.Logger) (*OIDCVerifier, error) {
	if issuerURL == "" || clientID == "" {
		return nil, errors.New("oidc issuer and client id are required")
	}

	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init oidc provider: %w", err)
	}

	logger.Info("OIDC verifier initialized", "issuer", issuerURL, "client_id", clientID)

	return newOIDCVerifier(provider.Verifier(oidcConfig(clientID)), logger), nil
}

func newOIDCVerifier(verifier *oidc.IDTokenVerifier, logger *slog.Logger) *OIDCVerifier {
	return &OIDCVerifier{verifier: verifier, logger: logger}
}

func oidcConfig(clientID string) *oidc.Config {
	return &oidc.Config{
		ClientID:             clientID,
		SupportedSigningAlgs: []string{oidc.RS256, oidc.ES256},
	}
}

// VerifyToken validates the ID token against the provider's keys.
func (v *OIDCVerifier) VerifyToken(ctx context.Context, rawToken string) (*models.Principal, error) {
	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var claims models.IdentityClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("%w: parse claims: %v", ErrInvalidToken, err)
	}
	claims.Subject = idToken.Subject
	claims.Issuer = idToken.Issuer

	if err := requireIdentity(&claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return models.NewPrincipal(&claims), nil
}

// Close is a no-op; the provider's key set has no background resources.
func (v *OIDCVerifier) Close() error {
	return nil
}
