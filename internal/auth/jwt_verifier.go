package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
)

// JWKSConfig configures a JWKSVerifier.
type JWKSConfig struct {
	JWKSURL  string
	Issuer   string // expected iss claim; empty disables the check
	Audience string // expected aud claim; empty disables the check
}

// JWKSVerifier implements TokenVerifier using public keys published at a JWKS endpoint.
type JWKSVerifier struct {
	keyfunc jwt.Keyfunc
	parser  *jwt.Parser
	cancel  context.CancelFunc
	logger  *slog.Logger
}

// NewJWKSVerifier creates a verifier that fetches public keys from the identity provider's JWKS endpoint.
// The JWKS keys are cached and refreshed in the background until Close is called.
func NewJWKSVerifier(cfg JWKSConfig, logger *slog.Logger) (*JWKSVerifier, error) {
	if cfg.JWKSURL == "" {
		return nil, errors.New("JWKS URL cannot be empty")
	}

	ctx, cancel := context.WithCancel(context.Background())
	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{cfg.JWKSURL})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create JWKS client: %w", err)
	}

	logger.Info("JWT verifier initialized",
		"jwks_url", cfg.JWKSURL,
		"issuer", cfg.Issuer,
		"audience", cfg.Audience,
	)

	v := newJWKSVerifier(jwks.Keyfunc, cfg, logger)
	v.cancel = cancel
	return v, nil
}

func newJWKSVerifier(kf jwt.Keyfunc, cfg JWKSConfig, logger *slog.Logger) *JWKSVerifier {
	// Prevent algorithm confusion attacks - allow only RS256 or ES256
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256", "ES256"}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30 * time.Second),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &JWKSVerifier{
		keyfunc: kf,
		parser:  jwt.NewParser(opts...),
		cancel:  func() {},
		logger:  logger,
	}
}

// VerifyToken validates an ID token and returns the principal it carries.
func (v *JWKSVerifier) VerifyToken(_ context.Context, tokenString string) (*models.Principal, error) {
	token, err := v.parser.ParseWithClaims(tokenString, &models.IdentityClaims{}, v.keyfunc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*models.IdentityClaims)
	if !ok {
		v.logger.Error("failed to extract claims from token")
		return nil, ErrInvalidToken
	}

	if err := requireIdentity(claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return models.NewPrincipal(claims), nil
}

// Close stops the background JWKS refresh.
func (v *JWKSVerifier) Close() error {
	v.cancel()
	v.logger.Info("JWT verifier closed")
	return nil
}
