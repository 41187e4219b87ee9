package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
)

const bearerPrefix = "Bearer "

// Authenticator turns an Authorization header into a verified Principal.
type Authenticator struct {
	verifier TokenVerifier
	logger   *slog.Logger
}

// NewAuthenticator creates an authenticator backed by verifier
func NewAuthenticator(verifier TokenVerifier, logger *slog.Logger) *Authenticator {
	return &Authenticator{
		verifier: verifier,
		logger:   logger,
	}
}

// Authenticate validates header and returns the principal it identifies.
//
// A missing or malformed header yields domain.ErrUnauthorized without contacting
// the identity provider. A token the provider rejects yields domain.ErrForbidden.
func (a *Authenticator) Authenticate(ctx context.Context, header string) (*models.Principal, error) {
	token, ok := bearerToken(header)
	if !ok {
		return nil, fmt.Errorf("%w: missing or malformed authorization header", domain.ErrUnauthorized)
	}

	principal, err := a.verifier.VerifyToken(ctx, token)
	if err != nil {
		a.logger.Debug("token rejected", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrForbidden, err)
	}

	return principal, nil
}

// bearerToken extracts the token from a "Bearer <token>" header value.
func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", false
	}
	return token, true
}
