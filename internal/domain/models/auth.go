package models

import "github.com/golang-jwt/jwt/v5"

// IdentityClaims represents the ID token claims issued by the identity provider.
// Field names follow the Firebase/OIDC ID token layout.
type IdentityClaims struct {
	jwt.RegisteredClaims                // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Email                string         `json:"email"`
	EmailVerified        bool           `json:"email_verified"`
	Name                 string         `json:"name,omitempty"`
	Picture              string         `json:"picture,omitempty"`
	Firebase             map[string]any `json:"firebase,omitempty"`
}

// Principal is the verified identity attached to a request.
// It lives only for the duration of that request.
type Principal struct {
	Subject string
	Email   string
	Claims  map[string]interface{}
}

// NewPrincipal builds a Principal from verified identity claims.
func NewPrincipal(c *IdentityClaims) *Principal {
	claims := map[string]interface{}{
		"sub":            c.Subject,
		"email":          c.Email,
		"email_verified": c.EmailVerified,
	}
	if c.Issuer != "" {
		claims["iss"] = c.Issuer
	}
	if c.Name != "" {
		claims["name"] = c.Name
	}
	if c.Picture != "" {
		claims["picture"] = c.Picture
	}
	if c.Firebase != nil {
		claims["firebase"] = c.Firebase
	}

	return &Principal{
		Subject: c.Subject,
		Email:   c.Email,
		Claims:  claims,
	}
}

// Owns reports whether the principal is the owner identified by email.
// Comparison is exact: emails are compared as issued by the identity provider.
func (p *Principal) Owns(email string) bool {
	return p != nil && p.Email != "" && p.Email == email
}
