// Package identity resolves the identity string used to fetch a previously
// saved profile from the backend.
package identity

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jonathan/profile-builder/internal/types"
)

// FromToken extracts an email-like identity from a JWT payload, trying the
// email, subject, and username claims in order. The token was verified by the
// auth layer upstream, so only the payload is read here; the signature is not
// re-checked.
func FromToken(tokenString string) (string, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", fmt.Errorf("token is empty")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	for _, claim := range []string{"email", "sub", "username"} {
		if v, ok := claims[claim].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), nil
		}
	}
	return "", fmt.Errorf("token carries no usable identity claim")
}

// Resolve returns the identity from the token when it has one, falling back
// to the locally persisted profile's email.
func Resolve(tokenString string, p types.Profile) string {
	if id, err := FromToken(tokenString); err == nil {
		return id
	}
	if p.BasicInfo.Email != "" {
		return p.BasicInfo.Email
	}
	return p.Email
}
