package identity

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/profile-builder/internal/types"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestFromToken_ClaimOrder(t *testing.T) {
	tests := []struct {
		name     string
		claims   jwt.MapClaims
		expected string
	}{
		{"email wins", jwt.MapClaims{"email": "a@example.com", "sub": "b@example.com"}, "a@example.com"},
		{"sub fallback", jwt.MapClaims{"sub": "b@example.com", "username": "carol"}, "b@example.com"},
		{"username fallback", jwt.MapClaims{"username": "carol"}, "carol"},
		{"blank email skipped", jwt.MapClaims{"email": "  ", "sub": "b@example.com"}, "b@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := FromToken(signedToken(t, tt.claims))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestFromToken_NoUsableClaim(t *testing.T) {
	_, err := FromToken(signedToken(t, jwt.MapClaims{"role": "admin"}))
	assert.Error(t, err)
}

func TestFromToken_EmptyAndMalformed(t *testing.T) {
	_, err := FromToken("")
	assert.Error(t, err)

	_, err = FromToken("not.a.token")
	assert.Error(t, err)
}

func TestResolve_FallsBackToProfileEmail(t *testing.T) {
	p := types.EmptyProfile()
	p.BasicInfo.Email = "stored@example.com"

	assert.Equal(t, "stored@example.com", Resolve("", p))
}

func TestResolve_RootEmailIsLastResort(t *testing.T) {
	p := types.EmptyProfile()
	p.Email = "root@example.com"

	assert.Equal(t, "root@example.com", Resolve("garbage", p))
}

func TestResolve_TokenWins(t *testing.T) {
	p := types.EmptyProfile()
	p.BasicInfo.Email = "stored@example.com"

	token := signedToken(t, jwt.MapClaims{"email": "token@example.com"})
	assert.Equal(t, "token@example.com", Resolve(token, p))
}
