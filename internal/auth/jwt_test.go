package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/example/gostorefront/internal/config"
)

func TestGenerateAndParseToken(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret"}

	token, err := GenerateToken(cfg, 42, "alice", "alice@example.com")
	require.NoError(t, err)

	claims, err := ParseToken(cfg, token)
	require.NoError(t, err)
	require.EqualValues(t, 42, claims.UserID)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, "alice@example.com", claims.Email)

	p := FromClaims(claims)
	require.True(t, p.Authenticated())
	require.EqualValues(t, 42, p.UserID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(&config.JWTConfig{Secret: "one"}, 1, "a", "a@example.com")
	require.NoError(t, err)

	_, err = ParseToken(&config.JWTConfig{Secret: "two"}, token)
	require.Error(t, err)
}

func TestAnonymousPrincipal(t *testing.T) {
	require.False(t, Anonymous().Authenticated())
	require.False(t, FromClaims(nil).Authenticated())
}
