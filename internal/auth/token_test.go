package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 15*time.Minute, 168*time.Hour)
	user := &domain.User{ID: 42, Role: domain.RoleAdmin}

	token, expiresAt, err := tm.GenerateAccessToken(user)
	require.NoError(t, err)
	require.True(t, expiresAt.After(time.Now()))

	claims, err := tm.ParseAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, domain.RoleAdmin, claims.Role)
	require.Equal(t, TokenKindAccess, claims.Kind)
}

func TestParseAccessTokenRejectsRefreshToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 15*time.Minute, 168*time.Hour)
	user := &domain.User{ID: 42, Role: domain.RoleAdmin}

	refresh, _, err := tm.GenerateRefreshToken(user)
	require.NoError(t, err)

	_, err = tm.ParseAccessToken(refresh)
	require.Error(t, err)
}

func TestParseAccessTokenRejectsForeignSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Minute, time.Hour)
	verifier := NewTokenManager("secret-b", time.Minute, time.Hour)
	user := &domain.User{ID: 1, Role: domain.RoleUser}

	token, _, err := issuer.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = verifier.ParseAccessToken(token)
	require.Error(t, err)
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Minute, time.Hour)
	tm.accessTTL = -time.Minute
	user := &domain.User{ID: 1, Role: domain.RoleUser}

	token, _, err := tm.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = tm.ParseAccessToken(token)
	require.Error(t, err)
}
