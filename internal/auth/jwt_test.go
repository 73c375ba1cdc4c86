package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isdelr/accounts-api/internal/models"
)

func TestGenerateAndParseRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	user := models.User{ID: 7, Name: "John", Email: "john@example.com"}

	token, err := issuer.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "john@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)

	// Expiry is bound to the issuer's ttl
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, time.Hour, ttl)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("other-secret", time.Hour)

	token, err := issuer.Generate(models.User{ID: 1, Email: "john@example.com"})
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Generate(models.User{ID: 1, Email: "john@example.com"})
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.Error(t, err)
}
