package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "./accounts.db", cfg.DatabasePath)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 60, cfg.TokenTTLMin)
	assert.Equal(t, "development", cfg.AppEnv)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL_MIN", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, 15, cfg.TokenTTLMin)
}
