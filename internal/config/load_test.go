package config_test

import (
	"testing"

	"github.com/aimun-naharr/food-donation-app-server/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-thats-long-enough-32"

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SUPPLY_DATABASE_URL", "postgres://localhost:5432/supplies")
	t.Setenv("SUPPLY_AUTH_JWT_SECRET", testSecret)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/supplies", cfg.Database.URL)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)

	// Defaults fill whatever the environment leaves unset.
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("SUPPLY_DATABASE_URL", "postgres://localhost:5432/supplies")
	t.Setenv("SUPPLY_AUTH_JWT_SECRET", testSecret)
	t.Setenv("SUPPLY_SERVER_PORT", "8080")
	t.Setenv("SUPPLY_SERVER_LOG_LEVEL", "debug")
	t.Setenv("SUPPLY_AUTH_TOKEN_LIFETIME_MINUTES", "15")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 15, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing database url",
			env: map[string]string{
				"SUPPLY_AUTH_JWT_SECRET": testSecret,
			},
		},
		{
			name: "missing jwt secret",
			env: map[string]string{
				"SUPPLY_DATABASE_URL": "postgres://localhost:5432/supplies",
			},
		},
		{
			name: "jwt secret too short",
			env: map[string]string{
				"SUPPLY_DATABASE_URL":    "postgres://localhost:5432/supplies",
				"SUPPLY_AUTH_JWT_SECRET": "short",
			},
		},
		{
			name: "invalid log level",
			env: map[string]string{
				"SUPPLY_DATABASE_URL":     "postgres://localhost:5432/supplies",
				"SUPPLY_AUTH_JWT_SECRET":  testSecret,
				"SUPPLY_SERVER_LOG_LEVEL": "verbose",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
