package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFromMap(t *testing.T) {
	base := func() map[string]string {
		return map[string]string{
			"JWT_SECRET":        "unit-test-secret",
			"POSTGRES_DATABASE": "jobly_test",
		}
	}

	t.Run("applies defaults for everything optional", func(t *testing.T) {
		cfg, err := LoadFromMap(base())

		require.NoError(t, err)
		require.Equal(t, 3001, cfg.Server.Port)
		require.Equal(t, "localhost", cfg.Database.Postgres.Host)
		require.Equal(t, 12, cfg.Security.BcryptCost)
		require.Equal(t, 2, cfg.Security.MinPasswordScore)
		require.Equal(t, 24*time.Hour, cfg.JWT.TokenTTL)
		require.Equal(t, "jobly", cfg.App.Name)
	})

	t.Run("explicit values win over defaults", func(t *testing.T) {
		envMap := base()
		envMap["SERVER_PORT"] = "8080"
		envMap["BCRYPT_COST"] = "10"
		envMap["JWT_TOKEN_TTL"] = "1h"

		cfg, err := LoadFromMap(envMap)

		require.NoError(t, err)
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 10, cfg.Security.BcryptCost)
		require.Equal(t, time.Hour, cfg.JWT.TokenTTL)
	})

	t.Run("missing JWT secret fails validation", func(t *testing.T) {
		envMap := base()
		delete(envMap, "JWT_SECRET")

		_, err := LoadFromMap(envMap)

		require.Error(t, err)
		require.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("bcrypt cost outside the library's range fails", func(t *testing.T) {
		envMap := base()
		envMap["BCRYPT_COST"] = "50"

		_, err := LoadFromMap(envMap)

		require.Error(t, err)
		require.Contains(t, err.Error(), "BCRYPT_COST")
	})

	t.Run("unparseable numbers fall back to defaults", func(t *testing.T) {
		envMap := base()
		envMap["SERVER_PORT"] = "not-a-port"

		cfg, err := LoadFromMap(envMap)

		require.NoError(t, err)
		require.Equal(t, 3001, cfg.Server.Port)
	})
}
