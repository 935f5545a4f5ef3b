package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfiguration(t *testing.T) {
	t.Run("configuration_struct_exists", func(t *testing.T) {
		require.NotNil(t, &C, "Configuration should not be nil")
		require.NotNil(t, &C.App, "App configuration should exist")
		require.NotNil(t, &C.Database, "Database configuration should exist")
		require.NotNil(t, &C.Auth, "Auth configuration should exist")
	})

	t.Run("defaults_applied", func(t *testing.T) {
		assert.NotZero(t, C.App.Port, "App port should have a default")
		assert.NotEmpty(t, C.App.TempDir, "Upload temp dir should have a default")
		assert.Greater(t, C.Auth.AccessTokenTTLMin, 0, "Access token TTL should have a default")
		assert.Greater(t, C.Auth.RefreshTokenTTLDay, 0, "Refresh token TTL should have a default")
	})
}
