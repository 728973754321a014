package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	InitValidator()

	t.Run("fails without a port", func(t *testing.T) {
		t.Setenv("PORT", "")

		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("fails on a non-numeric port", func(t *testing.T) {
		t.Setenv("PORT", "eight-thousand")

		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")
		t.Setenv("LOG_LEVEL", "debug")

		config, err := LoadConfig()
		require.NoError(t, err)

		require.Equal(t, "9090", config.Port)
		require.Equal(t, "debug", config.LogLevel)
		require.Equal(t, "./public", config.StaticDir)
		require.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, config.Origins())
	})

	t.Run("empty origin list", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("ALLOWED_ORIGINS", "")

		config, err := LoadConfig()
		require.NoError(t, err)
		require.Nil(t, config.Origins())
	})
}
