package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAuthorityURL, cfg.AuthorityURL)
	assert.Equal(t, DefaultItemsConfig, cfg.ItemsConfig)
	assert.Equal(t, DefaultInventoryCapacity, cfg.InventoryCapacity)
	assert.Equal(t, time.Duration(DefaultRequestTimeoutSecs)*time.Second, cfg.RequestTimeout)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvAuthorityURL, "http://authority:9000")
	t.Setenv(EnvUserID, "player-7")
	t.Setenv(EnvInventoryCapacity, "0")
	t.Setenv(EnvRequestTimeout, "3")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://authority:9000", cfg.AuthorityURL)
	assert.Equal(t, "player-7", cfg.UserID)
	assert.Equal(t, 0, cfg.InventoryCapacity)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_RejectsJunkNumerics(t *testing.T) {
	t.Run("non-numeric capacity", func(t *testing.T) {
		t.Setenv(EnvInventoryCapacity, "fifty")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("negative capacity", func(t *testing.T) {
		t.Setenv(EnvInventoryCapacity, "-1")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("zero timeout", func(t *testing.T) {
		t.Setenv(EnvRequestTimeout, "0")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("non-numeric port", func(t *testing.T) {
		t.Setenv(EnvPort, "http")
		_, err := Load()
		require.Error(t, err)
	})
}
