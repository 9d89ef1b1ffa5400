package config_test

import (
	"testing"

	"logbook-manager/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Load from a directory without a .env file: defaults only.
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "", cfg.Server.ApiKey)
	assert.Equal(t, "logbooks", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "keep-all", cfg.Logbook.MergeMode)
	assert.False(t, cfg.Logbook.DropCallsignOnly)
	assert.Equal(t, "logs/", cfg.Logbook.StoragePrefix)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOGBOOK_MERGE_MODE", "smart-merge")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "smart-merge", cfg.Logbook.MergeMode)
}
