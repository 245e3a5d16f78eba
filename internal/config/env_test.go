// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_MODE":    "development",
		"APP_VERSION": "1.2.3",

		"GATEWAY_BASE_URL":        "http://gateway:3000",
		"GATEWAY_REQUEST_TIMEOUT": "20s",

		"SYNC_STARTUP_INTERVAL":     "2s",
		"SYNC_NORMAL_INTERVAL":      "12s",
		"SYNC_MAX_STARTUP_ATTEMPTS": "30",
		"SYNC_MIN_REFRESH_INTERVAL": "4s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DSN": "/var/lib/mcphub/prefs.db",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := loadEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, ModeDevelopment, cfg.App.Mode)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "http://gateway:3000", cfg.Gateway.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Gateway.RequestTimeout)

	assert.Equal(t, 2*time.Second, cfg.Sync.StartupInterval)
	assert.Equal(t, 12*time.Second, cfg.Sync.NormalInterval)
	assert.Equal(t, 30, cfg.Sync.MaxStartupAttempts)
	assert.Equal(t, 4*time.Second, cfg.Sync.MinRefreshInterval)

	assert.Equal(t, "/var/lib/mcphub/prefs.db", cfg.Storage.DB.DSN)
}

func TestLoadEnv_PartialFields(t *testing.T) {
	t.Setenv("GATEWAY_BASE_URL", "http://only-gateway:3000")

	cfg := &StructuredConfig{}
	err := loadEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "http://only-gateway:3000", cfg.Gateway.BaseURL)
	assert.Zero(t, cfg.Sync.StartupInterval)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestLoadEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SYNC_STARTUP_INTERVAL", "not-a-duration")

	cfg := &StructuredConfig{}
	err := loadEnv(cfg)

	require.Error(t, err)
}
