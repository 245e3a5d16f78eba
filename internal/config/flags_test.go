package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func parseFlagsWithArgs(t *testing.T, args ...string) *StructuredConfig {
	t.Helper()

	// Reset flag.CommandLine for each test
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	oldArgs := os.Args
	os.Args = append([]string{"cmd"}, args...)
	t.Cleanup(func() { os.Args = oldArgs })

	return ParseFlags()
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg := parseFlagsWithArgs(t,
		"-g", "http://gw:3000",
		"-d", "prefs.db",
		"-c", "cfg.json",
		"-mode", "development",
		"-request-timeout", "20s",
		"-startup-interval", "2s",
		"-normal-interval", "12s",
		"-max-startup-attempts", "30",
		"-min-refresh-interval", "4s",
	)

	assert.Equal(t, "http://gw:3000", cfg.Gateway.BaseURL)
	assert.Equal(t, "prefs.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, ModeDevelopment, cfg.App.Mode)
	assert.Equal(t, 20*time.Second, cfg.Gateway.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Sync.StartupInterval)
	assert.Equal(t, 12*time.Second, cfg.Sync.NormalInterval)
	assert.Equal(t, 30, cfg.Sync.MaxStartupAttempts)
	assert.Equal(t, 4*time.Second, cfg.Sync.MinRefreshInterval)
}

func TestParseFlags_Aliases(t *testing.T) {
	cfg := parseFlagsWithArgs(t, "-gateway", "http://alias:3000", "-config", "alias.json")

	assert.Equal(t, "http://alias:3000", cfg.Gateway.BaseURL)
	assert.Equal(t, "alias.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg := parseFlagsWithArgs(t)

	assert.Empty(t, cfg.Gateway.BaseURL)
	assert.Zero(t, cfg.Sync.MaxStartupAttempts)
}
