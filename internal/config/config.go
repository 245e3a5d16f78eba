// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// Mode selects deployment-dependent defaults. The only behavioral difference
// today is the manual-refresh debounce window (see Sync.MinRefreshInterval).
type Mode string

const (
	// ModeProduction uses the shorter 3s debounce window.
	ModeProduction Mode = "production"
	// ModeDevelopment uses the longer 5s debounce window to reduce gateway
	// load while iterating locally.
	ModeDevelopment Mode = "development"
)

// StructuredConfig is the top-level configuration container for the mcphub
// dashboard client. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the deployment mode and
	// the application version.
	App App `envPrefix:"APP_"`

	// Gateway holds the address and timeout settings for the MCP gateway
	// the client synchronizes against.
	Gateway Gateway `envPrefix:"GATEWAY_"`

	// Sync holds the timing parameters of the resource sync engine.
	Sync Sync `envPrefix:"SYNC_"`

	// Storage holds the local preference store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Mode is the deployment mode, "production" or "development".
	// Env: APP_MODE
	Mode Mode `env:"MODE"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Gateway holds network settings for the outbound gateway transport.
type Gateway struct {
	// BaseURL is the HTTP endpoint of the MCP gateway admin API
	// (e.g. "http://localhost:3000/api").
	// Env: GATEWAY_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request timeout for outbound calls
	// (e.g. "15s").
	// Env: GATEWAY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds the timing parameters of the sync engine. Zero values are
// replaced with the defaults below during validation.
type Sync struct {
	// StartupInterval is the retry interval while the engine is in the
	// startup phase. Default 3s.
	// Env: SYNC_STARTUP_INTERVAL
	StartupInterval time.Duration `env:"STARTUP_INTERVAL"`

	// NormalInterval is the steady polling interval after the first
	// successful reconciliation. Default 10s.
	// Env: SYNC_NORMAL_INTERVAL
	NormalInterval time.Duration `env:"NORMAL_INTERVAL"`

	// MaxStartupAttempts bounds consecutive startup failures before the
	// engine falls back to normal-interval polling. Default 60.
	// Env: SYNC_MAX_STARTUP_ATTEMPTS
	MaxStartupAttempts int `env:"MAX_STARTUP_ATTEMPTS"`

	// MinRefreshInterval is the debounce window for non-essential refresh
	// requests. Defaults to 3s in production mode and 5s in development
	// mode when unset.
	// Env: SYNC_MIN_REFRESH_INTERVAL
	MinRefreshInterval time.Duration `env:"MIN_REFRESH_INTERVAL"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the preference database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite preference store.
type DB struct {
	// DSN is the SQLite file path (or ":memory:") for the preference store.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		fromEnv().
		fromFlags().
		fromJSONFile().
		merge()
}
