package config

import (
	"fmt"
	"time"
)

// ClientGateway holds network settings used by the gateway transport layer.
type ClientGateway struct {
	// BaseURL is the HTTP endpoint of the gateway admin API.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientSync holds the timing parameters consumed by the sync engine.
type ClientSync struct {
	StartupInterval    time.Duration
	NormalInterval     time.Duration
	MaxStartupAttempts int
	MinRefreshInterval time.Duration
}

// ClientDB contains local preference database settings.
type ClientDB struct {
	// DSN is the SQLite connection string used for the preference store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Mode is the resolved deployment mode.
	Mode Mode
	// Version is the application version string.
	Version string
	// Gateway contains transport address and timeout.
	Gateway ClientGateway
	// Sync contains sync engine timing parameters.
	Sync ClientSync
	// Storage contains local persistence settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the dashboard client runtime, and returns the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Mode:    cfg.App.Mode,
		Version: cfg.App.Version,
		Gateway: ClientGateway{
			BaseURL:        cfg.Gateway.BaseURL,
			RequestTimeout: cfg.Gateway.RequestTimeout,
		},
		Sync: ClientSync{
			StartupInterval:    cfg.Sync.StartupInterval,
			NormalInterval:     cfg.Sync.NormalInterval,
			MaxStartupAttempts: cfg.Sync.MaxStartupAttempts,
			MinRefreshInterval: cfg.Sync.MinRefreshInterval,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}

	return clientCfg, nil
}
