package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-g/-gateway gateway base URL
//	-d database DSN for the preference store
//	-c/-config json file path with configs
//	-mode deployment mode ("production" or "development")
//	-request-timeout per-request timeout (e.g. "15s")
//	-startup-interval sync startup retry interval (e.g. "3s")
//	-normal-interval sync steady polling interval (e.g. "10s")
//	-max-startup-attempts bounded startup retries before fallback
//	-min-refresh-interval manual refresh debounce window
func ParseFlags() *StructuredConfig {
	var gatewayURL string
	var databaseDSN string
	var jsonConfigPath string
	var mode string
	var requestTimeout time.Duration
	var startupInterval time.Duration
	var normalInterval time.Duration
	var maxStartupAttempts int
	var minRefreshInterval time.Duration

	flag.StringVar(&gatewayURL, "g", "", "Gateway base URL")
	flag.StringVar(&gatewayURL, "gateway", "", "Gateway base URL (alias)")
	flag.StringVar(&databaseDSN, "d", "", "Preference store DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&mode, "mode", "", "Deployment mode (production|development)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.DurationVar(&startupInterval, "startup-interval", 0, "Startup retry interval (e.g., 3s)")
	flag.DurationVar(&normalInterval, "normal-interval", 0, "Normal polling interval (e.g., 10s)")
	flag.IntVar(&maxStartupAttempts, "max-startup-attempts", 0, "Max startup attempts before fallback")
	flag.DurationVar(&minRefreshInterval, "min-refresh-interval", 0, "Manual refresh debounce window")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Mode: Mode(mode),
		},
		Gateway: Gateway{
			BaseURL:        gatewayURL,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			StartupInterval:    startupInterval,
			NormalInterval:     normalInterval,
			MaxStartupAttempts: maxStartupAttempts,
			MinRefreshInterval: minRefreshInterval,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
