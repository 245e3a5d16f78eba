package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Mode    string `json:"mode"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Gateway struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"gateway,omitempty"`

	Sync struct {
		StartupInterval    Duration `json:"startup_interval"`
		NormalInterval     Duration `json:"normal_interval"`
		MaxStartupAttempts int      `json:"max_startup_attempts"`
		MinRefreshInterval Duration `json:"min_refresh_interval"`
	} `json:"sync,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Mode:    Mode(jsonCfg.App.Mode),
			Version: jsonCfg.App.Version,
		},
		Gateway: Gateway{
			BaseURL:        jsonCfg.Gateway.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Gateway.RequestTimeout),
		},
		Sync: Sync{
			StartupInterval:    time.Duration(jsonCfg.Sync.StartupInterval),
			NormalInterval:     time.Duration(jsonCfg.Sync.NormalInterval),
			MaxStartupAttempts: jsonCfg.Sync.MaxStartupAttempts,
			MinRefreshInterval: time.Duration(jsonCfg.Sync.MinRefreshInterval),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return errors.New("invalid duration: expected string or number")
	}
}
