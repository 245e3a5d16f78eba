package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Default timing values of the sync engine. They mirror the behavior of the
// original dashboard: aggressive 3s retries for up to 60 attempts at startup,
// then steady 10s polling.
const (
	DefaultStartupInterval    = 3 * time.Second
	DefaultNormalInterval     = 10 * time.Second
	DefaultMaxStartupAttempts = 60

	// DefaultMinRefreshProduction and DefaultMinRefreshDevelopment are the
	// manual-refresh debounce windows per deployment mode. Development uses
	// the longer window to trade freshness for reduced gateway load.
	DefaultMinRefreshProduction  = 3 * time.Second
	DefaultMinRefreshDevelopment = 5 * time.Second

	DefaultGatewayBaseURL = "http://localhost:3000"
	DefaultRequestTimeout = 15 * time.Second
)

// validate fills unset fields with defaults and rejects values that cannot
// work at runtime. It mutates the receiver.
func (c *StructuredConfig) validate() error {
	switch c.App.Mode {
	case "":
		c.App.Mode = ModeProduction
	case ModeProduction, ModeDevelopment:
	default:
		return fmt.Errorf("%w: %q", errUnknownMode, c.App.Mode)
	}

	if c.Gateway.BaseURL == "" {
		c.Gateway.BaseURL = DefaultGatewayBaseURL
	}
	if err := validateBaseURL(c.Gateway.BaseURL); err != nil {
		return err
	}
	if c.Gateway.RequestTimeout <= 0 {
		c.Gateway.RequestTimeout = DefaultRequestTimeout
	}

	if c.Sync.StartupInterval <= 0 {
		c.Sync.StartupInterval = DefaultStartupInterval
	}
	if c.Sync.NormalInterval <= 0 {
		c.Sync.NormalInterval = DefaultNormalInterval
	}
	if c.Sync.MaxStartupAttempts <= 0 {
		c.Sync.MaxStartupAttempts = DefaultMaxStartupAttempts
	}
	if c.Sync.MinRefreshInterval <= 0 {
		if c.App.Mode == ModeDevelopment {
			c.Sync.MinRefreshInterval = DefaultMinRefreshDevelopment
		} else {
			c.Sync.MinRefreshInterval = DefaultMinRefreshProduction
		}
	}

	if c.Sync.StartupInterval > c.Sync.NormalInterval {
		return errStartupSlowerThanNormal
	}

	return nil
}

func validateBaseURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", errInvalidGatewayURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: address must include host and scheme", errInvalidGatewayURL)
	}

	return nil
}
