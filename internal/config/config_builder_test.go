// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── validate ────────────────────────────────────────────────────────────────

func TestValidate_DefaultsApplied(t *testing.T) {
	cfg := &StructuredConfig{}

	require.NoError(t, cfg.validate())

	assert.Equal(t, ModeProduction, cfg.App.Mode)
	assert.Equal(t, DefaultGatewayBaseURL, cfg.Gateway.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Gateway.RequestTimeout)
	assert.Equal(t, DefaultStartupInterval, cfg.Sync.StartupInterval)
	assert.Equal(t, DefaultNormalInterval, cfg.Sync.NormalInterval)
	assert.Equal(t, DefaultMaxStartupAttempts, cfg.Sync.MaxStartupAttempts)
	assert.Equal(t, DefaultMinRefreshProduction, cfg.Sync.MinRefreshInterval)
}

func TestValidate_DevelopmentDebounceDefault(t *testing.T) {
	cfg := &StructuredConfig{App: App{Mode: ModeDevelopment}}

	require.NoError(t, cfg.validate())

	assert.Equal(t, DefaultMinRefreshDevelopment, cfg.Sync.MinRefreshInterval)
}

func TestValidate_ExplicitDebounceWins(t *testing.T) {
	cfg := &StructuredConfig{
		App:  App{Mode: ModeDevelopment},
		Sync: Sync{MinRefreshInterval: 7 * time.Second},
	}

	require.NoError(t, cfg.validate())

	assert.Equal(t, 7*time.Second, cfg.Sync.MinRefreshInterval)
}

func TestValidate_UnknownMode(t *testing.T) {
	cfg := &StructuredConfig{App: App{Mode: "staging"}}

	err := cfg.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnknownMode)
}

func TestValidate_InvalidGatewayURL(t *testing.T) {
	cfg := &StructuredConfig{Gateway: Gateway{BaseURL: "://broken"}}

	err := cfg.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidGatewayURL)
}

func TestValidate_StartupSlowerThanNormal(t *testing.T) {
	cfg := &StructuredConfig{
		Sync: Sync{
			StartupInterval: 30 * time.Second,
			NormalInterval:  10 * time.Second,
		},
	}

	err := cfg.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errStartupSlowerThanNormal)
}

// ── builder ─────────────────────────────────────────────────────────────────

func TestConfigBuilder_MergePriority(t *testing.T) {
	// env wins over a later source for the same field; later sources fill
	// what earlier ones left unset (mergo first-non-zero semantics).
	b := newConfigBuilder()
	b.layers = append(b.layers,
		&StructuredConfig{Gateway: Gateway{BaseURL: "http://from-env:3000"}},
		&StructuredConfig{
			Gateway: Gateway{BaseURL: "http://from-json:3000"},
			Sync:    Sync{NormalInterval: 15 * time.Second},
		},
	)

	cfg, err := b.merge()
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:3000", cfg.Gateway.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Sync.NormalInterval)
}

func TestConfigBuilder_PropagatesError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.merge()
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
