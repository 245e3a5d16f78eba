// SPDX-License-Identifier: Apache-2.0

// Package config loads and merges the mcphub client configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with first-non-zero-wins semantics (env over flags over
// JSON), then validated; unset timing parameters fall back to the sync
// engine's documented defaults.
package config
