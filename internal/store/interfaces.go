// SPDX-License-Identifier: Apache-2.0

// Package store implements local persistence for the mcphub dashboard
// client. The only durable state the client keeps is a small keyed
// preference set (page size, and whatever future UI knobs need to survive a
// restart), backed by SQLite.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/preference_store_mock.go -package=mock

// PreferenceRepository is a keyed string store for user preferences.
type PreferenceRepository interface {
	// Get returns the value stored under key, or [ErrPreferenceNotFound]
	// when the key has never been set.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
