// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mooons/mcphub/internal/logger"
)

type preferenceRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPreferenceRepository constructs the SQLite-backed
// [PreferenceRepository].
func NewPreferenceRepository(db *DB, log *logger.Logger) PreferenceRepository {
	return &preferenceRepository{db: db, logger: log, now: time.Now}
}

// Get implements [PreferenceRepository].
func (r *preferenceRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetPreferenceQuery(key)
	if err != nil {
		return "", fmt.Errorf("build get preference query: %w", err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrPreferenceNotFound
		}
		r.logger.Err(err).Str("key", key).Msg("get preference")
		return "", fmt.Errorf("get preference %q: %w", key, err)
	}

	return value, nil
}

// Set implements [PreferenceRepository].
func (r *preferenceRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertPreferenceQuery(key, value, r.now())
	if err != nil {
		return fmt.Errorf("build upsert preference query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("key", key).Msg("set preference")
		return fmt.Errorf("set preference %q: %w", key, err)
	}

	return nil
}
