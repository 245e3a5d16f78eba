// SPDX-License-Identifier: Apache-2.0

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const createPrefsTable = `
	CREATE TABLE IF NOT EXISTS prefs (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);`

func buildGetPreferenceQuery(key string) (string, []any, error) {
	return sq.Select("value").
		From("prefs").
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertPreferenceQuery(key, value string, updatedAt time.Time) (string, []any, error) {
	return sq.Insert("prefs").
		Columns("key", "value", "updated_at").
		Values(key, value, updatedAt).
		Suffix(`ON CONFLICT (key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at`).
		ToSql()
}
