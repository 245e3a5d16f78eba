// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mooons/mcphub/internal/logger"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL создаёт DB из существующего *sql.DB (для тестов).
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{DB: db, logger: logger.Nop()}
}

func newTestRepo(t *testing.T, db *sql.DB, now time.Time) *preferenceRepository {
	t.Helper()
	repo := NewPreferenceRepository(newDBFromSQL(db), logger.Nop()).(*preferenceRepository)
	repo.now = func() time.Time { return now }
	return repo
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestPreferenceRepository_Get_Found(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM prefs WHERE key = ?")).
		WithArgs("servers_per_page").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("20"))

	got, err := repo.Get(context.Background(), "servers_per_page")

	require.NoError(t, err)
	assert.Equal(t, "20", got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_Get_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM prefs")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
}

func TestPreferenceRepository_Get_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db, time.Now())

	dbErr := errors.New("database is locked")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM prefs")).
		WithArgs("servers_per_page").
		WillReturnError(dbErr)

	_, err := repo.Get(context.Background(), "servers_per_page")

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrPreferenceNotFound)
}

// ── Set ─────────────────────────────────────────────────────────────────────

func TestPreferenceRepository_Set_Insert(t *testing.T) {
	db, mock := newTestDB(t)
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	repo := newTestRepo(t, db, now)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO prefs (key,value,updated_at) VALUES (?,?,?)")).
		WithArgs("servers_per_page", "20", now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Set(context.Background(), "servers_per_page", "20")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_Set_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db, time.Now())

	dbErr := errors.New("disk I/O error")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO prefs")).
		WillReturnError(dbErr)

	err := repo.Set(context.Background(), "servers_per_page", "20")

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}
