// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_buildGetPreferenceQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildGetPreferenceQuery("servers_per_page")
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, "servers_per_page", args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "value")
	require.Contains(t, q, "from prefs")
	require.Contains(t, q, "where")
	require.Contains(t, q, "key")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
}

func Test_buildUpsertPreferenceQuery_SQLContainsParts(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	query, args, err := buildUpsertPreferenceQuery("servers_per_page", "20", now)
	require.NoError(t, err)

	require.Len(t, args, 3)
	require.Equal(t, "servers_per_page", args[0])
	require.Equal(t, "20", args[1])
	require.Equal(t, now, args[2])

	q := strings.ToLower(query)

	require.Contains(t, q, "insert into prefs")
	require.Contains(t, q, "on conflict (key) do update set")
	require.Contains(t, q, "excluded.value")
	require.Contains(t, q, "excluded.updated_at")
}
