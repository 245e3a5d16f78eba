package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServerList_Envelope(t *testing.T) {
	body := []byte(`{
		"success": true,
		"data": [{"name": "srv-a", "enabled": true}, {"name": "srv-b", "enabled": false}],
		"pagination": {"page": 1, "limit": 5, "total": 2, "totalPages": 1, "hasNextPage": false, "hasPrevPage": false}
	}`)

	got := parseServerList(body)

	require.Equal(t, payloadEnvelope, got.kind)
	require.Len(t, got.servers, 2)
	assert.Equal(t, "srv-a", got.servers[0].Name)
	require.NotNil(t, got.pagination)
	assert.Equal(t, 2, got.pagination.Total)
}

func TestParseServerList_EnvelopeWithoutPagination(t *testing.T) {
	body := []byte(`{"success": true, "data": []}`)

	got := parseServerList(body)

	require.Equal(t, payloadEnvelope, got.kind)
	assert.Empty(t, got.servers)
	assert.Nil(t, got.pagination)
}

func TestParseServerList_BareArray(t *testing.T) {
	body := []byte(`[{"name": "srv-a"}, {"name": "srv-b"}, {"name": "srv-c"}]`)

	got := parseServerList(body)

	require.Equal(t, payloadBareArray, got.kind)
	assert.Len(t, got.servers, 3)
	assert.Nil(t, got.pagination)
}

func TestParseServerList_BareArrayEmpty(t *testing.T) {
	got := parseServerList([]byte(`  []  `))

	require.Equal(t, payloadBareArray, got.kind)
	require.NotNil(t, got.servers)
	assert.Empty(t, got.servers)
}

func TestParseServerList_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "envelope success false", body: `{"success": false, "message": "gateway booting"}`},
		{name: "envelope non-array data", body: `{"success": true, "data": {"name": "srv-a"}}`},
		{name: "envelope missing data", body: `{"success": true}`},
		{name: "array of wrong element type", body: `[1, 2, 3]`},
		{name: "plain string", body: `"hello"`},
		{name: "truncated json", body: `{"success": tru`},
		{name: "empty body", body: ``},
		{name: "whitespace only", body: "  \n\t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseServerList([]byte(tt.body))
			assert.Equal(t, payloadMalformed, got.kind)
		})
	}
}

func TestParseServerList_MalformedKeepsEnvelopeMessage(t *testing.T) {
	got := parseServerList([]byte(`{"success": false, "message": "maintenance window"}`))

	require.Equal(t, payloadMalformed, got.kind)
	assert.Equal(t, "maintenance window", got.message)
}
