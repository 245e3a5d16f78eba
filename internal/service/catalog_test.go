// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mooons/mcphub/internal/adapter"
	"github.com/mooons/mcphub/internal/logger"
	"github.com/mooons/mcphub/internal/mock"
	"github.com/mooons/mcphub/internal/validators"
	"github.com/mooons/mcphub/models"
)

// spyEngine записывает вызовы TriggerRefresh и RecordError со стороны
// каталога.
type spyEngine struct {
	SyncEngine

	refreshes int
	recorded  []error
}

func (s *spyEngine) TriggerRefresh()       { s.refreshes++ }
func (s *spyEngine) RecordError(err error) { s.recorded = append(s.recorded, err) }

func newCatalogUnderTest(t *testing.T) (*mock.MockGatewayAdapter, *spyEngine, ClientCatalogService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gw := mock.NewMockGatewayAdapter(ctrl)
	engine := &spyEngine{}
	svc := NewClientCatalogService(gw, engine, validators.NewServerValidator(), logger.Nop())
	return gw, engine, svc
}

func sseServer(name string) models.ServerDetail {
	return models.ServerDetail{
		Server: models.Server{
			Name:      name,
			Transport: "sse",
			URL:       "http://localhost:9100/sse",
		},
	}
}

func TestCatalog_Add_Success_TriggersRefresh(t *testing.T) {
	gw, engine, svc := newCatalogUnderTest(t)

	srv := sseServer("github")
	gw.EXPECT().CreateServer(gomock.Any(), srv).Return(nil)

	err := svc.Add(context.Background(), srv)

	require.NoError(t, err)
	assert.Equal(t, 1, engine.refreshes)
	assert.Empty(t, engine.recorded)
}

func TestCatalog_Add_InvalidRecord_NeverHitsGateway(t *testing.T) {
	_, engine, svc := newCatalogUnderTest(t)

	srv := sseServer("github")
	srv.Transport = "websocket"

	err := svc.Add(context.Background(), srv)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMutationFailed)
	assert.Contains(t, err.Error(), "transport must be")
	assert.Equal(t, 0, engine.refreshes)
	require.Len(t, engine.recorded, 1)
}

func TestCatalog_Add_Failure_RecordsAndNoRefresh(t *testing.T) {
	gw, engine, svc := newCatalogUnderTest(t)

	srv := sseServer("github")
	gw.EXPECT().CreateServer(gomock.Any(), srv).Return(adapter.ErrConflict)

	err := svc.Add(context.Background(), srv)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMutationFailed)
	assert.Equal(t, 0, engine.refreshes)
	require.Len(t, engine.recorded, 1)
	assert.ErrorIs(t, engine.recorded[0], ErrMutationFailed)
}

func TestCatalog_Edit_ReturnsDetailWithoutRefresh(t *testing.T) {
	gw, engine, svc := newCatalogUnderTest(t)

	want := models.ServerDetail{
		Server: models.Server{Name: "github", Transport: "stdio"},
		Env:    map[string]string{"TOKEN": "x"},
	}
	gw.EXPECT().GetServer(gomock.Any(), "github").Return(want, nil)

	got, err := svc.Edit(context.Background(), "github")

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 0, engine.refreshes, "edit is read-only")
}

func TestCatalog_Edit_Failure_Recorded(t *testing.T) {
	gw, engine, svc := newCatalogUnderTest(t)

	gw.EXPECT().GetServer(gomock.Any(), "missing").Return(models.ServerDetail{}, adapter.ErrNotFound)

	_, err := svc.Edit(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMutationFailed)
	require.Len(t, engine.recorded, 1)
}

func TestCatalog_Update_Success(t *testing.T) {
	gw, engine, svc := newCatalogUnderTest(t)

	srv := sseServer("github")
	srv.URL = "http://localhost:9000/sse"
	gw.EXPECT().UpdateServer(gomock.Any(), "github", srv).Return(nil)

	require.NoError(t, svc.Update(context.Background(), "github", srv))
	assert.Equal(t, 1, engine.refreshes)
}

func TestCatalog_Update_InvalidRecordRejected(t *testing.T) {
	_, engine, svc := newCatalogUnderTest(t)

	srv := sseServer("github")
	srv.URL = ""

	err := svc.Update(context.Background(), "github", srv)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMutationFailed)
	assert.Contains(t, err.Error(), "requires a url")
	assert.Equal(t, 0, engine.refreshes)
}

func TestCatalog_Remove_Success(t *testing.T) {
	gw, engine, svc := newCatalogUnderTest(t)

	gw.EXPECT().DeleteServer(gomock.Any(), "github").Return(nil)

	require.NoError(t, svc.Remove(context.Background(), "github"))
	assert.Equal(t, 1, engine.refreshes)
}

func TestCatalog_Toggle_Success(t *testing.T) {
	gw, engine, svc := newCatalogUnderTest(t)

	gw.EXPECT().ToggleServer(gomock.Any(), "github", false).Return(nil)

	require.NoError(t, svc.Toggle(context.Background(), "github", false))
	assert.Equal(t, 1, engine.refreshes)
}

func TestCatalog_Reload_Failure_Recorded(t *testing.T) {
	gw, engine, svc := newCatalogUnderTest(t)

	gw.EXPECT().ReloadServer(gomock.Any(), "github").Return(adapter.ErrBadGateway)

	err := svc.Reload(context.Background(), "github")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMutationFailed)
	assert.Contains(t, err.Error(), "reload operation failed")
	assert.Equal(t, 0, engine.refreshes)
}

func TestCatalog_RejectedMutation_CarriesGatewayMessage(t *testing.T) {
	gw, _, svc := newCatalogUnderTest(t)

	rejected := fmt.Errorf("%w: %s", adapter.ErrRejected, "server is busy")
	gw.EXPECT().ToggleServer(gomock.Any(), "github", true).Return(rejected)

	err := svc.Toggle(context.Background(), "github", true)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMutationFailed)
	assert.Contains(t, err.Error(), "server is busy")
}

func TestMutationError_FallsBackToOperationLabel(t *testing.T) {
	err := mutationError("toggle", errors.New("boom"))

	assert.ErrorIs(t, err, ErrMutationFailed)
	assert.Contains(t, err.Error(), "toggle operation failed")
}
