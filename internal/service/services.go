package service

import (
	"github.com/mooons/mcphub/internal/adapter"
	"github.com/mooons/mcphub/internal/config"
	"github.com/mooons/mcphub/internal/logger"
	"github.com/mooons/mcphub/internal/store"
	"github.com/mooons/mcphub/internal/validators"
)

// ClientServices aggregates all client-side services behind one constructor,
// mirroring how the app layer consumes them.
type ClientServices struct {
	SyncEngine SyncEngine
	Catalog    ClientCatalogService
}

// NewClientServices wires the sync engine and the catalog service against
// the given gateway adapter and preference store.
func NewClientServices(
	gatewayAdapter adapter.GatewayAdapter,
	prefs store.PreferenceRepository,
	cfg config.ClientSync,
	log *logger.Logger,
) *ClientServices {
	engine := NewSyncEngine(gatewayAdapter, prefs, NewScheduler(), cfg, log)
	catalog := NewClientCatalogService(gatewayAdapter, engine, validators.NewServerValidator(), log)

	return &ClientServices{
		SyncEngine: engine,
		Catalog:    catalog,
	}
}
