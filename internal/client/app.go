// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mooons/mcphub/internal/adapter"
	"github.com/mooons/mcphub/internal/config"
	"github.com/mooons/mcphub/internal/logger"
	"github.com/mooons/mcphub/internal/service"
	"github.com/mooons/mcphub/internal/session"
	"github.com/mooons/mcphub/internal/store"
	"github.com/mooons/mcphub/internal/workers"
)

// envGatewayToken carries the admin API bearer token. When unset the client
// runs unauthenticated, which is enough for the development mock gateway.
const envGatewayToken = "GATEWAY_TOKEN"

// sessionWatchInterval is how often the expiry watcher rechecks the token.
const sessionWatchInterval = time.Minute

// App is the assembled dashboard client.
type App struct {
	cfg      *config.ClientConfig
	logger   *logger.Logger
	db       *store.DB
	services *service.ClientServices
	session  *session.Manager
	workers  *workers.Workers
}

// NewApp wires the full client stack from the resolved configuration.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	db, err := store.NewConnectSQLite(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect preference store: %w", err)
	}

	prefs := store.NewPreferenceRepository(db, log)

	gatewayAdapter, err := adapter.NewHTTPGatewayAdapter(cfg.Gateway, log)
	if err != nil {
		return nil, fmt.Errorf("create gateway adapter: %w", err)
	}

	services := service.NewClientServices(gatewayAdapter, prefs, cfg.Sync, log)
	sess := session.NewManager(gatewayAdapter, services.SyncEngine, log)

	app := &App{
		cfg:      cfg,
		logger:   log,
		db:       db,
		services: services,
		session:  sess,
	}

	app.workers = workers.New(
		workers.WorkerFunc(func(ctx context.Context) {
			sess.Watch(ctx, sessionWatchInterval)
		}),
		workers.WorkerFunc(app.reportStatus),
	)

	return app, nil
}

// Run implements [Client]. It turns the session gate on, starts the
// background workers, and blocks until ctx is canceled, then tears
// everything down in reverse order.
func (a *App) Run(ctx context.Context) error {
	if token := os.Getenv(envGatewayToken); token != "" {
		if err := a.session.SetToken(ctx, token); err != nil {
			return fmt.Errorf("install gateway token: %w", err)
		}
	} else {
		a.logger.Warn().Msg("no gateway token provided, running unauthenticated")
		a.services.SyncEngine.Start(ctx)
	}

	a.workers.Run(ctx)

	<-ctx.Done()

	a.session.Clear()
	a.services.SyncEngine.Stop()
	a.workers.Wait()

	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close preference store: %w", err)
	}

	return nil
}

// Services exposes the wired service layer, as consumed by UI frontends.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Session exposes the session gate.
func (a *App) Session() *session.Manager {
	return a.session
}

// reportStatus periodically logs a one-line summary of the engine state at
// the normal polling cadence.
func (a *App) reportStatus(ctx context.Context) {
	t := time.NewTicker(a.cfg.Sync.NormalInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			snap := a.services.SyncEngine.Snapshot()

			evt := a.logger.Info().
				Str("phase", a.services.SyncEngine.Phase().String()).
				Int("servers", len(snap.AllServers)).
				Int("page", snap.CurrentPage).
				Int("attempts", snap.FetchAttempts)
			if snap.Err != nil {
				evt = evt.Err(snap.Err)
			}
			evt.Msg("sync status")
		}
	}
}
