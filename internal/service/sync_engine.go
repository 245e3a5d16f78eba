// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/mooons/mcphub/internal/adapter"
	"github.com/mooons/mcphub/internal/config"
	"github.com/mooons/mcphub/internal/logger"
	"github.com/mooons/mcphub/internal/store"
	"github.com/mooons/mcphub/models"
)

// DefaultServersPerPage is the page size used until the consumer changes it
// or a persisted preference is found.
const DefaultServersPerPage = 10

// prefKeyServersPerPage is the preference-store key for the page size.
const prefKeyServersPerPage = "servers_per_page"

// syncEngine is the poll-and-reconcile controller. All mutable state lives in
// private fields guarded by mu; timer callbacks are validated against the
// generation counter so a canceled episode can never write a stale result.
type syncEngine struct {
	fetcher   adapter.GatewayAdapter
	prefs     store.PreferenceRepository
	scheduler Scheduler
	cfg       config.ClientSync
	logger    *logger.Logger
	now       func() time.Time

	mu            sync.Mutex
	running       bool
	ctx           context.Context
	cancelCtx     context.CancelFunc
	phase         SyncPhase
	attempt       int
	generation    uint64
	lastSuccessAt time.Time
	cancelTimer   CancelTimer
	params        models.QueryParams

	// observable state, copied out by Snapshot
	servers    []models.Server
	allServers []models.Server
	pagination *models.PaginationInfo
	isLoading  bool
	err        error
}

// NewSyncEngine constructs an idle [SyncEngine]. prefs may be nil, in which
// case the page-size preference is neither loaded nor persisted.
func NewSyncEngine(
	fetcher adapter.GatewayAdapter,
	prefs store.PreferenceRepository,
	scheduler Scheduler,
	cfg config.ClientSync,
	log *logger.Logger,
) SyncEngine {
	return &syncEngine{
		fetcher:   fetcher,
		prefs:     prefs,
		scheduler: scheduler,
		cfg:       cfg,
		logger:    log,
		now:       time.Now,
		phase:     PhaseStopped,
		params:    models.QueryParams{Page: 1, Limit: DefaultServersPerPage},
	}
}

// Start implements [SyncEngine]. It stops any previous episode, loads the
// persisted page-size preference, and begins a fresh startup episode with an
// immediate reconciliation.
func (e *syncEngine) Start(ctx context.Context) {
	e.Stop()

	limit := e.loadPageSizePreference(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.running = true
	e.ctx, e.cancelCtx = context.WithCancel(ctx)
	e.generation++
	e.phase = PhaseStartup
	e.attempt = 0
	e.params.Page = 1
	if limit > 0 {
		e.params.Limit = limit
	}

	e.logger.Info().
		Uint64("generation", e.generation).
		Int("limit", e.params.Limit).
		Msg("sync engine started")

	e.scheduleLocked(0)
}

// Stop implements [SyncEngine].
func (e *syncEngine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		return
	}

	e.running = false
	e.stopTimerLocked()
	e.cancelCtx()
	e.ctx, e.cancelCtx = nil, nil

	// invalidate any reconciliation still in flight
	e.generation++

	e.phase = PhaseStopped
	e.attempt = 0
	e.lastSuccessAt = time.Time{}
	e.servers = nil
	e.allServers = nil
	e.pagination = nil
	e.isLoading = false
	e.err = nil

	e.logger.Info().Msg("sync engine stopped")
}

// TriggerRefresh implements [SyncEngine].
func (e *syncEngine) TriggerRefresh() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		return
	}

	e.stopTimerLocked()
	e.generation++
	e.phase = PhaseStartup
	e.attempt = 0

	e.logger.Debug().
		Uint64("generation", e.generation).
		Msg("manual refresh: fresh startup episode")

	e.scheduleLocked(0)
}

// RefreshIfNeeded implements [SyncEngine].
func (e *syncEngine) RefreshIfNeeded() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}

	elapsed := e.now().Sub(e.lastSuccessAt)
	needed := e.lastSuccessAt.IsZero() || elapsed >= e.cfg.MinRefreshInterval
	e.mu.Unlock()

	if !needed {
		return
	}

	e.TriggerRefresh()
}

// SetCurrentPage implements [SyncEngine]. The reconciliation runs under the
// current phase and attempt counter: changing pages is not a restart. The
// generation still advances so that a fetch already in flight for the old
// parameters is superseded instead of settling alongside the new one.
func (e *syncEngine) SetCurrentPage(page int) {
	if page < 1 {
		page = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.params.Page = page
	if !e.running {
		return
	}

	e.regenerateLocked()
	e.scheduleLocked(0)
}

// SetServersPerPage implements [SyncEngine]. A limit change always returns
// to the first page, since the old page index is meaningless under the new
// page size.
func (e *syncEngine) SetServersPerPage(limit int) {
	if limit < 1 {
		limit = DefaultServersPerPage
	}

	e.mu.Lock()
	e.params.Limit = limit
	e.params.Page = 1
	if e.running {
		e.regenerateLocked()
		e.scheduleLocked(0)
	}
	e.mu.Unlock()

	e.persistPageSizePreference(limit)
}

// RecordError implements [SyncEngine].
func (e *syncEngine) RecordError(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.err = err
}

// Snapshot implements [SyncEngine].
func (e *syncEngine) Snapshot() models.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := models.Snapshot{
		Servers:        append([]models.Server(nil), e.servers...),
		AllServers:     append([]models.Server(nil), e.allServers...),
		CurrentPage:    e.params.Page,
		ServersPerPage: e.params.Limit,
		IsLoading:      e.isLoading,
		FetchAttempts:  e.attempt,
		Err:            e.err,
	}
	if e.pagination != nil {
		p := *e.pagination
		snap.Pagination = &p
	}

	return snap
}

// Phase implements [SyncEngine].
func (e *syncEngine) Phase() SyncPhase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

// Attempts implements [SyncEngine].
func (e *syncEngine) Attempts() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.attempt
}

// Generation implements [SyncEngine].
func (e *syncEngine) Generation() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation
}

// scheduleLocked arms the timer for the current generation. Callers must
// hold mu. The timer never rearms itself: the next tick is armed only after
// the previous reconciliation has fully settled, which guarantees at most
// one in-flight reconciliation per generation.
func (e *syncEngine) scheduleLocked(d time.Duration) {
	gen := e.generation
	e.cancelTimer = e.scheduler.ScheduleAfter(d, func() {
		e.reconcile(gen)
	})
}

// regenerateLocked supersedes the current generation without restarting the
// episode: phase and attempt counter survive, but the armed timer and any
// reconciliation still in flight are invalidated. Without the generation
// bump, a parameter change racing an in-flight fetch would let two settles
// each arm their own next tick and leave the engine polling twice per
// interval. Callers must hold mu.
func (e *syncEngine) regenerateLocked() {
	e.stopTimerLocked()
	e.generation++
}

func (e *syncEngine) stopTimerLocked() {
	if e.cancelTimer != nil {
		e.cancelTimer()
		e.cancelTimer = nil
	}
}

// reconcile performs one dual fetch for the given generation: the paginated
// page and the full set are requested concurrently, and both must succeed
// for the attempt to count as a success. Results from a superseded
// generation are dropped without touching the observable state.
func (e *syncEngine) reconcile(gen uint64) {
	e.mu.Lock()
	if !e.running || gen != e.generation {
		e.mu.Unlock()
		return
	}
	ctx := e.ctx
	params := e.params
	e.isLoading = true
	e.mu.Unlock()

	var (
		wg      sync.WaitGroup
		pageRes models.ServerListResult
		pageErr error
		allRes  []models.Server
		allErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		pageRes, pageErr = e.fetcher.ListServers(ctx, params.Page, params.Limit)
	}()
	go func() {
		defer wg.Done()
		allRes, allErr = e.fetcher.ListAllServers(ctx)
	}()
	wg.Wait()

	e.settle(gen, pageRes, pageErr, allRes, allErr)
}

// settle records the outcome of a reconciliation and arms the next tick.
// The asymmetry here is deliberate and mirrors the original dashboard: a
// partial success still writes the succeeding half to the sink (so the view
// is as fresh as possible) but counts as a full failure for the phase
// machine.
func (e *syncEngine) settle(gen uint64, pageRes models.ServerListResult, pageErr error, allRes []models.Server, allErr error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running || gen != e.generation {
		// stale generation: a manual refresh or stop superseded this fetch
		return
	}

	e.isLoading = false

	if pageErr == nil {
		e.servers = pageRes.Servers
		e.pagination = pageRes.Pagination
	} else {
		e.servers = []models.Server{}
		e.pagination = nil
	}

	if allErr == nil {
		e.allServers = allRes
	} else {
		e.allServers = []models.Server{}
	}

	if pageErr == nil && allErr == nil {
		e.err = nil
		e.lastSuccessAt = e.now()
		e.attempt = 0
		if e.phase != PhaseNormal {
			e.logger.Info().Uint64("generation", gen).Msg("startup reconciliation succeeded")
			e.phase = PhaseNormal
		}
		e.scheduleLocked(e.cfg.NormalInterval)
		return
	}

	fetchErr := pageErr
	if fetchErr == nil {
		fetchErr = allErr
	}
	e.err = classifyFetchError(e.phase, fetchErr)

	switch e.phase {
	case PhaseStartup:
		e.attempt++
		e.logger.Warn().
			Err(fetchErr).
			Int("attempt", e.attempt).
			Int("max_attempts", e.cfg.MaxStartupAttempts).
			Msg("startup reconciliation failed")

		if e.attempt >= e.cfg.MaxStartupAttempts {
			// Never retry faster than the normal interval forever: fall
			// back to steady polling without an immediate re-fire.
			e.logger.Error().
				Int("attempts", e.attempt).
				Msg("startup attempts exhausted, falling back to normal polling")
			e.phase = PhaseNormal
			e.scheduleLocked(e.cfg.NormalInterval)
			return
		}
		e.scheduleLocked(e.cfg.StartupInterval)

	case PhaseNormal:
		e.logger.Warn().Err(fetchErr).Msg("reconciliation failed, polling continues")
		e.scheduleLocked(e.cfg.NormalInterval)

	default:
		// Stopped while settling is already handled by the generation
		// check above; nothing to arm.
	}
}

func (e *syncEngine) loadPageSizePreference(ctx context.Context) int {
	if e.prefs == nil {
		return 0
	}

	raw, err := e.prefs.Get(ctx, prefKeyServersPerPage)
	if err != nil {
		return 0
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0
	}
	return limit
}

func (e *syncEngine) persistPageSizePreference(limit int) {
	if e.prefs == nil {
		return
	}

	if err := e.prefs.Set(context.Background(), prefKeyServersPerPage, strconv.Itoa(limit)); err != nil {
		e.logger.Warn().Err(err).Msg("persist page size preference")
	}
}
