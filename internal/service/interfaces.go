// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"time"

	"github.com/mooons/mcphub/models"
)

// SyncPhase is the operating regime of the sync engine.
type SyncPhase int

const (
	// PhaseStopped means the session gate is off and no timers are armed.
	PhaseStopped SyncPhase = iota
	// PhaseStartup is the aggressive-retry regime: short interval, bounded
	// attempts, entered on every fresh episode.
	PhaseStartup
	// PhaseNormal is the steady polling regime: long interval, unbounded.
	PhaseNormal
)

func (p SyncPhase) String() string {
	switch p {
	case PhaseStopped:
		return "stopped"
	case PhaseStartup:
		return "startup"
	case PhaseNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// CancelTimer cancels a scheduled callback. Calling it after the callback has
// fired is a no-op.
type CancelTimer func()

// Scheduler provides cancelable timed callbacks. It exists so the engine's
// timer handling is explicit and testable rather than buried in closures;
// tests substitute a manual implementation.
type Scheduler interface {
	// ScheduleAfter runs fn once after d has elapsed. fn runs on its own
	// goroutine. The returned CancelTimer prevents fn from firing if called
	// before the delay elapses.
	ScheduleAfter(d time.Duration, fn func()) CancelTimer
}

// SyncEngine keeps the local view of the gateway's server list synchronized
// with the gateway. It owns the phase state machine described on [SyncPhase],
// issues dual fetches (paginated page + full set), and publishes results as
// [models.Snapshot] values.
type SyncEngine interface {
	// Start turns the session gate on: a fresh sync episode begins in the
	// startup phase with an immediate reconciliation. A running engine is
	// restarted. ctx bounds all fetches of the episode.
	Start(ctx context.Context)

	// Stop turns the session gate off: pending timers are canceled, the
	// observable state is cleared, and in-flight results are discarded.
	// Safe to call when not running.
	Stop()

	// TriggerRefresh unconditionally begins a fresh startup episode:
	// the generation counter is bumped (invalidating pending timers and
	// in-flight fetches) and an immediate reconciliation is scheduled.
	// No-op while stopped.
	TriggerRefresh()

	// RefreshIfNeeded is the debounced variant of TriggerRefresh: it only
	// fires when at least the configured minimum refresh interval has
	// passed since the last successful reconciliation. Non-essential
	// refresh requests (tab focus, navigation) go through here.
	RefreshIfNeeded()

	// SetCurrentPage changes the requested page and issues an immediate
	// reconciliation under the current phase (no phase reset).
	SetCurrentPage(page int)

	// SetServersPerPage changes the page size, resets the page to 1,
	// persists the preference, and issues an immediate reconciliation under
	// the current phase.
	SetServersPerPage(limit int)

	// RecordError surfaces a mutation failure in the observable state
	// without touching the phase machine. Used by the catalog service.
	RecordError(err error)

	// Snapshot returns a copy of the current observable state.
	Snapshot() models.Snapshot

	// Phase returns the current phase. Intended for introspection and logs.
	Phase() SyncPhase

	// Attempts returns the consecutive failed attempts of the current
	// startup episode.
	Attempts() int

	// Generation returns the current episode generation counter.
	Generation() uint64
}

// ClientCatalogService wraps the gateway's server-mutation endpoints. Every
// successful mutation triggers a prompt reconciliation; every failure is
// recorded in the engine's observable state.
type ClientCatalogService interface {
	// Add registers a new server on the gateway.
	Add(ctx context.Context, srv models.ServerDetail) error

	// Edit fetches the full detail record of the named server, as needed to
	// populate an edit form.
	Edit(ctx context.Context, name string) (models.ServerDetail, error)

	// Update replaces the configuration of an existing server.
	Update(ctx context.Context, name string, srv models.ServerDetail) error

	// Remove deletes the named server from the gateway.
	Remove(ctx context.Context, name string) error

	// Toggle enables or disables routing to the named server.
	Toggle(ctx context.Context, name string, enabled bool) error

	// Reload restarts the named server process.
	Reload(ctx context.Context, name string) error
}
