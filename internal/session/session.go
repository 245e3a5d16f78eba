// SPDX-License-Identifier: Apache-2.0

// Package session tracks the operator's authentication state and drives the
// sync engine from it: the engine runs exactly while a usable token is held.
// Each authentication episode owns one engine episode; re-authenticating
// restarts the engine so no state leaks between sessions.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mooons/mcphub/internal/adapter"
	"github.com/mooons/mcphub/internal/logger"
	"github.com/mooons/mcphub/internal/service"
)

var (
	ErrTokenExpired   = errors.New("session token is expired")
	ErrTokenMalformed = errors.New("session token is malformed")
)

// Manager is the session gate. It pushes the bearer token into the gateway
// adapter and starts/stops the sync engine on authentication transitions.
//
// The token is only inspected, never verified: the gateway is the party
// that signs and validates; the client just needs the expiry claim to know
// when to give up on the session.
type Manager struct {
	adapter adapter.GatewayAdapter
	engine  service.SyncEngine
	logger  *logger.Logger
	now     func() time.Time

	mu        sync.Mutex
	active    bool
	expiresAt time.Time
}

// NewManager constructs a session [Manager] driving the given engine.
func NewManager(gatewayAdapter adapter.GatewayAdapter, engine service.SyncEngine, log *logger.Logger) *Manager {
	return &Manager{
		adapter: gatewayAdapter,
		engine:  engine,
		logger:  log,
		now:     time.Now,
	}
}

// SetToken installs a new bearer token, turning the session gate on. If a
// session is already active the engine is restarted, which begins a fresh
// sync episode. Returns an error (and leaves the gate untouched) if the
// token cannot be parsed or is already expired.
func (m *Manager) SetToken(ctx context.Context, token string) error {
	expiresAt, err := tokenExpiry(token)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !expiresAt.IsZero() && !expiresAt.After(m.now()) {
		return ErrTokenExpired
	}

	m.adapter.SetToken(token)
	m.expiresAt = expiresAt
	m.active = true

	m.logger.Info().
		Time("expires_at", expiresAt).
		Msg("session token installed, starting sync engine")

	// Start restarts a running engine, so re-authentication gets a fresh
	// episode with a new generation.
	m.engine.Start(ctx)

	return nil
}

// Clear turns the session gate off: the engine stops, its observable state
// is cleared, and the adapter forgets the token. Safe to call repeatedly.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active {
		return
	}

	m.active = false
	m.expiresAt = time.Time{}
	m.adapter.SetToken("")
	m.engine.Stop()

	m.logger.Info().Msg("session cleared, sync engine stopped")
}

// Active reports whether the session gate is on.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// ExpiresAt returns the expiry of the current token, zero when the token
// carries no expiry claim or no session is active.
func (m *Manager) ExpiresAt() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.expiresAt
}

// Watch polls the token expiry every interval and clears the session once
// the token has expired. It blocks until ctx is done; run it on its own
// goroutine.
func (m *Manager) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.expireIfNeeded()
		}
	}
}

func (m *Manager) expireIfNeeded() {
	m.mu.Lock()
	expired := m.active && !m.expiresAt.IsZero() && !m.expiresAt.After(m.now())
	m.mu.Unlock()

	if expired {
		m.logger.Warn().Msg("session token expired")
		m.Clear()
	}
}

// tokenExpiry extracts the "exp" claim without verifying the signature.
// A token without an expiry claim yields a zero time.
func tokenExpiry(token string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()

	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}
