// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// timeoutError implements net.Error with Timeout() == true, the shape resty
// returns when the request deadline is exceeded.
type timeoutError struct{}

func (timeoutError) Error() string   { return "request timed out" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassifyFetchError(t *testing.T) {
	tests := []struct {
		name  string
		phase SyncPhase
		err   error
		want  error
	}{
		{
			name:  "nil error passes through",
			phase: PhaseStartup,
			err:   nil,
			want:  nil,
		},
		{
			name:  "dns failure is network unavailable",
			phase: PhaseNormal,
			err:   &net.DNSError{Err: "no such host", Name: "gateway.local", IsNotFound: true},
			want:  ErrNetworkUnavailable,
		},
		{
			name:  "ENETUNREACH is network unavailable",
			phase: PhaseStartup,
			err:   fmt.Errorf("dial tcp: %w", syscall.ENETUNREACH),
			want:  ErrNetworkUnavailable,
		},
		{
			name:  "message match: network is unreachable",
			phase: PhaseNormal,
			err:   errors.New("connect: network is unreachable"),
			want:  ErrNetworkUnavailable,
		},
		{
			name:  "ECONNREFUSED is gateway unreachable",
			phase: PhaseNormal,
			err:   fmt.Errorf("dial tcp 127.0.0.1:3000: %w", syscall.ECONNREFUSED),
			want:  ErrBackendUnreachable,
		},
		{
			name:  "timeout is gateway unreachable",
			phase: PhaseStartup,
			err:   fmt.Errorf("get servers: %w", timeoutError{}),
			want:  ErrBackendUnreachable,
		},
		{
			name:  "message match: failed to fetch",
			phase: PhaseNormal,
			err:   errors.New("failed to fetch"),
			want:  ErrBackendUnreachable,
		},
		{
			// network-level classification wins over the phase catch-all
			name:  "connection refused during startup stays gateway unreachable",
			phase: PhaseStartup,
			err:   errors.New("dial tcp 127.0.0.1:3000: connection refused"),
			want:  ErrBackendUnreachable,
		},
		{
			name:  "other error during startup is a startup failure",
			phase: PhaseStartup,
			err:   errors.New("unexpected response payload"),
			want:  ErrStartupFailure,
		},
		{
			name:  "other error during normal polling is transient",
			phase: PhaseNormal,
			err:   errors.New("unexpected response payload"),
			want:  ErrTransientFetchFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyFetchError(tt.phase, tt.err)

			if tt.want == nil {
				assert.NoError(t, got)
				return
			}

			require.Error(t, got)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestScheduler_FiresAndCancels(t *testing.T) {
	s := NewScheduler()

	fired := make(chan struct{})
	s.ScheduleAfter(time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("scheduled callback did not fire")
	}

	canceled := make(chan struct{})
	cancel := s.ScheduleAfter(50*time.Millisecond, func() { close(canceled) })
	cancel()

	select {
	case <-canceled:
		t.Fatal("canceled callback fired anyway")
	case <-time.After(150 * time.Millisecond):
	}
}
