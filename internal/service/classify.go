// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
)

// classifyFetchError translates a raw fetch error into the sync error
// taxonomy. Classification is by priority: connectivity problems first,
// then unreachable-gateway transport errors, then a phase-dependent
// catch-all. It never panics and never returns nil for a non-nil input.
func classifyFetchError(phase SyncPhase, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case isNetworkUnavailable(err):
		return fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
	case isBackendUnreachable(err):
		return fmt.Errorf("%w: %v", ErrBackendUnreachable, err)
	case phase == PhaseStartup:
		return fmt.Errorf("%w: %v", ErrStartupFailure, err)
	default:
		return fmt.Errorf("%w: %v", ErrTransientFetchFailure, err)
	}
}

// isNetworkUnavailable reports errors that indicate the client has no
// usable network path at all, as opposed to the gateway being down.
func isNetworkUnavailable(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	if errors.Is(err, syscall.ENETUNREACH) || errors.Is(err, syscall.ENETDOWN) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "network is unreachable") ||
		strings.Contains(msg, "no such host")
}

// isBackendUnreachable reports low-level transport failures where the
// gateway endpoint did not produce an HTTP response.
func isBackendUnreachable(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "failed to fetch")
}
