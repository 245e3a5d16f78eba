package service

import "errors"

var (
	// ErrNetworkUnavailable: no network connectivity could be detected at
	// all (DNS failure, unreachable network).
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrBackendUnreachable: the network is up but the gateway itself did
	// not answer (connection refused/reset, timeout).
	ErrBackendUnreachable = errors.New("gateway unreachable")

	// ErrStartupFailure: any other fetch failure during the startup phase.
	ErrStartupFailure = errors.New("startup fetch failed")

	// ErrTransientFetchFailure: any other fetch failure during normal
	// polling. Polling continues.
	ErrTransientFetchFailure = errors.New("fetch failed")

	// ErrMutationFailed wraps failures of add/edit/remove/toggle/reload
	// operations, carrying the gateway-provided message when there is one.
	ErrMutationFailed = errors.New("mutation failed")
)
