// SPDX-License-Identifier: Apache-2.0

// Package http implements the development mock gateway's admin API.
//
// The mock gateway serves the same HTTP surface the dashboard client
// consumes — the paginated server list, the single-server detail, and the
// mutation endpoints — over an in-memory server registry. It exists for
// manual testing of the client against a controllable backend, including
// the legacy bare-array list responses some gateway builds emit.
package http
