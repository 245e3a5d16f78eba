// SPDX-License-Identifier: Apache-2.0

// Package service contains the client-side business logic of the mcphub
// dashboard: the poll-and-reconcile sync engine that keeps the local server
// list in step with the gateway, and the catalog service wrapping the
// gateway's mutation endpoints.
//
// The engine runs in two regimes. A fresh episode starts in the startup
// phase: short retry interval, bounded attempts, immediate first fetch.
// After the first full success (or after the attempt bound is exhausted) it
// settles into the normal phase: long interval, unbounded, failures surfaced
// but never fatal. A generation counter invalidates timers and in-flight
// fetches whenever an episode is superseded by a manual refresh, a
// re-authentication, or a stop.
package service
