// SPDX-License-Identifier: Apache-2.0

// Package client implements the dashboard client runtime.
//
// It wires configuration, the gateway adapter, the preference store, the
// sync engine, and the session gate into a single process lifecycle that
// runs until the process is signaled.
package client
