// Package server wires and runs the mock gateway's HTTP transport.
//
// It provides lifecycle orchestration: startup, signal handling, and
// graceful shutdown.
package server
