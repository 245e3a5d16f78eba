package models

import "time"

// Server is a single MCP backend server as reported by the gateway.
// It is the unit of everything the dashboard client synchronizes: list rows,
// toggle/reload targets, and the detail view.
type Server struct {
	// Name is the unique identifier of the server within the gateway.
	Name string `json:"name"`

	// Enabled reports whether the gateway is allowed to route calls to
	// this server. Disabled servers stay registered but receive no traffic.
	Enabled bool `json:"enabled"`

	// Transport is the protocol the gateway uses to reach the server,
	// e.g. "stdio", "sse" or "streamable-http".
	Transport string `json:"transport"`

	// Command is the executable launched for stdio servers. Empty for
	// network transports.
	Command string `json:"command,omitempty"`

	// Args are the command-line arguments passed to Command.
	Args []string `json:"args,omitempty"`

	// URL is the endpoint address for network transports. Empty for stdio.
	URL string `json:"url,omitempty"`

	// Status is the gateway-reported connection state, e.g. "connected",
	// "connecting" or "disconnected".
	Status string `json:"status,omitempty"`

	// ToolCount is the number of tools the server currently exposes.
	ToolCount int `json:"toolCount,omitempty"`

	// LastError holds the most recent connection error reported by the
	// gateway for this server, if any.
	LastError string `json:"lastError,omitempty"`

	// UpdatedAt is the time the gateway last changed this record.
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// ServerDetail is the full single-server record returned by the detail
// endpoint. It extends the list row with fields the table view does not need.
type ServerDetail struct {
	Server

	// Env holds the environment variables configured for the server process.
	Env map[string]string `json:"env,omitempty"`

	// Tools lists the names of the tools the server exposes.
	Tools []string `json:"tools,omitempty"`
}
