package models

import "encoding/json"

// ServerListEnvelope is the structured form of a gateway list response.
// The gateway may also answer with a bare JSON array of servers; the adapter
// normalizes both shapes before they reach the service layer.
type ServerListEnvelope struct {
	// Success reports whether the gateway considers the request handled.
	// An envelope with Success == false is treated as a failed fetch even
	// when the HTTP status was 200.
	Success bool `json:"success"`

	// Data is the list of servers for the requested page (or the full set
	// for the unpaginated endpoint).
	Data json.RawMessage `json:"data"`

	// Pagination is present only on paginated list responses.
	Pagination *PaginationInfo `json:"pagination,omitempty"`

	// Message carries a human-readable explanation when Success is false.
	Message string `json:"message,omitempty"`
}

// MutationResponse is the gateway's answer to a state-changing request
// (create, update, toggle, reload, delete). Non-success responses surface
// Message as the user-visible error.
type MutationResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ServerListResult is a normalized list response: one page of the paginated
// endpoint or the full set, with pagination metadata when the gateway
// provided it.
type ServerListResult struct {
	Servers    []Server
	Pagination *PaginationInfo
}
