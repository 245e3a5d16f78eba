// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the MCP
// gateway admin API.
//
// The primary abstraction is [GatewayAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPGatewayAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/mooons/mcphub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_adapter_mock.go -package=mock

// GatewayAdapter defines transport-agnostic communication with the MCP
// gateway. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type GatewayAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. An empty token removes the header.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// ListServers fetches one page of the server list via
	// GET /servers?page={page}&limit={limit}. The response may be an
	// envelope or a bare array; both are normalized. Returns
	// [ErrMalformedResponse] for any other shape.
	ListServers(ctx context.Context, page, limit int) (models.ServerListResult, error)

	// ListAllServers fetches the full unpaginated server set via
	// GET /servers. Same shape tolerance as ListServers.
	ListAllServers(ctx context.Context) ([]models.Server, error)

	// GetServer fetches the single-server detail record via
	// GET /servers/{name}.
	GetServer(ctx context.Context, name string) (models.ServerDetail, error)

	// CreateServer registers a new server via POST /servers.
	// A 2xx response with success == false is returned as [ErrRejected]
	// carrying the gateway-provided message.
	CreateServer(ctx context.Context, srv models.ServerDetail) error

	// UpdateServer replaces the configuration of an existing server via
	// PUT /servers/{name}.
	UpdateServer(ctx context.Context, name string, srv models.ServerDetail) error

	// ToggleServer enables or disables routing to the named server via
	// POST /servers/{name}/toggle.
	ToggleServer(ctx context.Context, name string, enabled bool) error

	// ReloadServer restarts the named server process via
	// POST /servers/{name}/reload.
	ReloadServer(ctx context.Context, name string) error

	// DeleteServer removes the named server via DELETE /servers/{name}.
	DeleteServer(ctx context.Context, name string) error
}
