// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/mooons/mcphub/internal/config"
	"github.com/mooons/mcphub/internal/logger"
	"github.com/mooons/mcphub/models"
)

type httpGatewayAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPGatewayAdapter constructs an HTTP/REST implementation of
// [GatewayAdapter]. It normalises and validates the base URL from
// cfg.BaseURL and configures the underlying resty client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPGatewayAdapter(cfg config.ClientGateway, log *logger.Logger) (GatewayAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpGatewayAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [GatewayAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpGatewayAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [GatewayAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpGatewayAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request prepares an outbound request with the bearer token and a
// correlation id that ties gateway-side logs to ours.
func (h *httpGatewayAdapter) request(ctx context.Context) (*resty.Request, string) {
	requestID := uuid.NewString()

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("X-Request-ID", requestID)

	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	return req, requestID
}

// ListServers implements [GatewayAdapter].
func (h *httpGatewayAdapter) ListServers(ctx context.Context, page, limit int) (models.ServerListResult, error) {
	req, requestID := h.request(ctx)
	resp, err := req.
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get("/servers")
	if err != nil {
		return models.ServerListResult{}, fmt.Errorf("list servers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerListResult{}, err
	}

	payload := parseServerList(resp.Body())
	if payload.kind == payloadMalformed {
		h.logger.Warn().
			Str("request_id", requestID).
			Str("reason", payload.message).
			Msg("unrecognized list response shape")
		if payload.message != "" {
			return models.ServerListResult{}, fmt.Errorf("%w: %s", ErrMalformedResponse, payload.message)
		}
		return models.ServerListResult{}, ErrMalformedResponse
	}

	return models.ServerListResult{Servers: payload.servers, Pagination: payload.pagination}, nil
}

// ListAllServers implements [GatewayAdapter].
func (h *httpGatewayAdapter) ListAllServers(ctx context.Context) ([]models.Server, error) {
	req, requestID := h.request(ctx)
	resp, err := req.Get("/servers")
	if err != nil {
		return nil, fmt.Errorf("list all servers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	payload := parseServerList(resp.Body())
	if payload.kind == payloadMalformed {
		h.logger.Warn().
			Str("request_id", requestID).
			Str("reason", payload.message).
			Msg("unrecognized list response shape")
		if payload.message != "" {
			return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, payload.message)
		}
		return nil, ErrMalformedResponse
	}

	return payload.servers, nil
}

// GetServer implements [GatewayAdapter].
func (h *httpGatewayAdapter) GetServer(ctx context.Context, name string) (models.ServerDetail, error) {
	req, _ := h.request(ctx)
	resp, err := req.Get("/servers/" + url.PathEscape(name))
	if err != nil {
		return models.ServerDetail{}, fmt.Errorf("get server request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerDetail{}, err
	}

	var env models.MutationResponse
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return models.ServerDetail{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if !env.Success {
		return models.ServerDetail{}, rejectedError(env.Message)
	}

	var detail models.ServerDetail
	if err = json.Unmarshal(env.Data, &detail); err != nil {
		return models.ServerDetail{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return detail, nil
}

// CreateServer implements [GatewayAdapter].
func (h *httpGatewayAdapter) CreateServer(ctx context.Context, srv models.ServerDetail) error {
	req, _ := h.request(ctx)
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(srv).
		Post("/servers")
	if err != nil {
		return fmt.Errorf("create server request: %w", err)
	}

	return h.settleMutation(resp)
}

// UpdateServer implements [GatewayAdapter].
func (h *httpGatewayAdapter) UpdateServer(ctx context.Context, name string, srv models.ServerDetail) error {
	req, _ := h.request(ctx)
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(srv).
		Put("/servers/" + url.PathEscape(name))
	if err != nil {
		return fmt.Errorf("update server request: %w", err)
	}

	return h.settleMutation(resp)
}

// ToggleServer implements [GatewayAdapter].
func (h *httpGatewayAdapter) ToggleServer(ctx context.Context, name string, enabled bool) error {
	req, _ := h.request(ctx)
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]bool{"enabled": enabled}).
		Post("/servers/" + url.PathEscape(name) + "/toggle")
	if err != nil {
		return fmt.Errorf("toggle server request: %w", err)
	}

	return h.settleMutation(resp)
}

// ReloadServer implements [GatewayAdapter].
func (h *httpGatewayAdapter) ReloadServer(ctx context.Context, name string) error {
	req, _ := h.request(ctx)
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{}).
		Post("/servers/" + url.PathEscape(name) + "/reload")
	if err != nil {
		return fmt.Errorf("reload server request: %w", err)
	}

	return h.settleMutation(resp)
}

// DeleteServer implements [GatewayAdapter].
func (h *httpGatewayAdapter) DeleteServer(ctx context.Context, name string) error {
	req, _ := h.request(ctx)
	resp, err := req.Delete("/servers/" + url.PathEscape(name))
	if err != nil {
		return fmt.Errorf("delete server request: %w", err)
	}

	return h.settleMutation(resp)
}

// settleMutation finishes a state-changing call: transport errors first, then
// the envelope's success flag. An empty body on 2xx counts as success, since
// some gateway builds answer DELETE with 204.
func (h *httpGatewayAdapter) settleMutation(resp *resty.Response) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	body := resp.Body()
	if len(body) == 0 {
		return nil
	}

	var env models.MutationResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if !env.Success {
		return rejectedError(env.Message)
	}

	return nil
}

func rejectedError(message string) error {
	if message == "" {
		return ErrRejected
	}
	return fmt.Errorf("%w: %s", ErrRejected, message)
}
