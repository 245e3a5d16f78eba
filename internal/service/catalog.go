// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mooons/mcphub/internal/adapter"
	"github.com/mooons/mcphub/internal/logger"
	"github.com/mooons/mcphub/internal/validators"
	"github.com/mooons/mcphub/models"
)

type clientCatalogService struct {
	adapter   adapter.GatewayAdapter
	engine    SyncEngine
	validator validators.Validator
	logger    *logger.Logger
}

// NewClientCatalogService constructs the [ClientCatalogService] backed by the
// given gateway adapter. engine receives a TriggerRefresh after every
// successful mutation so the list view reflects the change promptly.
// Add and Update validate the record before any gateway round trip.
func NewClientCatalogService(gatewayAdapter adapter.GatewayAdapter, engine SyncEngine, validator validators.Validator, log *logger.Logger) ClientCatalogService {
	return &clientCatalogService{
		adapter:   gatewayAdapter,
		engine:    engine,
		validator: validator,
		logger:    log,
	}
}

// Add implements [ClientCatalogService].
func (s *clientCatalogService) Add(ctx context.Context, srv models.ServerDetail) error {
	if err := s.validator.Validate(ctx, srv); err != nil {
		return s.rejectInvalid("add", srv.Name, err)
	}

	if err := s.adapter.CreateServer(ctx, srv); err != nil {
		return s.fail("add", srv.Name, err)
	}

	s.engine.TriggerRefresh()
	return nil
}

// Edit implements [ClientCatalogService]. Unlike the other wrappers it does
// not mutate anything, so no refresh is triggered; failures are still
// surfaced in the sink because the edit form cannot open without the detail.
func (s *clientCatalogService) Edit(ctx context.Context, name string) (models.ServerDetail, error) {
	detail, err := s.adapter.GetServer(ctx, name)
	if err != nil {
		return models.ServerDetail{}, s.fail("edit", name, err)
	}

	return detail, nil
}

// Update implements [ClientCatalogService].
func (s *clientCatalogService) Update(ctx context.Context, name string, srv models.ServerDetail) error {
	if err := s.validator.Validate(ctx, srv); err != nil {
		return s.rejectInvalid("update", name, err)
	}

	if err := s.adapter.UpdateServer(ctx, name, srv); err != nil {
		return s.fail("update", name, err)
	}

	s.engine.TriggerRefresh()
	return nil
}

// Remove implements [ClientCatalogService].
func (s *clientCatalogService) Remove(ctx context.Context, name string) error {
	if err := s.adapter.DeleteServer(ctx, name); err != nil {
		return s.fail("remove", name, err)
	}

	s.engine.TriggerRefresh()
	return nil
}

// Toggle implements [ClientCatalogService].
func (s *clientCatalogService) Toggle(ctx context.Context, name string, enabled bool) error {
	if err := s.adapter.ToggleServer(ctx, name, enabled); err != nil {
		return s.fail("toggle", name, err)
	}

	s.engine.TriggerRefresh()
	return nil
}

// Reload implements [ClientCatalogService].
func (s *clientCatalogService) Reload(ctx context.Context, name string) error {
	if err := s.adapter.ReloadServer(ctx, name); err != nil {
		return s.fail("reload", name, err)
	}

	s.engine.TriggerRefresh()
	return nil
}

// fail wraps a mutation error into the [ErrMutationFailed] taxonomy, records
// it in the engine sink, and logs the underlying cause. The returned error
// carries the gateway-provided message when the gateway rejected the request
// explicitly, otherwise a generic operation label.
func (s *clientCatalogService) fail(op, name string, err error) error {
	wrapped := mutationError(op, err)

	s.logger.Warn().
		Err(err).
		Str("operation", op).
		Str("server", name).
		Msg("server mutation failed")

	s.engine.RecordError(wrapped)
	return wrapped
}

// rejectInvalid surfaces a client-side validation failure in the sink. The
// gateway is never contacted; the validation message is preserved verbatim.
func (s *clientCatalogService) rejectInvalid(op, name string, err error) error {
	wrapped := fmt.Errorf("%w: %v", ErrMutationFailed, err)

	s.logger.Warn().
		Err(err).
		Str("operation", op).
		Str("server", name).
		Msg("server record failed validation")

	s.engine.RecordError(wrapped)
	return wrapped
}

func mutationError(op string, err error) error {
	if msg := gatewayMessage(err); msg != "" {
		return fmt.Errorf("%w: %s", ErrMutationFailed, msg)
	}
	return fmt.Errorf("%w: %s operation failed", ErrMutationFailed, op)
}

// gatewayMessage extracts the message a rejected-request error carries after
// the sentinel prefix, e.g. "gateway rejected request: server is busy".
func gatewayMessage(err error) string {
	if !errors.Is(err, adapter.ErrRejected) {
		return ""
	}

	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return ""
}
