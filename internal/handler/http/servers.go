// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mooons/mcphub/internal/logger"
	"github.com/mooons/mcphub/models"
)

const defaultPageLimit = 10

// listServers answers GET /servers. With page/limit query parameters it
// returns one page plus pagination metadata; without them it returns the
// full set. In bare-array mode the payload is the raw JSON array without
// the envelope.
func (h *Handler) listServers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("page") == "" && q.Get("limit") == "" {
		all := h.registry.all()
		if h.opts.BareArrays {
			writeJSON(w, r, http.StatusOK, all)
			return
		}
		writeSuccess(w, r, http.StatusOK, all, nil)
		return
	}

	page := queryInt(q.Get("page"), 1)
	limit := queryInt(q.Get("limit"), defaultPageLimit)
	if limit < 1 {
		limit = defaultPageLimit
	}

	servers, pagination := h.registry.page(page, limit)
	if h.opts.BareArrays {
		writeJSON(w, r, http.StatusOK, servers)
		return
	}
	writeSuccess(w, r, http.StatusOK, servers, &pagination)
}

func (h *Handler) getServer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	detail, err := h.registry.get(name)
	if err != nil {
		writeError(w, r, http.StatusNotFound, "server not found")
		return
	}

	writeSuccess(w, r, http.StatusOK, detail, nil)
}

func (h *Handler) createServer(w http.ResponseWriter, r *http.Request) {
	var srv models.ServerDetail
	if err := json.NewDecoder(r.Body).Decode(&srv); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid create payload")
		writeError(w, r, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if srv.Name == "" {
		writeError(w, r, http.StatusBadRequest, "server name is required")
		return
	}

	if err := h.registry.create(srv); err != nil {
		if errors.Is(err, errServerExists) {
			writeError(w, r, http.StatusConflict, "server already exists")
			return
		}
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	writeSuccess(w, r, http.StatusCreated, srv, nil)
}

func (h *Handler) updateServer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var srv models.ServerDetail
	if err := json.NewDecoder(r.Body).Decode(&srv); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid update payload")
		writeError(w, r, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := h.registry.update(name, srv); err != nil {
		writeError(w, r, http.StatusNotFound, "server not found")
		return
	}

	writeSuccess(w, r, http.StatusOK, nil, nil)
}

func (h *Handler) toggleServer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid toggle payload")
		writeError(w, r, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := h.registry.toggle(name, body.Enabled); err != nil {
		writeError(w, r, http.StatusNotFound, "server not found")
		return
	}

	writeSuccess(w, r, http.StatusOK, nil, nil)
}

func (h *Handler) reloadServer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	err := h.registry.reload(name)
	switch {
	case errors.Is(err, errServerNotFound):
		writeError(w, r, http.StatusNotFound, "server not found")
	case errors.Is(err, errServerDisabled):
		// understood but refused: the client surfaces this message verbatim
		writeRejected(w, r, "server is disabled")
	case err != nil:
		writeError(w, r, http.StatusInternalServerError, err.Error())
	default:
		writeSuccess(w, r, http.StatusOK, nil, nil)
	}
}

func (h *Handler) deleteServer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.registry.remove(name); err != nil {
		writeError(w, r, http.StatusNotFound, "server not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, r, http.StatusOK, map[string]string{"status": "ok"}, nil)
}

func queryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
