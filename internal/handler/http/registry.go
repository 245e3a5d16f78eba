// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/mooons/mcphub/models"
)

var (
	errServerNotFound = errors.New("server not found")
	errServerExists   = errors.New("server already exists")
	errServerDisabled = errors.New("server is disabled")
)

// registry is the in-memory server set behind the mock gateway. Listing is
// ordered by name so pagination is stable across requests.
type registry struct {
	mu      sync.RWMutex
	servers map[string]models.ServerDetail
}

func newRegistry(seed []models.ServerDetail) *registry {
	r := &registry{servers: make(map[string]models.ServerDetail, len(seed))}
	for _, srv := range seed {
		r.servers[srv.Name] = srv
	}
	return r
}

// all returns every server ordered by name.
func (r *registry) all() []models.Server {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Server, 0, len(r.servers))
	for _, srv := range r.servers {
		out = append(out, srv.Server)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// page returns one page of the server list plus pagination metadata.
// A page beyond the end yields an empty slice, not an error.
func (r *registry) page(page, limit int) ([]models.Server, models.PaginationInfo) {
	full := r.all()
	info := models.NewPaginationInfo(page, limit, len(full))

	start := (info.Page - 1) * limit
	if start >= len(full) {
		return []models.Server{}, info
	}

	end := start + limit
	if end > len(full) {
		end = len(full)
	}
	return full[start:end], info
}

func (r *registry) get(name string) (models.ServerDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	srv, ok := r.servers[name]
	if !ok {
		return models.ServerDetail{}, errServerNotFound
	}
	return srv, nil
}

func (r *registry) create(srv models.ServerDetail) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.servers[srv.Name]; ok {
		return errServerExists
	}

	srv.UpdatedAt = time.Now().UTC()
	if srv.Status == "" {
		srv.Status = "connecting"
	}
	r.servers[srv.Name] = srv
	return nil
}

func (r *registry) update(name string, srv models.ServerDetail) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.servers[name]; !ok {
		return errServerNotFound
	}

	srv.Name = name
	srv.UpdatedAt = time.Now().UTC()
	r.servers[name] = srv
	return nil
}

func (r *registry) toggle(name string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	srv, ok := r.servers[name]
	if !ok {
		return errServerNotFound
	}

	srv.Enabled = enabled
	if enabled {
		srv.Status = "connecting"
	} else {
		srv.Status = "disconnected"
	}
	srv.UpdatedAt = time.Now().UTC()
	r.servers[name] = srv
	return nil
}

// reload restarts the named server process. Disabled servers cannot be
// reloaded; the gateway answers with an explicit rejection instead.
func (r *registry) reload(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	srv, ok := r.servers[name]
	if !ok {
		return errServerNotFound
	}
	if !srv.Enabled {
		return errServerDisabled
	}

	srv.Status = "connected"
	srv.LastError = ""
	srv.UpdatedAt = time.Now().UTC()
	r.servers[name] = srv
	return nil
}

func (r *registry) remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.servers[name]; !ok {
		return errServerNotFound
	}
	delete(r.servers, name)
	return nil
}
