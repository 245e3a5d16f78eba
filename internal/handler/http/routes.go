// SPDX-License-Identifier: Apache-2.0

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withLatency)

	router.Get("/health", h.health)

	router.Route("/servers", func(r chi.Router) {
		r.Get("/", h.listServers)
		r.Post("/", h.createServer)

		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", h.getServer)
			r.Put("/", h.updateServer)
			r.Delete("/", h.deleteServer)
			r.Post("/toggle", h.toggleServer)
			r.Post("/reload", h.reloadServer)
		})
	})

	return router
}
