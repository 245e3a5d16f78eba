// SPDX-License-Identifier: Apache-2.0

package http

import (
	"time"

	"github.com/mooons/mcphub/internal/logger"
	"github.com/mooons/mcphub/models"
)

// Options controls the mock gateway's behavior knobs.
type Options struct {
	// BareArrays makes list endpoints answer with a bare JSON array instead
	// of the success envelope, imitating legacy gateway builds.
	BareArrays bool

	// Latency is an artificial delay added to every request, useful for
	// exercising the client's startup retry behavior.
	Latency time.Duration

	// Seed is the initial server set. When empty a small default set is
	// registered.
	Seed []models.ServerDetail
}

type Handler struct {
	registry *registry
	opts     Options

	logger *logger.Logger
}

func NewHandler(opts Options, log *logger.Logger) *Handler {
	seed := opts.Seed
	if len(seed) == 0 {
		seed = defaultSeed()
	}

	log.Info().Int("servers", len(seed)).Bool("bare_arrays", opts.BareArrays).Msg("mock gateway handler created")
	return &Handler{
		registry: newRegistry(seed),
		opts:     opts,
		logger:   log,
	}
}

func defaultSeed() []models.ServerDetail {
	now := time.Now().UTC()
	return []models.ServerDetail{
		{
			Server: models.Server{
				Name: "filesystem", Enabled: true, Transport: "stdio",
				Command: "mcp-server-filesystem", Args: []string{"/data"},
				Status: "connected", ToolCount: 11, UpdatedAt: now,
			},
			Tools: []string{"read_file", "write_file", "list_directory"},
		},
		{
			Server: models.Server{
				Name: "github", Enabled: true, Transport: "sse",
				URL:    "http://localhost:9100/sse",
				Status: "connected", ToolCount: 26, UpdatedAt: now,
			},
			Env:   map[string]string{"GITHUB_TOKEN": "xxx"},
			Tools: []string{"create_issue", "search_code"},
		},
		{
			Server: models.Server{
				Name: "postgres", Enabled: false, Transport: "stdio",
				Command: "mcp-server-postgres",
				Status:  "disconnected", ToolCount: 0, UpdatedAt: now,
			},
		},
	}
}
