package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/mooons/mcphub/internal/logger"
)

// Config holds the transport settings of the mock gateway server.
type Config struct {
	// Address is the listen address, e.g. ":3000".
	Address string
}

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(router http.Handler, cfg Config, logger *logger.Logger) (Server, error) {
	if cfg.Address == "" {
		return nil, errNoListenAddress
	}

	logger.Info().Str("address", cfg.Address).Msg("creating mock gateway server...")
	return &server{
		httpServer: newHTTPServer(router, cfg.Address, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v \n", err)
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
