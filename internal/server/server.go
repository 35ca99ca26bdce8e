package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/project-elevate/internal/config"
	"github.com/MKhiriev/project-elevate/internal/handler"
	"github.com/MKhiriev/project-elevate/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is cancelled or the listener fails.
func (s *server) run(ctx context.Context) error {
	errCh := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		errCh <- s.httpServer.RunServer()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return <-errCh
}
