package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-api-gateway/internal/config"
	"github.com/MKhiriev/go-api-gateway/internal/handler"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
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

	return s.run(ctx, s.httpServer.RunServer)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run starts serve in the background and returns once ctx is done and the
// server has drained. A server that stops on its own is reported as an
// error.
func (s *server) run(ctx context.Context, serve func() error) error {
	stopped := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		stopped <- serve()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		if err := <-stopped; err != nil {
			return err
		}
		s.logger.Info().Msg("server Shutdown gracefully")
		return nil
	case err := <-stopped:
		if err == nil {
			err = errServerStopped
		}
		return err
	}
}
