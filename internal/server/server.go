package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-shop/internal/config"
	"github.com/MKhiriev/go-shop/internal/handler"
	"github.com/MKhiriev/go-shop/internal/logger"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration

	// notifyStop returns a context that is cancelled when the server must stop.
	notifyStop func(parent context.Context) (context.Context, context.CancelFunc)

	logger *logger.Logger
}

// NewServer creates the server for handlers. tls is the outcome of
// [TLSEnabled].
func NewServer(handlers *handler.Handlers, cfg config.Server, tls bool, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHandlerIsCreated
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, tls, logger),
		shutdownTimeout: cfg.ShutdownTimeout,
		notifyStop:      notifyOnSignal,
		logger:          logger,
	}, nil
}

func notifyOnSignal(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
}

func (s *server) RunServer() error {
	ctx, stop := s.notifyStop(context.Background())
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("error running HTTP server: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	}

	if err := s.Shutdown(); err != nil {
		return err
	}
	if err := <-serveErr; err != nil {
		return fmt.Errorf("error running HTTP server: %w", err)
	}

	s.logger.Info().Msg("server shut down gracefully")
	return nil
}

func (s *server) Shutdown() error {
	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down HTTP server: %w", err)
	}
	return nil
}
