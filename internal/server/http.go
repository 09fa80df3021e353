package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-shop/internal/config"
	"github.com/MKhiriev/go-shop/internal/logger"
)

type httpServer struct {
	server *http.Server

	tls      bool
	certFile string
	keyFile  string

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, tls bool, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.Address(),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       2 * time.Minute,
		},
		tls:      tls,
		certFile: cfg.TLSCertFile,
		keyFile:  cfg.TLSKeyFile,
		logger:   logger,
	}
}

// RunServer blocks until the server is shut down or fails to listen.
func (h *httpServer) RunServer() error {
	var err error
	if h.tls {
		h.logger.Info().Str("address", h.server.Addr).Msg("serving HTTPS")
		err = h.server.ListenAndServeTLS(h.certFile, h.keyFile)
	} else {
		h.logger.Info().Str("address", h.server.Addr).Msg("serving HTTP")
		err = h.server.ListenAndServe()
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}
