package handler

import (
	"fmt"

	"github.com/MKhiriev/go-shop/internal/handler/http"
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/service"
	"github.com/MKhiriev/go-shop/internal/session"
	"github.com/MKhiriev/go-shop/internal/upload"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(
	services *service.Services,
	sessions *session.Manager,
	uploads *upload.Handler,
	accessLog *logger.AccessLog,
	opts http.Options,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}

	httpHandler, err := http.NewHandler(services, sessions, uploads, accessLog, opts, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating HTTP handler: %w", err)
	}

	return &Handlers{HTTP: httpHandler}, nil
}
