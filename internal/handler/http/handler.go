package http

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop/internal/config"
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/service"
	"github.com/MKhiriev/go-shop/internal/session"
	"github.com/MKhiriev/go-shop/internal/upload"
	"github.com/MKhiriev/go-shop/internal/utils"
)

// Options holds the transport settings of [Handler].
type Options struct {
	// CSRFKey is the 32-byte key used to authenticate CSRF tokens.
	CSRFKey []byte

	// SecureCookies marks the CSRF cookie Secure. Session cookies follow
	// the connection instead.
	SecureCookies bool

	// IdentityTimeout bounds the user lookup made for every request.
	IdentityTimeout time.Duration

	// StaticDir is served under /static.
	StaticDir string

	// ImagesDir is served under /images.
	ImagesDir string

	// LoginRateLimit and LoginRateBurst limit login and signup submissions
	// per client address.
	LoginRateLimit float64
	LoginRateBurst int
}

// NewOptions builds [Options] from the application configuration. tls
// reports whether the server terminates TLS.
func NewOptions(cfg *config.StructuredConfig, tls bool) Options {
	return Options{
		CSRFKey:         []byte(cfg.App.CSRFKey),
		SecureCookies:   tls,
		IdentityTimeout: cfg.App.IdentityTimeout,
		StaticDir:       cfg.Server.StaticDir,
		ImagesDir:       cfg.Storage.Files.ImagesDir,
		LoginRateLimit:  cfg.App.LoginRateLimit,
		LoginRateBurst:  cfg.App.LoginRateBurst,
	}
}

type Handler struct {
	services  *service.Services
	sessions  *session.Manager
	uploads   *upload.Handler
	accessLog *logger.AccessLog

	views    *renderer
	limiter  *rateLimiter
	metrics  *httpMetrics
	traceIDs *utils.UUIDGenerator
	opts     Options

	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	sessions *session.Manager,
	uploads *upload.Handler,
	accessLog *logger.AccessLog,
	opts Options,
	logger *logger.Logger,
) (*Handler, error) {
	views, err := newRenderer()
	if err != nil {
		return nil, fmt.Errorf("error parsing view templates: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		sessions:  sessions,
		uploads:   uploads,
		accessLog: accessLog,
		views:     views,
		limiter:   newRateLimiter(opts.LoginRateLimit, opts.LoginRateBurst),
		metrics:   newHTTPMetrics(),
		traceIDs:  utils.NewUUIDGenerator(),
		opts:      opts,
		logger:    logger,
	}, nil
}
