package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop/internal/config"
	"github.com/MKhiriev/go-shop/internal/handler"
	httphandler "github.com/MKhiriev/go-shop/internal/handler/http"
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/server"
	"github.com/MKhiriev/go-shop/internal/service"
	"github.com/MKhiriev/go-shop/internal/session"
	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/internal/upload"
	"github.com/MKhiriev/go-shop/internal/workers"
	"github.com/MKhiriev/go-shop/models"
	"github.com/redis/go-redis/v9"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// startupTimeout bounds connecting to the database and Redis.
const startupTimeout = 10 * time.Second

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-shop-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-shop-server", cfg.Log.Level)
	if err = run(cfg, buildInfo, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	tlsEnabled, err := server.TLSEnabled(cfg.Server, log)
	if err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	// an unreachable database is fatal under every startup policy
	db, err := store.NewConnectPostgres(startCtx, cfg.Storage.DB, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	var redisClient *redis.Client
	if cfg.Storage.SessionsBackend == config.SessionsBackendRedis {
		redisClient, err = store.NewRedisClient(startCtx, cfg.Storage.Redis, log)
		if err != nil {
			return err
		}
		defer redisClient.Close()
	}

	storages := store.NewStorages(db, redisClient, log)
	uploads := upload.NewHandler(upload.NewOSFS(cfg.Storage.Files.ImagesDir), cfg.Storage.Files.MaxUploadBytes)
	sessions := session.NewManager(storages.SessionStore, session.Options{
		CookieName:   cfg.App.SessionCookieName,
		Secret:       cfg.App.SessionSecret,
		TTL:          cfg.App.SessionTTL,
		CookieMaxAge: cfg.App.SessionCookieMaxAge,
	})

	services, err := service.NewServices(storages, uploads, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	var accessLog *logger.AccessLog
	if cfg.Log.AccessFile != "" {
		accessLog = logger.NewAccessLog(cfg.Log.AccessFile, cfg.Log.AccessMaxSizeMB)
		defer accessLog.Close()
	}

	handlers, err := handler.NewHandlers(services, sessions, uploads, accessLog, httphandler.NewOptions(cfg, tlsEnabled), log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, tlsEnabled, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	var background []workers.Worker
	if storages.SessionSweeper != nil {
		background = append(background, workers.NewSessionSweeper(storages.SessionSweeper, cfg.Workers.SessionSweepInterval, log))
	}

	workersCtx, stopWorkers := context.WithCancel(context.Background())
	bg := workers.NewWorkers(background...)
	bg.Run(workersCtx)
	defer func() {
		stopWorkers()
		bg.Wait()
	}()

	return srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
