package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-care-tracker/internal/adapters/storage/backend"
	"pet-care-tracker/internal/domain/tracker"
	"pet-care-tracker/internal/platform/config"
	"pet-care-tracker/internal/platform/logger"
	"pet-care-tracker/internal/platform/metrics"
	"pet-care-tracker/internal/router"

	"go.uber.org/zap"
)

// @title Pet Care Tracker API
// @version 1.0
// @description API del tracker de cuidados de mascotas: vacunas, peso, salud y comidas de la mascota actual.
// @BasePath /
func main() {
	log := logger.Must(logger.NewFromEnv())
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}
	log = logger.Must(logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeKV, err := backend.Open(ctx, backend.FromConfig(cfg))
	if err != nil {
		log.Fatal("storage backend unavailable", zap.String("backend", cfg.StorageBackend), zap.Error(err))
	}
	defer func() {
		if err := closeKV(); err != nil {
			log.Warn("closing storage", zap.Error(err))
		}
	}()

	m := metrics.New()
	store := tracker.NewStore(
		tracker.WithLogger(log.Named("store")),
		tracker.WithMetrics(m),
		tracker.WithPersister(kv),
		tracker.WithLocation(cfg.Location()),
	)
	store.Hydrate(ctx)

	r := router.NewRouter(router.Options{Store: store, Logger: log.Named("http"), Metrics: m})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server",
		zap.String("addr", cfg.Addr()),
		zap.String("backend", cfg.StorageBackend),
		zap.String("timezone", cfg.Location().String()),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server error", zap.Error(err))
	}
	log.Info("server stopped")
}
