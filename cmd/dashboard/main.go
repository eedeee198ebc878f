package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalogcmp/internal/api"
	"catalogcmp/internal/app"
	"catalogcmp/internal/config"
	"catalogcmp/internal/insight"
	"catalogcmp/internal/observability"
)

func main() {
	cfg := config.Load()
	log := observability.NewLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "catalog-dashboard",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	observability.Start(cfg.MetricsPort)

	data, err := app.LoadDataset(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load catalogs")
	}

	reportCache, closeCache := app.OpenCache(ctx, cfg, log)
	defer closeCache()

	srv := &api.Server{
		Data:     data,
		Cache:    reportCache,
		CacheTTL: cfg.CacheTTL,
		Narrator: insight.New(cfg.OpenAIKey, cfg.OpenAIModel, log),
		Log:      log,
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           srv.Router(60 * time.Second),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", httpServer.Addr).Str("metrics_port", cfg.MetricsPort).Msg("dashboard API listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
