package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/factsphere/internal/config"
	"github.com/heartmarshall/factsphere/internal/telemetry"
)

// Run is the server entry point. It loads configuration, initializes the
// logger and tracing, and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return Serve(ctx, cfg, NewLogger(cfg.Log))
}

// Serve runs the HTTP facade with an already loaded configuration.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("backend", cfg.Store.Backend),
		slog.String("log_level", cfg.Log.Level),
	)

	shutdownTracing, err := telemetry.SetupTracing(ctx, cfg.Telemetry, Version)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("shutdown tracing", slog.String("error", err.Error()))
		}
	}()

	srv, err := NewServer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return srv.ListenAndServe(ctx)
}
