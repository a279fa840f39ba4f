package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/factsphere/internal/app"
	"github.com/heartmarshall/factsphere/internal/client/render"
	"github.com/heartmarshall/factsphere/internal/config"
	"github.com/heartmarshall/factsphere/internal/telemetry"
)

// session is the per-invocation wiring shared by the client commands: one
// store, one logger, one renderer.
type session struct {
	cfg     *config.Config
	log     *slog.Logger
	backend *app.Backend
	metrics *telemetry.Collector
	render  *render.Renderer
	out     *OutputFormatter
}

func loadConfig(opts *RootOptions) (*config.Config, error) {
	cfg, err := config.LoadFrom(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load config", err)
	}
	return cfg, nil
}

// clientLogger keeps interactive output quiet unless --verbose is set.
func clientLogger(cfg *config.Config, opts *RootOptions) *slog.Logger {
	logCfg := cfg.Log
	logCfg.Format = "text"
	logCfg.Level = "warn"
	if opts.Verbose {
		logCfg.Level = "debug"
	}
	return app.NewLogger(logCfg)
}

func openSession(ctx context.Context, cmd *cobra.Command, opts *RootOptions) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	logger := clientLogger(cfg, opts)
	metrics := telemetry.NewCollector()

	backend, err := app.OpenBackend(ctx, cfg, app.BackendOptions{Metrics: metrics}, logger)
	if err != nil {
		return nil, WrapExitError(ExitFailure, "open store", err)
	}

	return &session{
		cfg:     cfg,
		log:     logger,
		backend: backend,
		metrics: metrics,
		render:  render.New(!opts.NoColor),
		out:     &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()},
	}, nil
}

func (s *session) Close() {
	if err := s.backend.Close(); err != nil {
		s.log.Warn("close store", slog.String("error", err.Error()))
	}
}

func (s *session) writer() io.Writer {
	return s.out.Writer
}
