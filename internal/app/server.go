package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/factsphere/internal/config"
	"github.com/heartmarshall/factsphere/internal/service/fact"
	"github.com/heartmarshall/factsphere/internal/telemetry"
	"github.com/heartmarshall/factsphere/internal/transport/middleware"
	"github.com/heartmarshall/factsphere/internal/transport/rest"
)

// Server is the HTTP facade over the configured store.
type Server struct {
	cfg     *config.Config
	log     *slog.Logger
	backend *Backend
	limiter *middleware.RateLimiter
	http    *http.Server
}

// NewServer opens the store and builds the HTTP handler.
func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Server, error) {
	var metrics *telemetry.Collector
	if cfg.Telemetry.MetricsEnabled {
		metrics = telemetry.NewCollector()
	}

	backend, err := OpenBackend(ctx, cfg, BackendOptions{Metrics: metrics, Cache: true}, logger)
	if err != nil {
		return nil, err
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	deps := rest.RouterDeps{
		Facts:     rest.NewFactHandler(fact.NewService(logger, backend.Facts), logger),
		Health:    rest.NewHealthHandler(backend, backend.Name, BuildVersion()),
		Limiter:   limiter,
		RateLimit: cfg.RateLimit,
		CORS:      cfg.CORS,
		Logger:    logger,
	}
	if metrics != nil {
		deps.Metrics = metrics.Handler()
		deps.Observer = metrics
	}

	return &Server{
		cfg:     cfg,
		log:     logger,
		backend: backend,
		limiter: limiter,
		http: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      rest.NewRouter(deps),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}, nil
}

// Handler exposes the router.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Serve listens on ln until ctx is canceled, then shuts down gracefully and
// closes the store.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer func() {
		s.limiter.Stop()
		if err := s.backend.Close(); err != nil {
			s.log.Error("close store", slog.String("error", err.Error()))
		}
	}()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()

		s.log.Info("shutting down http server")
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// ListenAndServe binds the configured address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		s.limiter.Stop()
		_ = s.backend.Close()
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}
	return s.Serve(ctx, ln)
}
