package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/factsphere/internal/config"
	"github.com/heartmarshall/factsphere/internal/transport/middleware"
)

// RouterDeps are the handlers and cross-cutting pieces the router mounts.
// Metrics and Observer are optional.
type RouterDeps struct {
	Facts     *FactHandler
	Health    *HealthHandler
	Limiter   *middleware.RateLimiter
	RateLimit config.RateLimitConfig
	CORS      config.CORSConfig
	Metrics   http.Handler
	Observer  middleware.HTTPObserver
	Logger    *slog.Logger
}

// NewRouter builds the HTTP handler: health checks at the root, the facts API under
// /api/v1 behind the per-IP rate limiter.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	var metrics middleware.Middleware
	if d.Observer != nil {
		metrics = middleware.Metrics(d.Observer)
	}
	r.Use(middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		metrics,
		middleware.CORS(d.CORS),
	))

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		if d.Limiter != nil {
			r.Use(d.Limiter.Limit(d.RateLimit.RequestsPerMinute, d.RateLimit.Burst))
		}
		r.Get("/categories", d.Facts.Categories)
		r.Route("/facts", func(r chi.Router) {
			r.Get("/", d.Facts.List)
			r.Post("/", d.Facts.Create)
			r.Patch("/{id}/votes", d.Facts.Vote)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
