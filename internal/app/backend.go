package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/factsphere/internal/adapter/cache"
	"github.com/heartmarshall/factsphere/internal/adapter/factapi"
	"github.com/heartmarshall/factsphere/internal/adapter/postgres"
	pgfact "github.com/heartmarshall/factsphere/internal/adapter/postgres/fact"
	"github.com/heartmarshall/factsphere/internal/adapter/sqlite"
	"github.com/heartmarshall/factsphere/internal/adapter/supabase"
	"github.com/heartmarshall/factsphere/internal/config"
	"github.com/heartmarshall/factsphere/internal/domain"
	"github.com/heartmarshall/factsphere/internal/telemetry"
)

// FactStore is the store contract every backend implements.
type FactStore interface {
	FetchFacts(ctx context.Context, filter domain.FactFilter) ([]domain.Fact, error)
	InsertFact(ctx context.Context, nf domain.NewFact) (*domain.Fact, error)
	UpdateVote(ctx context.Context, id domain.FactID, kind domain.VoteKind, value int) (*domain.Fact, error)
}

// BackendOptions selects the decorators wrapped around the raw store.
type BackendOptions struct {
	Metrics *telemetry.Collector // nil disables store metrics; spans are always recorded
	Cache   bool
}

// Backend is an opened store plus its lifecycle hooks.
type Backend struct {
	Name  string
	Facts FactStore

	ping   func(ctx context.Context) error
	closer func() error
}

// Ping checks the store is reachable.
func (b *Backend) Ping(ctx context.Context) error {
	return b.ping(ctx)
}

// Close releases the store.
func (b *Backend) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer()
}

// OpenBackend connects to the configured store and wraps it with the fetch
// limit, instrumentation and optional cache.
func OpenBackend(ctx context.Context, cfg *config.Config, opts BackendOptions, logger *slog.Logger) (*Backend, error) {
	b, err := openRaw(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var facts FactStore = limitStore{next: b.Facts, limit: cfg.Store.FetchLimit}
	facts = telemetry.InstrumentStore(facts, opts.Metrics, telemetry.Tracer())
	if opts.Cache && cfg.Cache.Enabled {
		facts = cache.New(facts, cfg.Cache.TTL, cfg.Cache.CleanupInterval, logger)
	}
	b.Facts = facts

	logger.Info("store opened", slog.String("backend", b.Name))
	return b, nil
}

func openRaw(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if cfg.Database.AutoMigrate {
			if err := migratePostgres(ctx, cfg.Database.DSN, MigrateUp, logger); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return &Backend{
			Name:  config.BackendPostgres,
			Facts: pgfact.New(pool),
			ping:  pool.Ping,
			closer: func() error {
				pool.Close()
				return nil
			},
		}, nil

	case config.BackendSupabase:
		store, err := supabase.New(cfg.Supabase, logger)
		if err != nil {
			return nil, fmt.Errorf("supabase client: %w", err)
		}
		return &Backend{Name: config.BackendSupabase, Facts: store, ping: fetchPing(store)}, nil

	case config.BackendSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return &Backend{Name: config.BackendSQLite, Facts: store, ping: store.Ping, closer: store.Close}, nil

	case config.BackendAPI:
		client := factapi.New(cfg.API, logger)
		return &Backend{Name: config.BackendAPI, Facts: client, ping: client.Ping}, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

// fetchPing checks stores without a health endpoint with a one-row fetch.
func fetchPing(s FactStore) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		_, err := s.FetchFacts(ctx, domain.FactFilter{Limit: 1})
		return err
	}
}

// limitStore caps every fetch at the configured limit.
type limitStore struct {
	next  FactStore
	limit int
}

func (s limitStore) FetchFacts(ctx context.Context, filter domain.FactFilter) ([]domain.Fact, error) {
	if s.limit > 0 && (filter.Limit <= 0 || filter.Limit > s.limit) {
		filter.Limit = s.limit
	}
	return s.next.FetchFacts(ctx, filter)
}

func (s limitStore) InsertFact(ctx context.Context, nf domain.NewFact) (*domain.Fact, error) {
	return s.next.InsertFact(ctx, nf)
}

func (s limitStore) UpdateVote(ctx context.Context, id domain.FactID, kind domain.VoteKind, value int) (*domain.Fact, error) {
	return s.next.UpdateVote(ctx, id, kind, value)
}
