// Package cache wraps a facts store with a short-lived in-memory read cache.
package cache

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/heartmarshall/factsphere/internal/domain"
)

// factStore is the store contract the cache decorates.
type factStore interface {
	FetchFacts(ctx context.Context, filter domain.FactFilter) ([]domain.Fact, error)
	InsertFact(ctx context.Context, nf domain.NewFact) (*domain.Fact, error)
	UpdateVote(ctx context.Context, id domain.FactID, kind domain.VoteKind, value int) (*domain.Fact, error)
}

// Store caches FetchFacts results per filter. Any successful write flushes
// every entry, so a read after a write always reaches the backing store.
// A fetch that overlaps a write returns its result but does not cache it.
type Store struct {
	next  factStore
	cache *gocache.Cache
	log   *slog.Logger

	mu  sync.Mutex
	gen uint64 // bumped by every successful write
}

// New creates a caching Store in front of next.
func New(next factStore, ttl, cleanupInterval time.Duration, logger *slog.Logger) *Store {
	return &Store{
		next:  next,
		cache: gocache.New(ttl, cleanupInterval),
		log:   logger.With("adapter", "cache"),
	}
}

func key(filter domain.FactFilter) string {
	return filter.Label() + "|" + strconv.Itoa(filter.NormalizedLimit())
}

// FetchFacts returns a cached copy when present.
func (s *Store) FetchFacts(ctx context.Context, filter domain.FactFilter) ([]domain.Fact, error) {
	k := key(filter)
	if v, found := s.cache.Get(k); found {
		s.log.DebugContext(ctx, "cache hit", slog.String("key", k))
		return clone(v.([]domain.Fact)), nil
	}

	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	facts, err := s.next.FetchFacts(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		s.log.DebugContext(ctx, "skip cache fill after concurrent write", slog.String("key", k))
		return facts, nil
	}
	s.cache.SetDefault(k, clone(facts))
	return facts, nil
}

// InsertFact delegates and flushes the cache on success.
func (s *Store) InsertFact(ctx context.Context, nf domain.NewFact) (*domain.Fact, error) {
	f, err := s.next.InsertFact(ctx, nf)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return f, nil
}

// UpdateVote delegates and flushes the cache on success.
func (s *Store) UpdateVote(ctx context.Context, id domain.FactID, kind domain.VoteKind, value int) (*domain.Fact, error) {
	f, err := s.next.UpdateVote(ctx, id, kind, value)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return f, nil
}

func (s *Store) invalidate() {
	s.mu.Lock()
	s.gen++
	s.cache.Flush()
	s.mu.Unlock()
}

// Len returns the number of cached filters.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}

func clone(facts []domain.Fact) []domain.Fact {
	out := make([]domain.Fact, len(facts))
	copy(out, facts)
	return out
}
