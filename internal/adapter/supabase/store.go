// Package supabase implements the facts store on a hosted Supabase project
// through its PostgREST endpoint.
package supabase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"github.com/heartmarshall/factsphere/internal/config"
	"github.com/heartmarshall/factsphere/internal/domain"
)

// Store reads and writes the facts table over PostgREST.
type Store struct {
	client *supabase.Client
	table  string
	log    *slog.Logger
}

// New creates a Supabase client from cfg.
func New(cfg config.SupabaseConfig, logger *slog.Logger) (*Store, error) {
	if cfg.URL == "" || cfg.Key == "" {
		return nil, errors.New("supabase: url and key are required")
	}
	client, err := supabase.NewClient(cfg.URL, cfg.Key, nil)
	if err != nil {
		return nil, fmt.Errorf("supabase: create client: %w", err)
	}
	table := cfg.Table
	if table == "" {
		table = "facts"
	}
	return &Store{
		client: client,
		table:  table,
		log:    logger.With("adapter", "supabase"),
	}, nil
}

// FetchFacts returns facts ordered by votesInteresting descending.
// The PostgREST client has no context support; ctx is checked before the call.
func (s *Store) FetchFacts(ctx context.Context, filter domain.FactFilter) ([]domain.Fact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := s.client.From(s.table).Select("*", "", false)
	if filter.Category != nil {
		q = q.Eq("category", string(*filter.Category))
	}
	q = q.Order(string(domain.VoteInteresting), &postgrest.OrderOpts{Ascending: false}).
		Limit(filter.NormalizedLimit(), "")

	facts := make([]domain.Fact, 0)
	if _, err := q.ExecuteTo(&facts); err != nil {
		return nil, mapError(err, "fetch facts")
	}

	s.log.DebugContext(ctx, "facts fetched", slog.String("category", filter.Label()), slog.Int("count", len(facts)))
	return facts, nil
}

// InsertFact stores a new fact and returns the row PostgREST echoes back.
func (s *Store) InsertFact(ctx context.Context, nf domain.NewFact) (*domain.Fact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []domain.Fact
	_, err := s.client.From(s.table).
		Insert(nf, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, mapError(err, "insert fact")
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert fact: empty representation")
	}
	return &rows[0], nil
}

// UpdateVote sets one counter of fact id to value.
// Returns domain.ErrNotFound when no row matched.
func (s *Store) UpdateVote(ctx context.Context, id domain.FactID, kind domain.VoteKind, value int) (*domain.Fact, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", fmt.Sprintf("unknown vote kind %q", kind))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	op := fmt.Sprintf("fact %d", id)
	var rows []domain.Fact
	_, err := s.client.From(s.table).
		Update(map[string]int{string(kind): value}, "representation", "").
		Eq("id", strconv.FormatInt(int64(id), 10)).
		ExecuteTo(&rows)
	if err != nil {
		return nil, mapError(err, op)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return &rows[0], nil
}

// mapError maps transport failures to ErrUnavailable and PostgREST error
// codes (reported as "(code) message") to domain errors.
func mapError(err error, op string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "23514"), strings.Contains(msg, "22P02"):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrValidation, err)
	case strings.Contains(msg, "23505"):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrAlreadyExists, err)
	case strings.Contains(msg, "PGRST116"):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
