package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/factsphere/internal/domain"
)

// factStore is the store contract the instrumentation decorates.
type factStore interface {
	FetchFacts(ctx context.Context, filter domain.FactFilter) ([]domain.Fact, error)
	InsertFact(ctx context.Context, nf domain.NewFact) (*domain.Fact, error)
	UpdateVote(ctx context.Context, id domain.FactID, kind domain.VoteKind, value int) (*domain.Fact, error)
}

// Store records a span and the store metrics for every call to next.
type Store struct {
	next    factStore
	metrics *Collector
	tracer  trace.Tracer
}

// InstrumentStore wraps next. A nil collector disables metrics.
func InstrumentStore(next factStore, metrics *Collector, tracer trace.Tracer) *Store {
	return &Store{next: next, metrics: metrics, tracer: tracer}
}

func (s *Store) FetchFacts(ctx context.Context, filter domain.FactFilter) ([]domain.Fact, error) {
	ctx, span := s.tracer.Start(ctx, "store.FetchFacts", trace.WithAttributes(
		attribute.String("fact.category", filter.Label()),
		attribute.Int("fact.limit", filter.NormalizedLimit()),
	))
	defer span.End()

	start := time.Now()
	facts, err := s.next.FetchFacts(ctx, filter)
	s.finish(span, "fetch_facts", err, start)
	if err == nil {
		span.SetAttributes(attribute.Int("fact.count", len(facts)))
	}
	return facts, err
}

func (s *Store) InsertFact(ctx context.Context, nf domain.NewFact) (*domain.Fact, error) {
	ctx, span := s.tracer.Start(ctx, "store.InsertFact", trace.WithAttributes(
		attribute.String("fact.category", string(nf.Category)),
	))
	defer span.End()

	start := time.Now()
	f, err := s.next.InsertFact(ctx, nf)
	s.finish(span, "insert_fact", err, start)
	if err == nil {
		span.SetAttributes(attribute.Int64("fact.id", int64(f.ID)))
	}
	return f, err
}

func (s *Store) UpdateVote(ctx context.Context, id domain.FactID, kind domain.VoteKind, value int) (*domain.Fact, error) {
	ctx, span := s.tracer.Start(ctx, "store.UpdateVote", trace.WithAttributes(
		attribute.Int64("fact.id", int64(id)),
		attribute.String("vote.kind", string(kind)),
		attribute.Int("vote.value", value),
	))
	defer span.End()

	start := time.Now()
	f, err := s.next.UpdateVote(ctx, id, kind, value)
	s.finish(span, "update_vote", err, start)
	return f, err
}

func (s *Store) finish(span trace.Span, op string, err error, start time.Time) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.metrics != nil {
		s.metrics.ObserveStore(op, err, time.Since(start))
	}
}
