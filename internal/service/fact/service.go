package fact

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/factsphere/internal/domain"
)

type factStore interface {
	FetchFacts(ctx context.Context, filter domain.FactFilter) ([]domain.Fact, error)
	InsertFact(ctx context.Context, nf domain.NewFact) (*domain.Fact, error)
	UpdateVote(ctx context.Context, id domain.FactID, kind domain.VoteKind, value int) (*domain.Fact, error)
}

// Service exposes the facts store to the REST layer. It re-validates every
// input because requests come from untrusted clients.
type Service struct {
	facts factStore
	log   *slog.Logger
}

// NewService creates a new Fact service.
func NewService(
	log *slog.Logger,
	facts factStore,
) *Service {
	return &Service{
		facts: facts,
		log:   log.With("service", "fact"),
	}
}
