package fact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/factsphere/internal/domain"
)

// Vote sets one counter of a fact to an absolute value and returns the
// stored record. Returns domain.ErrNotFound for an unknown id.
func (s *Service) Vote(ctx context.Context, input VoteInput) (*domain.Fact, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	kind, _ := domain.ParseVoteKind(input.Kind)

	f, err := s.facts.UpdateVote(ctx, input.ID, kind, input.Value)
	if err != nil {
		return nil, fmt.Errorf("vote: %w", err)
	}

	s.log.InfoContext(ctx, "vote recorded",
		slog.Int64("fact_id", int64(f.ID)),
		slog.String("kind", string(kind)),
		slog.Int("value", input.Value),
	)

	return f, nil
}
