package fact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/factsphere/internal/domain"
)

// CreateFact validates and stores a new fact. Text and source are trimmed.
func (s *Service) CreateFact(ctx context.Context, input domain.NewFact) (*domain.Fact, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f, err := s.facts.InsertFact(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create fact: %w", err)
	}

	s.log.InfoContext(ctx, "fact created",
		slog.Int64("fact_id", int64(f.ID)),
		slog.String("category", string(f.Category)),
	)

	return f, nil
}
