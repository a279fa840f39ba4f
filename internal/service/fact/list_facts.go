package fact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/factsphere/internal/domain"
)

// ListFacts returns facts for a category ("" or "all" for every category),
// ordered by votesInteresting descending.
func (s *Service) ListFacts(ctx context.Context, input ListFactsInput) ([]domain.Fact, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter, err := domain.ParseCategoryFilter(input.Category)
	if err != nil {
		return nil, err
	}
	filter.Limit = input.Limit

	facts, err := s.facts.FetchFacts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list facts: %w", err)
	}

	s.log.DebugContext(ctx, "facts listed",
		slog.String("category", filter.Label()),
		slog.Int("count", len(facts)),
	)

	return facts, nil
}
