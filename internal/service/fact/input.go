package fact

import (
	"github.com/heartmarshall/factsphere/internal/domain"
)

// ListFactsInput holds the parameters for listing facts.
type ListFactsInput struct {
	Category string
	Limit    int
}

// Validate checks all fields and collects all errors.
func (i ListFactsInput) Validate() error {
	var errs []domain.FieldError
	if i.Category != "" && i.Category != domain.CategoryAll && !domain.Category(i.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > domain.MaxFacts {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 1000"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// VoteInput holds the parameters for setting a vote counter.
type VoteInput struct {
	ID    domain.FactID
	Kind  string
	Value int
}

// Validate checks all fields and collects all errors.
func (i VoteInput) Validate() error {
	var errs []domain.FieldError
	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be positive"})
	}
	if _, err := domain.ParseVoteKind(i.Kind); err != nil {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be one of interesting, mindblowing, false"})
	}
	if i.Value < 0 {
		errs = append(errs, domain.FieldError{Field: "value", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
