package domain

import "fmt"

// MaxFacts caps the number of facts a single fetch returns.
const MaxFacts = 1000

// FactFilter selects the facts a fetch returns. A nil Category means all
// categories. Results are always ordered by votesInteresting descending.
type FactFilter struct {
	Category *Category
	Limit    int
}

// NormalizedLimit returns Limit clamped to (0, MaxFacts]; zero means MaxFacts.
func (f FactFilter) NormalizedLimit() int {
	if f.Limit <= 0 || f.Limit > MaxFacts {
		return MaxFacts
	}
	return f.Limit
}

// Label returns the selector value of the filter: a category name or "all".
func (f FactFilter) Label() string {
	if f.Category == nil {
		return CategoryAll
	}
	return string(*f.Category)
}

// ParseCategoryFilter turns a selector value into a filter.
// "all" and "" select every category.
func ParseCategoryFilter(s string) (FactFilter, error) {
	if s == "" || s == CategoryAll {
		return FactFilter{}, nil
	}
	c := Category(s)
	if !c.IsValid() {
		return FactFilter{}, NewValidationError("category", fmt.Sprintf("unknown category %q", s))
	}
	return FactFilter{Category: &c}, nil
}
