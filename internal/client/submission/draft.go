// Package submission decides whether a draft is a well-formed fact and
// drives the submission form.
package submission

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/factsphere/internal/domain"
)

// Draft is the raw form input.
type Draft struct {
	Text     string
	Source   string
	Category string
}

// NewFact returns the normalized store payload for the draft.
func (d Draft) NewFact() domain.NewFact {
	return domain.NewFact{
		Text:     d.Text,
		Source:   d.Source,
		Category: domain.Category(d.Category),
	}.Normalize()
}

// Validate accepts a draft iff the trimmed text is non-empty and at most
// domain.MaxTextLength runes, the source is an absolute http(s) URL and the
// category is a known one. It returns a *domain.ValidationError otherwise.
func Validate(d Draft) error {
	return d.NewFact().Validate()
}

// Remaining is the number of characters still available for text. Surrounding
// whitespace is not counted, matching what Validate checks.
func Remaining(text string) int {
	return domain.MaxTextLength - utf8.RuneCountInString(strings.TrimSpace(text))
}
