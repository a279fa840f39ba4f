package domain

import "time"

// MaxTextLength is the maximum number of characters in a fact's text.
const MaxTextLength = 200

// FactID is the store-assigned identifier of a fact.
type FactID int64

// Fact is one user-submitted statement with its vote counters.
// JSON names match the columns of the facts table.
type Fact struct {
	ID               FactID    `json:"id"                yaml:"id"`
	CreatedAt        time.Time `json:"created_at"        yaml:"created_at"`
	Text             string    `json:"text"              yaml:"text"`
	Source           string    `json:"source"            yaml:"source"`
	Category         Category  `json:"category"          yaml:"category"`
	VotesInteresting int       `json:"votesInteresting"  yaml:"votesInteresting"`
	VotesMindblowing int       `json:"votesMindblowing"  yaml:"votesMindblowing"`
	VotesFalse       int       `json:"votesFalse"        yaml:"votesFalse"`
}

// IsDisputed reports whether false votes outnumber the positive ones.
func (f Fact) IsDisputed() bool {
	return f.VotesInteresting+f.VotesMindblowing < f.VotesFalse
}

// Votes returns the counter for the given kind.
func (f Fact) Votes(kind VoteKind) int {
	switch kind {
	case VoteInteresting:
		return f.VotesInteresting
	case VoteMindblowing:
		return f.VotesMindblowing
	case VoteFalse:
		return f.VotesFalse
	}
	return 0
}

// WithVotes returns a copy of f with the counter for kind set to value.
func (f Fact) WithVotes(kind VoteKind, value int) Fact {
	switch kind {
	case VoteInteresting:
		f.VotesInteresting = value
	case VoteMindblowing:
		f.VotesMindblowing = value
	case VoteFalse:
		f.VotesFalse = value
	}
	return f
}

// NewFact is the payload of a store insert. The store assigns id, created_at
// and zeroed counters.
type NewFact struct {
	Text     string   `json:"text"     validate:"required,max=200"`
	Source   string   `json:"source"   validate:"required,httpurl"`
	Category Category `json:"category" validate:"required,category"`
}
