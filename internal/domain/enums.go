package domain

// Category is one label from the fixed set facts are filed under.
type Category string

const (
	CategoryTechnology    Category = "technology"
	CategoryScience       Category = "science"
	CategoryFinance       Category = "finance"
	CategorySociety       Category = "society"
	CategoryEntertainment Category = "entertainment"
	CategoryHealth        Category = "health"
	CategoryHistory       Category = "history"
	CategoryNews          Category = "news"
	CategoryFunny         Category = "funny"
)

// CategoryAll is the selector value that disables the category filter.
const CategoryAll = "all"

// categoryColors is the static display table. Order is the selector order.
var categoryColors = []struct {
	category Category
	color    string
}{
	{CategoryTechnology, "#3b82f6"},
	{CategoryScience, "#16a34a"},
	{CategoryFinance, "#ef4444"},
	{CategorySociety, "#eab308"},
	{CategoryEntertainment, "#db2777"},
	{CategoryHealth, "#14b8a6"},
	{CategoryHistory, "#f97316"},
	{CategoryNews, "#8b5cf6"},
	{CategoryFunny, "#8b5"},
}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	for _, cc := range categoryColors {
		if cc.category == c {
			return true
		}
	}
	return false
}

// Color returns the display color of the category, or "" for unknown values.
func (c Category) Color() string {
	for _, cc := range categoryColors {
		if cc.category == c {
			return cc.color
		}
	}
	return ""
}

// Categories returns every category in selector order.
func Categories() []Category {
	out := make([]Category, len(categoryColors))
	for i, cc := range categoryColors {
		out[i] = cc.category
	}
	return out
}

// VoteKind names the counter a vote increments. Values match the store columns.
type VoteKind string

const (
	VoteInteresting VoteKind = "votesInteresting"
	VoteMindblowing VoteKind = "votesMindblowing"
	VoteFalse       VoteKind = "votesFalse"
)

func (k VoteKind) String() string { return string(k) }

func (k VoteKind) IsValid() bool {
	switch k {
	case VoteInteresting, VoteMindblowing, VoteFalse:
		return true
	}
	return false
}

// VoteKinds returns the vote kinds in display order.
func VoteKinds() []VoteKind {
	return []VoteKind{VoteInteresting, VoteMindblowing, VoteFalse}
}

// ParseVoteKind accepts a column name or its short alias
// (interesting, mindblowing, false).
func ParseVoteKind(s string) (VoteKind, error) {
	switch s {
	case "interesting", string(VoteInteresting):
		return VoteInteresting, nil
	case "mindblowing", string(VoteMindblowing):
		return VoteMindblowing, nil
	case "false", string(VoteFalse):
		return VoteFalse, nil
	}
	return "", NewValidationError("kind", "must be one of interesting, mindblowing, false")
}
