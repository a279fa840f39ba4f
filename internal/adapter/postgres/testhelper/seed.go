package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/factsphere/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// TruncateFacts empties the facts table. Tests that assert on whole-table
// reads call it first and must not run in parallel with other fact tests.
func TruncateFacts(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), `TRUNCATE facts RESTART IDENTITY`); err != nil {
		t.Fatalf("testhelper: TruncateFacts: %v", err)
	}
}

// SeedFact inserts a fact with the given category and counters and returns
// the stored row.
func SeedFact(t *testing.T, pool *pgxpool.Pool, category domain.Category, interesting, mindblowing, falseVotes int) domain.Fact {
	t.Helper()

	f := domain.Fact{
		Text:             "Seeded fact " + uniqueSuffix(),
		Source:           "https://example.com/" + uniqueSuffix(),
		Category:         category,
		VotesInteresting: interesting,
		VotesMindblowing: mindblowing,
		VotesFalse:       falseVotes,
	}

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO facts (text, source, category, "votesInteresting", "votesMindblowing", "votesFalse")
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		f.Text, f.Source, string(f.Category), f.VotesInteresting, f.VotesMindblowing, f.VotesFalse,
	).Scan(&id, &f.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedFact: %v", err)
	}
	f.ID = domain.FactID(id)

	return f
}
