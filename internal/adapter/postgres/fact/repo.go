// Package fact implements the facts store on PostgreSQL.
package fact

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/factsphere/internal/adapter/postgres"
	"github.com/heartmarshall/factsphere/internal/domain"
)

const table = "facts"

// columns are quoted because the counters are camelCase.
var columns = []string{
	"id",
	"created_at",
	"text",
	"source",
	"category",
	pgx.Identifier{string(domain.VoteInteresting)}.Sanitize(),
	pgx.Identifier{string(domain.VoteMindblowing)}.Sanitize(),
	pgx.Identifier{string(domain.VoteFalse)}.Sanitize(),
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides fact persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new fact repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// FetchFacts returns facts ordered by votesInteresting descending, ties by id.
// A nil filter category returns every category.
func (r *Repo) FetchFacts(ctx context.Context, filter domain.FactFilter) ([]domain.Fact, error) {
	query := builder.
		Select(columns...).
		From(table).
		OrderBy(pgx.Identifier{string(domain.VoteInteresting)}.Sanitize()+" DESC", "id ASC").
		Limit(uint64(filter.NormalizedLimit()))
	if filter.Category != nil {
		query = query.Where(sq.Eq{"category": string(*filter.Category)})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build fetch facts: %w", err)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "fetch facts")
	}
	defer rows.Close()

	facts := make([]domain.Fact, 0)
	for rows.Next() {
		f, err := scanFact(rows)
		if err != nil {
			return nil, postgres.MapError(err, "scan fact")
		}
		facts = append(facts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "fetch facts")
	}

	return facts, nil
}

// InsertFact stores a new fact and returns the stored row.
func (r *Repo) InsertFact(ctx context.Context, nf domain.NewFact) (*domain.Fact, error) {
	sql, args, err := builder.
		Insert(table).
		Columns("text", "source", "category").
		Values(nf.Text, nf.Source, string(nf.Category)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert fact: %w", err)
	}

	f, err := scanFact(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "insert fact")
	}
	return &f, nil
}

// UpdateVote sets one counter of fact id to value and returns the updated row.
// Returns domain.ErrNotFound if no fact has that id.
func (r *Repo) UpdateVote(ctx context.Context, id domain.FactID, kind domain.VoteKind, value int) (*domain.Fact, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", fmt.Sprintf("unknown vote kind %q", kind))
	}

	sql, args, err := builder.
		Update(table).
		Set(pgx.Identifier{string(kind)}.Sanitize(), value).
		Where(sq.Eq{"id": int64(id)}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update vote: %w", err)
	}

	f, err := scanFact(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("fact %d", id))
	}
	return &f, nil
}

func scanFact(row pgx.Row) (domain.Fact, error) {
	var (
		id                            int64
		createdAt                     time.Time
		text, source, category        string
		interesting, mindblowing, neg int
	)
	if err := row.Scan(&id, &createdAt, &text, &source, &category, &interesting, &mindblowing, &neg); err != nil {
		return domain.Fact{}, err
	}
	return domain.Fact{
		ID:               domain.FactID(id),
		CreatedAt:        createdAt,
		Text:             text,
		Source:           source,
		Category:         domain.Category(category),
		VotesInteresting: interesting,
		VotesMindblowing: mindblowing,
		VotesFalse:       neg,
	}, nil
}
