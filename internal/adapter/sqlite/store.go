// Package sqlite provides a SQLite-backed facts store for local use and tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/heartmarshall/factsphere/internal/adapter/sqlite/migrations"
	"github.com/heartmarshall/factsphere/internal/domain"
)

const table = "facts"

var columns = []string{
	"id",
	"created_at",
	"text",
	"source",
	"category",
	quoteIdent(string(domain.VoteInteresting)),
	quoteIdent(string(domain.VoteMindblowing)),
	quoteIdent(string(domain.VoteFalse)),
}

// Store persists facts in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens a SQLite facts store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, sqlDB, migrations.FS)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("goose new provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

// FetchFacts returns facts ordered by votesInteresting descending, ties by id.
func (s *Store) FetchFacts(ctx context.Context, filter domain.FactFilter) ([]domain.Fact, error) {
	query := sq.Select(columns...).
		From(table).
		OrderBy(quoteIdent(string(domain.VoteInteresting))+" DESC", "id ASC").
		Limit(uint64(filter.NormalizedLimit()))
	if filter.Category != nil {
		query = query.Where(sq.Eq{"category": string(*filter.Category)})
	}

	stmt, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build fetch facts: %w", err)
	}

	rows, err := s.sqlDB.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch facts: %w", err)
	}
	defer rows.Close()

	facts := make([]domain.Fact, 0)
	for rows.Next() {
		f, err := scanFact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fact: %w", err)
		}
		facts = append(facts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch facts: %w", err)
	}
	return facts, nil
}

// InsertFact stores a new fact with zeroed counters.
func (s *Store) InsertFact(ctx context.Context, nf domain.NewFact) (*domain.Fact, error) {
	stmt, args, err := sq.Insert(table).
		Columns("created_at", "text", "source", "category").
		Values(toMillis(s.now()), nf.Text, nf.Source, string(nf.Category)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert fact: %w", err)
	}

	f, err := scanFact(s.sqlDB.QueryRowContext(ctx, stmt, args...))
	if err != nil {
		return nil, mapError(err, "insert fact")
	}
	return &f, nil
}

// UpdateVote sets one counter of fact id to value.
// Returns domain.ErrNotFound if no fact has that id.
func (s *Store) UpdateVote(ctx context.Context, id domain.FactID, kind domain.VoteKind, value int) (*domain.Fact, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", fmt.Sprintf("unknown vote kind %q", kind))
	}

	stmt, args, err := sq.Update(table).
		Set(quoteIdent(string(kind)), value).
		Where(sq.Eq{"id": int64(id)}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update vote: %w", err)
	}

	f, err := scanFact(s.sqlDB.QueryRowContext(ctx, stmt, args...))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("fact %d", id))
	}
	return &f, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFact(row scanner) (domain.Fact, error) {
	var (
		f         domain.Fact
		id        int64
		createdAt int64
		category  string
	)
	if err := row.Scan(&id, &createdAt, &f.Text, &f.Source, &category,
		&f.VotesInteresting, &f.VotesMindblowing, &f.VotesFalse); err != nil {
		return domain.Fact{}, err
	}
	f.ID = domain.FactID(id)
	f.CreatedAt = fromMillis(createdAt)
	f.Category = domain.Category(category)
	return f, nil
}

func mapError(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		// Extended codes carry the primary code in the low byte.
		switch sqliteErr.Code() & 0xff {
		case sqlite3lib.SQLITE_CONSTRAINT:
			return fmt.Errorf("%s: %w", op, domain.ErrValidation)
		case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED:
			return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
		}
	}
	if strings.Contains(strings.ToLower(err.Error()), "constraint failed") {
		return fmt.Errorf("%s: %w", op, domain.ErrValidation)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func quoteIdent(name string) string {
	return `"` + name + `"`
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
