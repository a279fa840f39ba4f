package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // sqlite driver for database/sql

	sqlitemigrations "github.com/heartmarshall/factsphere/internal/adapter/sqlite/migrations"
	"github.com/heartmarshall/factsphere/internal/config"
	"github.com/heartmarshall/factsphere/migrations"
)

// Migration directions.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// Migrate applies the embedded goose migrations of the configured SQL
// backend. Status output goes to out.
func Migrate(ctx context.Context, cfg *config.Config, direction string, out io.Writer, logger *slog.Logger) error {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		return runMigrations(ctx, "pgx", cfg.Database.DSN, goose.DialectPostgres, migrations.FS, direction, out, logger)
	case config.BackendSQLite:
		return runMigrations(ctx, "sqlite", cfg.SQLite.Path, goose.DialectSQLite3, sqlitemigrations.FS, direction, out, logger)
	}
	return fmt.Errorf("backend %q has no migrations", cfg.Store.Backend)
}

func migratePostgres(ctx context.Context, dsn, direction string, logger *slog.Logger) error {
	return runMigrations(ctx, "pgx", dsn, goose.DialectPostgres, migrations.FS, direction, io.Discard, logger)
}

func runMigrations(
	ctx context.Context,
	driver, dsn string,
	dialect goose.Dialect,
	fsys fs.FS,
	direction string,
	out io.Writer,
	logger *slog.Logger,
) error {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("open %s: %w", driver, err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	switch direction {
	case MigrateUp:
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		for _, r := range results {
			logger.Info("migration applied", slog.String("source", r.Source.Path), slog.Duration("duration", r.Duration))
		}
	case MigrateDown:
		r, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		if r != nil {
			logger.Info("migration rolled back", slog.String("source", r.Source.Path))
		}
	case MigrateStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
		for _, s := range statuses {
			fmt.Fprintf(out, "%-8s %s\n", s.State, s.Source.Path)
		}
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
	return nil
}
