package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the %s backend", BackendPostgres)
		}
	case BackendSupabase:
		if c.Supabase.URL == "" || c.Supabase.Key == "" {
			return fmt.Errorf("supabase.url and supabase.key are required for the %s backend", BackendSupabase)
		}
	case BackendSQLite:
		if strings.TrimSpace(c.SQLite.Path) == "" {
			return fmt.Errorf("sqlite.path is required for the %s backend", BackendSQLite)
		}
	case BackendAPI:
		if err := c.API.validate(); err != nil {
			return fmt.Errorf("api: %w", err)
		}
	default:
		return fmt.Errorf("store.backend must be one of %s, %s, %s, %s (got %q)",
			BackendPostgres, BackendSupabase, BackendSQLite, BackendAPI, c.Store.Backend)
	}

	if c.Store.FetchLimit <= 0 || c.Store.FetchLimit > 1000 {
		return fmt.Errorf("store.fetch_limit must be in 1..1000 (got %d)", c.Store.FetchLimit)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (a *APIConfig) validate() error {
	if a.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if a.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be > 0 (got %v)", a.RequestsPerSecond)
	}
	if a.BreakerFailureRatio <= 0 || a.BreakerFailureRatio > 1 {
		return fmt.Errorf("breaker_failure_ratio must be in (0, 1] (got %v)", a.BreakerFailureRatio)
	}
	return nil
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
