package config

import (
	"time"
)

// Store backends.
const (
	BackendPostgres = "postgres"
	BackendSupabase = "supabase"
	BackendSQLite   = "sqlite"
	BackendAPI      = "api"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Store     StoreConfig     `yaml:"store"`
	Supabase  SupabaseConfig  `yaml:"supabase"`
	SQLite    SQLiteConfig    `yaml:"sqlite"`
	API       APIConfig       `yaml:"api"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// StoreConfig selects the backend the facts live in.
type StoreConfig struct {
	Backend    string `yaml:"backend"     env:"STORE_BACKEND"     env-default:"postgres"`
	FetchLimit int    `yaml:"fetch_limit" env:"STORE_FETCH_LIMIT" env-default:"1000"`
}

// SupabaseConfig holds the hosted PostgREST project settings.
type SupabaseConfig struct {
	URL   string `yaml:"url"   env:"SUPABASE_URL"`
	Key   string `yaml:"key"   env:"SUPABASE_KEY"`
	Table string `yaml:"table" env:"SUPABASE_TABLE" env-default:"facts"`
}

// SQLiteConfig holds the embedded store settings.
type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"factsphere.db"`
}

// APIConfig configures the HTTP client used when the store is a remote
// factsphere server.
type APIConfig struct {
	BaseURL             string        `yaml:"base_url"              env:"API_BASE_URL"              env-default:"http://localhost:8080"`
	Timeout             time.Duration `yaml:"timeout"               env:"API_TIMEOUT"               env-default:"10s"`
	RequestsPerSecond   float64       `yaml:"requests_per_second"   env:"API_REQUESTS_PER_SECOND"   env-default:"10"`
	Burst               int           `yaml:"burst"                 env:"API_BURST"                 env-default:"5"`
	BreakerFailureRatio float64       `yaml:"breaker_failure_ratio" env:"API_BREAKER_FAILURE_RATIO" env-default:"0.6"`
	BreakerMinRequests  uint32        `yaml:"breaker_min_requests"  env:"API_BREAKER_MIN_REQUESTS"  env-default:"5"`
	BreakerTimeout      time.Duration `yaml:"breaker_timeout"       env:"API_BREAKER_TIMEOUT"       env-default:"30s"`
}

// CacheConfig controls the server-side fetch cache.
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"CACHE_ENABLED"          env-default:"true"`
	TTL             time.Duration `yaml:"ttl"              env:"CACHE_TTL"              env-default:"5s"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"CACHE_CLEANUP_INTERVAL" env-default:"1m"`
}

// RateLimitConfig holds per-IP limits for the REST API.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"   env-default:"300"`
	Burst             int `yaml:"burst"               env:"RATE_LIMIT_BURST" env-default:"20"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// TelemetryConfig holds metrics and tracing settings. Tracing is off unless
// an OTLP endpoint is set.
type TelemetryConfig struct {
	ServiceName    string `yaml:"service_name"    env:"TELEMETRY_SERVICE_NAME"    env-default:"factsphere"`
	OTLPEndpoint   string `yaml:"otlp_endpoint"   env:"TELEMETRY_OTLP_ENDPOINT"`
	MetricsEnabled bool   `yaml:"metrics_enabled" env:"TELEMETRY_METRICS_ENABLED" env-default:"true"`
}
