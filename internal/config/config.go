package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	Curation CurationConfig `yaml:"curation"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Cache    CacheConfig    `yaml:"cache"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// RateLimitPerMinute caps requests per client IP; 0 disables limiting.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"0"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer-token settings for reviewer identity.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"scholarship-curator"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"8h"`
}

// CORSConfig holds Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CurationConfig holds the tunable policy of the curation pipeline.
type CurationConfig struct {
	// Confidence triage: >= approve -> Approved, >= review -> UnderReview,
	// >= hold -> Scraped, below hold -> Rejected.
	TriageApproveThreshold float64 `yaml:"triage_approve_threshold" env:"CURATION_TRIAGE_APPROVE" env-default:"0.90"`
	TriageReviewThreshold  float64 `yaml:"triage_review_threshold"  env:"CURATION_TRIAGE_REVIEW"  env-default:"0.70"`
	TriageHoldThreshold    float64 `yaml:"triage_hold_threshold"    env:"CURATION_TRIAGE_HOLD"    env-default:"0.50"`

	DuplicateThreshold   float64 `yaml:"duplicate_threshold"    env:"CURATION_DUPLICATE_THRESHOLD"    env-default:"0.80"`
	DuplicateMaxMatches  int     `yaml:"duplicate_max_matches"  env:"CURATION_DUPLICATE_MAX_MATCHES"  env-default:"50"`
	DuplicateMaxPairwise int     `yaml:"duplicate_max_pairwise" env:"CURATION_DUPLICATE_MAX_PAIRWISE" env-default:"500"`

	SearchDefaultLimit int `yaml:"search_default_limit" env:"CURATION_SEARCH_DEFAULT_LIMIT" env-default:"1000"`
	SearchMaxLimit     int `yaml:"search_max_limit"     env:"CURATION_SEARCH_MAX_LIMIT"     env-default:"5000"`

	AnalyticsTopSources int `yaml:"analytics_top_sources" env:"CURATION_ANALYTICS_TOP_SOURCES" env-default:"10"`

	// DefaultDeadline is added to the publish time when a record has no deadline.
	DefaultDeadline time.Duration `yaml:"default_deadline" env:"CURATION_DEFAULT_DEADLINE" env-default:"8760h"`

	// RejectedRetention is how long Rejected records are kept before purge-rejected removes them.
	RejectedRetention time.Duration `yaml:"rejected_retention" env:"CURATION_REJECTED_RETENTION" env-default:"2160h"`
}

// CatalogConfig holds settings of the catalog sink.
type CatalogConfig struct {
	// Table is the canonical scholarship table receiving published records.
	Table string `yaml:"table" env:"CATALOG_TABLE" env-default:"scholarships"`
}

// CacheConfig holds settings of the recent processing-log cache.
type CacheConfig struct {
	// Records is the number of records whose history is kept in memory.
	Records int `yaml:"records" env:"CACHE_RECORDS" env-default:"1024"`
	// EntriesPerRecord is the most-recent-N log entries cached per record.
	EntriesPerRecord int `yaml:"entries_per_record" env:"CACHE_ENTRIES_PER_RECORD" env-default:"20"`
}
