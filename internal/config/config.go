package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	SRS        SRSConfig        `yaml:"srs"`
	Cache      CacheConfig      `yaml:"cache"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Stats      StatsConfig      `yaml:"stats"`
	Publishing PublishingConfig `yaml:"publishing"`
	Sweeper    SweeperConfig    `yaml:"sweeper"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"30s"`
	// GenerationRateLimit caps exercise generation requests per caller per minute.
	GenerationRateLimit int `yaml:"generation_rate_limit" env:"SERVER_GENERATION_RATE_LIMIT" env-default:"30"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// ApplicationName tags server-side sessions so pg_stat_activity shows which
	// process holds the row locks taken by publish batches.
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"adaptive-engine"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
}

// RedisConfig holds Redis connection settings. Only used by the redis cache backend.
type RedisConfig struct {
	Addr      string `yaml:"addr"       env:"REDIS_ADDR"       env-default:"localhost:6379"`
	Password  string `yaml:"password"   env:"REDIS_PASSWORD"`
	DB        int    `yaml:"db"         env:"REDIS_DB"         env-default:"0"`
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"gencache:"`
}

// AuthConfig holds settings for verifying access tokens issued by the
// identity service.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"adaptive-identity"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SRSConfig holds spaced-repetition system parameters.
type SRSConfig struct {
	DefaultEaseFactor float64 `yaml:"default_ease_factor" env:"SRS_DEFAULT_EASE"      env-default:"2.5"`
	MinEaseFactor     float64 `yaml:"min_ease_factor"     env:"SRS_MIN_EASE"          env-default:"1.3"`
	MaxIntervalDays   int     `yaml:"max_interval_days"   env:"SRS_MAX_INTERVAL"      env-default:"365"`
	DefaultDueLimit   int     `yaml:"default_due_limit"   env:"SRS_DEFAULT_DUE_LIMIT" env-default:"20"`
	MaxDueLimit       int     `yaml:"max_due_limit"       env:"SRS_MAX_DUE_LIMIT"     env-default:"200"`
}

// CacheConfig holds generation cache settings.
type CacheConfig struct {
	// Backend is "postgres", "redis" or "memory".
	Backend           string        `yaml:"backend"            env:"CACHE_BACKEND"            env-default:"postgres"`
	TTL               time.Duration `yaml:"ttl"                env:"CACHE_TTL"                env-default:"168h"`
	GenerationTimeout time.Duration `yaml:"generation_timeout" env:"CACHE_GENERATION_TIMEOUT" env-default:"60s"`
	MaxAttempts       int           `yaml:"max_attempts"       env:"CACHE_MAX_ATTEMPTS"       env-default:"3"`
	InitialBackoff    time.Duration `yaml:"initial_backoff"    env:"CACHE_INITIAL_BACKOFF"    env-default:"500ms"`
	MaxBackoff        time.Duration `yaml:"max_backoff"        env:"CACHE_MAX_BACKOFF"        env-default:"8s"`
	PromptVersion     int           `yaml:"prompt_version"     env:"CACHE_PROMPT_VERSION"     env-default:"1"`
}

// GeneratorConfig selects and configures the LLM provider. An empty
// provider disables generation: exercise requests answer 503.
type GeneratorConfig struct {
	// Provider is "anthropic", "openai" or empty.
	Provider  string        `yaml:"provider"   env:"GENERATOR_PROVIDER"`
	APIKey    string        `yaml:"api_key"    env:"GENERATOR_API_KEY"`
	BaseURL   string        `yaml:"base_url"   env:"GENERATOR_BASE_URL"`
	Model     string        `yaml:"model"      env:"GENERATOR_MODEL"`
	MaxTokens int           `yaml:"max_tokens" env:"GENERATOR_MAX_TOKENS" env-default:"2048"`
	Timeout   time.Duration `yaml:"timeout"    env:"GENERATOR_TIMEOUT"    env-default:"45s"`
}

// Enabled reports whether a provider is configured.
func (g GeneratorConfig) Enabled() bool {
	return g.Provider != ""
}

// StatsConfig tunes the feature statistics engine.
type StatsConfig struct {
	SaturationCount   int     `yaml:"saturation_count"    env:"STATS_SATURATION_COUNT"    env-default:"10"`
	ApproveNudge      float64 `yaml:"approve_nudge"       env:"STATS_APPROVE_NUDGE"       env-default:"0.01"`
	RejectNudge       float64 `yaml:"reject_nudge"        env:"STATS_REJECT_NUDGE"        env-default:"-0.05"`
	MinAdjust         float64 `yaml:"min_adjust"          env:"STATS_MIN_ADJUST"          env-default:"-0.3"`
	MaxAdjust         float64 `yaml:"max_adjust"          env:"STATS_MAX_ADJUST"          env-default:"0.05"`
	MinBiasConfidence float64 `yaml:"min_bias_confidence" env:"STATS_MIN_BIAS_CONFIDENCE" env-default:"0.3"`
}

// PublishingConfig controls the annotation lifecycle.
type PublishingConfig struct {
	AllowUnpublish    bool   `yaml:"allow_unpublish"    env:"PUBLISHING_ALLOW_UNPUBLISH"    env-default:"false"`
	WarmupKindsRaw    string `yaml:"warmup_kinds"       env:"PUBLISHING_WARMUP_KINDS"       env-default:"multiple_choice,fill_blank"`
	WarmupConcurrency int    `yaml:"warmup_concurrency" env:"PUBLISHING_WARMUP_CONCURRENCY" env-default:"4"`
	DefaultListLimit  int    `yaml:"default_list_limit" env:"PUBLISHING_DEFAULT_LIST_LIMIT" env-default:"50"`
	MaxListLimit      int    `yaml:"max_list_limit"     env:"PUBLISHING_MAX_LIST_LIMIT"     env-default:"200"`

	// WarmupKinds is parsed from WarmupKindsRaw during validation.
	WarmupKinds []string `yaml:"-" env:"-"`
}

// SweeperConfig controls the in-process expired cache sweeper.
type SweeperConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"SWEEPER_ENABLED"  env-default:"true"`
	Interval time.Duration `yaml:"interval" env:"SWEEPER_INTERVAL" env-default:"1h"`
}
