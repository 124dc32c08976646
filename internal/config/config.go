package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	NLP       NLPConfig       `yaml:"nlp"`
	Recommend RecommendConfig `yaml:"recommend"`
	Batch     BatchConfig     `yaml:"batch"`
	Scraper   ScraperConfig   `yaml:"scraper"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"               env:"SERVER_HOST"               env-default:"0.0.0.0"`
	Port            int           `yaml:"port"               env:"SERVER_PORT"               env-default:"5001"`
	ReadTimeout     time.Duration `yaml:"read_timeout"       env:"SERVER_READ_TIMEOUT"       env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"      env:"SERVER_WRITE_TIMEOUT"      env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"       env:"SERVER_IDLE_TIMEOUT"       env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"   env:"SERVER_SHUTDOWN_TIMEOUT"   env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"60"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// NLPConfig holds settings for the external text classification service.
type NLPConfig struct {
	BaseURL string        `yaml:"base_url" env:"NLP_BASE_URL" env-default:"http://localhost:8000/classify"`
	Timeout time.Duration `yaml:"timeout"  env:"NLP_TIMEOUT"  env-default:"10s"`

	// LiveThreshold is used on the interactive recommendation path; it is
	// looser than BatchThreshold because the live path favors recall while
	// offline reclassification favors precision.
	LiveThreshold  float64 `yaml:"live_threshold"  env:"NLP_LIVE_THRESHOLD"  env-default:"0.65"`
	BatchThreshold float64 `yaml:"batch_threshold" env:"NLP_BATCH_THRESHOLD" env-default:"0.15"`
}

// RecommendConfig holds recommendation pipeline settings.
type RecommendConfig struct {
	PoolSize    int `yaml:"pool_size"    env:"RECOMMEND_POOL_SIZE"    env-default:"30"`
	DirectLimit int `yaml:"direct_limit" env:"RECOMMEND_DIRECT_LIMIT" env-default:"10"`
	TopK        int `yaml:"top_k"        env:"RECOMMEND_TOP_K"        env-default:"5"`
	RecencyDays int `yaml:"recency_days" env:"RECOMMEND_RECENCY_DAYS" env-default:"7"`
}

// BatchConfig holds batch classification driver settings.
type BatchConfig struct {
	PageSize       int           `yaml:"page_size"        env:"BATCH_PAGE_SIZE"        env-default:"100"`
	BatchSize      int           `yaml:"batch_size"       env:"BATCH_BATCH_SIZE"       env-default:"5"`
	BatchDelay     time.Duration `yaml:"batch_delay"      env:"BATCH_DELAY"            env-default:"2s"`
	MaxRetries     int           `yaml:"max_retries"      env:"BATCH_MAX_RETRIES"      env-default:"3"`
	RetryBaseDelay time.Duration `yaml:"retry_base_delay" env:"BATCH_RETRY_BASE_DELAY" env-default:"1s"`
}

// ScraperConfig holds event ingestion settings. The feed is the JSON output
// of the external browser scraper, read from a local file or fetched over HTTP.
type ScraperConfig struct {
	FeedURL  string `yaml:"feed_url"  env:"SCRAPER_FEED_URL"`
	FeedPath string `yaml:"feed_path" env:"SCRAPER_FEED_PATH"`
	Source   string `yaml:"source"    env:"SCRAPER_SOURCE" env-default:"blogto"`
}

// AuthConfig holds admin JWT settings. When JWTSecret is empty the admin
// endpoints are not registered.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"wanderto"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"24h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,Origin"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// AdminEnabled reports whether the admin endpoints should be served.
func (c AuthConfig) AdminEnabled() bool {
	return c.JWTSecret != ""
}
