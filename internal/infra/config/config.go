package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Catalog sources.
const (
	CatalogEmbedded = "embedded"
	CatalogFile     = "file"
	CatalogObject   = "object"
)

// EnvDevelopment enables verbose error details in responses.
const EnvDevelopment = "development"

// Config aggregates runtime configuration used across the service.
type Config struct {
	App       AppConfig       `yaml:"app"`
	HTTP      HTTPConfig      `yaml:"http"`
	Recommend RecommendConfig `yaml:"recommend"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	History   HistoryConfig   `yaml:"history"`
	Stats     StatsConfig     `yaml:"stats"`
}

// AppConfig carries service identity.
type AppConfig struct {
	Environment string `yaml:"environment" validate:"oneof=development test staging production"`
	APIVersion  string `yaml:"apiVersion" validate:"required"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address         string          `yaml:"address" validate:"required"`
	ReadTimeout     time.Duration   `yaml:"readTimeout" validate:"gt=0"`
	WriteTimeout    time.Duration   `yaml:"writeTimeout" validate:"gt=0"`
	ShutdownTimeout time.Duration   `yaml:"shutdownTimeout" validate:"gt=0"`
	RateLimit       RateLimitConfig `yaml:"rateLimit"`
	Retry           RetryConfig     `yaml:"retry"`
	CORS            CORSConfig      `yaml:"cors"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// CORSConfig lists the origins allowed to call the API. "*" allows any.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins" validate:"dive,required"`
}

// RecommendConfig tunes the recommendation engine and its listings.
type RecommendConfig struct {
	TopK          int `yaml:"topK" validate:"min=1,max=50"`
	TrendingLimit int `yaml:"trendingLimit" validate:"min=1,max=100"`
	HistoryLimit  int `yaml:"historyLimit" validate:"min=1,max=100"`
}

// CatalogConfig selects where the outfit catalog is read from.
type CatalogConfig struct {
	Source string       `yaml:"source" validate:"oneof=embedded file object"`
	Path   string       `yaml:"path"`
	Object ObjectConfig `yaml:"object"`
}

// ObjectConfig addresses the catalog object in an S3-compatible bucket.
type ObjectConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Key       string `yaml:"key"`
}

// HistoryConfig controls the recommendation log.
type HistoryConfig struct {
	MemoryCapacity int            `yaml:"memoryCapacity" validate:"min=1"`
	Postgres       PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN         string `yaml:"dsn"`
	MaxConns    int32  `yaml:"maxConns" validate:"min=0"`
	MinConns    int32  `yaml:"minConns" validate:"min=0"`
	AutoMigrate bool   `yaml:"autoMigrate"`
}

// StatsConfig controls the occasion popularity counters.
type StatsConfig struct {
	Valkey ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig contains connection information for the counters.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// Load reads configuration from the .env file, a YAML file and environment
// variables, in that order of precedence from lowest to highest. Values in
// .env never override variables already set in the process environment.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether error details may be exposed.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.App.Environment, EnvDevelopment)
}

func loadDotEnv() error {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	setString(&cfg.App.Environment, "ENVIRONMENT")
	setString(&cfg.App.APIVersion, "API_VERSION")

	setString(&cfg.HTTP.Address, "HTTP_ADDRESS")
	setDuration(&cfg.HTTP.ReadTimeout, "HTTP_READ_TIMEOUT")
	setDuration(&cfg.HTTP.WriteTimeout, "HTTP_WRITE_TIMEOUT")
	setBool(&cfg.HTTP.RateLimit.Enabled, "HTTP_RATE_LIMIT_ENABLED")
	setInt(&cfg.HTTP.RateLimit.RequestsPerMinute, "HTTP_RATE_LIMIT_RPM")
	setInt(&cfg.HTTP.RateLimit.Burst, "HTTP_RATE_LIMIT_BURST")
	setBool(&cfg.HTTP.Retry.Enabled, "HTTP_RETRY_ENABLED")
	setInt(&cfg.HTTP.Retry.MaxAttempts, "HTTP_RETRY_MAX_ATTEMPTS")
	setDuration(&cfg.HTTP.Retry.BaseBackoff, "HTTP_RETRY_BASE_BACKOFF")
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.CORS.AllowedOrigins = splitList(v)
	}

	setInt(&cfg.Recommend.TopK, "RECOMMEND_TOP_K")
	setInt(&cfg.Recommend.TrendingLimit, "RECOMMEND_TRENDING_LIMIT")
	setInt(&cfg.Recommend.HistoryLimit, "RECOMMEND_HISTORY_LIMIT")

	setString(&cfg.Catalog.Source, "CATALOG_SOURCE")
	setString(&cfg.Catalog.Path, "CATALOG_PATH")
	setString(&cfg.Catalog.Object.Endpoint, "CATALOG_OBJECT_ENDPOINT")
	setString(&cfg.Catalog.Object.AccessKey, "CATALOG_OBJECT_ACCESS_KEY")
	setString(&cfg.Catalog.Object.SecretKey, "CATALOG_OBJECT_SECRET_KEY")
	setString(&cfg.Catalog.Object.Bucket, "CATALOG_OBJECT_BUCKET")
	setString(&cfg.Catalog.Object.Region, "CATALOG_OBJECT_REGION")
	setString(&cfg.Catalog.Object.Key, "CATALOG_OBJECT_KEY")

	setInt(&cfg.History.MemoryCapacity, "HISTORY_MEMORY_CAPACITY")
	setString(&cfg.History.Postgres.DSN, "HISTORY_POSTGRES_DSN")
	if v := os.Getenv("HISTORY_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.History.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("HISTORY_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.History.Postgres.MinConns = int32(parsed)
		}
	}
	setBool(&cfg.History.Postgres.AutoMigrate, "HISTORY_POSTGRES_AUTO_MIGRATE")

	setBool(&cfg.Stats.Valkey.Enabled, "STATS_VALKEY_ENABLED")
	setString(&cfg.Stats.Valkey.Addr, "STATS_VALKEY_ADDR")
	setString(&cfg.Stats.Valkey.Prefix, "STATS_VALKEY_PREFIX")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v == "1" || strings.EqualFold(v, "true")
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			*dst = parsed
		}
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Environment: EnvDevelopment,
			APIVersion:  "v1",
		},
		HTTP: HTTPConfig{
			Address:         ":8000",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             20,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 100 * time.Millisecond,
				Exclude: []string{
					"/metrics",
					"/api/v1/recommendations",
					"/api/v1/recommendations/occasion",
				},
			},
			CORS: CORSConfig{
				AllowedOrigins: []string{"http://localhost:3000", "http://localhost:19006"},
			},
		},
		Recommend: RecommendConfig{
			TopK:          5,
			TrendingLimit: 10,
			HistoryLimit:  20,
		},
		Catalog: CatalogConfig{
			Source: CatalogEmbedded,
			Object: ObjectConfig{
				Key: "catalog.yaml",
			},
		},
		History: HistoryConfig{
			MemoryCapacity: 500,
			Postgres: PostgresConfig{
				MaxConns:    4,
				AutoMigrate: true,
			},
		},
		Stats: StatsConfig{
			Valkey: ValkeyConfig{
				Prefix: "outfit",
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%s fails %q (value %v)", fe.Namespace(), fe.ActualTag(), fe.Value())
		}
		return err
	}
	switch c.Catalog.Source {
	case CatalogFile:
		if strings.TrimSpace(c.Catalog.Path) == "" {
			return errors.New("catalog.path cannot be empty when catalog.source is file")
		}
	case CatalogObject:
		obj := c.Catalog.Object
		if strings.TrimSpace(obj.Endpoint) == "" || strings.TrimSpace(obj.Bucket) == "" || strings.TrimSpace(obj.Key) == "" {
			return errors.New("catalog.object endpoint, bucket and key are required when catalog.source is object")
		}
	}
	if c.History.Postgres.MaxConns > 0 && c.History.Postgres.MinConns > c.History.Postgres.MaxConns {
		return errors.New("history.postgres.minConns cannot exceed maxConns")
	}
	if c.Stats.Valkey.Enabled && strings.TrimSpace(c.Stats.Valkey.Addr) == "" {
		return errors.New("stats.valkey.addr cannot be empty when valkey is enabled")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	return nil
}
