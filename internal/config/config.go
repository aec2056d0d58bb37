// Package config loads server settings from the environment and an optional
// .env file
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/skill-planner/internal/errors"
)

// Catalog source kinds
const (
	CatalogSourceHTTP = "http"
	CatalogSourceDir  = "dir"
)

// Config is the server configuration
type Config struct {
	Port     int           `env:"PORT" envDefault:"50051"`
	LogLevel string        `env:"LOG_LEVEL" envDefault:"info"`
	BuildTTL time.Duration `env:"BUILD_TTL" envDefault:"720h"`

	Redis   RedisConfig   `envPrefix:"REDIS_"`
	Catalog CatalogConfig `envPrefix:"CATALOG_"`
}

// RedisConfig selects the build store. More than one address means cluster
// mode.
type RedisConfig struct {
	Addrs    []string `env:"ADDRS" envSeparator:"," envDefault:"localhost:6379"`
	Password string   `env:"PASSWORD"`
	DB       int      `env:"DB" envDefault:"0"`
	TLS      bool     `env:"TLS" envDefault:"false"`
	PoolSize int      `env:"POOL_SIZE" envDefault:"10"`
}

// CatalogConfig selects where skillbooks come from
type CatalogConfig struct {
	Source   string        `env:"SOURCE" envDefault:"http"`
	BaseURL  string        `env:"BASE_URL" envDefault:"https://maplestory.io/api/GMS/62"`
	Dir      string        `env:"DIR"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"15s"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"24h"`
}

// EnvPrefix namespaces every variable, e.g. SKILL_PLANNER_PORT
const EnvPrefix = "SKILL_PLANNER_"

// Load reads .env files (the working directory's .env when none are given,
// where a missing file is fine) and parses the environment
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load env file")
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("Port", c.Port, 1, 65535, vb)
	if _, err := c.SlogLevel(); err != nil {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}
	if c.BuildTTL <= 0 {
		vb.Field("BuildTTL", "must be positive")
	}

	if len(c.Redis.Addrs) == 0 {
		vb.RequiredField("Redis.Addrs")
	}
	for _, addr := range c.Redis.Addrs {
		if strings.TrimSpace(addr) == "" {
			vb.Field("Redis.Addrs", "must not contain empty addresses")
			break
		}
	}

	switch c.Catalog.Source {
	case CatalogSourceHTTP:
		errors.ValidateRequired("Catalog.BaseURL", c.Catalog.BaseURL, vb)
	case CatalogSourceDir:
		errors.ValidateRequired("Catalog.Dir", c.Catalog.Dir, vb)
	default:
		vb.Fieldf("Catalog.Source", "must be %q or %q", CatalogSourceHTTP, CatalogSourceDir)
	}
	if c.Catalog.Timeout < 0 {
		vb.Field("Catalog.Timeout", "must not be negative")
	}

	return vb.Build()
}

// SlogLevel parses LogLevel
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
