package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const (
	DefaultPoolSize             = 10
	DefaultSessionTTL           = 24 * time.Hour
	DefaultLoginRateLimitPerMin = 10
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresUser     string `toml:"postgres_user"`
	PostgresPoolSize int    `toml:"postgres_pool_size"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// sessions
	SessionTTLHours             int `toml:"session_ttl_hours"`
	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	Secrets Secrets `toml:"-"`
}

// Secrets never live in the TOML file, they come from the environment (or a .env file).
type Secrets struct {
	PostgresPassword string `env:"FT_POSTGRES_PASSWORD"`
	RedisPassword    string `env:"FT_REDIS_PASSWORD"`
	SentryDSN        string `env:"SENTRY_DSN"`
	HoneycombEnabled bool   `env:"FT_HONEYCOMB_ENABLED" envDefault:"false"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("env [%s] not configured", env)
	}
	return cfg, nil
}

// Load reads the TOML config at path, picks the section for environment and overlays secrets from the environment.
func Load(environment, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config %s: %w", path, err)
	}
	return fromToml(&t, environment)
}

// Parse is like Load, but reads the TOML from a string.
func Parse(environment, tomlContent string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(tomlContent, &t); err != nil {
		return nil, fmt.Errorf("decode toml config: %w", err)
	}
	return fromToml(&t, environment)
}

func fromToml(t *Toml, environment string) (*Config, error) {
	cfg, err := t.Get(environment)
	if err != nil {
		return nil, err
	}

	if err := env.Parse(&cfg.Secrets); err != nil {
		return nil, fmt.Errorf("parse secrets from env: %w", err)
	}

	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.PostgresPoolSize <= 0 {
		c.PostgresPoolSize = DefaultPoolSize
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.SessionTTLHours <= 0 {
		c.SessionTTLHours = int(DefaultSessionTTL / time.Hour)
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = DefaultLoginRateLimitPerMin
	}
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}
