package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Prefix is the environment variable prefix understood by New.
const Prefix = "HEALTH_JOURNAL"

// Config holds the configuration for the journal service.
// Environment variables are parsed from the HEALTH_JOURNAL_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string      `envconfig:"LOG_LEVEL" default:"info"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Durable mirror: sqlite | postgres | memory
	StoreDriver string `envconfig:"STORE_DRIVER" default:"sqlite"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:""`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	StoreOpenMaxElapsedSeconds int `envconfig:"STORE_OPEN_MAX_ELAPSED_SECONDS" default:"30"`

	// Completion endpoint
	GeminiAPIKey             string `envconfig:"GEMINI_API_KEY" default:""`
	GeminiBaseURL            string `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	GeminiModel              string `envconfig:"GEMINI_MODEL" default:"gemini-pro"`
	Completer                string `envconfig:"COMPLETER" default:"rest"`
	GenerationTimeoutSeconds int    `envconfig:"GENERATION_TIMEOUT_SECONDS" default:"60"`

	// Health checking
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"2"`
}

// ResolveDefaults validates drivers and fills derived values.
// A missing API key is fatal outside of the testing environment.
func (c *Config) ResolveDefaults() error {
	switch c.Environment {
	case EnvDevelopment, EnvTesting, EnvProduction:
	default:
		return fmt.Errorf("unsupported ENVIRONMENT: %s", c.Environment)
	}

	switch c.StoreDriver {
	case "", "sqlite":
		c.StoreDriver = "sqlite"
		if c.SQLitePath == "" {
			c.SQLitePath = defaultSQLitePath()
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("%s_POSTGRES_DSN is required when STORE_DRIVER=postgres", Prefix)
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.StoreDriver)
	}

	switch c.Completer {
	case "", "rest":
		c.Completer = "rest"
	case "genai":
	default:
		return fmt.Errorf("unsupported COMPLETER: %s", c.Completer)
	}

	if c.GeminiAPIKey == "" && c.Environment != EnvTesting {
		return fmt.Errorf("%s_GEMINI_API_KEY is required", Prefix)
	}
	if c.GenerationTimeoutSeconds <= 0 {
		return fmt.Errorf("GENERATION_TIMEOUT_SECONDS must be positive, got %d", c.GenerationTimeoutSeconds)
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Example: HEALTH_JOURNAL_GEMINI_API_KEY, HEALTH_JOURNAL_HTTP_PORT
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("store_driver", cfg.StoreDriver).
		Str("sqlite_path", cfg.SQLitePath).
		Bool("postgres_dsn_present", cfg.PostgresDSN != "").
		Str("completer", cfg.Completer).
		Str("gemini_model", cfg.GeminiModel).
		Bool("gemini_api_key_present", cfg.GeminiAPIKey != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		Environment:                EnvTesting,
		LogLevel:                   "debug",
		HTTPPort:                   8080,
		StoreDriver:                "memory",
		StoreOpenMaxElapsedSeconds: 1,
		GeminiAPIKey:               "test-key",
		GeminiBaseURL:              "http://localhost:0",
		GeminiModel:                "gemini-pro",
		Completer:                  "rest",
		GenerationTimeoutSeconds:   5,
		HealthIntervalSeconds:      1,
		HealthProbeTimeoutSeconds:  1,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// GenerationTimeout returns the per-call completion timeout.
func (c *Config) GenerationTimeout() time.Duration {
	return time.Duration(c.GenerationTimeoutSeconds) * time.Second
}

func defaultSQLitePath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".health-journal", "journal.db")
	}
	return "journal.db"
}
