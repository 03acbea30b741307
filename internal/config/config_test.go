package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoad_Defaults(t *testing.T) {
	t.Setenv("HEALTH_JOURNAL_GEMINI_API_KEY", "k")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.NotEmpty(t, cfg.SQLitePath)
	assert.Equal(t, "rest", cfg.Completer)
	assert.Equal(t, "gemini-pro", cfg.GeminiModel)
	assert.Equal(t, 60, cfg.GenerationTimeoutSeconds)
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	t.Setenv("HEALTH_JOURNAL_GEMINI_API_KEY", "k")
	t.Setenv("HEALTH_JOURNAL_HTTP_PORT", "9999")
	t.Setenv("HEALTH_JOURNAL_STORE_DRIVER", "memory")
	t.Setenv("HEALTH_JOURNAL_COMPLETER", "genai")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.HTTPPort)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, "genai", cfg.Completer)
	assert.Equal(t, ":9999", cfg.GetHTTPAddr())
}

func TestConfigLoad_MissingAPIKeyFailsFast(t *testing.T) {
	t.Setenv("HEALTH_JOURNAL_GEMINI_API_KEY", "")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestResolveDefaults(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"testing env allows missing key", func(c *Config) { c.GeminiAPIKey = "" }, false},
		{"postgres requires dsn", func(c *Config) { c.StoreDriver = "postgres" }, true},
		{"postgres with dsn", func(c *Config) { c.StoreDriver = "postgres"; c.PostgresDSN = "postgres://x" }, false},
		{"unknown driver", func(c *Config) { c.StoreDriver = "redis" }, true},
		{"unknown completer", func(c *Config) { c.Completer = "openai" }, true},
		{"unknown environment", func(c *Config) { c.Environment = "staging" }, true},
		{"non-positive timeout", func(c *Config) { c.GenerationTimeoutSeconds = 0 }, true},
		{"production requires key", func(c *Config) { c.Environment = EnvProduction; c.GeminiAPIKey = "" }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewForTesting()
			tc.mutate(cfg)
			err := cfg.ResolveDefaults()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveDefaults_SQLitePathDerived(t *testing.T) {
	cfg := NewForTesting()
	cfg.StoreDriver = ""
	require.NoError(t, cfg.ResolveDefaults())
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Contains(t, cfg.SQLitePath, "journal.db")
}
