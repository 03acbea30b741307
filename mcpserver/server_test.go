package mcpserver

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhatiakavisha/AI-Health-Companion/client"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.ServiceURL)
	assert.Equal(t, ":8081", cfg.HTTPAddr)
}

func TestLoadConfig_Override(t *testing.T) {
	t.Setenv("HEALTH_JOURNAL_MCP_SERVICE_URL", "http://journal:9000")
	t.Setenv("HEALTH_JOURNAL_MCP_REQUEST_TIMEOUT", "5s")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://journal:9000", cfg.ServiceURL)
	assert.Equal(t, "5s", cfg.RequestTimeout.String())
}

func TestNewServer_RegistersTools(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	c, err := client.New(cfg.ServiceURL)
	require.NoError(t, err)
	s, err := NewServer(cfg, c, zerolog.Nop())
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestShouldUseStdio_EnvOverrides(t *testing.T) {
	t.Setenv("MCP_STDIO", "true")
	assert.True(t, shouldUseStdio())

	t.Setenv("MCP_STDIO", "")
	t.Setenv("MCP_HTTP", "true")
	assert.False(t, shouldUseStdio())
}
