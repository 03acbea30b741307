// Package mcpserver serves journal tools to MCP hosts over stdio or
// streamable HTTP. It is a thin client of the journal HTTP service.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/bhatiakavisha/AI-Health-Companion/client"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/logger"
	"github.com/bhatiakavisha/AI-Health-Companion/mcpserver/internal/handlers"
)

// Config is read from HEALTH_JOURNAL_MCP_* variables.
type Config struct {
	ServiceURL      string        `envconfig:"SERVICE_URL" default:"http://localhost:8080"`
	ServerName      string        `envconfig:"SERVER_NAME" default:"health-journal-mcp-server"`
	ServerVersion   string        `envconfig:"SERVER_VERSION" default:"0.1.0"`
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8081"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"90s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	HTTPReadTimeout time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	HTTPIdleTimeout time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"120s"`
}

// LoadConfig parses the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("HEALTH_JOURNAL_MCP", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if cfg.ServiceURL == "" {
		return nil, errors.New("HEALTH_JOURNAL_MCP_SERVICE_URL must not be empty")
	}
	return &cfg, nil
}

// NewServer builds an MCP server with every journal tool registered.
func NewServer(cfg *Config, c *client.Client, log zerolog.Logger) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		cfg.ServerName,
		cfg.ServerVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	for _, r := range []handlers.ToolRegisterer{
		handlers.NewJournalHandler(c, log),
		handlers.NewInsightHandler(c, log),
	} {
		if err := r.RegisterTools(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Run loads config, connects to the journal service and serves until
// stdin closes (stdio) or SIGINT/SIGTERM arrives (HTTP).
func Run() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	// stdout carries the stdio protocol, so logs always go to stderr.
	log := logger.NewWithWriter("journal-mcp-server", os.Stderr).Level(logger.ParseLevel(cfg.LogLevel))

	c, err := client.New(cfg.ServiceURL, client.WithHTTPTimeout(cfg.RequestTimeout))
	if err != nil {
		log.Error().Stack().Err(err).Msg("Failed to create client")
		return err
	}
	defer func() { _ = c.Close() }()

	s, err := NewServer(cfg, c, log)
	if err != nil {
		return err
	}

	if shouldUseStdio() {
		log.Info().Str("service_url", cfg.ServiceURL).Msg("Starting MCP server (stdio transport)")
		return server.ServeStdio(s)
	}
	return serveHTTP(cfg, s, log)
}

func serveHTTP(cfg *Config, s *server.MCPServer, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)
	srv := &http.Server{
		Addr:        cfg.HTTPAddr,
		Handler:     streamSrv,
		ReadTimeout: cfg.HTTPReadTimeout,
		// streaming responses have no write deadline
		WriteTimeout: 0,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("Starting MCP server (streamable HTTP)")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down MCP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during HTTP server shutdown")
	}
	if err := streamSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during MCP server shutdown")
	}
	return nil
}

// shouldUseStdio picks the transport from MCP_STDIO / MCP_HTTP, falling back
// to stdio when stdin is not a terminal.
func shouldUseStdio() bool {
	if os.Getenv("MCP_STDIO") == "true" {
		return true
	}
	if os.Getenv("MCP_HTTP") == "true" {
		return false
	}
	if fi, err := os.Stdin.Stat(); err == nil {
		return (fi.Mode() & os.ModeCharDevice) == 0
	}
	return false
}
