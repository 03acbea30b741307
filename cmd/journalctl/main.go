// Command journalctl is a command-line client for the health journal service.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bhatiakavisha/AI-Health-Companion/client"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/logger"
)

const defaultTimeout = 90 * time.Second

// cli holds the persistent flags shared by every subcommand.
type cli struct {
	serviceURL string
	timeout    time.Duration
	debug      bool
	log        zerolog.Logger
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	c := &cli{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "journalctl",
		Short:         "CLI client for the health journal REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if c.debug {
				level = zerolog.DebugLevel
			}
			c.log = logger.NewConsole("journalctl", cmd.ErrOrStderr()).Level(level)
		},
	}

	defaultURL := getEnv("HEALTH_JOURNAL_URL", "http://localhost:8080")
	root.PersistentFlags().StringVarP(&c.serviceURL, "api", "a", defaultURL, "Journal service base URL")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", defaultTimeout, "Per-request timeout")
	root.PersistentFlags().BoolVarP(&c.debug, "debug", "d", false, "Enable verbose debug output")

	root.AddCommand(
		c.newEntriesCmd(),
		c.newVitalsCmd(),
		c.newMedsCmd(),
		c.newGoalsCmd(),
		c.newInsightsCmd(),
		c.newAnalyzeCmd(),
		c.newExplainCmd(),
		c.newAskCmd(),
		c.newSummaryCmd(),
		c.newHealthCmd(),
	)
	return root
}

// call builds a client, runs fn with a bounded context and prints its result as JSON.
func (c *cli) call(cmd *cobra.Command, op string, fn func(context.Context, *client.Client) (interface{}, error)) error {
	cl, err := client.New(c.serviceURL, client.WithHTTPTimeout(c.timeout), client.WithDebugLogging(c.debug))
	if err != nil {
		return err
	}
	defer func() { _ = cl.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
	defer cancel()

	start := time.Now()
	out, err := fn(ctx, cl)
	elapsed := time.Since(start)
	if err != nil {
		c.log.Error().Err(err).Str("op", op).Dur("elapsed", elapsed).Msg("request failed")
		return err
	}
	c.log.Debug().Str("op", op).Dur("elapsed", elapsed).Msg("request completed")
	return printJSON(cmd, out)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
