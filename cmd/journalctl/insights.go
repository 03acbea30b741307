package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bhatiakavisha/AI-Health-Companion/client"
)

func (c *cli) newInsightsCmd() *cobra.Command {
	insightsCmd := &cobra.Command{Use: "insights", Short: "Generated health insights"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored insights, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, "list_insights", func(ctx context.Context, cl *client.Client) (interface{}, error) {
				return cl.ListInsights(ctx)
			})
		},
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and store a new insight from recent data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, "generate_insight", func(ctx context.Context, cl *client.Client) (interface{}, error) {
				return cl.GenerateInsight(ctx)
			})
		},
	}

	insightsCmd.AddCommand(listCmd, generateCmd)
	return insightsCmd
}

func (c *cli) newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Analyze recently logged symptoms",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, "analyze_symptoms", func(ctx context.Context, cl *client.Client) (interface{}, error) {
				text, err := cl.AnalyzeSymptoms(ctx)
				return map[string]string{"analysis": text}, err
			})
		},
	}
}

func (c *cli) newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain TERM",
		Short: "Explain a medical term in plain language",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")
			return c.call(cmd, "explain_term", func(ctx context.Context, cl *client.Client) (interface{}, error) {
				text, err := cl.ExplainTerm(ctx, term)
				return map[string]string{"term": term, "explanation": text}, err
			})
		},
	}
}

func (c *cli) newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask QUESTION",
		Short: "Ask a general health question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			return c.call(cmd, "ask", func(ctx context.Context, cl *client.Client) (interface{}, error) {
				text, err := cl.Ask(ctx, question)
				return map[string]string{"question": question, "answer": text}, err
			})
		},
	}
}
