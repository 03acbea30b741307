package handlers

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/bhatiakavisha/AI-Health-Companion/client"
)

// InsightHandler exposes the completion-backed tools.
type InsightHandler struct {
	client *client.Client
	log    zerolog.Logger
}

func NewInsightHandler(c *client.Client, log zerolog.Logger) *InsightHandler {
	return &InsightHandler{client: c, log: log}
}

// RegisterTools registers insight tools.
func (h *InsightHandler) RegisterTools(s *server.MCPServer) error {
	s.AddTool(mcp.NewTool("generate_insight",
		mcp.WithDescription("Generate and store a health insight from the last week of entries, last month of vitals and active goals."),
	), h.handleGenerateInsight)

	s.AddTool(mcp.NewTool("analyze_symptoms",
		mcp.WithDescription("Analyze the most recently logged symptoms together with recent vitals."),
	), h.handleAnalyzeSymptoms)

	s.AddTool(mcp.NewTool("ask_health_question",
		mcp.WithDescription("Answer a general health question. Answers are educational, not medical advice."),
		mcp.WithString("question", mcp.Required(), mcp.Description("The question")),
	), h.handleAsk)

	s.AddTool(mcp.NewTool("explain_health_term",
		mcp.WithDescription("Explain a medical term in plain language."),
		mcp.WithString("term", mcp.Required(), mcp.Description("The term to explain")),
	), h.handleExplain)

	return nil
}

func (h *InsightHandler) handleGenerateInsight(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	in, err := h.client.GenerateInsight(ctx)
	if err != nil {
		h.log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("generate_insight failed")
		return errorResult("generate insight", err)
	}
	h.log.Debug().Str("insight_id", in.ID).Dur("elapsed", time.Since(start)).Msg("generate_insight completed")
	return jsonResult(in)
}

func (h *InsightHandler) handleAnalyzeSymptoms(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := h.client.AnalyzeSymptoms(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("analyze_symptoms failed")
		return errorResult("analyze symptoms", err)
	}
	return mcp.NewToolResultText(text), nil
}

func (h *InsightHandler) handleAsk(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	q, err := req.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := h.client.Ask(ctx, q)
	if err != nil {
		h.log.Error().Err(err).Msg("ask_health_question failed")
		return errorResult("answer question", err)
	}
	return mcp.NewToolResultText(text), nil
}

func (h *InsightHandler) handleExplain(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	term, err := req.RequireString("term")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := h.client.ExplainTerm(ctx, term)
	if err != nil {
		h.log.Error().Err(err).Str("term", term).Msg("explain_health_term failed")
		return errorResult("explain term", err)
	}
	return mcp.NewToolResultText(text), nil
}
