package handlers

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/bhatiakavisha/AI-Health-Companion/client"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/journal"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/model"
)

// JournalHandler exposes log_symptom, record_vital, list_recent_entries,
// list_goals, update_goal_progress and get_summary.
type JournalHandler struct {
	client *client.Client
	log    zerolog.Logger
}

func NewJournalHandler(c *client.Client, log zerolog.Logger) *JournalHandler {
	return &JournalHandler{client: c, log: log}
}

const maxRecentDays = 365

// RegisterTools registers journal tools.
func (h *JournalHandler) RegisterTools(s *server.MCPServer) error {
	s.AddTool(mcp.NewTool("log_symptom",
		mcp.WithDescription("Log a symptom the user is experiencing to their health journal."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Short symptom name, e.g. Headache")),
		mcp.WithString("description", mcp.Description("Details in the user's words")),
		mcp.WithString("severity", mcp.Description("mild, moderate or severe (default mild)"),
			mcp.Enum(string(model.SeverityMild), string(model.SeverityModerate), string(model.SeveritySevere))),
		mcp.WithArray("tags", mcp.Description("Optional tags"), mcp.Items(map[string]any{"type": "string"})),
	), h.handleLogSymptom)

	s.AddTool(mcp.NewTool("record_vital",
		mcp.WithDescription("Record a vital sign measurement. For blood pressure pass systolic and diastolic."),
		mcp.WithString("type", mcp.Required(), mcp.Description("Vital type"),
			mcp.Enum(string(model.VitalBloodPressure), string(model.VitalHeartRate), string(model.VitalTemperature),
				string(model.VitalWeight), string(model.VitalBloodSugar))),
		mcp.WithNumber("value", mcp.Description("Measured value (ignored for blood pressure when systolic is given)")),
		mcp.WithString("unit", mcp.Description("Unit; defaults per vital type")),
		mcp.WithNumber("systolic", mcp.Description("Systolic pressure in mmHg")),
		mcp.WithNumber("diastolic", mcp.Description("Diastolic pressure in mmHg")),
		mcp.WithString("notes", mcp.Description("Optional notes")),
	), h.handleRecordVital)

	s.AddTool(mcp.NewTool("list_recent_entries",
		mcp.WithDescription("List symptom and note entries from the last N days, newest first."),
		mcp.WithNumber("days", mcp.Description("Look-back window in days (1-365, default 7)")),
	), h.handleListRecentEntries)

	s.AddTool(mcp.NewTool("list_goals",
		mcp.WithDescription("List health goals with progress percentages."),
		mcp.WithBoolean("active_only", mcp.Description("Only goals still in progress")),
	), h.handleListGoals)

	s.AddTool(mcp.NewTool("update_goal_progress",
		mcp.WithDescription("Set the current value of a goal. The goal completes once the value reaches its target."),
		mcp.WithString("goal_id", mcp.Required(), mcp.Description("The goal ID")),
		mcp.WithNumber("current_value", mcp.Required(), mcp.Description("New current value")),
	), h.handleUpdateGoalProgress)

	s.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Counts of entries, vitals, active medications, active goals and insights."),
	), h.handleGetSummary)

	return nil
}

func (h *JournalHandler) handleLogSymptom(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	in := client.NewEntry{
		Type:        model.EntrySymptom,
		Title:       title,
		Description: req.GetString("description", ""),
		Severity:    model.Severity(req.GetString("severity", "")),
		Tags:        req.GetStringSlice("tags", nil),
	}

	start := time.Now()
	entry, err := h.client.AddEntry(ctx, in)
	if err != nil {
		h.log.Error().Err(err).Str("title", title).Dur("elapsed", time.Since(start)).Msg("log_symptom failed")
		return errorResult("log symptom", err)
	}
	h.log.Debug().Str("entry_id", entry.ID).Dur("elapsed", time.Since(start)).Msg("log_symptom completed")
	return jsonResult(entry)
}

func (h *JournalHandler) handleRecordVital(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	vt, err := req.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	in := client.NewVital{
		Type:  model.VitalType(vt),
		Value: req.GetFloat("value", 0),
		Unit:  req.GetString("unit", ""),
		Notes: req.GetString("notes", ""),
	}
	args := req.GetArguments()
	if _, ok := args["systolic"]; ok {
		v := req.GetFloat("systolic", 0)
		in.Systolic = &v
	}
	if _, ok := args["diastolic"]; ok {
		v := req.GetFloat("diastolic", 0)
		in.Diastolic = &v
	}

	vital, err := h.client.AddVital(ctx, in)
	if err != nil {
		h.log.Error().Err(err).Str("type", vt).Msg("record_vital failed")
		return errorResult("record vital", err)
	}
	return jsonResult(vital)
}

func (h *JournalHandler) handleListRecentEntries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days := req.GetInt("days", journal.DefaultEntryDays)
	switch {
	case days <= 0:
		days = journal.DefaultEntryDays
	case days > maxRecentDays:
		days = maxRecentDays
	}
	entries, err := h.client.ListEntries(ctx, days)
	if err != nil {
		h.log.Error().Err(err).Int("days", days).Msg("list_recent_entries failed")
		return errorResult("list entries", err)
	}
	return jsonResult(map[string]interface{}{"entries": entries, "count": len(entries)})
}

func (h *JournalHandler) handleListGoals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	goals, err := h.client.ListGoals(ctx, req.GetBool("active_only", false))
	if err != nil {
		return errorResult("list goals", err)
	}
	return jsonResult(map[string]interface{}{"goals": goals, "count": len(goals)})
}

func (h *JournalHandler) handleUpdateGoalProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("goal_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	value, err := req.RequireFloat("current_value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	goal, err := h.client.UpdateGoalProgress(ctx, id, value)
	if err != nil {
		h.log.Error().Err(err).Str("goal_id", id).Msg("update_goal_progress failed")
		return errorResult("update goal progress", err)
	}
	return jsonResult(goal)
}

func (h *JournalHandler) handleGetSummary(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sum, err := h.client.Summary(ctx)
	if err != nil {
		return errorResult("get summary", err)
	}
	return jsonResult(sum)
}
