package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhatiakavisha/AI-Health-Companion/client"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/api"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/insight"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/journal"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/model"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/services"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/store/memstore"
)

type scriptedCompleter struct {
	mu    sync.Mutex
	reply string
	err   error
}

func (s *scriptedCompleter) Complete(context.Context, string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reply, s.err
}

func (s *scriptedCompleter) set(reply string, err error) {
	s.mu.Lock()
	s.reply, s.err = reply, err
	s.mu.Unlock()
}

func newBackend(t *testing.T, opts ...journal.Option) (*client.Client, *scriptedCompleter) {
	t.Helper()
	j := journal.New(memstore.New(), zerolog.Nop(), opts...)
	j.Load(context.Background())
	ai := &scriptedCompleter{}
	ts := httptest.NewServer(api.NewRouter(api.Deps{
		Journal:  services.NewJournalService(j),
		Insights: services.NewInsightService(j, insight.NewClient(ai, zerolog.Nop()), zerolog.Nop()),
		Log:      zerolog.Nop(),
	}))
	t.Cleanup(ts.Close)
	sdk, err := client.New(ts.URL)
	require.NoError(t, err)
	return sdk, ai
}

func call(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: args}}
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", res.Content[0])
	return tc.Text
}

func TestLogSymptomAndListRecentEntries(t *testing.T) {
	sdk, _ := newBackend(t)
	h := NewJournalHandler(sdk, zerolog.Nop())
	ctx := context.Background()

	res, err := h.handleLogSymptom(ctx, call(map[string]any{
		"title": "Nausea", "severity": "moderate", "tags": []any{"stomach"},
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))

	var entry model.HealthEntry
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &entry))
	assert.Equal(t, model.EntrySymptom, entry.Type)
	assert.Equal(t, model.SeverityModerate, entry.Severity)
	assert.Equal(t, []string{"stomach"}, entry.Tags)

	res, err = h.handleListRecentEntries(ctx, call(map[string]any{"days": float64(3)}))
	require.NoError(t, err)
	var list struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &list))
	assert.Equal(t, 1, list.Count)
}

func TestListRecentEntries_DefaultWindow(t *testing.T) {
	var mu sync.Mutex
	now := time.Now().AddDate(0, 0, -60)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	sdk, _ := newBackend(t, journal.WithClock(clock))
	h := NewJournalHandler(sdk, zerolog.Nop())
	ctx := context.Background()

	_, err := sdk.AddEntry(ctx, client.NewEntry{Type: model.EntrySymptom, Title: "Old cough", Severity: model.SeverityMild})
	require.NoError(t, err)
	mu.Lock()
	now = time.Now()
	mu.Unlock()
	_, err = sdk.AddEntry(ctx, client.NewEntry{Type: model.EntrySymptom, Title: "Headache", Severity: model.SeverityMild})
	require.NoError(t, err)

	count := func(args map[string]any) int {
		res, err := h.handleListRecentEntries(ctx, call(args))
		require.NoError(t, err)
		require.False(t, res.IsError, text(t, res))
		var list struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal([]byte(text(t, res)), &list))
		return list.Count
	}
	assert.Equal(t, 1, count(nil))
	assert.Equal(t, 1, count(map[string]any{"days": float64(0)}))
	assert.Equal(t, 1, count(map[string]any{"days": float64(-5)}))
	assert.Equal(t, 2, count(map[string]any{"days": float64(90)}))
	assert.Equal(t, 2, count(map[string]any{"days": float64(5000)}))
}

func TestLogSymptom_MissingTitle(t *testing.T) {
	sdk, _ := newBackend(t)
	h := NewJournalHandler(sdk, zerolog.Nop())
	res, err := h.handleLogSymptom(context.Background(), call(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestRecordVital_BloodPressure(t *testing.T) {
	sdk, _ := newBackend(t)
	h := NewJournalHandler(sdk, zerolog.Nop())
	res, err := h.handleRecordVital(context.Background(), call(map[string]any{
		"type": "blood_pressure", "systolic": float64(130), "diastolic": float64(85),
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))

	var v model.VitalSign
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &v))
	assert.Equal(t, float64(130), v.Value)
	assert.Equal(t, "mmHg", v.Unit)
}

func TestUpdateGoalProgress(t *testing.T) {
	sdk, _ := newBackend(t)
	h := NewJournalHandler(sdk, zerolog.Nop())
	ctx := context.Background()

	g, err := sdk.AddGoal(ctx, client.NewGoal{
		Title: "Lose weight", Category: model.GoalFitness, TargetValue: 10, Unit: "lbs", TargetDate: "2030-01-01",
	})
	require.NoError(t, err)

	res, err := h.handleUpdateGoalProgress(ctx, call(map[string]any{"goal_id": g.ID, "current_value": float64(12)}))
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))
	var got client.Goal
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
	assert.Equal(t, model.GoalCompleted, got.Status)
	assert.InDelta(t, 100, got.ProgressPercent, 0.001)

	res, err = h.handleUpdateGoalProgress(ctx, call(map[string]any{"goal_id": "goal_missing", "current_value": float64(1)}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "404")
}

func TestInsightTools(t *testing.T) {
	sdk, ai := newBackend(t)
	h := NewInsightHandler(sdk, zerolog.Nop())
	ctx := context.Background()

	ai.set("Hypertension is high blood pressure.", nil)
	res, err := h.handleExplain(ctx, call(map[string]any{"term": "hypertension"}))
	require.NoError(t, err)
	assert.Equal(t, "Hypertension is high blood pressure.", text(t, res))

	ai.set("", errors.New("quota exceeded"))
	res, err = h.handleAsk(ctx, call(map[string]any{"question": "Is coffee bad?"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, upstreamMessage, text(t, res))

	// generation still succeeds with the fallback insight
	res, err = h.handleGenerateInsight(ctx, call(nil))
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))
	var in model.HealthInsight
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &in))
	assert.Equal(t, model.InsightInfo, in.Severity)

	res, err = h.handleAnalyzeSymptoms(ctx, call(nil))
	require.NoError(t, err)
	assert.True(t, res.IsError, "no symptoms logged")
}

func TestRegisterTools(t *testing.T) {
	sdk, _ := newBackend(t)
	s := server.NewMCPServer("test", "0.0.0", server.WithToolCapabilities(true))
	for _, r := range []ToolRegisterer{NewJournalHandler(sdk, zerolog.Nop()), NewInsightHandler(sdk, zerolog.Nop())} {
		require.NoError(t, r.RegisterTools(s))
	}
}
