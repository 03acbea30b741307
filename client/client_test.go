package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhatiakavisha/AI-Health-Companion/client"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/api"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/events"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/insight"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/journal"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/model"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/services"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/store/memstore"
)

type fakeCompleter struct {
	mu    sync.Mutex
	reply string
	err   error
}

func (f *fakeCompleter) Complete(context.Context, string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reply, f.err
}

func (f *fakeCompleter) set(reply string, err error) {
	f.mu.Lock()
	f.reply, f.err = reply, err
	f.mu.Unlock()
}

func newTestClient(t *testing.T) (*client.Client, *fakeCompleter) {
	t.Helper()
	bus := events.NewBus(16)
	j := journal.New(memstore.New(), zerolog.Nop(), journal.WithBus(bus))
	j.Load(context.Background())
	ai := &fakeCompleter{}
	router := api.NewRouter(api.Deps{
		Journal:  services.NewJournalService(j),
		Insights: services.NewInsightService(j, insight.NewClient(ai, zerolog.Nop()), zerolog.Nop()),
		Bus:      bus,
		Log:      zerolog.Nop(),
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL, client.WithHTTPTimeout(5*time.Second))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, ai
}

func TestNew_RejectsEmptyBaseURL(t *testing.T) {
	_, err := client.New("")
	require.Error(t, err)
}

func TestNew_OptionErrorsPropagate(t *testing.T) {
	_, err := client.New("http://localhost", client.WithHTTPTimeout(0))
	require.Error(t, err)
	_, err = client.New("http://localhost", client.WithRetries(-1))
	require.Error(t, err)
}

func TestWithRetries_OnlyRetriesReads(t *testing.T) {
	var mu sync.Mutex
	hits := map[string]int{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits[r.Method]++
		mu.Unlock()
		conn, _, err := w.(http.Hijacker).Hijack()
		if err == nil {
			_ = conn.Close()
		}
	}))
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL, client.WithRetries(2), client.WithHTTPTimeout(2*time.Second))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	_, err = c.AddEntry(ctx, client.NewEntry{Type: model.EntrySymptom, Title: "Headache", Severity: model.SeverityMild})
	require.Error(t, err)
	_, err = c.ListGoals(ctx, false)
	require.Error(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, hits[http.MethodPost])
	assert.Equal(t, 3, hits[http.MethodGet])
}

func TestHealth(t *testing.T) {
	c, _ := newTestClient(t)
	h, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.True(t, h.Healthy())
}

func TestEntriesAndVitals(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	e, err := c.AddEntry(ctx, client.NewEntry{Type: model.EntrySymptom, Title: "Headache", Description: "dull"})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, model.SeverityMild, e.Severity)

	entries, err := c.ListEntries(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, e.ID, entries[0].ID)

	v, err := c.AddVital(ctx, client.NewVital{Type: model.VitalHeartRate, Value: 72})
	require.NoError(t, err)
	assert.Equal(t, "bpm", v.Unit)

	vitals, err := c.ListVitals(ctx, 30)
	require.NoError(t, err)
	assert.Len(t, vitals, 1)
}

func TestValidationErrorsMatchSentinel(t *testing.T) {
	c, _ := newTestClient(t)
	_, err := c.AddEntry(context.Background(), client.NewEntry{Type: model.EntrySymptom})
	require.Error(t, err)
	assert.True(t, errors.Is(err, client.ErrValidation))

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
}

func TestMedications(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	m, err := c.AddMedication(ctx, client.NewMedication{Name: "Metformin", Dosage: "500mg", Frequency: "twice_daily"})
	require.NoError(t, err)
	assert.True(t, m.IsActive)

	active, err := c.ListMedications(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestGoalLifecycle(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	g, err := c.AddGoal(ctx, client.NewGoal{
		Title: "Lose weight", Category: model.GoalFitness,
		TargetValue: 10, Unit: "lbs", TargetDate: "2030-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, model.GoalInProgress, g.Status)
	assert.Zero(t, g.ProgressPercent)

	g, err = c.UpdateGoalProgress(ctx, g.ID, 5)
	require.NoError(t, err)
	assert.InDelta(t, 50, g.ProgressPercent, 0.001)

	g, err = c.UpdateGoalProgress(ctx, g.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, model.GoalCompleted, g.Status)

	got, err := c.GetGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GoalCompleted, got.Status)

	active, err := c.ListGoals(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = c.GetGoal(ctx, "goal_missing")
	assert.True(t, errors.Is(err, client.ErrNotFound))
	_, err = c.UpdateGoalProgress(ctx, "goal_missing", 1)
	assert.True(t, errors.Is(err, client.ErrNotFound))
}

func TestInsightOperations(t *testing.T) {
	c, ai := newTestClient(t)
	ctx := context.Background()

	_, err := c.AnalyzeSymptoms(ctx)
	assert.True(t, errors.Is(err, client.ErrValidation), "no symptoms yet")

	_, err = c.AddEntry(ctx, client.NewEntry{Type: model.EntrySymptom, Title: "Cough", Description: "dry"})
	require.NoError(t, err)

	ai.set("Probably a cold.", nil)
	text, err := c.AnalyzeSymptoms(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Probably a cold.", text)

	ai.set("", errors.New("quota"))
	_, err = c.Ask(ctx, "Is this serious?")
	assert.True(t, errors.Is(err, client.ErrUpstream))

	// generation failures still produce a stored fallback insight
	in, err := c.GenerateInsight(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.InsightInfo, in.Severity)

	list, err := c.ListInsights(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	ai.set("A sphygmomanometer measures blood pressure.", nil)
	expl, err := c.ExplainTerm(ctx, "sphygmomanometer")
	require.NoError(t, err)
	assert.Contains(t, expl, "blood pressure")

	sum, err := c.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Insights)
	assert.Equal(t, 1, sum.Entries)
}

func TestPlanGoal(t *testing.T) {
	c, ai := newTestClient(t)
	ctx := context.Background()

	_, err := c.PlanGoal(ctx, "goal_missing")
	assert.True(t, errors.Is(err, client.ErrNotFound))

	g, err := c.AddGoal(ctx, client.NewGoal{
		Title: "Walk more", Category: model.GoalFitness,
		TargetValue: 10000, Unit: "steps", TargetDate: "2030-06-01",
	})
	require.NoError(t, err)

	ai.set("Week 1: walk 15 minutes a day.", nil)
	plan, err := c.PlanGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.Contains(t, plan, "Week 1")
}

func TestClose_IsIdempotentAndBlocksCalls(t *testing.T) {
	c, _ := newTestClient(t)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	_, err := c.Summary(context.Background())
	assert.ErrorIs(t, err, client.ErrClosed)
}
