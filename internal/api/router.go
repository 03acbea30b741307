package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/api/recovery"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/events"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/services"
)

// Deps are the components the router wires to handlers.
type Deps struct {
	Journal   *services.JournalService
	Insights  *services.InsightService
	Bus       *events.Bus
	Healthy   func() bool
	Unhealthy func() []string
	Log       zerolog.Logger
}

// NewRouter registers every route of the journal API.
func NewRouter(d Deps) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware(d.Log))

	// Journal
	jh := NewJournalHandler(d.Journal, d.Log)
	root.HandleFunc("/api/entries", jh.ListEntries).Methods("GET")
	root.HandleFunc("/api/entries", jh.CreateEntry).Methods("POST")
	root.HandleFunc("/api/vitals", jh.ListVitals).Methods("GET")
	root.HandleFunc("/api/vitals", jh.CreateVital).Methods("POST")
	root.HandleFunc("/api/medications", jh.ListMedications).Methods("GET")
	root.HandleFunc("/api/medications", jh.CreateMedication).Methods("POST")
	root.HandleFunc("/api/goals", jh.ListGoals).Methods("GET")
	root.HandleFunc("/api/goals", jh.CreateGoal).Methods("POST")
	root.HandleFunc("/api/goals/{goalId}", jh.GetGoal).Methods("GET")
	root.HandleFunc("/api/goals/{goalId}/progress", jh.UpdateGoalProgress).Methods("PUT")
	root.HandleFunc("/api/insights", jh.ListInsights).Methods("GET")
	root.HandleFunc("/api/summary", jh.Summary).Methods("GET")

	// Completion-backed
	ih := NewInsightHandler(d.Insights, d.Log)
	root.HandleFunc("/api/insights/generate", ih.GenerateInsight).Methods("POST")
	root.HandleFunc("/api/analysis/symptoms", ih.AnalyzeSymptoms).Methods("POST")
	root.HandleFunc("/api/terms/explain", ih.ExplainTerm).Methods("POST")
	root.HandleFunc("/api/questions", ih.Ask).Methods("POST")
	root.HandleFunc("/api/goals/{goalId}/plan", ih.PlanGoal).Methods("POST")

	// Change stream
	if d.Bus != nil {
		eh := NewEventsHandler(d.Bus, d.Log)
		root.HandleFunc("/api/events", eh.Stream).Methods("GET")
	}

	// Health & metrics
	hh := NewHealthHandler(d.Healthy, d.Unhealthy)
	root.HandleFunc("/api/health", hh.CheckHealth).Methods("GET")
	root.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return root
}
