package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/api/respond"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/model"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/services"
)

// JournalHandler is the HTTP transport over JournalService.
type JournalHandler struct {
	svc *services.JournalService
	log zerolog.Logger
}

func NewJournalHandler(svc *services.JournalService, log zerolog.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, log: log}
}

// GoalView is a goal with its derived progress percentage.
type GoalView struct {
	model.HealthGoal
	ProgressPercent float64 `json:"progressPercent"`
}

func goalView(g model.HealthGoal) GoalView {
	return GoalView{HealthGoal: g, ProgressPercent: g.ProgressPercent()}
}

// ListEntries GET /api/entries?days=N
func (h *JournalHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	days, err := intQuery(r, "days")
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	es := h.svc.Entries(days)
	respond.WriteList(w, "entries", es)
}

// CreateEntry POST /api/entries
func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req model.NewEntry
	if !decodeJSON(w, r, &req) {
		return
	}
	e, err := h.svc.AddEntry(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, e)
}

// ListVitals GET /api/vitals?days=N
func (h *JournalHandler) ListVitals(w http.ResponseWriter, r *http.Request) {
	days, err := intQuery(r, "days")
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	vs := h.svc.Vitals(days)
	respond.WriteList(w, "vitals", vs)
}

// CreateVital POST /api/vitals
func (h *JournalHandler) CreateVital(w http.ResponseWriter, r *http.Request) {
	var req model.NewVital
	if !decodeJSON(w, r, &req) {
		return
	}
	v, err := h.svc.AddVital(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, v)
}

// ListMedications GET /api/medications?active=true
func (h *JournalHandler) ListMedications(w http.ResponseWriter, r *http.Request) {
	active, err := boolQuery(r, "active")
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	ms := h.svc.Medications(active)
	respond.WriteList(w, "medications", ms)
}

// CreateMedication POST /api/medications
func (h *JournalHandler) CreateMedication(w http.ResponseWriter, r *http.Request) {
	var req model.NewMedication
	if !decodeJSON(w, r, &req) {
		return
	}
	m, err := h.svc.AddMedication(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, m)
}

// ListGoals GET /api/goals?active=true
func (h *JournalHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	active, err := boolQuery(r, "active")
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	gs := h.svc.Goals(active)
	views := make([]GoalView, 0, len(gs))
	for _, g := range gs {
		views = append(views, goalView(g))
	}
	respond.WriteList(w, "goals", views)
}

// CreateGoal POST /api/goals
func (h *JournalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req model.NewGoal
	if !decodeJSON(w, r, &req) {
		return
	}
	g, err := h.svc.AddGoal(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, goalView(g))
}

// GetGoal GET /api/goals/{goalId}
func (h *JournalHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.Goal(mux.Vars(r)["goalId"])
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, goalView(g))
}

// UpdateGoalProgress PUT /api/goals/{goalId}/progress
func (h *JournalHandler) UpdateGoalProgress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CurrentValue *float64 `json:"currentValue"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.CurrentValue == nil {
		respond.WriteBadRequest(w, "currentValue is required")
		return
	}
	g, err := h.svc.UpdateGoalProgress(r.Context(), mux.Vars(r)["goalId"], *req.CurrentValue)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, goalView(g))
}

// ListInsights GET /api/insights
func (h *JournalHandler) ListInsights(w http.ResponseWriter, r *http.Request) {
	is := h.svc.Insights()
	respond.WriteList(w, "insights", is)
}

// Summary GET /api/summary
func (h *JournalHandler) Summary(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, h.svc.Summary())
}
