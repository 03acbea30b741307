package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/api/respond"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/services"
)

// InsightHandler exposes the completion-backed operations.
type InsightHandler struct {
	svc *services.InsightService
	log zerolog.Logger
}

func NewInsightHandler(svc *services.InsightService, log zerolog.Logger) *InsightHandler {
	return &InsightHandler{svc: svc, log: log}
}

// GenerateInsight POST /api/insights/generate
// Always stores and returns an insight; upstream failures yield the fallback.
func (h *InsightHandler) GenerateInsight(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusCreated, h.svc.GenerateInsight(r.Context()))
}

// AnalyzeSymptoms POST /api/analysis/symptoms
func (h *InsightHandler) AnalyzeSymptoms(w http.ResponseWriter, r *http.Request) {
	text, err := h.svc.AnalyzeSymptoms(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"analysis": text})
}

// ExplainTerm POST /api/terms/explain
func (h *InsightHandler) ExplainTerm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Term string `json:"term"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	text, err := h.svc.ExplainTerm(r.Context(), req.Term)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"term": req.Term, "explanation": text})
}

// Ask POST /api/questions
func (h *InsightHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	text, err := h.svc.Ask(r.Context(), req.Question)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"question": req.Question, "answer": text})
}

// PlanGoal POST /api/goals/{goalId}/plan
func (h *InsightHandler) PlanGoal(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["goalId"]
	text, err := h.svc.PlanGoal(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"goalId": id, "plan": text})
}
