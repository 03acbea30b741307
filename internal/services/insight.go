package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/insight"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/journal"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/metrics"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/model"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/validate"
)

// ErrNoSymptoms is returned when symptom analysis is asked for with nothing logged.
var ErrNoSymptoms = fmt.Errorf("%w: no symptoms logged yet", model.ErrValidation)

const (
	analysisSymptomLimit = 10
	analysisVitalDays    = 7
)

// InsightService feeds journal snapshots to the insight client and records results.
type InsightService struct {
	j   *journal.Journal
	ai  *insight.Client
	log zerolog.Logger
}

func NewInsightService(j *journal.Journal, ai *insight.Client, log zerolog.Logger) *InsightService {
	return &InsightService{j: j, ai: ai, log: log}
}

// AnalyzeSymptoms sends the latest symptoms and last week's vitals for analysis.
func (s *InsightService) AnalyzeSymptoms(ctx context.Context) (string, error) {
	symptoms := s.j.Symptoms(analysisSymptomLimit)
	if len(symptoms) == 0 {
		return "", ErrNoSymptoms
	}
	return s.ai.AnalyzeSymptoms(ctx, symptoms, s.j.RecentVitals(analysisVitalDays))
}

// GenerateInsight always records an insight: the generated one, or the
// fallback when generation or parsing fails.
func (s *InsightService) GenerateInsight(ctx context.Context) model.HealthInsight {
	entries := s.j.RecentEntries(journal.DefaultEntryDays)
	vitals := s.j.RecentVitals(journal.DefaultVitalDays)
	goals := s.j.ActiveGoals()

	in, err := s.ai.GenerateHealthInsight(ctx, entries, vitals, goals)
	if err != nil {
		var pe *insight.ParseError
		ev := s.log.Warn().Err(err)
		if errors.As(err, &pe) {
			ev = ev.Int("reply_len", len(pe.Raw))
		}
		ev.Msg("insight generation failed, storing fallback")
		metrics.InsightFallback()
		in = insight.Fallback(s.j.Now())
	}
	s.j.AddInsight(ctx, in)
	return in
}

func (s *InsightService) ExplainTerm(ctx context.Context, term string) (string, error) {
	if err := validate.Term(term); err != nil {
		return "", invalid(err)
	}
	return s.ai.ExplainHealthTerm(ctx, term)
}

// Ask answers a question with last week's entries and the active goals as context.
func (s *InsightService) Ask(ctx context.Context, question string) (string, error) {
	if err := validate.Question(question); err != nil {
		return "", invalid(err)
	}
	return s.ai.GetHealthAnswer(ctx, question, s.j.RecentEntries(journal.DefaultEntryDays), s.j.ActiveGoals())
}

func (s *InsightService) PlanGoal(ctx context.Context, goalID string) (string, error) {
	g, ok := s.j.Goal(goalID)
	if !ok {
		return "", fmt.Errorf("%w: goal %s", model.ErrNotFound, goalID)
	}
	return s.ai.GenerateHealthPlan(ctx, g, s.j.Entries())
}
