package services

import (
	"context"
	"fmt"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/journal"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/model"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/validate"
)

// JournalService validates submissions, fills form defaults and records them.
type JournalService struct {
	j *journal.Journal
}

func NewJournalService(j *journal.Journal) *JournalService {
	return &JournalService{j: j}
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", model.ErrValidation, err)
}

func (s *JournalService) AddEntry(ctx context.Context, in model.NewEntry) (model.HealthEntry, error) {
	if in.Severity == "" {
		in.Severity = model.SeverityMild
	}
	if err := validate.Entry(in); err != nil {
		return model.HealthEntry{}, invalid(err)
	}
	e, _ := s.j.AddEntry(ctx, in)
	return e, nil
}

// AddVital records a vital. Blood pressure readings with systolic/diastolic
// store the systolic value and, without notes, "<sys>/<dia> mmHg".
func (s *JournalService) AddVital(ctx context.Context, in model.NewVital) (model.VitalSign, error) {
	if err := validate.Vital(in); err != nil {
		return model.VitalSign{}, invalid(err)
	}
	if in.Type == model.VitalBloodPressure && in.Systolic != nil && in.Diastolic != nil {
		in.Value = *in.Systolic
		if in.Notes == "" {
			in.Notes = fmt.Sprintf("%g/%g mmHg", *in.Systolic, *in.Diastolic)
		}
	}
	if in.Unit == "" {
		in.Unit = in.Type.DefaultUnit()
	}
	v, _ := s.j.AddVital(ctx, in)
	return v, nil
}

func (s *JournalService) AddMedication(ctx context.Context, in model.NewMedication) (model.Medication, error) {
	if err := validate.Medication(in); err != nil {
		return model.Medication{}, invalid(err)
	}
	if len(in.Times) == 0 {
		in.Times = model.DefaultReminderTimes(in.Frequency)
	}
	m, _ := s.j.AddMedication(ctx, in)
	return m, nil
}

func (s *JournalService) AddGoal(ctx context.Context, in model.NewGoal) (model.HealthGoal, error) {
	if err := validate.Goal(in); err != nil {
		return model.HealthGoal{}, invalid(err)
	}
	g, _ := s.j.AddGoal(ctx, in)
	return g, nil
}

// UpdateGoalProgress sets progress and returns the updated goal.
// Unknown ids are reported as model.ErrNotFound; the journal itself is left untouched.
func (s *JournalService) UpdateGoalProgress(ctx context.Context, id string, current float64) (model.HealthGoal, error) {
	if current < 0 {
		return model.HealthGoal{}, invalid(fmt.Errorf("currentValue must not be negative"))
	}
	s.j.UpdateGoalProgress(ctx, id, current)
	g, ok := s.j.Goal(id)
	if !ok {
		return model.HealthGoal{}, fmt.Errorf("%w: goal %s", model.ErrNotFound, id)
	}
	return g, nil
}

func (s *JournalService) Goal(id string) (model.HealthGoal, error) {
	g, ok := s.j.Goal(id)
	if !ok {
		return model.HealthGoal{}, fmt.Errorf("%w: goal %s", model.ErrNotFound, id)
	}
	return g, nil
}

// Entries returns all entries, or only those of the last days when days > 0.
func (s *JournalService) Entries(days int) []model.HealthEntry {
	if days > 0 {
		return s.j.RecentEntries(days)
	}
	return s.j.Entries()
}

// Vitals returns all vitals, or only those of the last days when days > 0.
func (s *JournalService) Vitals(days int) []model.VitalSign {
	if days > 0 {
		return s.j.RecentVitals(days)
	}
	return s.j.Vitals()
}

func (s *JournalService) Medications(activeOnly bool) []model.Medication {
	if activeOnly {
		return s.j.ActiveMedications()
	}
	return s.j.Medications()
}

func (s *JournalService) Goals(activeOnly bool) []model.HealthGoal {
	if activeOnly {
		return s.j.ActiveGoals()
	}
	return s.j.Goals()
}

func (s *JournalService) Insights() []model.HealthInsight { return s.j.Insights() }

func (s *JournalService) Summary() model.Summary { return s.j.Summary() }
