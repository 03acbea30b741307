package journal

import (
	"context"
	"slices"
	"time"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/events"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/model"
)

// AddEntry records a new entry as the newest one and returns it with the new collection.
func (j *Journal) AddEntry(ctx context.Context, in model.NewEntry) (model.HealthEntry, []model.HealthEntry) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	e := model.HealthEntry{
		ID:          model.NewID("entry", now),
		DateTime:    now,
		Type:        in.Type,
		Title:       in.Title,
		Description: in.Description,
		Data:        in.Data,
		Severity:    in.Severity,
		Tags:        in.Tags,
	}.Clone()
	if e.Tags == nil {
		e.Tags = []string{}
	}
	j.entries = prepend(j.entries, e)
	persist(ctx, j, KeyEntries, j.entries)
	j.publish(events.EventEntryAdded, e.ID)
	return e.Clone(), cloneAll(j.entries, model.HealthEntry.Clone)
}

// AddVital records a new vital sign as the newest one.
func (j *Journal) AddVital(ctx context.Context, in model.NewVital) (model.VitalSign, []model.VitalSign) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	v := model.VitalSign{
		ID:       model.NewID("vital", now),
		DateTime: now,
		Type:     in.Type,
		Value:    in.Value,
		Unit:     in.Unit,
		Notes:    in.Notes,
	}
	j.vitals = prepend(j.vitals, v)
	persist(ctx, j, KeyVitals, j.vitals)
	j.publish(events.EventVitalAdded, v.ID)
	return v, slices.Clone(j.vitals)
}

// AddMedication appends an active medication started now.
func (j *Journal) AddMedication(ctx context.Context, in model.NewMedication) (model.Medication, []model.Medication) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	m := model.Medication{
		ID:        model.NewID("med", now),
		Name:      in.Name,
		Dosage:    in.Dosage,
		Frequency: in.Frequency,
		Times:     in.Times,
		StartDate: now,
		EndDate:   in.EndDate,
		Notes:     in.Notes,
		IsActive:  true,
	}.Clone()
	if m.Times == nil {
		m.Times = []int{}
	}
	j.medications = append(j.medications, m)
	persist(ctx, j, KeyMedications, j.medications)
	j.publish(events.EventMedicationAdded, m.ID)
	return m.Clone(), cloneAll(j.medications, model.Medication.Clone)
}

// AddGoal appends an in-progress goal with zero progress.
func (j *Journal) AddGoal(ctx context.Context, in model.NewGoal) (model.HealthGoal, []model.HealthGoal) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	g := model.HealthGoal{
		ID:           model.NewID("goal", now),
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category,
		TargetValue:  in.TargetValue,
		Unit:         in.Unit,
		CurrentValue: 0,
		TargetDate:   in.TargetDate,
		CreatedAt:    now,
		Status:       model.GoalInProgress,
	}
	j.goals = append(j.goals, g)
	persist(ctx, j, KeyGoals, j.goals)
	j.publish(events.EventGoalAdded, g.ID)
	return g, slices.Clone(j.goals)
}

// UpdateGoalProgress sets the current value of goal id. Reaching the target
// marks the goal completed; a completed goal never reverts. An unknown id
// leaves the collection unchanged.
func (j *Journal) UpdateGoalProgress(ctx context.Context, id string, current float64) []model.HealthGoal {
	j.mu.Lock()
	defer j.mu.Unlock()

	idx := slices.IndexFunc(j.goals, func(g model.HealthGoal) bool { return g.ID == id })
	if idx < 0 {
		return slices.Clone(j.goals)
	}

	goals := slices.Clone(j.goals)
	g := &goals[idx]
	g.CurrentValue = current
	if current >= g.TargetValue {
		g.Status = model.GoalCompleted
	}
	j.goals = goals
	persist(ctx, j, KeyGoals, j.goals)
	j.publish(events.EventGoalProgressUpdated, id)
	return slices.Clone(j.goals)
}

// AddInsight stores a copy of a generated insight as the newest one, exactly as given.
func (j *Journal) AddInsight(ctx context.Context, in model.HealthInsight) []model.HealthInsight {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.insights = prepend(j.insights, in.Clone())
	persist(ctx, j, KeyInsights, j.insights)
	j.publish(events.EventInsightAdded, in.ID)
	return cloneAll(j.insights, model.HealthInsight.Clone)
}

// NewInsightID returns an id in the journal's format for a caller-built insight.
func (j *Journal) NewInsightID() string {
	return model.NewID("insight", j.now())
}

// Now exposes the journal clock.
func (j *Journal) Now() time.Time { return j.now() }
