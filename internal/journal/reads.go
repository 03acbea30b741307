package journal

import (
	"slices"
	"time"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/model"
)

const (
	DefaultEntryDays = 7
	DefaultVitalDays = 30
)

func cutoff(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

// RecentEntries returns entries strictly newer than now minus days.
// Non-positive days means DefaultEntryDays.
func (j *Journal) RecentEntries(days int) []model.HealthEntry {
	if days <= 0 {
		days = DefaultEntryDays
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	from := cutoff(j.now(), days)
	out := []model.HealthEntry{}
	for _, e := range j.entries {
		if e.DateTime.After(from) {
			out = append(out, e.Clone())
		}
	}
	return out
}

// RecentVitals returns vitals strictly newer than now minus days.
// Non-positive days means DefaultVitalDays.
func (j *Journal) RecentVitals(days int) []model.VitalSign {
	if days <= 0 {
		days = DefaultVitalDays
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	from := cutoff(j.now(), days)
	out := []model.VitalSign{}
	for _, v := range j.vitals {
		if v.DateTime.After(from) {
			out = append(out, v)
		}
	}
	return out
}

func (j *Journal) ActiveMedications() []model.Medication {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := []model.Medication{}
	for _, m := range j.medications {
		if m.IsActive {
			out = append(out, m.Clone())
		}
	}
	return out
}

func (j *Journal) ActiveGoals() []model.HealthGoal {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := []model.HealthGoal{}
	for _, g := range j.goals {
		if g.Status == model.GoalInProgress {
			out = append(out, g)
		}
	}
	return out
}

// Symptoms returns up to limit symptom entries, newest first. limit <= 0 returns all.
func (j *Journal) Symptoms(limit int) []model.HealthEntry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := []model.HealthEntry{}
	for _, e := range j.entries {
		if e.Type != model.EntrySymptom {
			continue
		}
		out = append(out, e.Clone())
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Goal looks up a goal by id.
func (j *Journal) Goal(id string) (model.HealthGoal, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	idx := slices.IndexFunc(j.goals, func(g model.HealthGoal) bool { return g.ID == id })
	if idx < 0 {
		return model.HealthGoal{}, false
	}
	return j.goals[idx], true
}

func (j *Journal) Entries() []model.HealthEntry {
	j.mu.Lock()
	defer j.mu.Unlock()
	return cloneAll(j.entries, model.HealthEntry.Clone)
}

func (j *Journal) Vitals() []model.VitalSign {
	j.mu.Lock()
	defer j.mu.Unlock()
	return slices.Clone(j.vitals)
}

func (j *Journal) Medications() []model.Medication {
	j.mu.Lock()
	defer j.mu.Unlock()
	return cloneAll(j.medications, model.Medication.Clone)
}

func (j *Journal) Goals() []model.HealthGoal {
	j.mu.Lock()
	defer j.mu.Unlock()
	return slices.Clone(j.goals)
}

func (j *Journal) Insights() []model.HealthInsight {
	j.mu.Lock()
	defer j.mu.Unlock()
	return cloneAll(j.insights, model.HealthInsight.Clone)
}

// Summary counts what the dashboard shows.
func (j *Journal) Summary() model.Summary {
	j.mu.Lock()
	defer j.mu.Unlock()
	s := model.Summary{
		VitalsRecorded: len(j.vitals),
		Insights:       len(j.insights),
		Entries:        len(j.entries),
	}
	for _, m := range j.medications {
		if m.IsActive {
			s.ActiveMedications++
		}
	}
	for _, g := range j.goals {
		if g.Status == model.GoalInProgress {
			s.ActiveGoals++
		}
	}
	return s
}
