package model

import "time"

// EntryType classifies a journal entry.
type EntryType string

const (
	EntrySymptom    EntryType = "symptom"
	EntryVital      EntryType = "vital"
	EntryMedication EntryType = "medication"
	EntryNote       EntryType = "note"
)

// Severity grades how bad a logged symptom is.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// VitalType names a physiological measurement.
type VitalType string

const (
	VitalBloodPressure VitalType = "blood_pressure"
	VitalHeartRate     VitalType = "heart_rate"
	VitalTemperature   VitalType = "temperature"
	VitalWeight        VitalType = "weight"
	VitalBloodSugar    VitalType = "blood_sugar"
)

// GoalCategory groups goals on the dashboard.
type GoalCategory string

const (
	GoalFitness        GoalCategory = "fitness"
	GoalNutrition      GoalCategory = "nutrition"
	GoalMentalHealth   GoalCategory = "mental_health"
	GoalChronicDisease GoalCategory = "chronic_disease"
)

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalInProgress GoalStatus = "in_progress"
	GoalCompleted  GoalStatus = "completed"
	GoalPaused     GoalStatus = "paused"
)

// InsightType classifies a generated insight.
type InsightType string

const (
	InsightSymptomAnalysis InsightType = "symptom_analysis"
	InsightTrend           InsightType = "trend"
	InsightRecommendation  InsightType = "recommendation"
	InsightAlert           InsightType = "alert"
)

// InsightSeverity grades how urgent an insight is.
type InsightSeverity string

const (
	InsightInfo    InsightSeverity = "info"
	InsightWarning InsightSeverity = "warning"
	InsightUrgent  InsightSeverity = "urgent"
)

// HealthEntry is a logged symptom or free-text note. Immutable once created.
type HealthEntry struct {
	ID          string                 `json:"id"`
	DateTime    time.Time              `json:"dateTime"`
	Type        EntryType              `json:"type"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data"`
	Severity    Severity               `json:"severity"`
	Tags        []string               `json:"tags"`
}

// VitalSign is a single numeric measurement with a unit.
type VitalSign struct {
	ID       string    `json:"id"`
	DateTime time.Time `json:"dateTime"`
	Type     VitalType `json:"type"`
	Value    float64   `json:"value"`
	Unit     string    `json:"unit"`
	Notes    string    `json:"notes,omitempty"`
}

// Medication is a tracked prescription. Times holds reminder hours of day.
type Medication struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Dosage    string     `json:"dosage"`
	Frequency string     `json:"frequency"`
	Times     []int      `json:"times"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	IsActive  bool       `json:"isActive"`
}

// HealthGoal is a user-defined target metric with progress tracking.
// TargetDate keeps the submitted calendar date (YYYY-MM-DD or RFC3339).
type HealthGoal struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     GoalCategory `json:"category"`
	TargetValue  float64      `json:"targetValue"`
	Unit         string       `json:"unit"`
	CurrentValue float64      `json:"currentValue"`
	TargetDate   string       `json:"targetDate"`
	CreatedAt    time.Time    `json:"createdAt"`
	Status       GoalStatus   `json:"status"`
}

// HealthInsight is a generated (or fallback) summary.
type HealthInsight struct {
	ID              string                 `json:"id"`
	GeneratedAt     time.Time              `json:"generatedAt"`
	Type            InsightType            `json:"type"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Explanation     string                 `json:"explanation,omitempty"`
	Severity        InsightSeverity        `json:"severity"`
	RelatedData     map[string]interface{} `json:"relatedData"`
	Recommendations []string               `json:"recommendations"`
}

// NewEntry carries the caller-supplied fields of a HealthEntry.
type NewEntry struct {
	Type        EntryType              `json:"type"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data,omitempty"`
	Severity    Severity               `json:"severity"`
	Tags        []string               `json:"tags"`
}

// NewVital carries the caller-supplied fields of a VitalSign.
// Systolic/Diastolic are only read for blood pressure.
type NewVital struct {
	Type      VitalType `json:"type"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Notes     string    `json:"notes,omitempty"`
	Systolic  *float64  `json:"systolic,omitempty"`
	Diastolic *float64  `json:"diastolic,omitempty"`
}

// NewMedication carries the caller-supplied fields of a Medication.
type NewMedication struct {
	Name      string     `json:"name"`
	Dosage    string     `json:"dosage"`
	Frequency string     `json:"frequency"`
	Times     []int      `json:"times"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// NewGoal carries the caller-supplied fields of a HealthGoal.
type NewGoal struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    GoalCategory `json:"category"`
	TargetValue float64      `json:"targetValue"`
	Unit        string       `json:"unit"`
	TargetDate  string       `json:"targetDate"`
}

// Summary is the dashboard view over the journal.
type Summary struct {
	VitalsRecorded    int `json:"vitalsRecorded"`
	ActiveMedications int `json:"activeMedications"`
	ActiveGoals       int `json:"activeGoals"`
	Insights          int `json:"insights"`
	Entries           int `json:"entries"`
}
