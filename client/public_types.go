package client

import "github.com/bhatiakavisha/AI-Health-Companion/internal/model"

// Public type aliases so SDK consumers only import the client package.
type (
	// Requests
	NewEntry      = model.NewEntry
	NewVital      = model.NewVital
	NewMedication = model.NewMedication
	NewGoal       = model.NewGoal

	// Records
	HealthEntry   = model.HealthEntry
	VitalSign     = model.VitalSign
	Medication    = model.Medication
	HealthGoal    = model.HealthGoal
	HealthInsight = model.HealthInsight
	Summary       = model.Summary

	EntryType       = model.EntryType
	Severity        = model.Severity
	VitalType       = model.VitalType
	GoalCategory    = model.GoalCategory
	GoalStatus      = model.GoalStatus
	InsightSeverity = model.InsightSeverity
)

// Goal is a goal as the service reports it, with derived progress.
type Goal struct {
	HealthGoal
	ProgressPercent float64 `json:"progressPercent"`
}
