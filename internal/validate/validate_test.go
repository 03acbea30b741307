package validate

import (
	"strings"
	"testing"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/model"
)

func float(v float64) *float64 { return &v }

func TestEntry(t *testing.T) {
	tests := []struct {
		name     string
		in       model.NewEntry
		errorMsg string
	}{
		{"valid", model.NewEntry{Type: model.EntrySymptom, Title: "Headache", Severity: model.SeverityMild}, ""},
		{"blank title", model.NewEntry{Type: model.EntrySymptom, Title: "  ", Severity: model.SeverityMild}, "title is required"},
		{"long title", model.NewEntry{Type: model.EntryNote, Title: strings.Repeat("a", 201), Severity: model.SeverityMild}, "title exceeds 200 characters"},
		{"bad type", model.NewEntry{Type: "diary", Title: "x", Severity: model.SeverityMild}, `type "diary" is not one of symptom, vital, medication, note`},
		{"bad severity", model.NewEntry{Type: model.EntryNote, Title: "x"}, `severity "" is not one of mild, moderate, severe`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Entry(tt.in)
			if tt.errorMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.errorMsg {
				t.Fatalf("expected error %q, got %v", tt.errorMsg, err)
			}
		})
	}
}

func TestVital(t *testing.T) {
	if err := Vital(model.NewVital{Type: model.VitalHeartRate, Value: 70}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Vital(model.NewVital{Type: "steps"}); err == nil {
		t.Fatalf("expected error for unknown vital type")
	}
	if err := Vital(model.NewVital{Type: model.VitalBloodPressure, Systolic: float(120)}); err == nil {
		t.Fatalf("expected error for systolic without diastolic")
	}
}

func TestMedication(t *testing.T) {
	if err := Medication(model.NewMedication{Name: "Aspirin", Dosage: "81mg", Times: []int{9, 21}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Medication(model.NewMedication{Name: "Aspirin"}); err == nil || err.Error() != "dosage is required" {
		t.Fatalf("expected dosage error, got %v", err)
	}
	if err := Medication(model.NewMedication{Name: "Aspirin", Dosage: "81mg", Times: []int{24}}); err == nil {
		t.Fatalf("expected error for hour 24")
	}
}

func TestGoal(t *testing.T) {
	ok := model.NewGoal{Title: "Lose weight", Category: model.GoalFitness, TargetValue: 10, Unit: "lbs", TargetDate: "2024-06-01"}
	if err := Goal(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zero := ok
	zero.TargetValue = 0
	if err := Goal(zero); err == nil || err.Error() != "targetValue must be positive" {
		t.Fatalf("expected targetValue error, got %v", err)
	}

	noDate := ok
	noDate.TargetDate = ""
	if err := Goal(noDate); err == nil || err.Error() != "targetDate is required" {
		t.Fatalf("expected targetDate error, got %v", err)
	}

	badCat := ok
	badCat.Category = "sleep"
	if err := Goal(badCat); err == nil {
		t.Fatalf("expected category error")
	}
}

func TestTermAndQuestion(t *testing.T) {
	if err := Term(""); err == nil {
		t.Fatalf("expected error for empty term")
	}
	if err := Question(strings.Repeat("q", 2001)); err == nil {
		t.Fatalf("expected error for long question")
	}
	if err := Question("Why do I sleep badly?"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
