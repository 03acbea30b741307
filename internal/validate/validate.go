// Package validate checks user-submitted journal records before they reach the journal.
package validate

import (
	"fmt"
	"strings"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/model"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 5000
	maxQuestionLen    = 2000
	maxTermLen        = 200
)

func NonEmpty(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func MaxLen(field, v string, limit int) error {
	if len(v) > limit {
		return fmt.Errorf("%s exceeds %d characters", field, limit)
	}
	return nil
}

// -------- Request specific helpers ----------

func Entry(e model.NewEntry) error {
	if err := NonEmpty("title", e.Title); err != nil {
		return err
	}
	if err := MaxLen("title", e.Title, maxTitleLen); err != nil {
		return err
	}
	if err := MaxLen("description", e.Description, maxDescriptionLen); err != nil {
		return err
	}
	if !e.Type.Valid() {
		return fmt.Errorf("type %q is not one of symptom, vital, medication, note", e.Type)
	}
	if !e.Severity.Valid() {
		return fmt.Errorf("severity %q is not one of mild, moderate, severe", e.Severity)
	}
	return nil
}

func Vital(v model.NewVital) error {
	if !v.Type.Valid() {
		return fmt.Errorf("type %q is not a known vital", v.Type)
	}
	if v.Type == model.VitalBloodPressure && (v.Systolic == nil) != (v.Diastolic == nil) {
		return fmt.Errorf("systolic and diastolic must be given together")
	}
	return nil
}

func Medication(m model.NewMedication) error {
	if err := NonEmpty("name", m.Name); err != nil {
		return err
	}
	if err := NonEmpty("dosage", m.Dosage); err != nil {
		return err
	}
	for _, h := range m.Times {
		if h < 0 || h > 23 {
			return fmt.Errorf("reminder hour %d is outside 0-23", h)
		}
	}
	return nil
}

func Goal(g model.NewGoal) error {
	if err := NonEmpty("title", g.Title); err != nil {
		return err
	}
	if err := MaxLen("title", g.Title, maxTitleLen); err != nil {
		return err
	}
	if err := NonEmpty("unit", g.Unit); err != nil {
		return err
	}
	if err := NonEmpty("targetDate", g.TargetDate); err != nil {
		return err
	}
	if g.TargetValue <= 0 {
		return fmt.Errorf("targetValue must be positive")
	}
	if !g.Category.Valid() {
		return fmt.Errorf("category %q is not one of fitness, nutrition, mental_health, chronic_disease", g.Category)
	}
	return nil
}

func Term(term string) error {
	if err := NonEmpty("term", term); err != nil {
		return err
	}
	return MaxLen("term", term, maxTermLen)
}

func Question(q string) error {
	if err := NonEmpty("question", q); err != nil {
		return err
	}
	return MaxLen("question", q, maxQuestionLen)
}
