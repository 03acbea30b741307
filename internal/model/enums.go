package model

// Valid reports whether t is a known entry type.
func (t EntryType) Valid() bool {
	switch t {
	case EntrySymptom, EntryVital, EntryMedication, EntryNote:
		return true
	}
	return false
}

func (s Severity) Valid() bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere:
		return true
	}
	return false
}

func (t VitalType) Valid() bool {
	switch t {
	case VitalBloodPressure, VitalHeartRate, VitalTemperature, VitalWeight, VitalBloodSugar:
		return true
	}
	return false
}

// DefaultUnit is the unit recorded when a vital is submitted without one.
func (t VitalType) DefaultUnit() string {
	switch t {
	case VitalBloodPressure:
		return "mmHg"
	case VitalHeartRate:
		return "bpm"
	case VitalTemperature:
		return "°F"
	case VitalWeight:
		return "lbs"
	case VitalBloodSugar:
		return "mg/dL"
	}
	return ""
}

func (c GoalCategory) Valid() bool {
	switch c {
	case GoalFitness, GoalNutrition, GoalMentalHealth, GoalChronicDisease:
		return true
	}
	return false
}

func (s InsightSeverity) Valid() bool {
	switch s {
	case InsightInfo, InsightWarning, InsightUrgent:
		return true
	}
	return false
}

// DefaultReminderTimes maps a medication frequency label onto reminder hours.
func DefaultReminderTimes(frequency string) []int {
	switch frequency {
	case "daily":
		return []int{9}
	case "twice_daily":
		return []int{9, 21}
	}
	return []int{}
}
