package model

import "math"

// ProgressPercent is current/target as a percentage, capped at 100.
// A non-positive target reports 0.
func (g HealthGoal) ProgressPercent() float64 {
	if g.TargetValue <= 0 {
		return 0
	}
	return math.Min(g.CurrentValue/g.TargetValue*100, 100)
}
