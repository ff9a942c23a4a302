package recommend

import (
	"github.com/vitaplan/vitaplan/internal/energy"
	"github.com/vitaplan/vitaplan/internal/profile"
)

// MealTargets is the per-meal intake the selectors aim for.
type MealTargets struct {
	// Kcal is the per-meal calorie target the diet band is built on.
	Kcal float64

	// ProteinG is the per-meal protein target, advisory only.
	ProteinG float64
}

// TargetEstimator derives per-meal targets from a profile and its energy
// estimate. The rule-based implementation is the default; a learned
// implementation can be plugged in without touching the selectors.
type TargetEstimator interface {
	EstimateMealTargets(p profile.Profile, est *energy.Estimate) MealTargets
}

// Per-meal floors, applied after the daily target is split across meals.
const (
	loseMealFloorKcal = 300
	gainMealFloorKcal = 400
)

// Daily protein in grams per kg of body weight, by goal.
const (
	loseProteinPerKg     = 1.3
	maintainProteinPerKg = 1.5
	gainProteinPerKg     = 1.8
)

// RuleBasedEstimator splits the daily target evenly across meals and
// derives protein from body weight.
type RuleBasedEstimator struct{}

// NewRuleBasedEstimator creates the default estimator.
func NewRuleBasedEstimator() *RuleBasedEstimator {
	return &RuleBasedEstimator{}
}

// EstimateMealTargets implements TargetEstimator.
func (e *RuleBasedEstimator) EstimateMealTargets(p profile.Profile, est *energy.Estimate) MealTargets {
	kcal := est.DailyTarget / energy.MealsPerDay

	proteinPerKg := maintainProteinPerKg
	switch p.Goal {
	case profile.GoalLose:
		proteinPerKg = loseProteinPerKg
		if kcal < loseMealFloorKcal {
			kcal = loseMealFloorKcal
		}
	case profile.GoalGain:
		proteinPerKg = gainProteinPerKg
		if kcal < gainMealFloorKcal {
			kcal = gainMealFloorKcal
		}
	}

	return MealTargets{
		Kcal:     kcal,
		ProteinG: proteinPerKg * p.WeightKg / energy.MealsPerDay,
	}
}

var _ TargetEstimator = (*RuleBasedEstimator)(nil)
