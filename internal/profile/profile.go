// Package profile defines the per-request user profile consumed by the
// recommendation pipeline.
package profile

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidInput is the sentinel for profile validation failures.
var ErrInvalidInput = errors.New("invalid profile input")

// InvalidInputError describes a profile field outside its declared domain.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for %s: %s", e.Field, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidInput) checks.
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// Gender is the biological sex used by the BMR formula.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Goal is the user's weight goal.
type Goal string

const (
	GoalLose     Goal = "LOSE"
	GoalMaintain Goal = "MAINTAIN"
	GoalGain     Goal = "GAIN"
)

// DietPref is the user's dietary preference.
type DietPref string

const (
	DietPrefVeg    DietPref = "VEG"
	DietPrefNonVeg DietPref = "NON_VEG"
)

// Declared profile field domains.
const (
	MinAge      = 10
	MaxAge      = 80
	MinHeightCm = 100.0
	MaxHeightCm = 250.0
	MinWeightKg = 30.0
	MaxWeightKg = 200.0
)

// NoCondition is the condition value meaning "no medical filtering".
const NoCondition = "None"

// Profile is a validated, immutable snapshot of one user's inputs.
// It is created per request and never persisted by the core.
type Profile struct {
	Age              int
	Gender           Gender
	HeightCm         float64
	WeightKg         float64
	ActivityDaysWeek int
	Goal             Goal
	DietPref         DietPref

	// Condition is an optional medical rule key, matched case-insensitively.
	// Empty or "None" means no medical filtering.
	Condition string
}

// HasCondition reports whether a medical condition is selected.
func (p Profile) HasCondition() bool {
	c := strings.TrimSpace(p.Condition)
	return c != "" && !strings.EqualFold(c, NoCondition)
}

// Validate checks every field against its declared domain.
// Range violations are surfaced, never silently clamped.
func (p Profile) Validate() error {
	if p.Age < MinAge || p.Age > MaxAge {
		return &InvalidInputError{Field: "age", Reason: fmt.Sprintf("must be between %d and %d", MinAge, MaxAge)}
	}
	switch p.Gender {
	case GenderMale, GenderFemale:
	default:
		return &InvalidInputError{Field: "gender", Reason: "must be MALE or FEMALE"}
	}
	if !isFinite(p.HeightCm) || p.HeightCm < MinHeightCm || p.HeightCm > MaxHeightCm {
		return &InvalidInputError{Field: "heightCm", Reason: fmt.Sprintf("must be a finite value between %.0f and %.0f", MinHeightCm, MaxHeightCm)}
	}
	if !isFinite(p.WeightKg) || p.WeightKg < MinWeightKg || p.WeightKg > MaxWeightKg {
		return &InvalidInputError{Field: "weightKg", Reason: fmt.Sprintf("must be a finite value between %.0f and %.0f", MinWeightKg, MaxWeightKg)}
	}
	if p.ActivityDaysWeek < 0 || p.ActivityDaysWeek > 7 {
		return &InvalidInputError{Field: "activityDaysPerWeek", Reason: "must be between 0 and 7"}
	}
	switch p.Goal {
	case GoalLose, GoalMaintain, GoalGain:
	default:
		return &InvalidInputError{Field: "goal", Reason: "must be LOSE, MAINTAIN or GAIN"}
	}
	switch p.DietPref {
	case DietPrefVeg, DietPrefNonVeg:
	default:
		return &InvalidInputError{Field: "dietPref", Reason: "must be VEG or NON_VEG"}
	}
	return nil
}

// Fingerprint returns a stable key identifying the profile's inputs.
// Two profiles with identical fields produce identical fingerprints.
func (p Profile) Fingerprint() string {
	return fmt.Sprintf("%d|%s|%.1f|%.1f|%d|%s|%s|%s",
		p.Age, p.Gender, p.HeightCm, p.WeightKg,
		p.ActivityDaysWeek, p.Goal, p.DietPref,
		strings.ToLower(strings.TrimSpace(p.Condition)),
	)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
