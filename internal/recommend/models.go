// Package recommend orchestrates the full recommendation pass: energy
// estimation, meal targets, diet and exercise selection and tips, served
// from a consistent catalog snapshot.
package recommend

import (
	"time"

	"github.com/vitaplan/vitaplan/internal/diet"
	"github.com/vitaplan/vitaplan/internal/energy"
	"github.com/vitaplan/vitaplan/internal/exercise"
	"github.com/vitaplan/vitaplan/internal/profile"
)

// SafetySummary aggregates what the safety rules did across both
// selectors, so callers can explain exclusions without re-running them.
type SafetySummary struct {
	// Condition is the matched medical condition, empty when none applied.
	Condition string `json:"condition,omitempty"`

	// RemovedFoods lists food names excluded by avoid tokens.
	RemovedFoods []string `json:"removed_foods"`

	// LimitedFoods lists food names retained but flagged.
	LimitedFoods []string `json:"limited_foods"`

	// RemovedExercises lists activities excluded by any rule.
	RemovedExercises []string `json:"removed_exercises"`

	// LimitedExercises lists activities retained but flagged.
	LimitedExercises []string `json:"limited_exercises"`
}

// Recommendation is one complete plan for a profile.
type Recommendation struct {
	// GeneratedAt is when this plan was computed (not served from cache).
	GeneratedAt time.Time

	// SnapshotVersion identifies the catalog snapshot the plan was
	// computed against.
	SnapshotVersion string

	// Profile echoes the validated input.
	Profile profile.Profile

	// Energy carries BMR, TDEE and the daily calorie target.
	Energy energy.Estimate

	// Targets are the per-meal calorie and protein goals.
	Targets MealTargets

	// Diet is the ranked food shortlist.
	Diet *diet.Result

	// Exercise is the ranked activity shortlist.
	Exercise *exercise.Result

	// Safety summarizes rule effects across both selectors.
	Safety SafetySummary

	// Tips are fixed advisory strings for the profile.
	Tips []string
}
