// Package exercise builds ranked activity shortlists biased by the
// user's goal, screened by medical, gender and training-frequency rules.
package exercise

import (
	"github.com/vitaplan/vitaplan/internal/catalog"
	"github.com/vitaplan/vitaplan/internal/safety"
)

// RankedExercise is one selected activity with its per-session estimate
// and demonstration link.
type RankedExercise struct {
	catalog.ExerciseItem

	// EstSessionKcal is calories_per_kg scaled by the user's body weight.
	EstSessionKcal float64

	// Flag marks activities a medical rule limits but does not remove.
	Flag safety.Flag

	// VideoURL is a demonstration link, curated or synthesized.
	VideoURL string
}

// StageCounts records per-stage candidate counts for diagnostics.
type StageCounts struct {
	Input            int `json:"input"`
	RemovedByRules   int `json:"removed_by_rules"`
	LimitedByMedical int `json:"limited_by_medical"`
	AfterTargeting   int `json:"after_targeting"`
	Deduplicated     int `json:"deduplicated"`
	Pool             int `json:"pool"`
	Sampled          int `json:"sampled"`
}

// Result is the outcome of one exercise selection.
type Result struct {
	// Items is the diversified shortlist in ranked order.
	Items []RankedExercise

	// Removed lists activities excluded by avoid tokens (medical, gender
	// or frequency).
	Removed []string

	// Limited lists activities retained but flagged by medical limit
	// tokens.
	Limited []string

	// Focus aggregates recommend tokens from gender and frequency rules,
	// surfaced as training emphases alongside the shortlist.
	Focus []string

	// StrengthFallback reports that a GAIN profile found no strength
	// activities and fell back to the full intensity-sorted list.
	StrengthFallback bool

	// Stages carries per-stage candidate counts.
	Stages StageCounts
}
