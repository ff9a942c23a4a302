// Package diet ranks food candidates against a per-meal calorie target
// and the user's dietary preference and medical condition.
package diet

import (
	"github.com/vitaplan/vitaplan/internal/catalog"
	"github.com/vitaplan/vitaplan/internal/safety"
)

// ScoredFood is one ranked candidate in a diet shortlist.
type ScoredFood struct {
	catalog.FoodItem

	// Score is the composite ranking score in [0,1].
	Score float64

	// Flag marks items a medical rule limits but does not remove.
	Flag safety.Flag
}

// StageCounts records how many candidates each pipeline stage saw or
// dropped, so an empty result can be explained rather than guessed at.
type StageCounts struct {
	Input            int `json:"input"`
	AfterPreference  int `json:"after_preference"`
	RemovedByMedical int `json:"removed_by_medical"`
	LimitedByMedical int `json:"limited_by_medical"`
	AfterBand        int `json:"after_band"`
	Deduplicated     int `json:"deduplicated"`
	Pool             int `json:"pool"`
	Sampled          int `json:"sampled"`
}

// Result is the outcome of one diet selection. An empty Items list is a
// valid outcome; Stages and the exclusion lists say why it is empty.
type Result struct {
	// MealTargetKcal is the per-meal calorie target the band was built on.
	MealTargetKcal float64

	// Items is the diversified shortlist, sorted by score descending.
	Items []ScoredFood

	// Removed lists names excluded by medical avoid tokens.
	Removed []string

	// Limited lists names retained but flagged by medical limit tokens.
	Limited []string

	// Widened reports whether the calorie band had to widen once.
	Widened bool

	// Stages carries per-stage candidate counts.
	Stages StageCounts
}
