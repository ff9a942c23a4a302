// Package catalog provides the normalized food and exercise datasets
// consumed read-only by the recommendation selectors.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingDataset is the sentinel for an entirely empty required dataset.
// This is distinct from "filtered to zero", which is a valid empty result.
var ErrMissingDataset = errors.New("dataset has no rows")

// MissingDatasetError identifies which dataset was empty or unavailable.
type MissingDatasetError struct {
	Dataset string
}

func (e *MissingDatasetError) Error() string {
	return fmt.Sprintf("%s dataset has no rows", e.Dataset)
}

// Unwrap allows errors.Is(err, ErrMissingDataset) checks.
func (e *MissingDatasetError) Unwrap() error {
	return ErrMissingDataset
}

// DietClass classifies a food as vegetarian or not.
type DietClass string

const (
	DietClassVeg     DietClass = "VEG"
	DietClassNonVeg  DietClass = "NON_VEG"
	DietClassUnknown DietClass = "UNKNOWN"
)

// Category classifies an exercise activity.
type Category string

const (
	CategoryCardio   Category = "CARDIO"
	CategoryStrength Category = "STRENGTH"
	CategoryMixed    Category = "MIXED"
)

// FoodItem is one row of the nutrition dataset. Missing source values
// normalize to 0 at ingestion; items are never mutated after loading.
type FoodItem struct {
	Name      string
	Calories  float64
	ProteinG  float64
	CarbsG    float64
	FatG      float64
	FibreG    float64
	SugarG    float64
	DietClass DietClass
}

// ExerciseItem is one row of the exercise dataset.
type ExerciseItem struct {
	Activity string

	// CaloriesPerKg is the energy cost per kg of body weight per session
	// unit. Derived from a MET-like value when not directly present.
	CaloriesPerKg float64

	Category Category
}

// VideoRef maps an activity name to a demo video URL.
type VideoRef struct {
	Activity string
	URL      string
}

// NormalizeName folds case and whitespace so names can act as
// deduplication keys within one dataset snapshot.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
