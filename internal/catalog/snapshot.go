package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is an immutable, versioned view of all catalog data. Selectors
// read a snapshot for the duration of one request; reloads build a fresh
// snapshot and swap it in atomically, so in-flight requests are never
// exposed to partial data.
type Snapshot struct {
	version  string
	loadedAt time.Time

	foods     []FoodItem
	exercises []ExerciseItem
	videos    []VideoRef
}

// NewSnapshot builds a snapshot from raw rows. Rows are normalized:
// duplicate names (case/whitespace folded) are dropped keeping the first
// occurrence, missing diet classes and categories are inferred from
// keywords, and exercise energy cost is clamped to be non-negative.
func NewSnapshot(foods []FoodItem, exercises []ExerciseItem, videos []VideoRef) *Snapshot {
	s := &Snapshot{
		version:  uuid.New().String()[:8],
		loadedAt: time.Now(),
	}

	seenFood := make(map[string]bool, len(foods))
	for _, f := range foods {
		key := NormalizeName(f.Name)
		if key == "" || seenFood[key] {
			continue
		}
		seenFood[key] = true

		if f.DietClass == "" || f.DietClass == DietClassUnknown {
			f.DietClass = InferDietClass(f.Name)
		}
		s.foods = append(s.foods, f)
	}

	seenEx := make(map[string]bool, len(exercises))
	for _, e := range exercises {
		key := NormalizeName(e.Activity)
		if key == "" || seenEx[key] {
			continue
		}
		seenEx[key] = true

		if e.CaloriesPerKg < 0 {
			e.CaloriesPerKg = 0
		}
		if e.Category == "" {
			e.Category = InferCategory(e.Activity)
		}
		s.exercises = append(s.exercises, e)
	}

	s.videos = append(s.videos, videos...)
	return s
}

// Version identifies this snapshot. Used as part of cache keys.
func (s *Snapshot) Version() string {
	return s.version
}

// LoadedAt is when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// Foods returns the normalized food rows. Callers must not mutate them.
func (s *Snapshot) Foods() []FoodItem {
	return s.foods
}

// Exercises returns the normalized exercise rows. Callers must not mutate them.
func (s *Snapshot) Exercises() []ExerciseItem {
	return s.exercises
}

// Videos returns the raw video reference rows.
func (s *Snapshot) Videos() []VideoRef {
	return s.videos
}
