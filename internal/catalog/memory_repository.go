package catalog

import (
	"context"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository for
// tests and CSV-backed deployments.
type InMemoryRepository struct {
	mu        sync.RWMutex
	foods     []FoodItem
	exercises []ExerciseItem
	videos    []VideoRef
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// NewInMemoryRepositoryWithData creates a repository preloaded with rows.
func NewInMemoryRepositoryWithData(foods []FoodItem, exercises []ExerciseItem, videos []VideoRef) *InMemoryRepository {
	return &InMemoryRepository{
		foods:     append([]FoodItem(nil), foods...),
		exercises: append([]ExerciseItem(nil), exercises...),
		videos:    append([]VideoRef(nil), videos...),
	}
}

// LoadFoods retrieves all food rows.
func (r *InMemoryRepository) LoadFoods(_ context.Context) ([]FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]FoodItem(nil), r.foods...), nil
}

// LoadExercises retrieves all exercise rows.
func (r *InMemoryRepository) LoadExercises(_ context.Context) ([]ExerciseItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]ExerciseItem(nil), r.exercises...), nil
}

// LoadVideos retrieves all video reference rows.
func (r *InMemoryRepository) LoadVideos(_ context.Context) ([]VideoRef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]VideoRef(nil), r.videos...), nil
}

// Replace swaps the repository contents. Used by CSV reload paths.
func (r *InMemoryRepository) Replace(foods []FoodItem, exercises []ExerciseItem, videos []VideoRef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.foods = append([]FoodItem(nil), foods...)
	r.exercises = append([]ExerciseItem(nil), exercises...)
	r.videos = append([]VideoRef(nil), videos...)
}

// ReplaceVideos overwrites the stored video references.
func (r *InMemoryRepository) ReplaceVideos(_ context.Context, refs []VideoRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.videos = append([]VideoRef(nil), refs...)
	return nil
}

// Ensure InMemoryRepository implements Repository.
var _ Repository = (*InMemoryRepository)(nil)
