package catalog

import "context"

// Repository defines the interface for catalog dataset storage.
type Repository interface {
	// LoadFoods retrieves all food rows.
	LoadFoods(ctx context.Context) ([]FoodItem, error)

	// LoadExercises retrieves all exercise rows.
	LoadExercises(ctx context.Context) ([]ExerciseItem, error)

	// LoadVideos retrieves all video reference rows. An empty result is
	// not an error; demo links degrade to search references.
	LoadVideos(ctx context.Context) ([]VideoRef, error)
}

// LoadSnapshot builds a normalized snapshot from a repository.
// Fails with MissingDatasetError when either required dataset is empty.
func LoadSnapshot(ctx context.Context, repo Repository) (*Snapshot, error) {
	foods, err := repo.LoadFoods(ctx)
	if err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, &MissingDatasetError{Dataset: "food"}
	}

	exercises, err := repo.LoadExercises(ctx)
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, &MissingDatasetError{Dataset: "exercise"}
	}

	videos, err := repo.LoadVideos(ctx)
	if err != nil {
		// Optional table: log-free fallback, selectors synthesize links.
		videos = nil
	}

	return NewSnapshot(foods, exercises, videos), nil
}
