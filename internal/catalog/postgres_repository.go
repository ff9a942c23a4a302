package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL catalog repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// LoadFoods retrieves all food rows.
func (r *PostgresRepository) LoadFoods(ctx context.Context) ([]FoodItem, error) {
	query := `
		SELECT name, calories, protein_g, carbs_g, fat_g, fibre_g, sugar_g, diet_class
		FROM food_items
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foods []FoodItem
	for rows.Next() {
		var f FoodItem
		var dietClass *string
		if err := rows.Scan(&f.Name, &f.Calories, &f.ProteinG, &f.CarbsG, &f.FatG, &f.FibreG, &f.SugarG, &dietClass); err != nil {
			return nil, err
		}
		if dietClass != nil {
			f.DietClass = DietClass(*dietClass)
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

// LoadExercises retrieves all exercise rows.
func (r *PostgresRepository) LoadExercises(ctx context.Context) ([]ExerciseItem, error) {
	query := `
		SELECT activity, calories_per_kg, category
		FROM exercise_items
		ORDER BY activity
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []ExerciseItem
	for rows.Next() {
		var e ExerciseItem
		var category *string
		if err := rows.Scan(&e.Activity, &e.CaloriesPerKg, &category); err != nil {
			return nil, err
		}
		if category != nil {
			e.Category = Category(*category)
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

// LoadVideos retrieves all video reference rows.
func (r *PostgresRepository) LoadVideos(ctx context.Context) ([]VideoRef, error) {
	query := `
		SELECT activity, url
		FROM exercise_videos
		ORDER BY activity
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []VideoRef
	for rows.Next() {
		var v VideoRef
		if err := rows.Scan(&v.Activity, &v.URL); err != nil {
			return nil, err
		}
		refs = append(refs, v)
	}
	return refs, rows.Err()
}

// ReplaceVideos overwrites the stored video references.
func (r *PostgresRepository) ReplaceVideos(ctx context.Context, refs []VideoRef) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM exercise_videos`); err != nil {
		return err
	}

	for _, ref := range refs {
		_, err := tx.Exec(ctx, `
			INSERT INTO exercise_videos (activity, url)
			VALUES ($1, $2)
		`, ref.Activity, ref.URL)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Ensure PostgresRepository implements Repository.
var _ Repository = (*PostgresRepository)(nil)
