package safety

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
// Token columns store the raw source cell ('|', ',' or ';' separated)
// and are parsed on load.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL safety rule repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// LoadMedicalRules retrieves all per-condition rules.
func (r *PostgresRepository) LoadMedicalRules(ctx context.Context) ([]MedicalRule, error) {
	query := `
		SELECT condition, avoid, "limit"
		FROM medical_rules
		ORDER BY condition
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []MedicalRule
	for rows.Next() {
		var condition string
		var avoid, limit *string
		if err := rows.Scan(&condition, &avoid, &limit); err != nil {
			return nil, err
		}
		rules = append(rules, MedicalRule{
			Condition:   condition,
			AvoidTokens: ParseTokens(deref(avoid)),
			LimitTokens: ParseTokens(deref(limit)),
		})
	}
	return rules, rows.Err()
}

// LoadGenderRules retrieves all gender adjustment rules.
func (r *PostgresRepository) LoadGenderRules(ctx context.Context) ([]GenderRule, error) {
	query := `
		SELECT gender, avoid, recommend
		FROM gender_rules
		ORDER BY gender
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []GenderRule
	for rows.Next() {
		var gender string
		var avoid, recommend *string
		if err := rows.Scan(&gender, &avoid, &recommend); err != nil {
			return nil, err
		}
		rules = append(rules, GenderRule{
			Gender:          gender,
			AvoidTokens:     ParseTokens(deref(avoid)),
			RecommendTokens: ParseTokens(deref(recommend)),
		})
	}
	return rules, rows.Err()
}

// LoadFrequencyRules retrieves all frequency adjustment rules.
func (r *PostgresRepository) LoadFrequencyRules(ctx context.Context) ([]FrequencyRule, error) {
	query := `
		SELECT min_days, avoid, recommend
		FROM frequency_rules
		ORDER BY min_days
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []FrequencyRule
	for rows.Next() {
		var minDays int
		var avoid, recommend *string
		if err := rows.Scan(&minDays, &avoid, &recommend); err != nil {
			return nil, err
		}
		rules = append(rules, FrequencyRule{
			MinDays:         minDays,
			AvoidTokens:     ParseTokens(deref(avoid)),
			RecommendTokens: ParseTokens(deref(recommend)),
		})
	}
	return rules, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Ensure PostgresRepository implements Repository.
var _ Repository = (*PostgresRepository)(nil)
