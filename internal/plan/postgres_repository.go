package plan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vitaplan/vitaplan/internal/recommend"
)

// PostgresRepository is a PostgreSQL implementation of Repository. The
// recommendation payload is stored as JSONB.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL plan repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create stores a new plan.
func (r *PostgresRepository) Create(ctx context.Context, p *Plan) error {
	payload, err := json.Marshal(p.Recommendation)
	if err != nil {
		return fmt.Errorf("encoding recommendation: %w", err)
	}

	query := `
		INSERT INTO plans (id, owner_id, title, recommendation, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.pool.Exec(ctx, query, p.ID, p.OwnerID, p.Title, payload, p.CreatedAt)
	return err
}

// GetByID retrieves a plan by its ID.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Plan, error) {
	query := `
		SELECT id, owner_id, title, recommendation, created_at
		FROM plans
		WHERE id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)
	p, err := scanPlan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListByOwner retrieves all plans for an owner, newest first.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Plan, error) {
	query := `
		SELECT id, owner_id, title, recommendation, created_at
		FROM plans
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []*Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// Delete removes a plan by ID.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM plans WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func scanPlan(row pgx.Row) (*Plan, error) {
	var p Plan
	var payload []byte
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Title, &payload, &p.CreatedAt); err != nil {
		return nil, err
	}

	var rec recommend.Recommendation
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("decoding recommendation: %w", err)
	}
	p.Recommendation = &rec
	return &p, nil
}

// Ensure PostgresRepository implements Repository.
var _ Repository = (*PostgresRepository)(nil)
