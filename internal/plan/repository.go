package plan

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for plan storage.
type Repository interface {
	// Create stores a new plan.
	Create(ctx context.Context, p *Plan) error

	// GetByID retrieves a plan by its ID.
	// Returns ErrPlanNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Plan, error)

	// ListByOwner retrieves all plans for an owner, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*Plan, error)

	// Delete removes a plan by ID.
	// Returns ErrPlanNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
