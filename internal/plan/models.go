// Package plan persists saved recommendation plans per user.
package plan

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vitaplan/vitaplan/internal/recommend"
)

// Predefined plan errors.
var (
	// ErrPlanNotFound is returned when a plan does not exist or belongs
	// to another owner. Ownership mismatches deliberately look identical
	// to missing plans.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrInvalidPlan is returned when a plan fails validation.
	ErrInvalidPlan = errors.New("invalid plan")
)

// Plan is one saved recommendation belonging to a user.
type Plan struct {
	// ID uniquely identifies the plan.
	ID uuid.UUID

	// OwnerID is the authenticated subject the plan belongs to.
	OwnerID string

	// Title is the user-chosen label.
	Title string

	// Recommendation is the full stored plan payload.
	Recommendation *recommend.Recommendation

	// CreatedAt is when the plan was saved.
	CreatedAt time.Time
}

// Validate checks the plan is storable.
func (p *Plan) Validate() error {
	if p.OwnerID == "" {
		return ErrInvalidPlan
	}
	if p.Recommendation == nil {
		return ErrInvalidPlan
	}
	return nil
}
