package plan

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vitaplan/vitaplan/internal/recommend"
)

// MaxTitleLen bounds user-supplied plan titles.
const MaxTitleLen = 120

// ServiceConfig holds configuration for creating a Service.
type ServiceConfig struct {
	// Repository for plan storage (required).
	Repository Repository

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service manages saved plans with per-owner access control.
type Service struct {
	repo   Repository
	logger zerolog.Logger
}

// NewService creates a plan service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger.With().Str("component", "plan_service").Logger(),
	}
}

// Save stores a recommendation under the owner. Blank titles get a
// dated default; long titles are truncated.
func (s *Service) Save(ctx context.Context, ownerID, title string, rec *recommend.Recommendation) (*Plan, error) {
	now := time.Now().UTC()

	title = strings.TrimSpace(title)
	if title == "" {
		title = "Plan " + now.Format("2006-01-02")
	}
	if len(title) > MaxTitleLen {
		title = title[:MaxTitleLen]
	}

	p := &Plan{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Title:          title,
		Recommendation: rec,
		CreatedAt:      now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info().Str("plan_id", p.ID.String()).Msg("plan saved")
	return p, nil
}

// Get retrieves one of the owner's plans. Plans belonging to other
// owners surface as ErrPlanNotFound.
func (s *Service) Get(ctx context.Context, ownerID string, id uuid.UUID) (*Plan, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != ownerID {
		return nil, ErrPlanNotFound
	}
	return p, nil
}

// List retrieves all plans for an owner, newest first.
func (s *Service) List(ctx context.Context, ownerID string) ([]*Plan, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Delete removes one of the owner's plans.
func (s *Service) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("plan_id", id.String()).Msg("plan deleted")
	return nil
}
