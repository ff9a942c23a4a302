package recommend

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/vitaplan/vitaplan/internal/catalog"
	"github.com/vitaplan/vitaplan/internal/diet"
	"github.com/vitaplan/vitaplan/internal/energy"
	"github.com/vitaplan/vitaplan/internal/exercise"
	"github.com/vitaplan/vitaplan/internal/profile"
	"github.com/vitaplan/vitaplan/internal/safety"
	"github.com/vitaplan/vitaplan/internal/video"
)

// DefaultCacheSize bounds the recommendation cache.
const DefaultCacheSize = 512

// ServiceConfig holds configuration for creating a Service.
type ServiceConfig struct {
	// Catalog provides the current dataset snapshot (required).
	Catalog *catalog.Store

	// Rules provides the current safety rule set (required).
	Rules *safety.Store

	// Estimator derives per-meal targets. Defaults to the rule-based one.
	Estimator TargetEstimator

	// DietSelector defaults to a selector with the standard seed.
	DietSelector *diet.Selector

	// ExerciseSelector defaults to a selector with the standard seed.
	ExerciseSelector *exercise.Selector

	// CacheSize bounds the plan cache. Defaults to DefaultCacheSize.
	CacheSize int

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service runs the full recommendation pass. Plans are cached per
// (profile fingerprint, snapshot version): the worker publishes rules
// and catalog in the same refresh, so a new snapshot version also
// invalidates plans built on stale rules.
type Service struct {
	catalog          *catalog.Store
	rules            *safety.Store
	estimator        TargetEstimator
	dietSelector     *diet.Selector
	exerciseSelector *exercise.Selector
	cache            *lru.Cache[string, *Recommendation]
	logger           zerolog.Logger
}

// NewService creates a recommendation service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Estimator == nil {
		cfg.Estimator = NewRuleBasedEstimator()
	}
	if cfg.DietSelector == nil {
		cfg.DietSelector = diet.NewSelector(diet.SelectorConfig{Logger: cfg.Logger})
	}
	if cfg.ExerciseSelector == nil {
		cfg.ExerciseSelector = exercise.NewSelector(exercise.SelectorConfig{Logger: cfg.Logger})
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}

	cache, err := lru.New[string, *Recommendation](cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	return &Service{
		catalog:          cfg.Catalog,
		rules:            cfg.Rules,
		estimator:        cfg.Estimator,
		dietSelector:     cfg.DietSelector,
		exerciseSelector: cfg.ExerciseSelector,
		cache:            cache,
		logger:           cfg.Logger.With().Str("component", "recommend_service").Logger(),
	}, nil
}

// Recommend validates the profile and produces a complete plan against
// the snapshot current at call time. Identical profiles against the same
// snapshot hit the cache.
func (s *Service) Recommend(ctx context.Context, p profile.Profile) (*Recommendation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	snapshot := s.catalog.Current()
	rules := s.rules.Current()

	key := p.Fingerprint() + "|" + snapshot.Version()
	if cached, ok := s.cache.Get(key); ok {
		s.logger.Debug().Str("snapshot", snapshot.Version()).Msg("recommendation served from cache")
		return cached, nil
	}

	est, err := energy.Compute(p)
	if err != nil {
		return nil, err
	}
	targets := s.estimator.EstimateMealTargets(p, est)

	dietResult, err := s.dietSelector.Select(snapshot.Foods(), p, targets.Kcal, rules)
	if err != nil {
		return nil, err
	}

	library := video.NewLibrary(snapshot.Videos())
	exerciseResult, err := s.exerciseSelector.Select(snapshot.Exercises(), p, rules, library)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rec := &Recommendation{
		GeneratedAt:     time.Now().UTC(),
		SnapshotVersion: snapshot.Version(),
		Profile:         p,
		Energy:          *est,
		Targets:         targets,
		Diet:            dietResult,
		Exercise:        exerciseResult,
		Safety:          summarize(p, rules, dietResult, exerciseResult),
		Tips:            Tips(p),
	}

	s.cache.Add(key, rec)
	s.logger.Info().
		Str("snapshot", snapshot.Version()).
		Str("goal", string(p.Goal)).
		Int("diet_items", len(dietResult.Items)).
		Int("exercise_items", len(exerciseResult.Items)).
		Msg("recommendation generated")
	return rec, nil
}

// CacheLen reports how many plans are cached, for the ops status surface.
func (s *Service) CacheLen() int {
	return s.cache.Len()
}

// PurgeCache clears cached plans. Used after manual data corrections.
func (s *Service) PurgeCache() {
	s.cache.Purge()
}

func summarize(p profile.Profile, rules *safety.RuleSet, d *diet.Result, e *exercise.Result) SafetySummary {
	summary := SafetySummary{
		RemovedFoods:     d.Removed,
		LimitedFoods:     d.Limited,
		RemovedExercises: e.Removed,
		LimitedExercises: e.Limited,
	}
	if p.HasCondition() {
		if rule, ok := rules.Medical(p.Condition); ok {
			summary.Condition = rule.Condition
		}
	}
	return summary
}
