package safety

import (
	"context"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository for
// tests and CSV-backed deployments.
type InMemoryRepository struct {
	mu        sync.RWMutex
	medical   []MedicalRule
	gender    []GenderRule
	frequency []FrequencyRule
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// NewInMemoryRepositoryWithRules creates a repository preloaded with rules.
func NewInMemoryRepositoryWithRules(medical []MedicalRule, gender []GenderRule, frequency []FrequencyRule) *InMemoryRepository {
	return &InMemoryRepository{
		medical:   append([]MedicalRule(nil), medical...),
		gender:    append([]GenderRule(nil), gender...),
		frequency: append([]FrequencyRule(nil), frequency...),
	}
}

// LoadMedicalRules retrieves all per-condition rules.
func (r *InMemoryRepository) LoadMedicalRules(_ context.Context) ([]MedicalRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]MedicalRule(nil), r.medical...), nil
}

// LoadGenderRules retrieves all gender adjustment rules.
func (r *InMemoryRepository) LoadGenderRules(_ context.Context) ([]GenderRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]GenderRule(nil), r.gender...), nil
}

// LoadFrequencyRules retrieves all frequency adjustment rules.
func (r *InMemoryRepository) LoadFrequencyRules(_ context.Context) ([]FrequencyRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]FrequencyRule(nil), r.frequency...), nil
}

// Ensure InMemoryRepository implements Repository.
var _ Repository = (*InMemoryRepository)(nil)
