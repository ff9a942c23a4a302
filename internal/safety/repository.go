package safety

import "context"

// Repository defines the interface for safety rule storage.
type Repository interface {
	// LoadMedicalRules retrieves all per-condition rules.
	LoadMedicalRules(ctx context.Context) ([]MedicalRule, error)

	// LoadGenderRules retrieves all gender adjustment rules.
	LoadGenderRules(ctx context.Context) ([]GenderRule, error)

	// LoadFrequencyRules retrieves all frequency adjustment rules.
	LoadFrequencyRules(ctx context.Context) ([]FrequencyRule, error)
}

// LoadRuleSet builds a rule set from a repository. Missing rule tables
// degrade to empty rule lists; only hard storage failures are surfaced.
func LoadRuleSet(ctx context.Context, repo Repository) (*RuleSet, error) {
	medical, err := repo.LoadMedicalRules(ctx)
	if err != nil {
		return nil, err
	}
	gender, err := repo.LoadGenderRules(ctx)
	if err != nil {
		return nil, err
	}
	frequency, err := repo.LoadFrequencyRules(ctx)
	if err != nil {
		return nil, err
	}
	return NewRuleSet(medical, gender, frequency), nil
}
