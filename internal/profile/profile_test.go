package profile_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitaplan/vitaplan/internal/profile"
)

func validProfile() profile.Profile {
	return profile.Profile{
		Age:              25,
		Gender:           profile.GenderMale,
		HeightCm:         175,
		WeightKg:         70,
		ActivityDaysWeek: 4,
		Goal:             profile.GoalLose,
		DietPref:         profile.DietPrefVeg,
		Condition:        "Diabetes",
	}
}

func TestProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*profile.Profile)
		wantErr bool
		field   string
	}{
		{name: "valid", mutate: func(p *profile.Profile) {}},
		{name: "age too low", mutate: func(p *profile.Profile) { p.Age = 9 }, wantErr: true, field: "age"},
		{name: "age too high", mutate: func(p *profile.Profile) { p.Age = 81 }, wantErr: true, field: "age"},
		{name: "bad gender", mutate: func(p *profile.Profile) { p.Gender = "OTHER" }, wantErr: true, field: "gender"},
		{name: "negative weight", mutate: func(p *profile.Profile) { p.WeightKg = -1 }, wantErr: true, field: "weightKg"},
		{name: "NaN weight", mutate: func(p *profile.Profile) { p.WeightKg = math.NaN() }, wantErr: true, field: "weightKg"},
		{name: "infinite height", mutate: func(p *profile.Profile) { p.HeightCm = math.Inf(1) }, wantErr: true, field: "heightCm"},
		{name: "activity days out of range", mutate: func(p *profile.Profile) { p.ActivityDaysWeek = 8 }, wantErr: true, field: "activityDaysPerWeek"},
		{name: "bad goal", mutate: func(p *profile.Profile) { p.Goal = "BULK" }, wantErr: true, field: "goal"},
		{name: "bad diet pref", mutate: func(p *profile.Profile) { p.DietPref = "PESCATARIAN" }, wantErr: true, field: "dietPref"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)

			err := p.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, profile.ErrInvalidInput))

			var inputErr *profile.InvalidInputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}

func TestProfile_HasCondition(t *testing.T) {
	p := validProfile()
	assert.True(t, p.HasCondition())

	p.Condition = "None"
	assert.False(t, p.HasCondition())

	p.Condition = "none"
	assert.False(t, p.HasCondition())

	p.Condition = "  "
	assert.False(t, p.HasCondition())
}

func TestProfile_Fingerprint(t *testing.T) {
	a := validProfile()
	b := validProfile()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.WeightKg = 71
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	// Condition comparison is case-insensitive.
	b = validProfile()
	b.Condition = "DIABETES"
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}
