package exercise_test

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitaplan/vitaplan/internal/catalog"
	"github.com/vitaplan/vitaplan/internal/exercise"
	"github.com/vitaplan/vitaplan/internal/profile"
	"github.com/vitaplan/vitaplan/internal/safety"
	"github.com/vitaplan/vitaplan/internal/video"
)

func newSelector() *exercise.Selector {
	return exercise.NewSelector(exercise.SelectorConfig{Logger: zerolog.Nop()})
}

func gainProfile() profile.Profile {
	return profile.Profile{
		Age:              30,
		Gender:           profile.GenderMale,
		HeightCm:         180,
		WeightKg:         80,
		ActivityDaysWeek: 4,
		Goal:             profile.GoalGain,
		DietPref:         profile.DietPrefNonVeg,
		Condition:        profile.NoCondition,
	}
}

func TestSelect_EmptyDatasetIsAnError(t *testing.T) {
	_, err := newSelector().Select(nil, gainProfile(), safety.EmptyRuleSet(), nil)

	require.Error(t, err)
	var missing *catalog.MissingDatasetError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "exercise", missing.Dataset)
}

func TestSelect_GainPrefersStrength(t *testing.T) {
	exercises := []catalog.ExerciseItem{
		{Activity: "Running", CaloriesPerKg: 9.8, Category: catalog.CategoryCardio},
		{Activity: "Deadlift", CaloriesPerKg: 6.0, Category: catalog.CategoryStrength},
		{Activity: "Bench Press", CaloriesPerKg: 3.8, Category: catalog.CategoryStrength},
	}

	result, err := newSelector().Select(exercises, gainProfile(), safety.EmptyRuleSet(), nil)
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	assert.Equal(t, "Deadlift", result.Items[0].Activity)
	assert.Equal(t, "Bench Press", result.Items[1].Activity)
	assert.False(t, result.StrengthFallback)
}

func TestSelect_GainFallsBackWhenStrengthExcluded(t *testing.T) {
	exercises := []catalog.ExerciseItem{
		{Activity: "Deadlift", CaloriesPerKg: 6.0, Category: catalog.CategoryStrength},
		{Activity: "Running", CaloriesPerKg: 9.8, Category: catalog.CategoryCardio},
	}
	p := gainProfile()
	p.Condition = "Hernia"
	rules := safety.NewRuleSet([]safety.MedicalRule{
		{Condition: "Hernia", AvoidTokens: []string{"deadlift"}},
	}, nil, nil)

	result, err := newSelector().Select(exercises, p, rules, nil)
	require.NoError(t, err)

	assert.True(t, result.StrengthFallback)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Running", result.Items[0].Activity)
	assert.Contains(t, result.Removed, "Deadlift")
}

func TestSelect_LoseSortsByIntensity(t *testing.T) {
	exercises := []catalog.ExerciseItem{
		{Activity: "Walking", CaloriesPerKg: 3.2, Category: catalog.CategoryCardio},
		{Activity: "Burpees", CaloriesPerKg: 10.5, Category: catalog.CategoryMixed},
		{Activity: "Cycling", CaloriesPerKg: 7.9, Category: catalog.CategoryCardio},
	}
	p := gainProfile()
	p.Goal = profile.GoalLose

	result, err := newSelector().Select(exercises, p, safety.EmptyRuleSet(), nil)
	require.NoError(t, err)

	require.Len(t, result.Items, 3)
	assert.Equal(t, "Burpees", result.Items[0].Activity)
	assert.Equal(t, "Cycling", result.Items[1].Activity)
	assert.Equal(t, "Walking", result.Items[2].Activity)
}

func TestSelect_MaintainMixesCategories(t *testing.T) {
	exercises := []catalog.ExerciseItem{
		{Activity: "Running", CaloriesPerKg: 9.8, Category: catalog.CategoryCardio},
		{Activity: "Cycling", CaloriesPerKg: 7.9, Category: catalog.CategoryCardio},
		{Activity: "Rowing", CaloriesPerKg: 8.4, Category: catalog.CategoryCardio},
		{Activity: "Swimming", CaloriesPerKg: 8.0, Category: catalog.CategoryCardio},
		{Activity: "Deadlift", CaloriesPerKg: 6.0, Category: catalog.CategoryStrength},
		{Activity: "Squats", CaloriesPerKg: 5.5, Category: catalog.CategoryStrength},
	}
	p := gainProfile()
	p.Goal = profile.GoalMaintain

	result, err := newSelector().Select(exercises, p, safety.EmptyRuleSet(), nil)
	require.NoError(t, err)

	// Small pool: up to 3 cardio + 2 strength.
	require.Len(t, result.Items, 5)
	var strength int
	for _, item := range result.Items {
		if item.Category == catalog.CategoryStrength {
			strength++
		}
	}
	assert.Equal(t, 2, strength)
}

func TestSelect_MaintainWideSplitOnLargePool(t *testing.T) {
	var exercises []catalog.ExerciseItem
	for i := 0; i < 10; i++ {
		exercises = append(exercises, catalog.ExerciseItem{
			Activity:      fmt.Sprintf("Cardio %02d", i),
			CaloriesPerKg: 5 + float64(i),
			Category:      catalog.CategoryCardio,
		})
		exercises = append(exercises, catalog.ExerciseItem{
			Activity:      fmt.Sprintf("Strength %02d", i),
			CaloriesPerKg: 3 + float64(i),
			Category:      catalog.CategoryStrength,
		})
	}
	p := gainProfile()
	p.Goal = profile.GoalMaintain

	result, err := newSelector().Select(exercises, p, safety.EmptyRuleSet(), nil)
	require.NoError(t, err)

	assert.Equal(t, 12, result.Stages.AfterTargeting, "large pools take 6 cardio + 6 strength")
	assert.Len(t, result.Items, exercise.SampleSize)
}

func TestSelect_SessionEnergyScalesWithWeight(t *testing.T) {
	exercises := []catalog.ExerciseItem{
		{Activity: "Running", CaloriesPerKg: 9.8, Category: catalog.CategoryCardio},
	}
	p := gainProfile()
	p.Goal = profile.GoalLose
	p.WeightKg = 80

	result, err := newSelector().Select(exercises, p, safety.EmptyRuleSet(), nil)
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.InDelta(t, 784, result.Items[0].EstSessionKcal, 0.001)
}

func TestSelect_GenderAndFrequencyRules(t *testing.T) {
	exercises := []catalog.ExerciseItem{
		{Activity: "Heavy Deadlift", CaloriesPerKg: 6.0, Category: catalog.CategoryStrength},
		{Activity: "Running", CaloriesPerKg: 9.8, Category: catalog.CategoryCardio},
		{Activity: "HIIT Circuit", CaloriesPerKg: 11.0, Category: catalog.CategoryMixed},
	}
	p := gainProfile()
	p.Goal = profile.GoalLose
	p.Gender = profile.GenderFemale
	p.ActivityDaysWeek = 1

	rules := safety.NewRuleSet(nil,
		[]safety.GenderRule{
			{Gender: "FEMALE", AvoidTokens: []string{"heavy"}, RecommendTokens: []string{"mobility"}},
		},
		[]safety.FrequencyRule{
			{MinDays: 0, AvoidTokens: []string{"hiit"}, RecommendTokens: []string{"walking"}},
			{MinDays: 4, AvoidTokens: []string{}},
		})

	result, err := newSelector().Select(exercises, p, rules, nil)
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "Running", result.Items[0].Activity)
	assert.ElementsMatch(t, []string{"Heavy Deadlift", "HIIT Circuit"}, result.Removed)
	assert.ElementsMatch(t, []string{"mobility", "walking"}, result.Focus)
}

func TestSelect_CategoryTokensMatch(t *testing.T) {
	exercises := []catalog.ExerciseItem{
		{Activity: "Deadlift", CaloriesPerKg: 6.0, Category: catalog.CategoryStrength},
		{Activity: "Running", CaloriesPerKg: 9.8, Category: catalog.CategoryCardio},
	}
	p := gainProfile()
	p.Goal = profile.GoalLose
	p.Condition = "Hypertension"

	rules := safety.NewRuleSet([]safety.MedicalRule{
		{Condition: "Hypertension", AvoidTokens: []string{"strength"}},
	}, nil, nil)

	result, err := newSelector().Select(exercises, p, rules, nil)
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "Running", result.Items[0].Activity)
}

func TestSelect_LimitedFlagSurvives(t *testing.T) {
	exercises := []catalog.ExerciseItem{
		{Activity: "Running", CaloriesPerKg: 9.8, Category: catalog.CategoryCardio},
	}
	p := gainProfile()
	p.Goal = profile.GoalLose
	p.Condition = "Asthma"

	rules := safety.NewRuleSet([]safety.MedicalRule{
		{Condition: "Asthma", LimitTokens: []string{"running"}},
	}, nil, nil)

	result, err := newSelector().Select(exercises, p, rules, nil)
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, safety.FlagLimited, result.Items[0].Flag)
	assert.Contains(t, result.Limited, "Running")
}

func TestSelect_AttachesVideoReferences(t *testing.T) {
	exercises := []catalog.ExerciseItem{
		{Activity: "Running", CaloriesPerKg: 9.8, Category: catalog.CategoryCardio},
		{Activity: "Jump Rope", CaloriesPerKg: 11.8, Category: catalog.CategoryCardio},
	}
	p := gainProfile()
	p.Goal = profile.GoalLose

	library := video.NewLibrary([]catalog.VideoRef{
		{Activity: "Running", URL: "https://youtu.be/run"},
	})

	result, err := newSelector().Select(exercises, p, safety.EmptyRuleSet(), library)
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	byName := map[string]string{}
	for _, item := range result.Items {
		byName[item.Activity] = item.VideoURL
	}
	assert.Equal(t, "https://youtu.be/run", byName["Running"])
	assert.Equal(t, "https://www.youtube.com/results?search_query=Jump+Rope+exercise+tutorial", byName["Jump Rope"])
}

func TestSelect_Deterministic(t *testing.T) {
	var exercises []catalog.ExerciseItem
	for i := 0; i < 60; i++ {
		exercises = append(exercises, catalog.ExerciseItem{
			Activity:      fmt.Sprintf("Activity %02d", i),
			CaloriesPerKg: 2 + float64(i)*0.2,
			Category:      catalog.CategoryCardio,
		})
	}
	p := gainProfile()
	p.Goal = profile.GoalLose

	selector := newSelector()
	first, err := selector.Select(exercises, p, safety.EmptyRuleSet(), nil)
	require.NoError(t, err)
	second, err := selector.Select(exercises, p, safety.EmptyRuleSet(), nil)
	require.NoError(t, err)

	assert.Equal(t, first.Items, second.Items)
	assert.Len(t, first.Items, exercise.SampleSize)
	assert.LessOrEqual(t, first.Stages.Pool, exercise.PoolSize)
}
