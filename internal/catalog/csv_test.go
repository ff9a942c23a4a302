package catalog_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitaplan/vitaplan/internal/catalog"
)

func TestReadFoodCSV_AliasResolution(t *testing.T) {
	// Headers use source aliases, not canonical names.
	csv := strings.Join([]string{
		"Dish,Energy,Protein,Carbohydrate,Fat,Fiber,Sugar",
		"Moong Dal,180,12.5,28,2.1,7.5,1.2",
		"Chicken Curry,320,26,8,20,1.5,3",
	}, "\n")

	foods, err := catalog.ReadFoodCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, foods, 2)

	assert.Equal(t, "Moong Dal", foods[0].Name)
	assert.Equal(t, 180.0, foods[0].Calories)
	assert.Equal(t, 12.5, foods[0].ProteinG)
	assert.Equal(t, 7.5, foods[0].FibreG)
}

func TestReadFoodCSV_MissingValuesNormalizeToZero(t *testing.T) {
	csv := strings.Join([]string{
		"Name,Calories,Protein",
		"Plain Rice,not-a-number,",
	}, "\n")

	foods, err := catalog.ReadFoodCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, 0.0, foods[0].Calories)
	assert.Equal(t, 0.0, foods[0].ProteinG)
}

func TestReadFoodCSV_EmptyIsMissingDataset(t *testing.T) {
	_, err := catalog.ReadFoodCSV(strings.NewReader("Name,Calories\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrMissingDataset))

	var missing *catalog.MissingDatasetError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "food", missing.Dataset)
}

func TestReadExerciseCSV_METConversion(t *testing.T) {
	csv := strings.Join([]string{
		"Activity,MET,Category",
		"Running,9.8,Cardio",
		"Deadlift,6.0,Strength",
	}, "\n")

	exercises, err := catalog.ReadExerciseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, exercises, 2)

	assert.InDelta(t, 9.8*catalog.METToCaloriesPerKg, exercises[0].CaloriesPerKg, 1e-9)
	assert.Equal(t, catalog.CategoryCardio, exercises[0].Category)
	assert.Equal(t, catalog.CategoryStrength, exercises[1].Category)
}

func TestReadExerciseCSV_CategoryInferredWhenAbsent(t *testing.T) {
	csv := strings.Join([]string{
		"Activity,Calories_per_kg",
		"Jump Rope,1.6",
	}, "\n")

	exercises, err := catalog.ReadExerciseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, catalog.CategoryCardio, exercises[0].Category)
}

func TestReadVideoCSV_Optional(t *testing.T) {
	refs := catalog.ReadVideoCSV(strings.NewReader("Activity,Link\nRunning,https://example.com/run\nBroken,"))
	require.Len(t, refs, 1)
	assert.Equal(t, "Running", refs[0].Activity)
	assert.Equal(t, "https://example.com/run", refs[0].URL)

	// Empty input degrades to no refs rather than an error.
	assert.Empty(t, catalog.ReadVideoCSV(strings.NewReader("")))
}
