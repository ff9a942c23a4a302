package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitaplan/vitaplan/internal/catalog"
)

func TestInferDietClass(t *testing.T) {
	tests := []struct {
		name     string
		expected catalog.DietClass
	}{
		{"Chicken Curry", catalog.DietClassNonVeg},
		{"Grilled Salmon", catalog.DietClassNonVeg},
		{"Egg Bhurji", catalog.DietClassNonVeg},
		{"Moong Dal", catalog.DietClassVeg},
		{"Paneer Tikka", catalog.DietClassVeg},
		{"Vegetable Pulao", catalog.DietClassVeg},
		{"Plain Rice", catalog.DietClassUnknown},
		{"Granola Bar", catalog.DietClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, catalog.InferDietClass(tt.name))
		})
	}
}

func TestInferDietClass_NonVegTokenWins(t *testing.T) {
	// "curry" is a veg hint, but "chicken" forces NON_VEG.
	assert.Equal(t, catalog.DietClassNonVeg, catalog.InferDietClass("Chicken Curry"))
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		activity string
		expected catalog.Category
	}{
		{"Running", catalog.CategoryCardio},
		{"Stationary Cycling", catalog.CategoryCardio},
		{"Deadlift", catalog.CategoryStrength},
		{"Bodyweight Circuit", catalog.CategoryStrength},
		{"Resistance Band Workout", catalog.CategoryStrength},
		{"Tai Chi", catalog.CategoryMixed},
	}

	for _, tt := range tests {
		t.Run(tt.activity, func(t *testing.T) {
			assert.Equal(t, tt.expected, catalog.InferCategory(tt.activity))
		})
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "moong dal", catalog.NormalizeName("  Moong   Dal "))
	assert.Equal(t, "chicken curry", catalog.NormalizeName("Chicken Curry"))
	assert.Equal(t, "", catalog.NormalizeName("   "))
}
