package catalog

import "strings"

// Keyword tables for classification heuristics. Matching is
// case-insensitive substring search against the item name. The tables are
// exported-adjacent constants rather than inline literals so the heuristics
// stay auditable and independently testable.
var (
	// nonVegTokens force NON_VEG classification. Checked before vegHints,
	// so "chicken curry" lands on NON_VEG even though "curry" is a veg hint.
	nonVegTokens = []string{
		"chicken", "mutton", "lamb", "beef", "pork", "fish", "egg",
		"prawn", "shrimp", "crab", "bacon", "sausage", "tuna", "salmon",
		"anchovy", "squid", "octopus", "seafood",
	}

	// vegHints suggest VEG classification.
	vegHints = []string{
		"paneer", "tofu", "dal", "lentil", "vegetable", "veg",
		"vegetarian", "sambar", "idli", "dosa", "roti", "salad",
		"sprouts", "cheese", "curry",
	}

	// strengthTokens mark strength-type activities.
	strengthTokens = []string{
		"strength", "resistance", "weight", "lift", "power", "body",
		"squat", "deadlift", "press", "push-up", "pull-up", "plank",
	}

	// cardioTokens mark cardio-type activities.
	cardioTokens = []string{
		"cardio", "run", "jog", "cycling", "bicycl", "swim", "row",
		"walk", "aerobic", "jump", "skipping", "dance", "hiit", "stair",
	}
)

// METToCaloriesPerKg converts a MET-like intensity value into the
// cal/kg-per-session unit used by the exercise dataset.
const METToCaloriesPerKg = 1.05

// InferDietClass classifies a food by name keywords. Returns
// DietClassUnknown when no token matches; unknown items are never excluded
// solely for lack of classification (fail-open).
func InferDietClass(name string) DietClass {
	s := strings.ToLower(name)
	for _, tok := range nonVegTokens {
		if strings.Contains(s, tok) {
			return DietClassNonVeg
		}
	}
	for _, tok := range vegHints {
		if strings.Contains(s, tok) {
			return DietClassVeg
		}
	}
	return DietClassUnknown
}

// InferCategory classifies an activity by name keywords. Unknown
// activities default to CategoryMixed.
func InferCategory(activity string) Category {
	s := strings.ToLower(activity)
	for _, tok := range strengthTokens {
		if strings.Contains(s, tok) {
			return CategoryStrength
		}
	}
	for _, tok := range cardioTokens {
		if strings.Contains(s, tok) {
			return CategoryCardio
		}
	}
	return CategoryMixed
}
