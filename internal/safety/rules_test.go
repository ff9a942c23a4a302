package safety_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitaplan/vitaplan/internal/safety"
)

func TestParseTokens(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "pipe separated", raw: "sugar|sweet|jaggery", expected: []string{"sugar", "sweet", "jaggery"}},
		{name: "mixed separators", raw: "fried, salty; pickle", expected: []string{"fried", "salty", "pickle"}},
		{name: "trims and lowercases", raw: " Sugar |  SWEET ", expected: []string{"sugar", "sweet"}},
		{name: "drops empties", raw: "||, ;", expected: []string{}},
		{name: "empty input", raw: "", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, safety.ParseTokens(tt.raw))
		})
	}
}

func TestMatches(t *testing.T) {
	tokens := []string{"sugar", "fried"}

	assert.True(t, safety.Matches("Sugar Cookies", tokens))
	assert.True(t, safety.Matches("deep-FRIED snack", tokens))
	assert.False(t, safety.Matches("Moong Dal", tokens))
	assert.False(t, safety.Matches("anything", nil))
}

func TestMedicalRule_ScreenItem(t *testing.T) {
	rule := safety.MedicalRule{
		Condition:   "Diabetes",
		AvoidTokens: []string{"sugar", "sweet"},
		LimitTokens: []string{"rice", "potato"},
	}

	removed := rule.ScreenItem("Sugar Syrup")
	assert.True(t, removed.Removed)

	limited := rule.ScreenItem("Fried Rice")
	assert.False(t, limited.Removed)
	assert.Equal(t, safety.FlagLimited, limited.Flag)

	ok := rule.ScreenItem("Moong Dal")
	assert.False(t, ok.Removed)
	assert.Equal(t, safety.FlagOK, ok.Flag)
}

func TestMedicalRule_AvoidWinsOverLimit(t *testing.T) {
	rule := safety.MedicalRule{
		AvoidTokens: []string{"sweet"},
		LimitTokens: []string{"sweet"},
	}

	screen := rule.ScreenItem("Sweet Lassi")
	assert.True(t, screen.Removed)
	assert.NotEqual(t, safety.FlagLimited, screen.Flag)
}

func TestRuleSet_MedicalLookupCaseInsensitive(t *testing.T) {
	rs := safety.NewRuleSet([]safety.MedicalRule{
		{Condition: "Diabetes", AvoidTokens: []string{"sugar"}},
	}, nil, nil)

	rule, ok := rs.Medical("diabetes")
	require.True(t, ok)
	assert.Equal(t, "Diabetes", rule.Condition)

	rule, ok = rs.Medical("  DIABETES ")
	require.True(t, ok)
	assert.Equal(t, []string{"sugar"}, rule.AvoidTokens)

	_, ok = rs.Medical("Gout")
	assert.False(t, ok, "unmatched condition means no filtering")
}

func TestRuleSet_FrequencyBucketSelection(t *testing.T) {
	rs := safety.NewRuleSet(nil, nil, []safety.FrequencyRule{
		{MinDays: 0, AvoidTokens: []string{"hiit"}},
		{MinDays: 3, AvoidTokens: []string{"marathon"}},
		{MinDays: 6, AvoidTokens: []string{}},
	})

	rule, ok := rs.Frequency(0)
	require.True(t, ok)
	assert.Equal(t, 0, rule.MinDays)

	rule, ok = rs.Frequency(4)
	require.True(t, ok)
	assert.Equal(t, 3, rule.MinDays, "largest bucket not exceeding frequency wins")

	rule, ok = rs.Frequency(7)
	require.True(t, ok)
	assert.Equal(t, 6, rule.MinDays)
}

func TestRuleSet_Frequency_NoBucketMatches(t *testing.T) {
	rs := safety.NewRuleSet(nil, nil, []safety.FrequencyRule{{MinDays: 5}})

	_, ok := rs.Frequency(2)
	assert.False(t, ok)
}

func TestStore_Swap(t *testing.T) {
	first := safety.NewRuleSet([]safety.MedicalRule{{Condition: "Anemia"}}, nil, nil)
	store := safety.NewStore(first)

	second := safety.NewRuleSet([]safety.MedicalRule{{Condition: "Diabetes"}}, nil, nil)
	replaced := store.Swap(second)

	assert.Same(t, first, replaced)
	_, ok := store.Current().Medical("diabetes")
	assert.True(t, ok)
}
