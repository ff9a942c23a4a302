// Package safety applies per-condition medical exclusion rules and the
// supplemental gender and training-frequency adjustments to candidate
// foods and exercises.
package safety

import (
	"strings"
)

// Flag marks the safety status of a retained item.
type Flag string

const (
	FlagOK      Flag = "OK"
	FlagLimited Flag = "LIMITED"
)

// MedicalRule holds the avoid/limit token sets for one condition.
// Avoid tokens are hard exclusions; limit tokens flag but keep the item.
type MedicalRule struct {
	// Condition is the rule key, matched case-insensitively.
	Condition string

	// AvoidTokens remove any item whose matched text contains a token.
	AvoidTokens []string

	// LimitTokens mark matching items LIMITED without removing them.
	LimitTokens []string
}

// GenderRule carries exercise adjustments for one gender.
type GenderRule struct {
	Gender          string
	AvoidTokens     []string
	RecommendTokens []string
}

// FrequencyRule carries exercise adjustments bucketed by weekly training
// days. The applicable rule is the one with the largest MinDays that does
// not exceed the user's frequency.
type FrequencyRule struct {
	MinDays         int
	AvoidTokens     []string
	RecommendTokens []string
}

// RuleSet is an immutable collection of all loaded rules.
type RuleSet struct {
	medical   map[string]MedicalRule
	gender    map[string]GenderRule
	frequency []FrequencyRule
}

// NewRuleSet builds a rule set. Tokens are trimmed and lowercased; rules
// whose keys are empty after trimming are dropped.
func NewRuleSet(medical []MedicalRule, gender []GenderRule, frequency []FrequencyRule) *RuleSet {
	rs := &RuleSet{
		medical: make(map[string]MedicalRule, len(medical)),
		gender:  make(map[string]GenderRule, len(gender)),
	}

	for _, m := range medical {
		key := strings.ToLower(strings.TrimSpace(m.Condition))
		if key == "" {
			continue
		}
		m.AvoidTokens = cleanTokens(m.AvoidTokens)
		m.LimitTokens = cleanTokens(m.LimitTokens)
		rs.medical[key] = m
	}

	for _, g := range gender {
		key := strings.ToLower(strings.TrimSpace(g.Gender))
		if key == "" {
			continue
		}
		g.AvoidTokens = cleanTokens(g.AvoidTokens)
		g.RecommendTokens = cleanTokens(g.RecommendTokens)
		rs.gender[key] = g
	}

	for _, f := range frequency {
		if f.MinDays < 0 {
			continue
		}
		f.AvoidTokens = cleanTokens(f.AvoidTokens)
		f.RecommendTokens = cleanTokens(f.RecommendTokens)
		rs.frequency = append(rs.frequency, f)
	}

	return rs
}

// EmptyRuleSet returns a rule set with no rules. All lookups miss, so
// filtering is a no-op (the "no rule, no filtering" fallback).
func EmptyRuleSet() *RuleSet {
	return NewRuleSet(nil, nil, nil)
}

// Medical looks up the rule for a condition, case-insensitively.
// ok is false when no rule matches; callers must then skip filtering.
func (rs *RuleSet) Medical(condition string) (MedicalRule, bool) {
	rule, ok := rs.medical[strings.ToLower(strings.TrimSpace(condition))]
	return rule, ok
}

// Gender looks up the adjustment rule for a gender key.
func (rs *RuleSet) Gender(gender string) (GenderRule, bool) {
	rule, ok := rs.gender[strings.ToLower(strings.TrimSpace(gender))]
	return rule, ok
}

// Frequency selects the rule with the largest MinDays not exceeding days.
func (rs *RuleSet) Frequency(days int) (FrequencyRule, bool) {
	var best FrequencyRule
	found := false
	for _, f := range rs.frequency {
		if f.MinDays <= days && (!found || f.MinDays > best.MinDays) {
			best = f
			found = true
		}
	}
	return best, found
}

// Conditions lists all known medical condition keys in their stored form.
func (rs *RuleSet) Conditions() []string {
	out := make([]string, 0, len(rs.medical))
	for _, m := range rs.medical {
		out = append(out, m.Condition)
	}
	return out
}

// ParseTokens splits a raw rule cell on the '|', ',' and ';' separators
// used by the source rule tables, trimming and lowercasing each token.
func ParseTokens(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '|' || r == ',' || r == ';'
	})
	return cleanTokens(fields)
}

func cleanTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
