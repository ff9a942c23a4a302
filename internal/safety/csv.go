package safety

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Rule table CSVs come from the same heterogeneous exports as the
// catalog datasets, so columns are resolved through case-insensitive
// alias lists rather than fixed positions.
var (
	conditionAliases = []string{"condition", "medical_condition", "disease"}
	avoidAliases     = []string{"avoid", "avoid_tokens", "exclude"}
	limitAliases     = []string{"limit", "limit_tokens", "restrict"}
	genderKeyAliases = []string{"gender", "sex"}
	recommendAliases = []string{"recommend", "recommended", "prefer"}
	freqDaysAliases  = []string{"freq_days", "min_days", "days_per_week", "days"}
)

// ReadMedicalCSV parses a per-condition rule CSV into MedicalRule rows.
// Rows without a condition are dropped; an empty table is not an error,
// it just means no condition filtering applies.
func ReadMedicalCSV(r io.Reader) ([]MedicalRule, error) {
	rows, cols, err := readRuleCSV(r, "medical")
	if err != nil {
		return nil, err
	}

	condIdx := cols.resolve(conditionAliases)
	if condIdx < 0 {
		condIdx = 0
	}
	avoidIdx := cols.resolve(avoidAliases)
	limitIdx := cols.resolve(limitAliases)

	var rules []MedicalRule
	for _, row := range rows {
		condition := cols.field(row, condIdx)
		if condition == "" {
			continue
		}
		rules = append(rules, MedicalRule{
			Condition:   condition,
			AvoidTokens: ParseTokens(cols.field(row, avoidIdx)),
			LimitTokens: ParseTokens(cols.field(row, limitIdx)),
		})
	}
	return rules, nil
}

// ReadGenderCSV parses a gender adjustment CSV into GenderRule rows.
func ReadGenderCSV(r io.Reader) ([]GenderRule, error) {
	rows, cols, err := readRuleCSV(r, "gender")
	if err != nil {
		return nil, err
	}

	genderIdx := cols.resolve(genderKeyAliases)
	if genderIdx < 0 {
		genderIdx = 0
	}
	avoidIdx := cols.resolve(avoidAliases)
	recIdx := cols.resolve(recommendAliases)

	var rules []GenderRule
	for _, row := range rows {
		gender := cols.field(row, genderIdx)
		if gender == "" {
			continue
		}
		rules = append(rules, GenderRule{
			Gender:          gender,
			AvoidTokens:     ParseTokens(cols.field(row, avoidIdx)),
			RecommendTokens: ParseTokens(cols.field(row, recIdx)),
		})
	}
	return rules, nil
}

// ReadFrequencyCSV parses a training-frequency adjustment CSV into
// FrequencyRule rows. Rows with an unparseable day count are dropped.
func ReadFrequencyCSV(r io.Reader) ([]FrequencyRule, error) {
	rows, cols, err := readRuleCSV(r, "frequency")
	if err != nil {
		return nil, err
	}

	daysIdx := cols.resolve(freqDaysAliases)
	if daysIdx < 0 {
		daysIdx = 0
	}
	avoidIdx := cols.resolve(avoidAliases)
	recIdx := cols.resolve(recommendAliases)

	var rules []FrequencyRule
	for _, row := range rows {
		days, err := strconv.Atoi(cols.field(row, daysIdx))
		if err != nil || days < 0 {
			continue
		}
		rules = append(rules, FrequencyRule{
			MinDays:         days,
			AvoidTokens:     ParseTokens(cols.field(row, avoidIdx)),
			RecommendTokens: ParseTokens(cols.field(row, recIdx)),
		})
	}
	return rules, nil
}

// ruleColumns resolves alias lists against one CSV header row.
type ruleColumns struct {
	index map[string]int
}

func (c ruleColumns) resolve(aliases []string) int {
	for _, a := range aliases {
		if i, ok := c.index[a]; ok {
			return i
		}
	}
	return -1
}

func (c ruleColumns) field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func readRuleCSV(r io.Reader, table string) ([][]string, ruleColumns, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, ruleColumns{}, fmt.Errorf("reading %s rules csv: %w", table, err)
	}
	if len(records) == 0 {
		return nil, ruleColumns{}, nil
	}

	cols := ruleColumns{index: make(map[string]int, len(records[0]))}
	for i, col := range records[0] {
		key := strings.ToLower(strings.TrimSpace(col))
		if _, exists := cols.index[key]; !exists {
			cols.index[key] = i
		}
	}
	return records[1:], cols, nil
}
