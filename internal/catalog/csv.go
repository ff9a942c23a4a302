package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Column alias tables: canonical field name to prioritized source header
// aliases, matched case-insensitively. Source CSVs come from heterogeneous
// exports, so the same field appears under several headers. The mapping is
// resolved once per file at load time and never consulted during scoring.
var (
	foodNameAliases   = []string{"fooditem", "dish", "description", "name", "food"}
	foodColumnAliases = map[string][]string{
		"calories": {"calories", "energy", "kcal"},
		"protein":  {"protein", "protein_g"},
		"carbs":    {"carb", "carbs", "carbohydrate", "carbs_g"},
		"fat":      {"fat", "fat_g"},
		"fibre":    {"fibre", "fiber", "fibre_g"},
		"sugar":    {"sugar", "sugar_g"},
	}
	foodDietAliases = []string{"vegnonveg", "veg_flag", "diet_class", "veg"}

	exerciseActivityAliases = []string{"activity", "title", "exercise", "name"}
	exerciseCalPerKgAliases = []string{"calories_per_kg", "cal_per_kg", "kcal_per_kg"}
	exerciseMETAliases      = []string{"met", "mets", "met_value"}
	exerciseCategoryAliases = []string{"category", "type", "exercise_type"}

	videoActivityAliases = []string{"activity", "exercise", "name", "title"}
	videoURLAliases      = []string{"url", "link", "video", "video_url", "demo_link"}
)

// header resolves canonical fields against one CSV header row.
type header struct {
	index map[string]int
}

func newHeader(row []string) header {
	h := header{index: make(map[string]int, len(row))}
	for i, col := range row {
		key := strings.ToLower(strings.TrimSpace(col))
		if _, exists := h.index[key]; !exists {
			h.index[key] = i
		}
	}
	return h
}

// resolve returns the column index for the first matching alias, or -1.
func (h header) resolve(aliases []string) int {
	for _, a := range aliases {
		if i, ok := h.index[a]; ok {
			return i
		}
	}
	return -1
}

func (h header) field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// numeric parses a cell into a non-negative float. Unparseable or missing
// cells normalize to 0 rather than failing the row.
func (h header) numeric(row []string, idx int) float64 {
	v, err := strconv.ParseFloat(h.field(row, idx), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ReadFoodCSV parses a nutrition CSV into FoodItem rows. Rows without a
// resolvable name are dropped. Returns MissingDatasetError when no usable
// rows remain.
func ReadFoodCSV(r io.Reader) ([]FoodItem, error) {
	rows, h, err := readAll(r, "food")
	if err != nil {
		return nil, err
	}

	nameIdx := h.resolve(foodNameAliases)
	if nameIdx < 0 {
		// No declared alias matched: fall back to the first column.
		nameIdx = 0
	}
	calIdx := h.resolve(foodColumnAliases["calories"])
	protIdx := h.resolve(foodColumnAliases["protein"])
	carbIdx := h.resolve(foodColumnAliases["carbs"])
	fatIdx := h.resolve(foodColumnAliases["fat"])
	fibreIdx := h.resolve(foodColumnAliases["fibre"])
	sugarIdx := h.resolve(foodColumnAliases["sugar"])
	dietIdx := h.resolve(foodDietAliases)

	var foods []FoodItem
	for _, row := range rows {
		name := h.field(row, nameIdx)
		if name == "" {
			continue
		}
		foods = append(foods, FoodItem{
			Name:      name,
			Calories:  h.numeric(row, calIdx),
			ProteinG:  h.numeric(row, protIdx),
			CarbsG:    h.numeric(row, carbIdx),
			FatG:      h.numeric(row, fatIdx),
			FibreG:    h.numeric(row, fibreIdx),
			SugarG:    h.numeric(row, sugarIdx),
			DietClass: parseDietClass(h.field(row, dietIdx)),
		})
	}
	if len(foods) == 0 {
		return nil, &MissingDatasetError{Dataset: "food"}
	}
	return foods, nil
}

// ReadExerciseCSV parses an exercise CSV into ExerciseItem rows. When the
// cal/kg column is absent, a MET column is converted via METToCaloriesPerKg.
func ReadExerciseCSV(r io.Reader) ([]ExerciseItem, error) {
	rows, h, err := readAll(r, "exercise")
	if err != nil {
		return nil, err
	}

	actIdx := h.resolve(exerciseActivityAliases)
	if actIdx < 0 {
		actIdx = 0
	}
	calIdx := h.resolve(exerciseCalPerKgAliases)
	metIdx := h.resolve(exerciseMETAliases)
	catIdx := h.resolve(exerciseCategoryAliases)

	var exercises []ExerciseItem
	for _, row := range rows {
		activity := h.field(row, actIdx)
		if activity == "" {
			continue
		}

		calPerKg := h.numeric(row, calIdx)
		if calIdx < 0 && metIdx >= 0 {
			calPerKg = h.numeric(row, metIdx) * METToCaloriesPerKg
		}

		exercises = append(exercises, ExerciseItem{
			Activity:      activity,
			CaloriesPerKg: calPerKg,
			Category:      parseCategory(h.field(row, catIdx), activity),
		})
	}
	if len(exercises) == 0 {
		return nil, &MissingDatasetError{Dataset: "exercise"}
	}
	return exercises, nil
}

// ReadVideoCSV parses a video reference CSV. An empty or unreadable file
// yields an empty slice, not an error: the video table is optional and its
// absence must degrade gracefully.
func ReadVideoCSV(r io.Reader) []VideoRef {
	rows, h, err := readAll(r, "video")
	if err != nil {
		return nil
	}

	actIdx := h.resolve(videoActivityAliases)
	if actIdx < 0 {
		actIdx = 0
	}
	urlIdx := h.resolve(videoURLAliases)

	var refs []VideoRef
	for _, row := range rows {
		activity := h.field(row, actIdx)
		url := h.field(row, urlIdx)
		if activity == "" || url == "" {
			continue
		}
		refs = append(refs, VideoRef{Activity: activity, URL: url})
	}
	return refs
}

func readAll(r io.Reader, dataset string) ([][]string, header, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // heterogeneous exports have ragged rows
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, header{}, fmt.Errorf("reading %s csv: %w", dataset, err)
	}
	if len(records) == 0 {
		return nil, header{}, &MissingDatasetError{Dataset: dataset}
	}
	return records[1:], newHeader(records[0]), nil
}

func parseDietClass(raw string) DietClass {
	switch strings.ToLower(raw) {
	case "0", "veg", "vegetarian":
		return DietClassVeg
	case "1", "nonveg", "non_veg", "non-veg":
		return DietClassNonVeg
	default:
		return DietClassUnknown
	}
}

func parseCategory(raw, activity string) Category {
	switch strings.ToLower(raw) {
	case "cardio":
		return CategoryCardio
	case "strength", "resistance":
		return CategoryStrength
	case "mixed":
		return CategoryMixed
	case "":
		return InferCategory(activity)
	default:
		// Free-text categories still carry signal in their wording.
		return InferCategory(raw + " " + activity)
	}
}
