package models

import (
	"github.com/vitaplan/vitaplan/internal/profile"
	"github.com/vitaplan/vitaplan/internal/recommend"
	"github.com/vitaplan/vitaplan/internal/safety"
)

// RecommendationRequest is the request body for POST /v1/recommendations.
type RecommendationRequest struct {
	Age                 int     `json:"age"`
	Gender              string  `json:"gender"`
	HeightCm            float64 `json:"heightCm"`
	WeightKg            float64 `json:"weightKg"`
	ActivityDaysPerWeek int     `json:"activityDaysPerWeek"`
	Goal                string  `json:"goal"`
	DietPref            string  `json:"dietPref"`
	Condition           string  `json:"condition,omitempty"`
}

// ToProfile converts the request into a domain profile. Validation is
// the profile's job, not the DTO's.
func (r RecommendationRequest) ToProfile() profile.Profile {
	return profile.Profile{
		Age:              r.Age,
		Gender:           profile.Gender(r.Gender),
		HeightCm:         r.HeightCm,
		WeightKg:         r.WeightKg,
		ActivityDaysWeek: r.ActivityDaysPerWeek,
		Goal:             profile.Goal(r.Goal),
		DietPref:         profile.DietPref(r.DietPref),
		Condition:        r.Condition,
	}
}

// EnergyEstimate carries the computed energy numbers.
type EnergyEstimate struct {
	BMR             float64 `json:"bmr"`
	ActivityFactor  float64 `json:"activityFactor"`
	TDEE            float64 `json:"tdee"`
	DailyTargetKcal float64 `json:"dailyTargetKcal"`
}

// MealTargets carries the per-meal intake goals.
type MealTargets struct {
	Kcal     float64 `json:"kcal"`
	ProteinG float64 `json:"proteinG"`
}

// FoodItem is one ranked food in the response.
type FoodItem struct {
	Name      string  `json:"name"`
	Calories  float64 `json:"calories"`
	ProteinG  float64 `json:"proteinG"`
	CarbsG    float64 `json:"carbsG"`
	FatG      float64 `json:"fatG"`
	FibreG    float64 `json:"fibreG"`
	SugarG    float64 `json:"sugarG"`
	DietClass string  `json:"dietClass"`
	Score     float64 `json:"score"`
	Limited   bool    `json:"limited,omitempty"`
}

// DietPlan is the diet half of a recommendation.
type DietPlan struct {
	MealTargetKcal float64    `json:"mealTargetKcal"`
	Items          []FoodItem `json:"items"`
	Removed        []string   `json:"removed"`
	Limited        []string   `json:"limited"`
	Widened        bool       `json:"widened"`
}

// ExerciseItem is one ranked activity in the response.
type ExerciseItem struct {
	Activity       string  `json:"activity"`
	Category       string  `json:"category"`
	EstSessionKcal float64 `json:"estSessionKcal"`
	VideoURL       string  `json:"videoUrl,omitempty"`
	Limited        bool    `json:"limited,omitempty"`
}

// ExercisePlan is the exercise half of a recommendation.
type ExercisePlan struct {
	Items            []ExerciseItem `json:"items"`
	Removed          []string       `json:"removed"`
	Limited          []string       `json:"limited"`
	Focus            []string       `json:"focus"`
	StrengthFallback bool           `json:"strengthFallback,omitempty"`
}

// SafetySummary explains what the safety rules excluded or flagged.
type SafetySummary struct {
	Condition        string   `json:"condition,omitempty"`
	RemovedFoods     []string `json:"removedFoods"`
	LimitedFoods     []string `json:"limitedFoods"`
	RemovedExercises []string `json:"removedExercises"`
	LimitedExercises []string `json:"limitedExercises"`
}

// RecommendationResponse is the response body for POST /v1/recommendations.
type RecommendationResponse struct {
	GeneratedAt     Timestamp      `json:"generatedAt"`
	SnapshotVersion string         `json:"snapshotVersion"`
	Energy          EnergyEstimate `json:"energy"`
	Targets         MealTargets    `json:"targets"`
	Diet            DietPlan       `json:"diet"`
	Exercise        ExercisePlan   `json:"exercise"`
	Safety          SafetySummary  `json:"safety"`
	Tips            []string       `json:"tips"`
}

// NewRecommendationResponse maps a domain recommendation onto the wire
// representation.
func NewRecommendationResponse(rec *recommend.Recommendation) RecommendationResponse {
	resp := RecommendationResponse{
		GeneratedAt:     Timestamp(rec.GeneratedAt),
		SnapshotVersion: rec.SnapshotVersion,
		Energy: EnergyEstimate{
			BMR:             rec.Energy.BMR,
			ActivityFactor:  rec.Energy.ActivityFactor,
			TDEE:            rec.Energy.TDEE,
			DailyTargetKcal: rec.Energy.DailyTarget,
		},
		Targets: MealTargets{
			Kcal:     rec.Targets.Kcal,
			ProteinG: rec.Targets.ProteinG,
		},
		Safety: SafetySummary{
			Condition:        rec.Safety.Condition,
			RemovedFoods:     emptyIfNil(rec.Safety.RemovedFoods),
			LimitedFoods:     emptyIfNil(rec.Safety.LimitedFoods),
			RemovedExercises: emptyIfNil(rec.Safety.RemovedExercises),
			LimitedExercises: emptyIfNil(rec.Safety.LimitedExercises),
		},
		Tips: emptyIfNil(rec.Tips),
	}

	if rec.Diet != nil {
		resp.Diet = DietPlan{
			MealTargetKcal: rec.Diet.MealTargetKcal,
			Items:          make([]FoodItem, 0, len(rec.Diet.Items)),
			Removed:        emptyIfNil(rec.Diet.Removed),
			Limited:        emptyIfNil(rec.Diet.Limited),
			Widened:        rec.Diet.Widened,
		}
		for _, it := range rec.Diet.Items {
			resp.Diet.Items = append(resp.Diet.Items, FoodItem{
				Name:      it.Name,
				Calories:  it.Calories,
				ProteinG:  it.ProteinG,
				CarbsG:    it.CarbsG,
				FatG:      it.FatG,
				FibreG:    it.FibreG,
				SugarG:    it.SugarG,
				DietClass: string(it.DietClass),
				Score:     it.Score,
				Limited:   it.Flag == safety.FlagLimited,
			})
		}
	}

	if rec.Exercise != nil {
		resp.Exercise = ExercisePlan{
			Items:            make([]ExerciseItem, 0, len(rec.Exercise.Items)),
			Removed:          emptyIfNil(rec.Exercise.Removed),
			Limited:          emptyIfNil(rec.Exercise.Limited),
			Focus:            emptyIfNil(rec.Exercise.Focus),
			StrengthFallback: rec.Exercise.StrengthFallback,
		}
		for _, it := range rec.Exercise.Items {
			resp.Exercise.Items = append(resp.Exercise.Items, ExerciseItem{
				Activity:       it.Activity,
				Category:       string(it.Category),
				EstSessionKcal: it.EstSessionKcal,
				VideoURL:       it.VideoURL,
				Limited:        it.Flag == safety.FlagLimited,
			})
		}
	}

	return resp
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
