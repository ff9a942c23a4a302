package recommend

import (
	"strings"

	"github.com/vitaplan/vitaplan/internal/profile"
)

// Tips returns 1-4 advisory strings for a profile. The table is fixed:
// identical profiles always get identical tips.
func Tips(p profile.Profile) []string {
	tips := make([]string, 0, 4)

	switch p.Goal {
	case profile.GoalLose:
		tips = append(tips, "Keep a modest calorie deficit; aim for steady loss of about 0.5 kg per week.")
	case profile.GoalGain:
		tips = append(tips, "Pair the calorie surplus with strength training so the added weight is lean mass.")
	default:
		tips = append(tips, "Balance cardio and strength work across the week to hold your current weight.")
	}

	switch {
	case p.ActivityDaysWeek == 0:
		tips = append(tips, "Start with short daily walks before adding structured workouts.")
	case p.ActivityDaysWeek <= 2:
		tips = append(tips, "Add one more active day this week; consistency beats intensity.")
	case p.ActivityDaysWeek >= 6:
		tips = append(tips, "Schedule at least one full rest day to let your body recover.")
	}

	if p.HasCondition() {
		switch strings.ToLower(strings.TrimSpace(p.Condition)) {
		case "diabetes":
			tips = append(tips, "Prefer low-glycemic meals and avoid long gaps between them.")
		case "hypertension":
			tips = append(tips, "Watch sodium intake and favour steady-state cardio over max-effort lifts.")
		case "anemia":
			tips = append(tips, "Include iron-rich foods and pair them with vitamin C for absorption.")
		default:
			tips = append(tips, "Review this plan with your doctor before making major changes.")
		}
	}

	if p.Gender == profile.GenderFemale && len(tips) < 4 {
		tips = append(tips, "Make sure calcium and iron intake keep up with your training load.")
	}

	if len(tips) > 4 {
		tips = tips[:4]
	}
	return tips
}
