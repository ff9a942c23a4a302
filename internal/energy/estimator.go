// Package energy estimates basal and target daily energy needs from a
// user profile. All functions are pure.
package energy

import (
	"github.com/vitaplan/vitaplan/internal/profile"
)

// Mifflin-St Jeor gender offsets.
const (
	maleOffset   = 5
	femaleOffset = -161
)

// LoseFloorKcal is the hard safety clamp applied to LOSE targets only.
const LoseFloorKcal = 1200

// MealsPerDay divides the daily target into per-meal portions.
const MealsPerDay = 3

// Estimate is the computed energy profile for one request.
type Estimate struct {
	// BMR is the basal metabolic rate in kcal/day.
	BMR float64

	// ActivityFactor is the multiplier applied to BMR.
	ActivityFactor float64

	// TDEE is BMR scaled by the activity factor.
	TDEE float64

	// DailyTarget is TDEE adjusted for the goal, with the LOSE floor applied.
	DailyTarget float64
}

// ComputeBMR returns the Mifflin-St Jeor basal metabolic rate for the
// profile. Returns an InvalidInputError when any field is out of its
// declared domain or non-finite.
func ComputeBMR(p profile.Profile) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == profile.GenderMale {
		bmr += maleOffset
	} else {
		bmr += femaleOffset
	}
	return bmr, nil
}

// ActivityFactor maps weekly training days onto a TDEE multiplier.
//
// This is the 4-bucket table. A 7-bucket variant with an extra 1.9 tier
// exists in some datasets' preparation tooling; this engine deliberately
// uses the coarser table and treats anything above 5 days as 1.725.
func ActivityFactor(activityDaysPerWeek int) float64 {
	switch {
	case activityDaysPerWeek <= 0:
		return 1.20
	case activityDaysPerWeek <= 3:
		return 1.375
	case activityDaysPerWeek <= 5:
		return 1.55
	default:
		return 1.725
	}
}

// DailyTarget adjusts a TDEE for the goal. LOSE subtracts 500 kcal but
// never goes below LoseFloorKcal; GAIN adds 300 kcal; MAINTAIN passes the
// TDEE through.
func DailyTarget(tdee float64, goal profile.Goal) float64 {
	switch goal {
	case profile.GoalLose:
		target := tdee - 500
		if target < LoseFloorKcal {
			return LoseFloorKcal
		}
		return target
	case profile.GoalGain:
		return tdee + 300
	default:
		return tdee
	}
}

// Compute derives the full energy profile for a validated profile.
func Compute(p profile.Profile) (*Estimate, error) {
	bmr, err := ComputeBMR(p)
	if err != nil {
		return nil, err
	}

	factor := ActivityFactor(p.ActivityDaysWeek)
	tdee := bmr * factor

	return &Estimate{
		BMR:            bmr,
		ActivityFactor: factor,
		TDEE:           tdee,
		DailyTarget:    DailyTarget(tdee, p.Goal),
	}, nil
}
