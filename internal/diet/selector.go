package diet

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vitaplan/vitaplan/internal/catalog"
	"github.com/vitaplan/vitaplan/internal/profile"
	"github.com/vitaplan/vitaplan/internal/safety"
	"github.com/vitaplan/vitaplan/pkg/rank"
)

// Band and shortlist bounds for the selection pipeline.
const (
	// BandLower/BandUpper bracket the initial calorie band around the
	// per-meal target.
	BandLower = 0.6
	BandUpper = 1.4

	// WideLower/WideUpper are the once-only widened band applied when the
	// initial band admits nothing.
	WideLower = 0.5
	WideUpper = 1.6

	// PoolSize caps the scored pool the sample is drawn from.
	PoolSize = 120

	// SampleSize is the shortlist length drawn from the pool.
	SampleSize = 12

	// DefaultSeed keeps shortlists reproducible across identical requests.
	DefaultSeed = 42
)

// weights is the goal-dependent scoring triple.
type weights struct {
	calorie float64
	protein float64
	fibre   float64
}

func goalWeights(goal profile.Goal) weights {
	if goal == profile.GoalGain {
		return weights{calorie: 0.45, protein: 0.45, fibre: 0.10}
	}
	return weights{calorie: 0.5, protein: 0.35, fibre: 0.15}
}

// SelectorConfig holds configuration for creating a Selector.
type SelectorConfig struct {
	// Sampler draws the diversified shortlist. If nil, a sampler with
	// DefaultSeed is used.
	Sampler *rank.Sampler

	// Logger for selector operations.
	Logger zerolog.Logger
}

// Selector produces ranked, safety-filtered diet shortlists. It holds no
// mutable state, so one Selector is safe for concurrent use.
type Selector struct {
	sampler *rank.Sampler
	logger  zerolog.Logger
}

// NewSelector creates a diet selector.
func NewSelector(cfg SelectorConfig) *Selector {
	sampler := cfg.Sampler
	if sampler == nil {
		sampler = rank.NewSampler(DefaultSeed)
	}
	return &Selector{
		sampler: sampler,
		logger:  cfg.Logger.With().Str("component", "diet_selector").Logger(),
	}
}

// Select runs the full pipeline: preference filter, medical screening,
// calorie band with one widening, scoring, dedup and fixed-seed sampling.
// An entirely empty dataset is an error; a dataset filtered down to zero
// candidates yields an empty Result instead.
func (s *Selector) Select(foods []catalog.FoodItem, p profile.Profile, mealTargetKcal float64, rules *safety.RuleSet) (*Result, error) {
	if len(foods) == 0 {
		return nil, &catalog.MissingDatasetError{Dataset: "nutrition"}
	}
	if rules == nil {
		rules = safety.EmptyRuleSet()
	}

	result := &Result{
		MealTargetKcal: mealTargetKcal,
		Items:          []ScoredFood{},
		Removed:        []string{},
		Limited:        []string{},
	}
	result.Stages.Input = len(foods)

	// Dietary preference. Unclassified items survive either preference:
	// lack of a classification is never grounds for exclusion.
	preferred := foods[:0:0]
	for _, f := range foods {
		if excludedByPreference(p.DietPref, f.DietClass) {
			continue
		}
		preferred = append(preferred, f)
	}
	result.Stages.AfterPreference = len(preferred)

	// Medical screening against the item name.
	type screened struct {
		item catalog.FoodItem
		flag safety.Flag
	}
	var survivors []screened
	rule, haveRule := safety.MedicalRule{}, false
	if p.HasCondition() {
		rule, haveRule = rules.Medical(p.Condition)
	}
	for _, f := range preferred {
		flag := safety.FlagOK
		if haveRule {
			screen := rule.ScreenItem(f.Name)
			if screen.Removed {
				result.Removed = append(result.Removed, f.Name)
				continue
			}
			flag = screen.Flag
			if flag == safety.FlagLimited {
				result.Limited = append(result.Limited, f.Name)
			}
		}
		survivors = append(survivors, screened{item: f, flag: flag})
	}
	result.Stages.RemovedByMedical = len(result.Removed)
	result.Stages.LimitedByMedical = len(result.Limited)

	// Calorie band, widened once on an empty first pass.
	banded := bandFilter(survivors, mealTargetKcal, BandLower, BandUpper, func(sc screened) float64 { return sc.item.Calories })
	if len(banded) == 0 {
		banded = bandFilter(survivors, mealTargetKcal, WideLower, WideUpper, func(sc screened) float64 { return sc.item.Calories })
		result.Widened = true
	}
	result.Stages.AfterBand = len(banded)
	if len(banded) == 0 {
		s.logger.Debug().
			Float64("meal_target_kcal", mealTargetKcal).
			Int("input", result.Stages.Input).
			Msg("no candidates inside widened calorie band")
		return result, nil
	}

	// Composite score over the banded pool.
	w := goalWeights(p.Goal)
	distances := make([]float64, len(banded))
	proteins := make([]float64, len(banded))
	fibres := make([]float64, len(banded))
	for i, sc := range banded {
		d := sc.item.Calories - mealTargetKcal
		if d < 0 {
			d = -d
		}
		distances[i] = d
		proteins[i] = sc.item.ProteinG
		fibres[i] = sc.item.FibreG
	}
	distances = rank.NormalizeAll(distances)
	proteins = rank.NormalizeAll(proteins)
	fibres = rank.NormalizeAll(fibres)

	scored := make([]ScoredFood, len(banded))
	for i, sc := range banded {
		scored[i] = ScoredFood{
			FoodItem: sc.item,
			Score:    w.calorie*(1-distances[i]) + w.protein*proteins[i] + w.fibre*fibres[i],
			Flag:     sc.flag,
		}
	}

	sortByScore(scored)

	// Dedup after sorting, so the first occurrence of a name is also its
	// best-scoring one.
	seen := make(map[string]struct{}, len(scored))
	unique := scored[:0]
	for _, item := range scored {
		key := catalog.NormalizeName(item.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, item)
	}
	result.Stages.Deduplicated = len(scored) - len(unique)

	pool := unique
	if len(pool) > PoolSize {
		pool = pool[:PoolSize]
	}
	result.Stages.Pool = len(pool)

	picks := s.sampler.Sample(len(pool), SampleSize)
	items := make([]ScoredFood, 0, len(picks))
	for _, idx := range picks {
		items = append(items, pool[idx])
	}
	sortByScore(items)

	result.Items = items
	result.Stages.Sampled = len(items)
	return result, nil
}

// excludedByPreference reports whether a classified item conflicts with
// the dietary preference. UNKNOWN conflicts with neither.
func excludedByPreference(pref profile.DietPref, class catalog.DietClass) bool {
	switch pref {
	case profile.DietPrefVeg:
		return class == catalog.DietClassNonVeg
	case profile.DietPrefNonVeg:
		return class == catalog.DietClassVeg
	default:
		return false
	}
}

func bandFilter[T any](items []T, target, lower, upper float64, calories func(T) float64) []T {
	lo, hi := target*lower, target*upper
	var out []T
	for _, it := range items {
		c := calories(it)
		if c >= lo && c <= hi {
			out = append(out, it)
		}
	}
	return out
}

// sortByScore orders by score descending with a lexical tie-break, so
// equal-score candidates rank deterministically.
func sortByScore(items []ScoredFood) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
}
