package exercise

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vitaplan/vitaplan/internal/catalog"
	"github.com/vitaplan/vitaplan/internal/profile"
	"github.com/vitaplan/vitaplan/internal/safety"
	"github.com/vitaplan/vitaplan/internal/video"
	"github.com/vitaplan/vitaplan/pkg/rank"
)

// Shortlist bounds for the selection pipeline.
const (
	// PoolSize caps the ranked pool the sample is drawn from.
	PoolSize = 40

	// SampleSize is the shortlist length drawn from the pool.
	SampleSize = 8

	// DefaultSeed keeps shortlists reproducible across identical requests.
	DefaultSeed = 42

	// Per-category caps for MAINTAIN profiles. The wide split applies
	// when the screened pool is large enough to fill it.
	maintainWideCardio    = 6
	maintainWideStrength  = 6
	maintainSmallCardio   = 3
	maintainSmallStrength = 2
)

// SelectorConfig holds configuration for creating a Selector.
type SelectorConfig struct {
	// Sampler draws the diversified shortlist. If nil, a sampler with
	// DefaultSeed is used.
	Sampler *rank.Sampler

	// Logger for selector operations.
	Logger zerolog.Logger
}

// Selector produces goal-biased exercise shortlists. Stateless and safe
// for concurrent use.
type Selector struct {
	sampler *rank.Sampler
	logger  zerolog.Logger
}

// NewSelector creates an exercise selector.
func NewSelector(cfg SelectorConfig) *Selector {
	sampler := cfg.Sampler
	if sampler == nil {
		sampler = rank.NewSampler(DefaultSeed)
	}
	return &Selector{
		sampler: sampler,
		logger:  cfg.Logger.With().Str("component", "exercise_selector").Logger(),
	}
}

// Select screens the dataset against medical, gender and frequency rules,
// targets categories for the goal, and draws a fixed-seed shortlist with
// demonstration links attached. A nil library degrades to search links.
func (s *Selector) Select(exercises []catalog.ExerciseItem, p profile.Profile, rules *safety.RuleSet, library *video.Library) (*Result, error) {
	if len(exercises) == 0 {
		return nil, &catalog.MissingDatasetError{Dataset: "exercise"}
	}
	if rules == nil {
		rules = safety.EmptyRuleSet()
	}
	if library == nil {
		library = video.EmptyLibrary()
	}

	result := &Result{
		Items:   []RankedExercise{},
		Removed: []string{},
		Limited: []string{},
		Focus:   []string{},
	}
	result.Stages.Input = len(exercises)

	medical, haveMedical := safety.MedicalRule{}, false
	if p.HasCondition() {
		medical, haveMedical = rules.Medical(p.Condition)
	}
	gender, haveGender := rules.Gender(string(p.Gender))
	frequency, haveFrequency := rules.Frequency(p.ActivityDaysWeek)

	if haveGender {
		result.Focus = append(result.Focus, gender.RecommendTokens...)
	}
	if haveFrequency {
		result.Focus = append(result.Focus, frequency.RecommendTokens...)
	}

	// Screening runs before category targeting so a GAIN fallback never
	// reintroduces an excluded activity.
	type screened struct {
		item catalog.ExerciseItem
		flag safety.Flag
	}
	var survivors []screened
	for _, ex := range exercises {
		// Tokens match against name and category together, so a rule can
		// exclude e.g. all "strength" work by category alone.
		text := ex.Activity + " " + string(ex.Category)

		if haveGender && safety.Matches(text, gender.AvoidTokens) {
			result.Removed = append(result.Removed, ex.Activity)
			continue
		}
		if haveFrequency && safety.Matches(text, frequency.AvoidTokens) {
			result.Removed = append(result.Removed, ex.Activity)
			continue
		}

		flag := safety.FlagOK
		if haveMedical {
			screen := medical.ScreenItem(text)
			if screen.Removed {
				result.Removed = append(result.Removed, ex.Activity)
				continue
			}
			flag = screen.Flag
			if flag == safety.FlagLimited {
				result.Limited = append(result.Limited, ex.Activity)
			}
		}
		survivors = append(survivors, screened{item: ex, flag: flag})
	}
	result.Stages.RemovedByRules = len(result.Removed)
	result.Stages.LimitedByMedical = len(result.Limited)

	ranked := make([]RankedExercise, len(survivors))
	for i, sc := range survivors {
		ranked[i] = RankedExercise{
			ExerciseItem:   sc.item,
			EstSessionKcal: sc.item.CaloriesPerKg * p.WeightKg,
			Flag:           sc.flag,
		}
	}
	sortByIntensity(ranked)

	targeted := s.target(ranked, p.Goal, result)
	result.Stages.AfterTargeting = len(targeted)

	// Dedup by activity; targeted lists are already in preference order,
	// so the first occurrence wins.
	seen := make(map[string]struct{}, len(targeted))
	unique := targeted[:0]
	for _, item := range targeted {
		key := catalog.NormalizeName(item.Activity)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, item)
	}
	result.Stages.Deduplicated = len(targeted) - len(unique)

	pool := unique
	if len(pool) > PoolSize {
		pool = pool[:PoolSize]
	}
	result.Stages.Pool = len(pool)

	picks := s.sampler.Sample(len(pool), SampleSize)
	items := make([]RankedExercise, 0, len(picks))
	for _, idx := range picks {
		items = append(items, pool[idx])
	}
	sortByIntensity(items)

	for i := range items {
		items[i].VideoURL = library.Resolve(items[i].Activity)
	}

	result.Items = items
	result.Stages.Sampled = len(items)
	return result, nil
}

// target applies the goal bias to an intensity-sorted candidate list.
func (s *Selector) target(ranked []RankedExercise, goal profile.Goal, result *Result) []RankedExercise {
	switch goal {
	case profile.GoalGain:
		var strength []RankedExercise
		for _, ex := range ranked {
			if ex.Category == catalog.CategoryStrength {
				strength = append(strength, ex)
			}
		}
		if len(strength) == 0 {
			result.StrengthFallback = true
			s.logger.Debug().Msg("no strength activities survived screening, using full list")
			return ranked
		}
		return strength

	case profile.GoalMaintain:
		var cardio, strength []RankedExercise
		for _, ex := range ranked {
			switch ex.Category {
			case catalog.CategoryCardio:
				cardio = append(cardio, ex)
			case catalog.CategoryStrength:
				strength = append(strength, ex)
			}
		}

		nCardio, nStrength := maintainSmallCardio, maintainSmallStrength
		if len(ranked) >= maintainWideCardio+maintainWideStrength {
			nCardio, nStrength = maintainWideCardio, maintainWideStrength
		}
		mixed := append(capped(cardio, nCardio), capped(strength, nStrength)...)
		if len(mixed) == 0 {
			// All MIXED (or one empty category pool): keep the full list
			// rather than returning nothing.
			return ranked
		}
		return mixed

	default: // LOSE: highest energy cost first, cardio-biased by construction.
		return ranked
	}
}

func capped(items []RankedExercise, n int) []RankedExercise {
	if len(items) > n {
		items = items[:n]
	}
	return append([]RankedExercise(nil), items...)
}

// sortByIntensity orders by calories_per_kg descending with a lexical
// tie-break for deterministic ranking.
func sortByIntensity(items []RankedExercise) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CaloriesPerKg != items[j].CaloriesPerKg {
			return items[i].CaloriesPerKg > items[j].CaloriesPerKg
		}
		return strings.ToLower(items[i].Activity) < strings.ToLower(items[j].Activity)
	})
}
