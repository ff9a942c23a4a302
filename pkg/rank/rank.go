// Package rank provides scoring and sampling primitives shared by the
// diet and exercise selectors.
package rank

import "math/rand"

// MinMax returns the minimum and maximum of xs. Both are 0 for an empty slice.
func MinMax(xs []float64) (min, max float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	min, max = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max
}

// Normalize maps x onto [0,1] over the range [min,max].
// Returns 0 when the range is degenerate (max == min), so a candidate set
// with a constant signal contributes nothing rather than dividing by zero.
func Normalize(x, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (x - min) / (max - min)
}

// NormalizeAll normalizes every value of xs over its own min-max range.
func NormalizeAll(xs []float64) []float64 {
	min, max := MinMax(xs)
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = Normalize(x, min, max)
	}
	return out
}

// Sampler draws reproducible samples without replacement.
//
// Every call to Sample re-seeds its own source, so two calls with the same
// (n, k) on the same Sampler return the same indices. This is what makes
// "diversified top-N" repeatable: variety within one response, identical
// output across identical requests.
type Sampler struct {
	seed int64
}

// NewSampler creates a Sampler with the given seed.
func NewSampler(seed int64) *Sampler {
	return &Sampler{seed: seed}
}

// Seed returns the sampler's seed.
func (s *Sampler) Seed() int64 {
	return s.seed
}

// Sample returns k distinct indices drawn without replacement from [0, n),
// in draw order. k is clamped to n. Returns nil when n <= 0 or k <= 0.
func (s *Sampler) Sample(n, k int) []int {
	if n <= 0 || k <= 0 {
		return nil
	}
	if k > n {
		k = n
	}

	rng := rand.New(rand.NewSource(s.seed))

	// Partial Fisher-Yates: only the first k positions are settled.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}
