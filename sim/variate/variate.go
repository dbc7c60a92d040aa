package variate

import (
	"math/rand"
	"sort"
)

// Sampler draws continuous durations in simulated months.
type Sampler interface {
	// Sample returns a non-negative duration.
	Sample(rng *rand.Rand) float64
}

// SizeSampler draws integer unit quantities.
type SizeSampler interface {
	// Sample returns a positive unit count (>= 1).
	Sample(rng *rand.Rand) int
}

// ExponentialSampler produces exponentially distributed durations.
type ExponentialSampler struct {
	mean float64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) float64 {
	return rng.ExpFloat64() * s.mean
}

// UniformSampler produces durations uniform on [min, max).
type UniformSampler struct {
	min, max float64
}

func (s *UniformSampler) Sample(rng *rand.Rand) float64 {
	return s.min + rng.Float64()*(s.max-s.min)
}

// ConstantSampler always returns the same fixed duration.
type ConstantSampler struct {
	value float64
}

func (s *ConstantSampler) Sample(_ *rand.Rand) float64 {
	return s.value
}

// DiscreteSampler samples unit quantities from an empirical probability
// mass function by inverting the CDF on a single uniform draw.
type DiscreteSampler struct {
	values []int     // sorted support
	cdf    []float64 // cumulative probabilities, same length as values
}

// NewDiscreteSampler creates a sampler from a PMF map (quantity → probability).
// Probabilities are normalized if they do not sum to 1.0.
func NewDiscreteSampler(pmf map[int]float64) *DiscreteSampler {
	keys := make([]int, 0, len(pmf))
	for k := range pmf {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	total := 0.0
	for _, k := range keys {
		total += pmf[k]
	}

	values := make([]int, 0, len(keys))
	cdf := make([]float64, 0, len(keys))
	cumulative := 0.0
	for _, k := range keys {
		p := pmf[k]
		if p <= 0 {
			continue // skip zero or negative probabilities
		}
		cumulative += p / total
		values = append(values, k)
		cdf = append(cdf, cumulative)
	}
	// Force the last entry to exactly 1.0 so a draw near 1 cannot fall
	// off the table.
	if len(cdf) > 0 {
		cdf[len(cdf)-1] = 1.0
	}

	return &DiscreteSampler{values: values, cdf: cdf}
}

func (s *DiscreteSampler) Sample(rng *rand.Rand) int {
	if len(s.values) == 0 {
		return 1
	}
	if len(s.values) == 1 {
		return s.values[0]
	}
	u := rng.Float64()
	idx := sort.SearchFloat64s(s.cdf, u)
	if idx >= len(s.values) {
		idx = len(s.values) - 1
	}
	return s.values[idx]
}

// ConstantSizeSampler always returns the same quantity.
type ConstantSizeSampler struct {
	value int
}

func (s *ConstantSizeSampler) Sample(_ *rand.Rand) int {
	if s.value < 1 {
		return 1
	}
	return s.value
}
