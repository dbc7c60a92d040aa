package experiment

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Arthurbdt/inventory-simulation/sim"
)

// Worked by hand: samples {1, 2, 3, 4} have mean 2.5 and sample standard
// deviation sqrt(5/3). With t(0.975, 3 df) = 3.1824, the 95% half-width
// is 3.1824 * sqrt(5/3) / 2 = 2.0543.
func TestMeanHalfWidth_KnownValue(t *testing.T) {
	mean, hw := MeanHalfWidth([]float64{1, 2, 3, 4}, 0.95)

	assert.Equal(t, 2.5, mean)
	assert.InDelta(t, 2.0543, hw, 1e-3)
}

func TestMeanHalfWidth_PermutationInvariant(t *testing.T) {
	samples := make([]float64, 50)
	rng := rand.New(rand.NewSource(42))
	for i := range samples {
		samples[i] = 100 + rng.NormFloat64()*7
	}

	meanA, hwA := MeanHalfWidth(samples, 0.95)

	shuffled := append([]float64(nil), samples...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	meanB, hwB := MeanHalfWidth(shuffled, 0.95)

	assert.Equal(t, meanA, meanB)
	assert.Equal(t, hwA, hwB)
}

func TestMeanHalfWidth_WidensWithConfidence(t *testing.T) {
	samples := []float64{10, 12, 11, 13, 9, 14, 10, 12}

	_, hw90 := MeanHalfWidth(samples, 0.90)
	_, hw95 := MeanHalfWidth(samples, 0.95)
	_, hw99 := MeanHalfWidth(samples, 0.99)

	assert.Less(t, hw90, hw95)
	assert.Less(t, hw95, hw99)
}

// Quadrupling the sample (same values, four copies each) leaves the mean
// and spread alone but doubles sqrt(n), so the interval must tighten.
func TestMeanHalfWidth_TightensWithSamples(t *testing.T) {
	small := []float64{10, 12, 11, 13, 9, 14, 10, 12, 11, 13}
	large := make([]float64, 0, 4*len(small))
	for i := 0; i < 4; i++ {
		large = append(large, small...)
	}

	meanS, hwS := MeanHalfWidth(small, 0.95)
	meanL, hwL := MeanHalfWidth(large, 0.95)

	assert.Equal(t, meanS, meanL)
	assert.Less(t, hwL, hwS)
}

func TestAggregate(t *testing.T) {
	s := &Summary{
		Confidence: 0.95,
		Results: []sim.ReplicationResult{
			{AvgMonthlyCost: 120, AvgMonthlyOrderCost: 90, AvgMonthlyHoldingCost: 20, AvgMonthlyShortageCost: 10},
			{AvgMonthlyCost: 130, AvgMonthlyOrderCost: 95, AvgMonthlyHoldingCost: 25, AvgMonthlyShortageCost: 10},
		},
	}

	aggregate(s)

	assert.Equal(t, 125.0, s.MeanMonthlyCost)
	assert.Equal(t, 92.5, s.MeanOrderCost)
	assert.Equal(t, 22.5, s.MeanHoldingCost)
	assert.Equal(t, 10.0, s.MeanShortageCost)
	assert.Greater(t, s.HalfWidth, 0.0)
}
