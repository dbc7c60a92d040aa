package experiment

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// aggregate fills the summary's interval estimate from its results.
// Samples are reduced in sorted order so the floating-point sums do not
// depend on completion or slice order.
func aggregate(s *Summary) {
	total := make([]float64, len(s.Results))
	order := make([]float64, len(s.Results))
	holding := make([]float64, len(s.Results))
	shortage := make([]float64, len(s.Results))
	for i, r := range s.Results {
		total[i] = r.AvgMonthlyCost
		order[i] = r.AvgMonthlyOrderCost
		holding[i] = r.AvgMonthlyHoldingCost
		shortage[i] = r.AvgMonthlyShortageCost
	}
	s.MeanMonthlyCost, s.HalfWidth = MeanHalfWidth(total, s.Confidence)
	s.MeanOrderCost = canonicalMean(order)
	s.MeanHoldingCost = canonicalMean(holding)
	s.MeanShortageCost = canonicalMean(shortage)
}

// MeanHalfWidth returns the sample mean and the half-width of the
// two-sided Student's t interval at the given confidence level. Needs at
// least two samples.
func MeanHalfWidth(samples []float64, confidence float64) (mean, halfWidth float64) {
	sorted := canonical(samples)
	mean = stat.Mean(sorted, nil)
	sd := stat.StdDev(sorted, nil) // sample standard deviation, n-1 denominator
	n := float64(len(sorted))
	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: n - 1}
	tcrit := tdist.Quantile(1 - (1-confidence)/2)
	return mean, tcrit * sd / math.Sqrt(n)
}

// canonicalMean is the mean over a sorted copy of samples.
func canonicalMean(samples []float64) float64 {
	return stat.Mean(canonical(samples), nil)
}

// canonical returns a sorted copy.
func canonical(samples []float64) []float64 {
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)
	return sorted
}
