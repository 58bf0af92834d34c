// Package stats computes robust price statistics from noisy chat-observed
// samples: outlier-trimmed means and bundle-item cross-validation between
// bulk-lot and per-unit pricing.
package stats

import (
	"errors"
	"math"
	"sort"
)

// TrimmedMean averages samples after discarding the lowest and highest
// ceil(trimPct*n) values. Sets of minSamples or fewer are averaged as-is.
func TrimmedMean(samples []float64, trimPct float64, minSamples int) (float64, error) {
	n := len(samples)
	if n == 0 {
		return 0, errors.New("no samples provided")
	}
	if n <= minSamples {
		return mean(samples), nil
	}

	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)

	k := int(math.Ceil(trimPct * float64(n)))
	if 2*k >= n {
		return mean(sorted), nil
	}
	return mean(sorted[k : n-k]), nil
}

// MinMax returns the smallest and largest sample.
func MinMax(samples []float64) (min, max float64, err error) {
	if len(samples) == 0 {
		return 0, 0, errors.New("no samples provided")
	}
	min, max = samples[0], samples[0]
	for _, s := range samples[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return min, max, nil
}

func mean(samples []float64) float64 {
	sum := 0.0
	for _, s := range samples {
		sum += s
	}
	return sum / float64(len(samples))
}
