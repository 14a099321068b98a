package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summarize computes descriptive statistics over the values. The caller must
// guard against an empty slice; Analyze does so before dispatching.
func Summarize(values []float64) SummaryStats {
	if len(values) == 0 {
		return SummaryStats{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, stdDev := stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		stdDev = 0 // sample std dev is undefined for n=1
	}

	return SummaryStats{
		Count:  len(values),
		Mean:   mean,
		Median: quantile(sorted, 0.5),
		StdDev: stdDev,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		P75:    quantile(sorted, 0.75),
		P90:    quantile(sorted, 0.90),
		P95:    quantile(sorted, 0.95),
		P99:    quantile(sorted, 0.99),
	}
}

// quantile estimates the p-th quantile of sorted using linear interpolation
// between the two nearest order statistics.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}

	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	index := p * float64(n-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))

	if lower == upper {
		return sorted[lower]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
