package analysis

import (
	"sort"
)

// Gaps detects natural breaks among the largest observation values. Values
// are sorted ascending and the trailing gapWindow values are scanned pairwise;
// a pair whose relative increase exceeds gapCutoffPct is retained. The result
// is sorted descending by gap percentage.
func Gaps(values []float64) []Gap {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	top := sorted
	if len(sorted) > gapWindow {
		top = sorted[len(sorted)-gapWindow:]
	}

	var gaps []Gap
	for i := 1; i < len(top); i++ {
		lower, upper := top[i-1], top[i]
		if lower == 0 {
			// Relative increase from zero is undefined.
			continue
		}

		gap := upper - lower
		gapPct := gap / lower * 100
		if gapPct > gapCutoffPct {
			gaps = append(gaps, Gap{
				LowerValue:    lower,
				UpperValue:    upper,
				Gap:           gap,
				GapPercentage: gapPct,
			})
		}
	}

	sort.Slice(gaps, func(i, j int) bool {
		return gaps[i].GapPercentage > gaps[j].GapPercentage
	})

	return gaps
}
