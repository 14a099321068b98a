package analysis

import (
	"sort"

	"adjcli/internal/adjustments"
)

// CategoryStats groups observations by category and computes per-group
// aggregates. Categories with fewer than minCategorySample observations are
// suppressed as noise. Output is sorted by category name so results are
// deterministic for a fixed input.
func CategoryStats(observations []adjustments.Observation) []CategoryAggregate {
	grouped := make(map[string][]float64)
	for _, obs := range observations {
		grouped[obs.Category] = append(grouped[obs.Category], obs.Value)
	}

	aggregates := make([]CategoryAggregate, 0, len(grouped))
	for category, values := range grouped {
		if len(values) < minCategorySample {
			continue
		}

		sorted := make([]float64, len(values))
		copy(sorted, values)
		sort.Float64s(sorted)

		sum := 0.0
		for _, v := range values {
			sum += v
		}

		aggregates = append(aggregates, CategoryAggregate{
			Category: category,
			Count:    len(values),
			Mean:     sum / float64(len(values)),
			Median:   quantile(sorted, 0.5),
			Max:      sorted[len(sorted)-1],
		})
	}

	sort.Slice(aggregates, func(i, j int) bool {
		return aggregates[i].Category < aggregates[j].Category
	})

	return aggregates
}
