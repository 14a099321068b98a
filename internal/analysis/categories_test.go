package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adjcli/internal/adjustments"
)

func obs(category string, values ...float64) []adjustments.Observation {
	out := make([]adjustments.Observation, len(values))
	for i, v := range values {
		out[i] = adjustments.Observation{Category: category, Value: v}
	}
	return out
}

func TestCategoryStats(t *testing.T) {
	t.Run("small categories suppressed", func(t *testing.T) {
		observations := append(
			obs("Rent", 100, 200, 300, 400, 500),
			obs("Utilities", 50, 60, 70, 80)..., // only 4 samples
		)

		aggregates := CategoryStats(observations)
		require.Len(t, aggregates, 1)
		assert.Equal(t, "Rent", aggregates[0].Category)
	})

	t.Run("aggregate values", func(t *testing.T) {
		aggregates := CategoryStats(obs("Rent", 100, 200, 300, 400, 500))
		require.Len(t, aggregates, 1)

		agg := aggregates[0]
		assert.Equal(t, 5, agg.Count)
		assert.InDelta(t, 300.0, agg.Mean, 1e-9)
		assert.InDelta(t, 300.0, agg.Median, 1e-9)
		assert.InDelta(t, 500.0, agg.Max, 1e-9)
	})

	t.Run("deterministic order by category name", func(t *testing.T) {
		observations := append(
			obs("Utilities", 1, 2, 3, 4, 5),
			obs("Rent", 10, 20, 30, 40, 50)...,
		)

		aggregates := CategoryStats(observations)
		require.Len(t, aggregates, 2)
		assert.Equal(t, "Rent", aggregates[0].Category)
		assert.Equal(t, "Utilities", aggregates[1].Category)
	})

	t.Run("no observations", func(t *testing.T) {
		assert.Empty(t, CategoryStats(nil))
	})
}
