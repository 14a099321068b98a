package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adjcli/internal/adjustments"
	"adjcli/internal/errors"
)

func TestAnalyzer_Analyze(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	t.Run("empty dataset fails fast", func(t *testing.T) {
		_, err := analyzer.Analyze(context.Background(), nil)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeValidation))
	})

	t.Run("full report", func(t *testing.T) {
		var observations []adjustments.Observation
		observations = append(observations, obs("Rent", 1200, 1250, 1300, 1350, 1400)...)
		observations = append(observations, obs("Utilities", 85, 90, 95, 100, 105)...)
		observations = append(observations, obs("Payroll", 15000, 16000, 18000, 30000)...)

		report, err := analyzer.Analyze(context.Background(), observations)
		require.NoError(t, err)

		assert.Equal(t, len(observations), report.Stats.Count)
		assert.InDelta(t, 85.0, report.Stats.Min, 1e-9)
		assert.InDelta(t, 30000.0, report.Stats.Max, 1e-9)

		// Distribution counts reconcile with the total.
		totalCount := 0
		for _, b := range report.Distribution {
			totalCount += b.Count
		}
		assert.Equal(t, len(observations), totalCount)

		// Threshold coverage is monotone.
		for i := 1; i < len(report.ThresholdAnalysis); i++ {
			assert.GreaterOrEqual(t,
				report.ThresholdAnalysis[i].PercentageBelow,
				report.ThresholdAnalysis[i-1].PercentageBelow)
		}

		// Payroll has only 4 samples and is suppressed.
		categories := make([]string, 0, len(report.CategoryStats))
		for _, c := range report.CategoryStats {
			categories = append(categories, c.Category)
		}
		assert.Equal(t, []string{"Rent", "Utilities"}, categories)

		// Every retained gap is above the cutoff and the list is sorted.
		for i, g := range report.Gaps {
			assert.Greater(t, g.GapPercentage, 15.0)
			if i > 0 {
				assert.GreaterOrEqual(t, report.Gaps[i-1].GapPercentage, g.GapPercentage)
			}
		}

		require.Len(t, report.Recommended, 3)
		assert.Equal(t, "Conservative", report.Recommended[0].Level)
		assert.NotEmpty(t, report.Recommendation.Level)
	})

	t.Run("recommendation resolves lowest qualifying tier", func(t *testing.T) {
		// 10 of 10 values at or below 5000: Conservative covers 100%.
		observations := obs("Fees", 100, 200, 300, 400, 500, 600, 700, 800, 900, 1000)

		report, err := analyzer.Analyze(context.Background(), observations)
		require.NoError(t, err)

		assert.Equal(t, "Conservative", report.Recommendation.Level)
		assert.InDelta(t, 5000.0, report.Recommendation.Value, 1e-9)
		assert.InDelta(t, 100.0, report.Recommendation.Coverage, 1e-9)
	})
}
