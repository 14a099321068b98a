package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Run("five evenly spaced values", func(t *testing.T) {
		values := []float64{100, 200, 300, 400, 500}

		stats := Summarize(values)

		assert.Equal(t, 5, stats.Count)
		assert.InDelta(t, 300.0, stats.Mean, 1e-9)
		assert.InDelta(t, 300.0, stats.Median, 1e-9)
		assert.InDelta(t, 100.0, stats.Min, 1e-9)
		assert.InDelta(t, 500.0, stats.Max, 1e-9)
		// sample standard deviation: sqrt(25000)
		assert.InDelta(t, 158.11388300841898, stats.StdDev, 1e-9)
		assert.InDelta(t, 400.0, stats.P75, 1e-9)
		assert.InDelta(t, 460.0, stats.P90, 1e-9)
		assert.InDelta(t, 480.0, stats.P95, 1e-9)
		assert.InDelta(t, 496.0, stats.P99, 1e-9)
	})

	t.Run("single value", func(t *testing.T) {
		stats := Summarize([]float64{42})

		assert.Equal(t, 1, stats.Count)
		assert.InDelta(t, 42.0, stats.Mean, 1e-9)
		assert.InDelta(t, 42.0, stats.Median, 1e-9)
		assert.InDelta(t, 0.0, stats.StdDev, 1e-9)
		assert.InDelta(t, 42.0, stats.Min, 1e-9)
		assert.InDelta(t, 42.0, stats.Max, 1e-9)
		assert.InDelta(t, 42.0, stats.P99, 1e-9)
	})

	t.Run("unsorted input", func(t *testing.T) {
		stats := Summarize([]float64{500, 100, 300, 200, 400})

		assert.InDelta(t, 300.0, stats.Median, 1e-9)
		assert.InDelta(t, 100.0, stats.Min, 1e-9)
		assert.InDelta(t, 500.0, stats.Max, 1e-9)
	})

	t.Run("empty input returns zero value", func(t *testing.T) {
		stats := Summarize(nil)
		assert.Equal(t, SummaryStats{}, stats)
	})
}

func TestQuantile(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}

	tests := []struct {
		name     string
		p        float64
		expected float64
	}{
		{"below range clamps to min", -0.5, 10},
		{"zero is min", 0, 10},
		{"interpolated median", 0.5, 25},
		{"exact order statistic", 1.0 / 3.0, 20},
		{"interpolated upper quartile", 0.75, 32.5},
		{"one is max", 1, 40},
		{"above range clamps to max", 1.5, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, quantile(sorted, tt.p), 1e-9)
		})
	}

	t.Run("empty slice", func(t *testing.T) {
		assert.Equal(t, 0.0, quantile(nil, 0.5))
	})
}
