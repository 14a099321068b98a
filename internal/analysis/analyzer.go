package analysis

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"adjcli/internal/adjustments"
	"adjcli/internal/errors"
)

// Analyzer orchestrates the analytical passes over a parsed observation
// collection.
type Analyzer struct {
	logger *slog.Logger
}

// NewAnalyzer creates an analyzer with the given logger.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger}
}

// Analyze runs all passes and assembles the Report. The observation slice is
// only read; the passes run concurrently and write disjoint report fields.
// An empty collection is rejected up front, since every downstream statistic
// divides by the observation count.
func (a *Analyzer) Analyze(ctx context.Context, observations []adjustments.Observation) (*Report, error) {
	if len(observations) == 0 {
		return nil, errors.NewValidationError("no observations to analyze")
	}

	start := time.Now()
	a.logger.InfoContext(ctx, "starting adjustment analysis",
		slog.Int("observations", len(observations)))

	values := make([]float64, len(observations))
	for i, obs := range observations {
		values[i] = obs.Value
	}

	report := &Report{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		report.Stats = Summarize(values)
		return nil
	})
	g.Go(func() error {
		report.Distribution = Distribution(values)
		return nil
	})
	g.Go(func() error {
		report.ThresholdAnalysis = ThresholdCoverage(values)
		return nil
	})
	g.Go(func() error {
		report.CategoryStats = CategoryStats(observations)
		return nil
	})
	g.Go(func() error {
		report.Gaps = Gaps(values)
		return nil
	})
	g.Go(func() error {
		report.Recommended = Recommendations(values)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Recommendation = ResolveRecommendation(report.Recommended)

	a.logger.InfoContext(ctx, "adjustment analysis completed",
		slog.Int("observations", report.Stats.Count),
		slog.Int("categories", len(report.CategoryStats)),
		slog.Int("gaps", len(report.Gaps)),
		slog.String("recommended_level", report.Recommendation.Level),
		slog.Duration("elapsed", time.Since(start)))

	return report, nil
}
