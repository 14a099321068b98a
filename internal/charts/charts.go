// Package charts renders the computed analysis series to PNG image files.
// It consumes the series produced by the analysis package and never computes
// statistics itself.
package charts

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"adjcli/internal/analysis"
	"adjcli/internal/errors"
)

// Renderer draws distribution and cumulative charts.
type Renderer struct {
	logger *slog.Logger
	width  int
	height int
}

// NewRenderer creates a chart renderer with the given logger.
func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		logger: logger,
		width:  1024,
		height: 512,
	}
}

var barColor = drawing.Color{R: 79, G: 70, B: 229, A: 255}

// RenderDistribution writes a bar chart of bucket counts to path.
func (r *Renderer) RenderDistribution(ctx context.Context, path string, buckets []analysis.DistributionBucket) error {
	if len(buckets) == 0 {
		return errors.NewRenderError("no distribution buckets to render", nil)
	}

	bars := make([]chart.Value, 0, len(buckets))
	for _, b := range buckets {
		bars = append(bars, chart.Value{
			Label: b.Range,
			Value: float64(b.Count),
			Style: chart.Style{FillColor: barColor, StrokeColor: barColor},
		})
	}

	graph := chart.BarChart{
		Title:    "Distribution of Financial Adjustments",
		Width:    r.width,
		Height:   r.height,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		XAxis: chart.Style{TextRotationDegrees: 45},
		Bars:  bars,
	}

	if err := r.renderToFile(path, func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	}); err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "rendered distribution chart",
		slog.String("path", path),
		slog.Int("buckets", len(buckets)))
	return nil
}

// RenderCumulative writes a line chart of percentage-below vs threshold to
// path.
func (r *Renderer) RenderCumulative(ctx context.Context, path string, points []analysis.ThresholdPoint) error {
	if len(points) < 2 {
		return errors.NewRenderError("need at least two threshold points to render", nil)
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Threshold
		ys[i] = p.PercentageBelow
	}

	graph := chart.Chart{
		Title:  "Cumulative Percentage of Adjustments Below Threshold",
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		XAxis: chart.XAxis{Name: "Threshold Amount ($)"},
		YAxis: chart.YAxis{
			Name:  "Percentage of Adjustments Below",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: "Coverage",
				Style: chart.Style{
					StrokeColor: barColor,
					DotColor:    barColor,
					DotWidth:    4,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}

	if err := r.renderToFile(path, func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	}); err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "rendered cumulative chart",
		slog.String("path", path),
		slog.Int("points", len(points)))
	return nil
}

// renderToFile creates path (and parent directories) and runs render into it.
func (r *Renderer) renderToFile(path string, render func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for chart output", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create chart file", err).
			WithContext("path", path)
	}
	defer file.Close()

	if err := render(file); err != nil {
		return errors.NewRenderError("failed to render chart", err).
			WithContext("path", path)
	}
	return nil
}
