package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"adjcli/internal/analysis"
	"adjcli/internal/errors"
)

// Meta carries run metadata displayed alongside the computed report.
type Meta struct {
	SourcePath    string `json:"source_path"`
	LinesRead     int    `json:"lines_read"`
	LinesSkipped  int    `json:"lines_skipped"`
	HalvesSkipped int    `json:"halves_skipped"`
}

// Reporter formats analysis results for display and persistence.
type Reporter struct {
	logger  *slog.Logger
	printer *message.Printer
}

// topGaps limits the gap section to the most significant entries.
const topGaps = 5

// NewReporter creates a reporter with the given logger.
func NewReporter(logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{
		logger:  logger,
		printer: message.NewPrinter(language.English),
	}
}

// WriteText writes the sectioned console report to w.
func (r *Reporter) WriteText(w io.Writer, rep *analysis.Report, meta Meta) error {
	stats := rep.Stats

	fmt.Fprintln(w, "=== FINANCIAL ADJUSTMENT ANALYSIS ===")
	fmt.Fprintf(w, "Total number of adjustments: %d\n", stats.Count)
	if meta.LinesSkipped > 0 || meta.HalvesSkipped > 0 {
		fmt.Fprintf(w, "(%d lines read, %d label/blank lines skipped, %d unparseable fields dropped)\n",
			meta.LinesRead, meta.LinesSkipped, meta.HalvesSkipped)
	}
	fmt.Fprintf(w, "Mean: $%.2f\n", stats.Mean)
	fmt.Fprintf(w, "Median: $%.2f\n", stats.Median)
	fmt.Fprintf(w, "Standard Deviation: $%.2f\n", stats.StdDev)
	fmt.Fprintf(w, "Minimum: $%.2f\n", stats.Min)
	fmt.Fprintf(w, "Maximum: $%.2f\n", stats.Max)
	fmt.Fprintf(w, "75th Percentile: $%.2f\n", stats.P75)
	fmt.Fprintf(w, "90th Percentile: $%.2f\n", stats.P90)
	fmt.Fprintf(w, "95th Percentile: $%.2f\n", stats.P95)
	fmt.Fprintf(w, "99th Percentile: $%.2f\n", stats.P99)

	fmt.Fprintln(w, "\n=== DISTRIBUTION ANALYSIS ===")
	for _, bucket := range rep.Distribution {
		fmt.Fprintf(w, "%s: %d adjustments (%.2f%%)\n", bucket.Range, bucket.Count, bucket.Percentage)
	}

	fmt.Fprintln(w, "\n=== CUMULATIVE THRESHOLD ANALYSIS ===")
	for _, point := range rep.ThresholdAnalysis {
		fmt.Fprintf(w, "$%.0f: %d adjustments below (%.2f%%)\n",
			point.Threshold, point.CountBelow, point.PercentageBelow)
	}

	if len(rep.CategoryStats) > 0 {
		fmt.Fprintln(w, "\n=== CATEGORY ANALYSIS ===")
		for _, cat := range rep.CategoryStats {
			fmt.Fprintf(w, "%s: %d adjustments, mean $%.2f, median $%.2f, max $%.2f\n",
				cat.Category, cat.Count, cat.Mean, cat.Median, cat.Max)
		}
	}

	fmt.Fprintln(w, "\n=== SIGNIFICANT GAPS IN DATA ===")
	for i, gap := range rep.Gaps {
		if i >= topGaps {
			break
		}
		fmt.Fprintf(w, "Gap between $%.2f and $%.2f: $%.2f (%.2f%%)\n",
			gap.LowerValue, gap.UpperValue, gap.Gap, gap.GapPercentage)
	}

	fmt.Fprintln(w, "\n=== RECOMMENDED THRESHOLDS ===")
	for _, tier := range rep.Recommended {
		fmt.Fprintf(w, "%s threshold: $%.0f (covers %.2f%% of adjustments)\n",
			tier.Level, tier.Value, tier.Coverage)
	}

	rec := rep.Recommendation
	fmt.Fprintln(w, "\n=== RECOMMENDATION ===")
	r.printer.Fprintf(w, "Based on the analysis, a ceiling of $%.2f is recommended (%s).\n",
		rec.Value, rec.Level)
	fmt.Fprintf(w, "This threshold would cover approximately %.1f%% of all adjustments.\n",
		rec.Coverage)

	return nil
}

// Print writes the console report to stdout.
func (r *Reporter) Print(rep *analysis.Report, meta Meta) error {
	return r.WriteText(os.Stdout, rep, meta)
}

// SaveSummaryReport writes the console report to a text file.
func (r *Reporter) SaveSummaryReport(rep *analysis.Report, meta Meta, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for summary report", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create summary report file", err)
	}
	defer file.Close()

	return r.WriteText(file, rep, meta)
}
