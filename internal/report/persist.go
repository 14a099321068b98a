package report

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"adjcli/internal/analysis"
	"adjcli/internal/errors"
)

// WriteJSON writes the full report to a JSON file with a metadata envelope.
func (r *Reporter) WriteJSON(ctx context.Context, path string, rep *analysis.Report, meta Meta) error {
	r.logger.InfoContext(ctx, "writing analysis report to JSON",
		slog.String("path", path))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for JSON output", err)
	}

	jsonData := map[string]interface{}{
		"report":       rep,
		"meta":         meta,
		"run_id":       uuid.New().String(),
		"generated_at": time.Now().Format(time.RFC3339),
		"format":       "adjustment_analysis_v1",
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create JSON report file", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(jsonData); err != nil {
		return errors.NewStorageError("failed to encode analysis report to JSON", err)
	}

	return nil
}

// CSVPaths names the per-table CSV output files.
type CSVPaths struct {
	Distribution string
	Thresholds   string
	Categories   string
	Gaps         string
}

// WriteCSV writes one CSV file per analysis table.
func (r *Reporter) WriteCSV(ctx context.Context, paths CSVPaths, rep *analysis.Report) error {
	r.logger.InfoContext(ctx, "writing analysis tables to CSV",
		slog.String("distribution", paths.Distribution),
		slog.String("thresholds", paths.Thresholds))

	distRows := [][]string{{"Range", "Count", "Percentage"}}
	for _, b := range rep.Distribution {
		distRows = append(distRows, []string{
			b.Range,
			fmt.Sprintf("%d", b.Count),
			fmt.Sprintf("%.2f", b.Percentage),
		})
	}
	if err := writeCSVFile(paths.Distribution, distRows); err != nil {
		return err
	}

	thresholdRows := [][]string{{"Threshold", "CountBelow", "PercentageBelow"}}
	for _, p := range rep.ThresholdAnalysis {
		thresholdRows = append(thresholdRows, []string{
			fmt.Sprintf("%.0f", p.Threshold),
			fmt.Sprintf("%d", p.CountBelow),
			fmt.Sprintf("%.2f", p.PercentageBelow),
		})
	}
	if err := writeCSVFile(paths.Thresholds, thresholdRows); err != nil {
		return err
	}

	categoryRows := [][]string{{"Category", "Count", "Mean", "Median", "Max"}}
	for _, c := range rep.CategoryStats {
		categoryRows = append(categoryRows, []string{
			c.Category,
			fmt.Sprintf("%d", c.Count),
			fmt.Sprintf("%.2f", c.Mean),
			fmt.Sprintf("%.2f", c.Median),
			fmt.Sprintf("%.2f", c.Max),
		})
	}
	if err := writeCSVFile(paths.Categories, categoryRows); err != nil {
		return err
	}

	gapRows := [][]string{{"LowerValue", "UpperValue", "Gap", "GapPercentage"}}
	for _, g := range rep.Gaps {
		gapRows = append(gapRows, []string{
			fmt.Sprintf("%.2f", g.LowerValue),
			fmt.Sprintf("%.2f", g.UpperValue),
			fmt.Sprintf("%.2f", g.Gap),
			fmt.Sprintf("%.2f", g.GapPercentage),
		})
	}
	return writeCSVFile(paths.Gaps, gapRows)
}

// writeCSVFile writes rows to path, creating parent directories as needed.
func writeCSVFile(path string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for CSV output", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create CSV file", err).
			WithContext("path", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return errors.NewStorageError("failed to write CSV row", err).
				WithContext("path", path)
		}
	}

	return nil
}
