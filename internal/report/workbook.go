package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"adjcli/internal/analysis"
	"adjcli/internal/errors"
)

// WriteWorkbook writes the full report to an XLSX workbook with one sheet per
// table and native bar and line charts embedded next to their data.
func (r *Reporter) WriteWorkbook(ctx context.Context, path string, rep *analysis.Report) error {
	r.logger.InfoContext(ctx, "writing analysis workbook",
		slog.String("path", path))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for workbook output", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return errors.NewStorageError("failed to rename summary sheet", err)
	}

	if err := writeSummarySheet(f, rep); err != nil {
		return err
	}
	if err := writeDistributionSheet(f, rep); err != nil {
		return err
	}
	if err := writeThresholdSheet(f, rep); err != nil {
		return err
	}
	if err := writeCategorySheet(f, rep); err != nil {
		return err
	}
	if err := writeGapSheet(f, rep); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return errors.NewStorageError("failed to save workbook", err).
			WithContext("path", path)
	}

	return nil
}

func writeSummarySheet(f *excelize.File, rep *analysis.Report) error {
	stats := rep.Stats
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Count", stats.Count},
		{"Mean", stats.Mean},
		{"Median", stats.Median},
		{"StdDev", stats.StdDev},
		{"Min", stats.Min},
		{"Max", stats.Max},
		{"P75", stats.P75},
		{"P90", stats.P90},
		{"P95", stats.P95},
		{"P99", stats.P99},
		{},
		{"Recommended ceiling", rep.Recommendation.Value},
		{"Tier", rep.Recommendation.Level},
		{"Coverage %", rep.Recommendation.Coverage},
	}
	return writeRows(f, "Summary", rows)
}

func writeDistributionSheet(f *excelize.File, rep *analysis.Report) error {
	if _, err := f.NewSheet("Distribution"); err != nil {
		return errors.NewStorageError("failed to create distribution sheet", err)
	}

	rows := [][]interface{}{{"Range", "Count", "Percentage"}}
	for _, b := range rep.Distribution {
		rows = append(rows, []interface{}{b.Range, b.Count, b.Percentage})
	}
	if err := writeRows(f, "Distribution", rows); err != nil {
		return err
	}

	lastRow := len(rep.Distribution) + 1
	chart := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       "Distribution!$B$1",
			Categories: fmt.Sprintf("Distribution!$A$2:$A$%d", lastRow),
			Values:     fmt.Sprintf("Distribution!$B$2:$B$%d", lastRow),
		}},
		Title: []excelize.RichTextRun{{Text: "Distribution of Financial Adjustments"}},
	}
	if err := f.AddChart("Distribution", "E2", chart); err != nil {
		return errors.NewStorageError("failed to add distribution chart", err)
	}
	return nil
}

func writeThresholdSheet(f *excelize.File, rep *analysis.Report) error {
	if _, err := f.NewSheet("Thresholds"); err != nil {
		return errors.NewStorageError("failed to create thresholds sheet", err)
	}

	rows := [][]interface{}{{"Threshold", "CountBelow", "PercentageBelow"}}
	for _, p := range rep.ThresholdAnalysis {
		rows = append(rows, []interface{}{p.Threshold, p.CountBelow, p.PercentageBelow})
	}
	if err := writeRows(f, "Thresholds", rows); err != nil {
		return err
	}

	lastRow := len(rep.ThresholdAnalysis) + 1
	chart := &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       "Thresholds!$C$1",
			Categories: fmt.Sprintf("Thresholds!$A$2:$A$%d", lastRow),
			Values:     fmt.Sprintf("Thresholds!$C$2:$C$%d", lastRow),
		}},
		Title: []excelize.RichTextRun{{Text: "Cumulative Percentage Below Threshold"}},
	}
	if err := f.AddChart("Thresholds", "F2", chart); err != nil {
		return errors.NewStorageError("failed to add threshold chart", err)
	}
	return nil
}

func writeCategorySheet(f *excelize.File, rep *analysis.Report) error {
	if _, err := f.NewSheet("Categories"); err != nil {
		return errors.NewStorageError("failed to create categories sheet", err)
	}

	rows := [][]interface{}{{"Category", "Count", "Mean", "Median", "Max"}}
	for _, c := range rep.CategoryStats {
		rows = append(rows, []interface{}{c.Category, c.Count, c.Mean, c.Median, c.Max})
	}
	return writeRows(f, "Categories", rows)
}

func writeGapSheet(f *excelize.File, rep *analysis.Report) error {
	if _, err := f.NewSheet("Gaps"); err != nil {
		return errors.NewStorageError("failed to create gaps sheet", err)
	}

	rows := [][]interface{}{{"LowerValue", "UpperValue", "Gap", "GapPercentage"}}
	for _, g := range rep.Gaps {
		rows = append(rows, []interface{}{g.LowerValue, g.UpperValue, g.Gap, g.GapPercentage})
	}
	return writeRows(f, "Gaps", rows)
}

// writeRows writes one row per slice entry starting at A1.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.NewStorageError("failed to write workbook row", err).
				WithContext("sheet", sheet).
				WithContext("cell", cell)
		}
	}
	return nil
}
