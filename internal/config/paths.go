package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the report artifact paths for a run.
// This is the single source of truth for output file locations.
type Paths struct {
	OutputDir string
	LogsDir   string

	// Report files
	SummaryTXT string
	ReportJSON string
	ReportXLSX string

	// One CSV per analysis table
	DistributionCSV string
	ThresholdsCSV   string
	CategoriesCSV   string
	GapsCSV         string

	// Chart files (fixed names, matching the published report layout)
	DistributionPNG string
	CumulativePNG   string
}

// GetPaths derives all output paths from the configured output directory
func GetPaths(cfg *Config) (*Paths, error) {
	outDir := cfg.Output.Dir
	if outDir == "" {
		outDir = "."
	}

	absDir, err := filepath.Abs(outDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory: %w", err)
	}

	p := &Paths{
		OutputDir:       absDir,
		LogsDir:         filepath.Join(absDir, "logs"),
		SummaryTXT:      filepath.Join(absDir, "adjustment_analysis.txt"),
		ReportJSON:      filepath.Join(absDir, "adjustment_analysis.json"),
		ReportXLSX:      filepath.Join(absDir, "adjustment_analysis.xlsx"),
		DistributionCSV: filepath.Join(absDir, "adjustment_distribution.csv"),
		ThresholdsCSV:   filepath.Join(absDir, "adjustment_thresholds.csv"),
		CategoriesCSV:   filepath.Join(absDir, "adjustment_categories.csv"),
		GapsCSV:         filepath.Join(absDir, "adjustment_gaps.csv"),
		DistributionPNG: filepath.Join(absDir, "adjustments_distribution.png"),
		CumulativePNG:   filepath.Join(absDir, "adjustments_cumulative.png"),
	}

	return p, nil
}

// EnsureDirs creates the output directories if they do not exist
func (p *Paths) EnsureDirs() error {
	for _, dir := range []string{p.OutputDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
