package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"adjcli/internal/adjustments"
	"adjcli/internal/analysis"
	"adjcli/internal/charts"
	"adjcli/internal/config"
	"adjcli/internal/infrastructure"
	"adjcli/internal/report"
)

func main() {
	inputPath := flag.String("in", "", "input report file (defaults to data.txt)")
	outputDir := flag.String("out", "", "output directory for reports and charts (defaults to working directory)")
	delimiter := flag.String("delimiter", "", "field delimiter (defaults to tab)")
	renderCharts := flag.Bool("charts", true, "render PNG charts")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Flags override config
	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	if *delimiter != "" {
		cfg.Input.Delimiter = *delimiter
	}
	if !*renderCharts {
		cfg.Output.WriteCharts = false
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	paths, err := config.GetPaths(cfg)
	if err != nil {
		logger.Error("Failed to resolve output paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirs(); err != nil {
		logger.Error("Failed to create output directories", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Parse the adjustment report
	logger.Info("Parsing adjustment report", "path", cfg.Input.Path)
	parser := adjustments.NewParser(logger, adjustments.ParserConfig{
		Delimiter:  cfg.Input.Delimiter,
		SkipMarker: cfg.Input.SkipMarker,
	})
	result, err := parser.ParseFile(ctx, cfg.Input.Path)
	if err != nil {
		logger.Error("Failed to parse input", "error", err, "path", cfg.Input.Path)
		os.Exit(1)
	}

	// Compute the analysis
	analyzer := analysis.NewAnalyzer(logger)
	rep, err := analyzer.Analyze(ctx, result.Observations)
	if err != nil {
		logger.Error("Analysis failed", "error", err,
			"hint", "check that the input file contains parseable category/value rows")
		os.Exit(1)
	}

	meta := report.Meta{
		SourcePath:    cfg.Input.Path,
		LinesRead:     result.LinesRead,
		LinesSkipped:  result.LinesSkipped,
		HalvesSkipped: result.HalvesSkipped,
	}
	reporter := report.NewReporter(logger)

	// Console report
	if err := reporter.Print(rep, meta); err != nil {
		logger.Error("Failed to print report", "error", err)
		os.Exit(1)
	}

	// Persisted artifacts
	if err := reporter.SaveSummaryReport(rep, meta, paths.SummaryTXT); err != nil {
		logger.Error("Failed to save summary report", "error", err)
		os.Exit(1)
	}

	if cfg.Output.WriteJSON {
		if err := reporter.WriteJSON(ctx, paths.ReportJSON, rep, meta); err != nil {
			logger.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
	}

	if cfg.Output.WriteCSV {
		csvPaths := report.CSVPaths{
			Distribution: paths.DistributionCSV,
			Thresholds:   paths.ThresholdsCSV,
			Categories:   paths.CategoriesCSV,
			Gaps:         paths.GapsCSV,
		}
		if err := reporter.WriteCSV(ctx, csvPaths, rep); err != nil {
			logger.Error("Failed to write CSV tables", "error", err)
			os.Exit(1)
		}
	}

	if cfg.Output.WriteWorkbook {
		if err := reporter.WriteWorkbook(ctx, paths.ReportXLSX, rep); err != nil {
			logger.Error("Failed to write workbook", "error", err)
			os.Exit(1)
		}
	}

	if cfg.Output.WriteCharts {
		renderer := charts.NewRenderer(logger)
		if err := renderer.RenderDistribution(ctx, paths.DistributionPNG, rep.Distribution); err != nil {
			logger.Error("Failed to render distribution chart", "error", err)
			os.Exit(1)
		}
		if err := renderer.RenderCumulative(ctx, paths.CumulativePNG, rep.ThresholdAnalysis); err != nil {
			logger.Error("Failed to render cumulative chart", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("Adjustment analysis completed",
		"observations", rep.Stats.Count,
		"recommended_ceiling", rep.Recommendation.Value,
		"coverage_pct", rep.Recommendation.Coverage,
		"output_dir", paths.OutputDir)
}
