// Package analysis computes descriptive statistics over adjustment
// observations and recommends a ceiling amount for the dataset.
//
// # Passes
//
// The Analyzer runs six passes over the immutable observation collection:
//
//  1. Summary: count, mean, median, sample standard deviation, min, max and
//     the 75th/90th/95th/99th percentiles.
//  2. Distribution: counts per fixed histogram bucket, final bucket unbounded.
//  3. Thresholds: cumulative coverage at fixed threshold amounts.
//  4. Categories: per-category aggregates, small samples suppressed.
//  5. Gaps: natural breaks among the largest values, candidates for a
//     ceiling cutoff.
//  6. Recommendations: coverage of the Conservative/Moderate/Liberal tiers
//     and a resolved closing recommendation.
//
// Every pass is a pure function of the observation slice. The passes are
// independent and run concurrently; they only read the shared slice and write
// disjoint parts of the Report.
//
// # Usage
//
//	analyzer := analysis.NewAnalyzer(logger)
//	report, err := analyzer.Analyze(ctx, result.Observations)
//	if err != nil {
//	    log.Fatal(err) // empty dataset
//	}
package analysis
