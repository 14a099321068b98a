// Package report formats and persists computed adjustment analysis results.
// It is a thin presentation layer over analysis.Report: the console writer,
// the CSV/JSON writers, and the XLSX workbook writer all consume the same
// structure and never compute statistics themselves.
package report
