// Package adjustments provides parsing of semi-structured adjustment reports
// into numeric observations.
//
// # Input Format
//
// The expected input is a plain-text report with one record per line and a
// fixed two-column-pair layout: each line carries up to two category/value
// pairs side by side, separated by a delimiter (tab by default):
//
//	Rent	1,200.50	Utilities	85.00
//	Payroll	15,000.00
//
// Label and summary rows (anything containing the skip marker, "avg" by
// default) and blank lines are not data and are excluded.
//
// # Tolerant Parsing
//
// The parser is best-effort: a half of a line whose value does not parse as a
// number is dropped without failing the run. The skips are not fully silent,
// however; ParseResult carries counters so callers can report how much of the
// input was usable.
//
// # Usage
//
//	parser := adjustments.NewParser(logger, adjustments.ParserConfig{})
//	result, err := parser.ParseFile(ctx, "data.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	observations := result.Observations
package adjustments
