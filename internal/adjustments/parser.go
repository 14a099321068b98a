package adjustments

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"adjcli/internal/errors"
)

// ParserConfig holds configuration options for the Parser.
type ParserConfig struct {
	// Delimiter separates fields within a line. Defaults to tab.
	Delimiter string
	// SkipMarker excludes any line containing this substring (case
	// sensitive). Defaults to "avg", the label used by summary rows.
	SkipMarker string
}

// Parser converts raw report text into a flat list of observations.
type Parser struct {
	logger     *slog.Logger
	delimiter  string
	skipMarker string
}

// NewParser creates a parser with the given configuration.
func NewParser(logger *slog.Logger, cfg ParserConfig) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Delimiter == "" {
		cfg.Delimiter = "\t"
	}
	if cfg.SkipMarker == "" {
		cfg.SkipMarker = "avg"
	}

	return &Parser{
		logger:     logger,
		delimiter:  cfg.Delimiter,
		skipMarker: cfg.SkipMarker,
	}
}

// ParseFile reads the report at path and parses it. A missing or unreadable
// file is fatal; malformed content is not.
func (p *Parser) ParseFile(ctx context.Context, path string) (*ParseResult, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("input file " + path)
		}
		return nil, errors.NewStorageError("failed to open input file", err).
			WithContext("path", path)
	}
	defer file.Close()

	result, err := p.Parse(ctx, file)
	if err != nil {
		return nil, err
	}

	p.logger.InfoContext(ctx, "parsed adjustment report",
		slog.String("path", path),
		slog.Int("observations", result.Count()),
		slog.Int("lines_read", result.LinesRead),
		slog.Int("lines_skipped", result.LinesSkipped),
		slog.Int("halves_skipped", result.HalvesSkipped))

	return result, nil
}

// Parse reads the report from r one line at a time. Each retained line is
// split into trimmed non-empty fields; field[0]/field[1] form the left
// category/value pair and, when at least four fields exist, field[2]/field[3]
// form the right pair. Each pair is extracted independently and a failed
// numeric parse drops only that half of the line.
func (p *Parser) Parse(ctx context.Context, r io.Reader) (*ParseResult, error) {
	result := &ParseResult{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		result.LinesRead++

		// Label/summary rows and blank lines are not data.
		if strings.Contains(line, p.skipMarker) || strings.TrimSpace(line) == "" {
			result.LinesSkipped++
			continue
		}

		fields := p.splitFields(line)

		if len(fields) >= 2 {
			p.extractPair(ctx, result, fields[0], fields[1])
		}
		if len(fields) >= 4 {
			p.extractPair(ctx, result, fields[2], fields[3])
		}
		// Fields beyond index 3 are ignored.
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.NewParsingError("failed to read input", err)
	}

	return result, nil
}

// splitFields splits a line on the delimiter, trims surrounding whitespace
// from each field, and drops empty fields.
func (p *Parser) splitFields(line string) []string {
	raw := strings.Split(line, p.delimiter)
	fields := make([]string, 0, len(raw))
	for _, f := range raw {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	return fields
}

// extractPair attempts to parse one category/value pair and appends the
// observation on success. Thousands-separator commas are stripped before
// parsing. Failures are counted, not surfaced.
func (p *Parser) extractPair(ctx context.Context, result *ParseResult, category, valueStr string) {
	value, err := strconv.ParseFloat(strings.ReplaceAll(valueStr, ",", ""), 64)
	if err != nil {
		result.HalvesSkipped++
		p.logger.DebugContext(ctx, "skipped unparseable value field",
			slog.String("category", category),
			slog.String("value", valueStr))
		return
	}

	result.Observations = append(result.Observations, Observation{
		Category: category,
		Value:    value,
	})
}
