package adjustments

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adjcli/internal/errors"
)

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      []Observation
		linesSkipped  int
		halvesSkipped int
	}{
		{
			name:     "single pair line",
			input:    "Rent\t1200.50\n",
			expected: []Observation{{Category: "Rent", Value: 1200.50}},
		},
		{
			name:  "two side-by-side pairs",
			input: "Rent\t1,200.50\tUtilities\t85.00\n",
			expected: []Observation{
				{Category: "Rent", Value: 1200.50},
				{Category: "Utilities", Value: 85.00},
			},
		},
		{
			name:     "thousands separators stripped",
			input:    "Payroll\t1,234,567.89\n",
			expected: []Observation{{Category: "Payroll", Value: 1234567.89}},
		},
		{
			name:         "avg label row skipped",
			input:        "avg\t500\n",
			expected:     nil,
			linesSkipped: 1,
		},
		{
			name:         "avg anywhere in line skipped",
			input:        "Rent avg total\t500\n",
			expected:     nil,
			linesSkipped: 1,
		},
		{
			name:         "blank lines skipped",
			input:        "\n   \n\t\t\n",
			expected:     nil,
			linesSkipped: 3,
		},
		{
			name:          "unparseable left half dropped, right half kept",
			input:         "Rent\tabc\tUtilities\t85.00\n",
			expected:      []Observation{{Category: "Utilities", Value: 85.00}},
			halvesSkipped: 1,
		},
		{
			name:          "both halves unparseable yields nothing",
			input:         "Rent\tabc\tUtilities\txyz\n",
			expected:      nil,
			halvesSkipped: 2,
		},
		{
			name:     "fields beyond index 3 ignored",
			input:    "Rent\t100\tUtilities\t200\tExtra\t300\n",
			expected: []Observation{{Category: "Rent", Value: 100}, {Category: "Utilities", Value: 200}},
		},
		{
			name:     "single field yields nothing",
			input:    "Rent\n",
			expected: nil,
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  Rent  \t  1200.50  \n",
			expected: []Observation{{Category: "Rent", Value: 1200.50}},
		},
		{
			name:     "empty fields dropped before pairing",
			input:    "Rent\t\t1200.50\n",
			expected: []Observation{{Category: "Rent", Value: 1200.50}},
		},
		{
			name:     "negative and zero values accepted",
			input:    "Refund\t-250.00\nWaived\t0\n",
			expected: []Observation{{Category: "Refund", Value: -250}, {Category: "Waived", Value: 0}},
		},
	}

	parser := NewParser(nil, ParserConfig{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parser.Parse(context.Background(), strings.NewReader(tt.input))
			require.NoError(t, err)

			assert.Equal(t, tt.expected, result.Observations)
			assert.Equal(t, tt.linesSkipped, result.LinesSkipped)
			assert.Equal(t, tt.halvesSkipped, result.HalvesSkipped)
		})
	}
}

func TestParser_Parse_Counters(t *testing.T) {
	input := "Rent\t100\tUtilities\t200\n" +
		"avg\t150\n" +
		"\n" +
		"Fees\tbad\n"

	parser := NewParser(nil, ParserConfig{})
	result, err := parser.Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 4, result.LinesRead)
	assert.Equal(t, 2, result.LinesSkipped)
	assert.Equal(t, 1, result.HalvesSkipped)
	assert.Equal(t, 2, result.Count())
	assert.Equal(t, []float64{100, 200}, result.Values())
}

func TestParser_CustomDelimiter(t *testing.T) {
	parser := NewParser(nil, ParserConfig{Delimiter: "|"})
	result, err := parser.Parse(context.Background(), strings.NewReader("Rent|1,200.50|Utilities|85.00\n"))
	require.NoError(t, err)

	require.Len(t, result.Observations, 2)
	assert.Equal(t, Observation{Category: "Rent", Value: 1200.50}, result.Observations[0])
	assert.Equal(t, Observation{Category: "Utilities", Value: 85.00}, result.Observations[1])
}

func TestParser_ParseFile(t *testing.T) {
	t.Run("reads file from disk", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "data.txt")
		require.NoError(t, os.WriteFile(path, []byte("Rent\t1200.50\n"), 0644))

		parser := NewParser(nil, ParserConfig{})
		result, err := parser.ParseFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Count())
	})

	t.Run("missing file is fatal", func(t *testing.T) {
		parser := NewParser(nil, ParserConfig{})
		_, err := parser.ParseFile(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeNotFound))
	})
}
