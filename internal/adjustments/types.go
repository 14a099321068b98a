package adjustments

// Observation represents a single parsed (category, value) pair.
// Observations are immutable once created; the full collection is the sole
// input to every statistic computed downstream.
type Observation struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// ParseResult carries the parsed observations together with diagnostic
// counters describing how much of the input was skipped.
type ParseResult struct {
	Observations []Observation

	// LinesRead is the total number of input lines seen.
	LinesRead int
	// LinesSkipped counts blank lines and label/summary rows.
	LinesSkipped int
	// HalvesSkipped counts category/value halves whose value field failed
	// numeric parsing.
	HalvesSkipped int
}

// Values returns the observation values in input order.
func (r *ParseResult) Values() []float64 {
	values := make([]float64, len(r.Observations))
	for i, obs := range r.Observations {
		values[i] = obs.Value
	}
	return values
}

// Count returns the number of successfully parsed observations.
func (r *ParseResult) Count() int {
	return len(r.Observations)
}
