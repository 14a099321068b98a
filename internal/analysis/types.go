package analysis

// SummaryStats holds descriptive statistics over all observation values.
type SummaryStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P75    float64 `json:"p75"`
	P90    float64 `json:"p90"`
	P95    float64 `json:"p95"`
	P99    float64 `json:"p99"`
}

// DistributionBucket is one half-open [Min, Max) histogram range. The final
// bucket is unbounded above.
type DistributionBucket struct {
	Range      string  `json:"range"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ThresholdPoint samples the cumulative distribution at one threshold amount.
type ThresholdPoint struct {
	Threshold       float64 `json:"threshold"`
	CountBelow      int     `json:"count_below"`
	PercentageBelow float64 `json:"percentage_below"`
}

// CategoryAggregate summarizes the observations of one distinct category.
type CategoryAggregate struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Max      float64 `json:"max"`
}

// Gap is a large relative jump between two adjacent sorted values among the
// largest observations, suggestive of a natural cutoff point.
type Gap struct {
	LowerValue    float64 `json:"lower_value"`
	UpperValue    float64 `json:"upper_value"`
	Gap           float64 `json:"gap"`
	GapPercentage float64 `json:"gap_percentage"`
}

// RecommendedThreshold is a named ceiling tier annotated with the percentage
// of observations it covers.
type RecommendedThreshold struct {
	Level    string  `json:"level"`
	Value    float64 `json:"value"`
	Coverage float64 `json:"coverage"`
}

// Recommendation is the resolved closing recommendation: the lowest tier
// covering at least minRecommendedCoverage percent of observations.
type Recommendation struct {
	Level    string  `json:"level"`
	Value    float64 `json:"value"`
	Coverage float64 `json:"coverage"`
}

// Report aggregates the output of every analytical pass.
type Report struct {
	Stats             SummaryStats           `json:"stats"`
	Distribution      []DistributionBucket   `json:"distribution"`
	ThresholdAnalysis []ThresholdPoint       `json:"threshold_analysis"`
	CategoryStats     []CategoryAggregate    `json:"category_stats"`
	Gaps              []Gap                  `json:"gaps"`
	Recommended       []RecommendedThreshold `json:"recommended"`
	Recommendation    Recommendation         `json:"recommendation"`
}

// bucketRange defines one fixed histogram bucket.
type bucketRange struct {
	min   float64
	max   float64 // exclusive; +Inf for the open-ended top bucket
	label string
}

// The fixed, ordered bucket set. Order must be preserved in output.
var bucketRanges = []bucketRange{
	{0, 1000, "$0-$1,000"},
	{1000, 2500, "$1,000-$2,500"},
	{2500, 5000, "$2,500-$5,000"},
	{5000, 7500, "$5,000-$7,500"},
	{7500, 10000, "$7,500-$10,000"},
	{10000, 15000, "$10,000-$15,000"},
	{15000, 20000, "$15,000-$20,000"},
	{20000, 30000, "$20,000-$30,000"},
	{30000, 50000, "$30,000-$50,000"},
	{50000, -1, "$50,000+"}, // max < 0 marks the unbounded bucket
}

// The fixed cumulative threshold amounts, in output order.
var thresholdAmounts = []float64{
	1000, 2500, 5000, 7500, 10000, 15000, 20000, 25000, 30000, 40000, 50000,
}

// The fixed recommendation tiers.
var recommendedTiers = []RecommendedThreshold{
	{Level: "Conservative", Value: 5000},
	{Level: "Moderate", Value: 10000},
	{Level: "Liberal", Value: 20000},
}

const (
	// minCategorySample suppresses categories with fewer observations.
	minCategorySample = 5
	// gapWindow limits gap detection to the largest values.
	gapWindow = 50
	// gapCutoffPct is the minimum relative increase treated as significant.
	gapCutoffPct = 15.0
	// minRecommendedCoverage is the coverage a tier needs to be chosen as
	// the closing recommendation.
	minRecommendedCoverage = 90.0
)
