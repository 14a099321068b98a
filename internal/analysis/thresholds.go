package analysis

// ThresholdCoverage samples the cumulative distribution at each fixed
// threshold amount. Percentages are non-decreasing as the threshold grows.
func ThresholdCoverage(values []float64) []ThresholdPoint {
	total := len(values)
	points := make([]ThresholdPoint, 0, len(thresholdAmounts))

	for _, threshold := range thresholdAmounts {
		count := countAtOrBelow(values, threshold)

		percentage := 0.0
		if total > 0 {
			percentage = float64(count) / float64(total) * 100
		}

		points = append(points, ThresholdPoint{
			Threshold:       threshold,
			CountBelow:      count,
			PercentageBelow: percentage,
		})
	}

	return points
}

// Recommendations computes the coverage of the three fixed ceiling tiers.
func Recommendations(values []float64) []RecommendedThreshold {
	total := len(values)
	tiers := make([]RecommendedThreshold, len(recommendedTiers))
	copy(tiers, recommendedTiers)

	for i := range tiers {
		if total == 0 {
			continue
		}
		count := countAtOrBelow(values, tiers[i].Value)
		tiers[i].Coverage = float64(count) / float64(total) * 100
	}

	return tiers
}

// ResolveRecommendation picks the closing recommendation: the lowest tier
// covering at least minRecommendedCoverage percent, falling back to the
// highest tier when none qualifies.
func ResolveRecommendation(tiers []RecommendedThreshold) Recommendation {
	if len(tiers) == 0 {
		return Recommendation{}
	}

	chosen := tiers[len(tiers)-1]
	for _, tier := range tiers {
		if tier.Coverage >= minRecommendedCoverage {
			chosen = tier
			break
		}
	}

	return Recommendation{
		Level:    chosen.Level,
		Value:    chosen.Value,
		Coverage: chosen.Coverage,
	}
}

func countAtOrBelow(values []float64, threshold float64) int {
	count := 0
	for _, v := range values {
		if v <= threshold {
			count++
		}
	}
	return count
}
