package analysis

// Distribution counts observations per fixed histogram bucket and computes
// each bucket's percentage of the total. Bucket order is fixed and preserved.
func Distribution(values []float64) []DistributionBucket {
	total := len(values)
	buckets := make([]DistributionBucket, 0, len(bucketRanges))

	for _, br := range bucketRanges {
		count := 0
		for _, v := range values {
			if v >= br.min && (br.max < 0 || v < br.max) {
				count++
			}
		}

		percentage := 0.0
		if total > 0 {
			percentage = float64(count) / float64(total) * 100
		}

		buckets = append(buckets, DistributionBucket{
			Range:      br.label,
			Count:      count,
			Percentage: percentage,
		})
	}

	return buckets
}
