package stats

// ThresholdCount reports how many errors fall strictly below a tolerance
// threshold, and which fraction of the whole set that represents.
type ThresholdCount struct {
	Threshold float64
	Count     int
	Fraction  float64
}

// CountBelow counts, for each threshold, the errors strictly less than it.
// The result preserves the order of thresholds; the error set itself is
// treated as an unordered multiset.
func CountBelow(errors []float64, thresholds []float64) []ThresholdCount {
	counts := make([]ThresholdCount, 0, len(thresholds))
	for _, threshold := range thresholds {
		count := 0
		for _, e := range errors {
			if e < threshold {
				count++
			}
		}
		tc := ThresholdCount{Threshold: threshold, Count: count}
		if len(errors) > 0 {
			tc.Fraction = float64(count) / float64(len(errors))
		}
		counts = append(counts, tc)
	}
	return counts
}
