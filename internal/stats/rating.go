package stats

// Classification thresholds for error percentages. Comparisons are strict,
// so an error of exactly 1.0 falls into the Superior band.
const (
	ThresholdExceptional  = 1.0
	ThresholdSuperior     = 5.0
	ThresholdSatisfactory = 10.0
)

// Rating labels the overall reliability of an analysis run.
type Rating string

const (
	RatingExceptional  Rating = "Exceptional"
	RatingSuperior     Rating = "Superior"
	RatingSatisfactory Rating = "Satisfactory"
	RatingLimited      Rating = "Limited"
)

// DefaultThresholds returns the tolerance thresholds used for the
// precision analysis, in ascending order.
func DefaultThresholds() []float64 {
	return []float64{ThresholdExceptional, ThresholdSuperior, ThresholdSatisfactory}
}

// Classify maps a maximum error percentage to a reliability rating using
// strict upper bounds.
func Classify(maxError float64) Rating {
	switch {
	case maxError < ThresholdExceptional:
		return RatingExceptional
	case maxError < ThresholdSuperior:
		return RatingSuperior
	case maxError < ThresholdSatisfactory:
		return RatingSatisfactory
	default:
		return RatingLimited
	}
}

// Assessment returns the human-readable note attached to a rating in the
// final report.
func (r Rating) Assessment() string {
	switch r {
	case RatingExceptional:
		return "Demonstrates remarkable precision across all datasets"
	case RatingSuperior:
		return "Exhibits excellent consistency across datasets"
	case RatingSatisfactory:
		return "Meets all specified precision requirements"
	default:
		return "Further optimization recommended"
	}
}
