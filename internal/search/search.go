package search

import (
	"math"
)

type bruteSearcher struct{}

// New creates a Searcher based on exhaustive enumeration.
func New() Searcher {
	return &bruteSearcher{}
}

// FindBest enumerates every ordered triple (n1, n2, n3) drawn with
// replacement from numbers, computes (n1*n2)/n3, and returns the triple
// whose value has the smallest percentage error against target. Triples
// with n3 == 0 are part of the enumerated space but are skipped rather
// than reported as failures. Ties keep the first triple encountered.
func (s *bruteSearcher) FindBest(numbers []float64, target float64) (Result, error) {
	if len(numbers) == 0 {
		return Result{}, ErrNoNumbers
	}
	if target == 0 || math.IsNaN(target) || math.IsInf(target, 0) {
		return Result{}, ErrInvalidTarget
	}

	best := Result{Error: math.Inf(1)}
	found := false

	for _, n1 := range numbers {
		for _, n2 := range numbers {
			for _, n3 := range numbers {
				if n3 == 0 {
					continue
				}
				value := (n1 * n2) / n3
				err := percentageError(value, target)
				if !found || err < best.Error {
					best = Result{
						Value:       value,
						Error:       err,
						Combination: Triple{N1: n1, N2: n2, N3: n3},
					}
					found = true
				}
			}
		}
	}

	if !found {
		return Result{}, ErrNoValidDivisor
	}

	return best, nil
}

// percentageError measures how far value deviates from target, as a
// percentage of the target's magnitude. The denominator uses the absolute
// target so the error stays non-negative for negative targets and remains
// comparable against the positive tolerance thresholds.
func percentageError(value, target float64) float64 {
	return math.Abs(value-target) / math.Abs(target) * 100
}
