package search

// Triple holds an ordered combination (n1, n2, n3) drawn with replacement
// from a dataset's number pool. Its value under the analyzed formula is
// (N1 * N2) / N3, so N3 is never zero in a returned Triple.
type Triple struct {
	N1 float64
	N2 float64
	N3 float64
}

// Value computes (n1 * n2) / n3 for the triple.
func (t Triple) Value() float64 {
	return (t.N1 * t.N2) / t.N3
}

// Result is the outcome of a search over a single dataset: the best triple
// found, the value it produces, and its percentage error against the target.
// A Result is immutable once produced.
type Result struct {
	Value       float64
	Error       float64
	Combination Triple
}

// Searcher describes the behaviour required from a combination searcher.
type Searcher interface {
	FindBest(numbers []float64, target float64) (Result, error)
}
