package analyzer

import (
	"github.com/eugenenazirov/dataset-analyzer/internal/search"
	"github.com/eugenenazirov/dataset-analyzer/internal/stats"
)

// SetResult is the outcome of analyzing a single dataset. Unresolved sets
// carry the failure reason instead of a search result.
type SetResult struct {
	ID            string
	Target        float64
	Result        search.Result
	Unresolved    bool
	FailureReason string
}

// Report is the complete outcome of an analysis run. Errors contains one
// value per resolved set, in input order. Summary is nil when fewer than
// two sets resolved; SummaryUnavailable then explains why. Rating and
// MaxError are only meaningful when at least one set resolved.
type Report struct {
	Sets       []SetResult
	Errors     []float64
	Thresholds []float64

	Summary            *stats.Summary
	SummaryUnavailable string
	Tolerance          []stats.ThresholdCount
	MaxError           float64
	Rating             stats.Rating
}

// Resolved counts the sets that produced a search result.
func (r Report) Resolved() int {
	return len(r.Errors)
}
