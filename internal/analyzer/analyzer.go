// Package analyzer runs the combination search over every dataset and
// aggregates the per-dataset errors into a single report.
package analyzer

import (
	"go.uber.org/zap"

	"github.com/eugenenazirov/dataset-analyzer/internal/dataset"
	"github.com/eugenenazirov/dataset-analyzer/internal/search"
	"github.com/eugenenazirov/dataset-analyzer/internal/stats"
)

// Analyzer coordinates the search and aggregation stages.
type Analyzer struct {
	searcher   search.Searcher
	thresholds []float64
	logger     *zap.Logger
}

// Option configures Analyzer behaviour.
type Option func(*Analyzer)

// WithThresholds overrides the tolerance thresholds used for the precision
// analysis.
func WithThresholds(thresholds []float64) Option {
	return func(a *Analyzer) {
		if len(thresholds) > 0 {
			a.thresholds = append([]float64(nil), thresholds...)
		}
	}
}

// WithSearcher overrides the combination searcher (primarily for tests).
func WithSearcher(s search.Searcher) Option {
	return func(a *Analyzer) {
		a.searcher = s
	}
}

// New constructs an Analyzer with the default brute-force searcher and
// tolerance thresholds.
func New(logger *zap.Logger, opts ...Option) *Analyzer {
	a := &Analyzer{
		searcher:   search.New(),
		thresholds: stats.DefaultThresholds(),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run searches every dataset and assembles the aggregate report. A dataset
// whose search fails is recorded as unresolved and excluded from the error
// set; the remaining datasets are still processed. Sets and Errors follow
// the input order, so the report is reproducible for a given input.
func (a *Analyzer) Run(datasets []dataset.Dataset) Report {
	report := Report{
		Sets:       make([]SetResult, 0, len(datasets)),
		Errors:     make([]float64, 0, len(datasets)),
		Thresholds: append([]float64(nil), a.thresholds...),
	}

	for _, ds := range datasets {
		set := SetResult{ID: ds.ID, Target: ds.Target}

		result, err := a.searcher.FindBest(ds.Numbers, ds.Target)
		if err != nil {
			set.Unresolved = true
			set.FailureReason = err.Error()
			a.logger.Warn("dataset could not be resolved",
				zap.String("set", ds.ID),
				zap.Error(err),
			)
		} else {
			set.Result = result
			report.Errors = append(report.Errors, result.Error)
		}

		report.Sets = append(report.Sets, set)
	}

	a.aggregate(&report)
	return report
}

func (a *Analyzer) aggregate(report *Report) {
	if len(report.Errors) == 0 {
		return
	}

	maxError := report.Errors[0]
	for _, e := range report.Errors[1:] {
		if e > maxError {
			maxError = e
		}
	}
	report.MaxError = maxError
	report.Rating = stats.Classify(maxError)
	report.Tolerance = stats.CountBelow(report.Errors, report.Thresholds)

	summary, err := stats.Summarize(report.Errors)
	if err != nil {
		report.SummaryUnavailable = err.Error()
		a.logger.Warn("statistical summary unavailable", zap.Error(err))
		return
	}
	report.Summary = &summary
}
