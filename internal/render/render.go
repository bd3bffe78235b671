// Package render writes the staged console report: input verification,
// per-set results, statistical summary, tolerance distribution, and the
// final conclusion.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/eugenenazirov/dataset-analyzer/internal/analyzer"
	"github.com/eugenenazirov/dataset-analyzer/internal/dataset"
)

const headerSeparator = "============================================================"

// Renderer writes the analysis stages to a writer, pausing between stages
// so the output can be read as it appears.
type Renderer struct {
	out   io.Writer
	pause time.Duration
	sleep func(time.Duration)
}

// Option configures Renderer behaviour.
type Option func(*Renderer)

// WithPause sets the delay between report stages. Zero disables pacing.
func WithPause(d time.Duration) Option {
	return func(r *Renderer) {
		r.pause = d
	}
}

// WithSleeper overrides the sleep function (primarily for tests).
func WithSleeper(sleep func(time.Duration)) Option {
	return func(r *Renderer) {
		r.sleep = sleep
	}
}

// New constructs a Renderer writing to out.
func New(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:   out,
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// InputData renders the input verification stage: targets, number pools,
// and the dataset summary.
func (r *Renderer) InputData(datasets []dataset.Dataset) {
	r.stageHeader("STEP 0: INPUT DATA VERIFICATION")

	fmt.Fprintln(r.out, "\nTarget Values:")
	tw := r.newTable()
	for _, ds := range datasets {
		fmt.Fprintf(tw, "Set %s\t%.2f\n", ds.ID, ds.Target)
	}
	tw.Flush()

	fmt.Fprintln(r.out, "\nAvailable Numbers:")
	tw = r.newTable()
	for _, ds := range datasets {
		values := make([]string, len(ds.Numbers))
		for i, n := range ds.Numbers {
			values[i] = fmt.Sprintf("%.2f", n)
		}
		fmt.Fprintf(tw, "Set %s\t%s\n", ds.ID, strings.Join(values, "  "))
	}
	tw.Flush()

	total := 0
	for _, ds := range datasets {
		total += len(ds.Numbers)
	}
	fmt.Fprintln(r.out, "\nDataset Summary:")
	fmt.Fprintf(r.out, "- Number of Sets: %d\n", len(datasets))
	fmt.Fprintf(r.out, "- Total Data Points: %d\n", total)

	r.pauseStage()
}

// Results renders the per-set search outcomes. Unresolved sets are shown
// with their failure reason instead of halting the report.
func (r *Renderer) Results(report analyzer.Report) {
	r.stageHeader("STEP 1: DATASET VALIDATION")

	fmt.Fprintln(r.out, "\nResults:")
	tw := r.newTable()
	fmt.Fprintln(tw, "Dataset\tTarget (t)\tResult (r)\tε (%)\t|r - t|")
	for _, set := range report.Sets {
		if set.Unresolved {
			fmt.Fprintf(tw, "Set %s\t%.2e\tno solution found\t-\t-\n", set.ID, set.Target)
			continue
		}
		fmt.Fprintf(tw, "Set %s\t%.2e\t%.2e\t%.4f\t%.2e\n",
			set.ID,
			set.Target,
			set.Result.Value,
			set.Result.Error,
			math.Abs(set.Result.Value-set.Target),
		)
	}
	tw.Flush()

	r.pauseStage()
}

// Statistics renders the descriptive statistics stage.
func (r *Renderer) Statistics(report analyzer.Report) {
	r.stageHeader("STEP 2: STATISTICAL ERROR ANALYSIS")

	if report.Summary == nil {
		fmt.Fprintf(r.out, "\nDescriptive statistics unavailable: %s\n", report.SummaryUnavailable)
		r.pauseStage()
		return
	}

	s := report.Summary
	fmt.Fprintln(r.out, "\nDescriptive Statistics:")
	tw := r.newTable()
	fmt.Fprintf(tw, "Central Tendency\tμ = %.4f%%\tM = %.4f%%\n", s.Mean, s.Median)
	fmt.Fprintf(tw, "Dispersion\tσ = %.4f%%\tσ² = %.4f\n", s.StdDev, s.Variance)
	fmt.Fprintf(tw, "Range\tmin = %.4f%%\tmax = %.4f%%\n", s.Min, s.Max)
	fmt.Fprintf(tw, "Quartiles\tQ₁ = %.4f%%\tQ₃ = %.4f%%\n", s.Q1, s.Q3)
	tw.Flush()

	r.pauseStage()
}

// Tolerance renders the precision analysis stage.
func (r *Renderer) Tolerance(report analyzer.Report) {
	r.stageHeader("STEP 3: PRECISION ANALYSIS")

	fmt.Fprintln(r.out, "\nError Tolerance Distribution:")
	tw := r.newTable()
	for _, tc := range report.Tolerance {
		fmt.Fprintf(tw, "ε < %.1f%%\t%d/%d datasets\t(%.1f%%)\n",
			tc.Threshold, tc.Count, len(report.Sets), tc.Fraction*100)
	}
	tw.Flush()

	r.pauseStage()
}

// Conclusion renders the final rating stage.
func (r *Renderer) Conclusion(report analyzer.Report) {
	r.stageHeader("STEP 4: CONCLUSION")

	if report.Resolved() == 0 {
		fmt.Fprintln(r.out, "\nNo dataset could be resolved; no conclusion available.")
		r.pauseStage()
		return
	}

	fmt.Fprintln(r.out, "\nFinal Results:")
	tw := r.newTable()
	fmt.Fprintf(tw, "Reliability Rating:\t%s\n", report.Rating)
	fmt.Fprintf(tw, "Maximum Error (ε_max):\t%.4f%%\n", report.MaxError)
	if report.Summary != nil {
		fmt.Fprintf(tw, "Mean Error (μ_ε):\t%.4f%%\n", report.Summary.Mean)
		fmt.Fprintf(tw, "Standard Deviation (σ_ε):\t%.4f%%\n", report.Summary.StdDev)
	}
	fmt.Fprintf(tw, "Assessment:\t%s\n", report.Rating.Assessment())
	tw.Flush()

	r.pauseStage()
	fmt.Fprintln(r.out)
}

// Report renders every stage in order.
func (r *Renderer) Report(datasets []dataset.Dataset, report analyzer.Report) {
	r.InputData(datasets)
	r.Results(report)
	r.Statistics(report)
	r.Tolerance(report)
	r.Conclusion(report)
}

func (r *Renderer) stageHeader(title string) {
	fmt.Fprintf(r.out, "\n%s\n%s\n", title, headerSeparator)
}

func (r *Renderer) newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
}

func (r *Renderer) pauseStage() {
	if r.pause > 0 {
		r.sleep(r.pause)
	}
}
