package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/dataset-analyzer/internal/analyzer"
	"github.com/eugenenazirov/dataset-analyzer/internal/dataset"
)

func sampleDatasets() []dataset.Dataset {
	return []dataset.Dataset{
		{ID: "A", Target: 0.6, Numbers: []float64{2, 3, 10}},
		{ID: "B", Target: 8, Numbers: []float64{2, 4}},
		{ID: "C", Target: 3, Numbers: []float64{0, 0}},
	}
}

func TestReportContainsAllStages(t *testing.T) {
	t.Parallel()

	datasets := sampleDatasets()
	report := analyzer.New(zaptest.NewLogger(t)).Run(datasets)

	var buf bytes.Buffer
	New(&buf).Report(datasets, report)
	out := buf.String()

	for _, want := range []string{
		"STEP 0: INPUT DATA VERIFICATION",
		"STEP 1: DATASET VALIDATION",
		"STEP 2: STATISTICAL ERROR ANALYSIS",
		"STEP 3: PRECISION ANALYSIS",
		"STEP 4: CONCLUSION",
		"Reliability Rating:",
		"Exceptional",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q\noutput:\n%s", want, out)
		}
	}
}

func TestResultsShowsUnresolvedSets(t *testing.T) {
	t.Parallel()

	datasets := sampleDatasets()
	report := analyzer.New(zaptest.NewLogger(t)).Run(datasets)

	var buf bytes.Buffer
	New(&buf).Results(report)

	if !strings.Contains(buf.String(), "no solution found") {
		t.Fatalf("expected unresolved set marker, got:\n%s", buf.String())
	}
}

func TestStatisticsReportsUnavailability(t *testing.T) {
	t.Parallel()

	datasets := []dataset.Dataset{{ID: "A", Target: 0.6, Numbers: []float64{2, 3, 10}}}
	report := analyzer.New(zaptest.NewLogger(t)).Run(datasets)

	var buf bytes.Buffer
	New(&buf).Statistics(report)

	if !strings.Contains(buf.String(), "unavailable") {
		t.Fatalf("expected unavailability note, got:\n%s", buf.String())
	}
}

func TestConclusionWithNothingResolved(t *testing.T) {
	t.Parallel()

	datasets := []dataset.Dataset{{ID: "A", Target: 3, Numbers: []float64{0}}}
	report := analyzer.New(zaptest.NewLogger(t)).Run(datasets)

	var buf bytes.Buffer
	New(&buf).Conclusion(report)

	if !strings.Contains(buf.String(), "no conclusion available") {
		t.Fatalf("expected empty-run notice, got:\n%s", buf.String())
	}
}

func TestPauseBetweenStages(t *testing.T) {
	t.Parallel()

	slept := 0
	var sleptFor time.Duration
	sleeper := func(d time.Duration) {
		slept++
		sleptFor = d
	}

	datasets := sampleDatasets()
	report := analyzer.New(zaptest.NewLogger(t)).Run(datasets)

	var buf bytes.Buffer
	New(&buf, WithPause(250*time.Millisecond), WithSleeper(sleeper)).Report(datasets, report)

	if slept != 5 {
		t.Fatalf("expected 5 stage pauses, got %d", slept)
	}
	if sleptFor != 250*time.Millisecond {
		t.Fatalf("expected 250ms pause, got %s", sleptFor)
	}
}

func TestZeroPauseDoesNotSleep(t *testing.T) {
	t.Parallel()

	sleeper := func(time.Duration) {
		t.Fatalf("sleep must not be called with zero pause")
	}

	datasets := sampleDatasets()
	report := analyzer.New(zaptest.NewLogger(t)).Run(datasets)

	var buf bytes.Buffer
	New(&buf, WithSleeper(sleeper)).Report(datasets, report)
}
