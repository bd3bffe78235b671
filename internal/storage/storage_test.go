package storage

import (
	"errors"
	"slices"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/dataset-analyzer/internal/analyzer"
	"github.com/eugenenazirov/dataset-analyzer/internal/dataset"
)

func TestDefaultThresholds(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()

	got, err := store.GetThresholds()
	if err != nil {
		t.Fatalf("GetThresholds returned error: %v", err)
	}
	if want := []float64{1, 5, 10}; !slices.Equal(got, want) {
		t.Fatalf("expected defaults %v, got %v", want, got)
	}
}

func TestSetThresholdsNormalizes(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()

	if err := store.SetThresholds([]float64{10, 2.5, 0.5, 2.5}); err != nil {
		t.Fatalf("SetThresholds returned error: %v", err)
	}

	got, err := store.GetThresholds()
	if err != nil {
		t.Fatalf("GetThresholds returned error: %v", err)
	}
	if want := []float64{0.5, 2.5, 10}; !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSetThresholdsValidates(t *testing.T) {
	t.Parallel()

	invalidCases := [][]float64{
		nil,
		{},
		{0, 5},
		{-1, 5},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	}

	store := NewMemoryStorage()
	for _, thresholds := range invalidCases {
		if err := store.SetThresholds(thresholds); !errors.Is(err, ErrInvalidThresholds) {
			t.Fatalf("expected ErrInvalidThresholds for %v, got %v", thresholds, err)
		}
	}
}

func TestGetThresholdsReturnsCopy(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()

	first, _ := store.GetThresholds()
	first[0] = 99

	second, _ := store.GetThresholds()
	if second[0] == 99 {
		t.Fatalf("expected defensive copy, mutation leaked into storage")
	}
}

func TestReportRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()

	if _, err := store.LatestReport(); !errors.Is(err, ErrNoReport) {
		t.Fatalf("expected ErrNoReport before any save, got %v", err)
	}

	report := analyzer.New(zaptest.NewLogger(t)).Run([]dataset.Dataset{
		{ID: "A", Target: 0.6, Numbers: []float64{2, 3, 10}},
		{ID: "B", Target: 8, Numbers: []float64{2, 4}},
	})
	if err := store.SaveReport(report); err != nil {
		t.Fatalf("SaveReport returned error: %v", err)
	}

	got, err := store.LatestReport()
	if err != nil {
		t.Fatalf("LatestReport returned error: %v", err)
	}
	if len(got.Sets) != 2 || got.Resolved() != 2 {
		t.Fatalf("unexpected stored report: %+v", got)
	}
}
