// Package storage keeps the runtime-configurable tolerance thresholds and
// the latest analysis report in memory. Nothing is persisted across runs.
package storage

import (
	"errors"
	"sort"
	"sync"

	"github.com/eugenenazirov/dataset-analyzer/internal/analyzer"
	"github.com/eugenenazirov/dataset-analyzer/internal/stats"
)

const maxThresholds = 10

var (
	// ErrInvalidThresholds indicates the provided thresholds violate validation rules.
	ErrInvalidThresholds = errors.New("thresholds must contain between 1 and 10 positive percentages")
	// ErrNoReport indicates no analysis has been stored yet.
	ErrNoReport = errors.New("no analysis report available")
)

// Storage provides access to the tolerance thresholds and the latest report.
type Storage interface {
	GetThresholds() ([]float64, error)
	SetThresholds(thresholds []float64) error
	SaveReport(report analyzer.Report) error
	LatestReport() (analyzer.Report, error)
}

// MemoryStorage keeps thresholds and the latest report in-memory, guarded
// by a RWMutex.
type MemoryStorage struct {
	mu         sync.RWMutex
	thresholds []float64
	report     *analyzer.Report
}

// NewMemoryStorage initialises storage with the default tolerance thresholds.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		thresholds: stats.DefaultThresholds(),
	}
}

// GetThresholds returns a defensive copy of the configured thresholds.
func (s *MemoryStorage) GetThresholds() ([]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneFloats(s.thresholds), nil
}

// SetThresholds validates, normalises, and stores the provided thresholds.
func (s *MemoryStorage) SetThresholds(thresholds []float64) error {
	normalized, err := normalizeThresholds(thresholds)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.thresholds = normalized
	s.mu.Unlock()

	return nil
}

// SaveReport stores the report as the latest analysis outcome.
func (s *MemoryStorage) SaveReport(report analyzer.Report) error {
	s.mu.Lock()
	s.report = &report
	s.mu.Unlock()

	return nil
}

// LatestReport returns the most recently saved report.
func (s *MemoryStorage) LatestReport() (analyzer.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.report == nil {
		return analyzer.Report{}, ErrNoReport
	}
	return *s.report, nil
}

func cloneFloats(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

func normalizeThresholds(thresholds []float64) ([]float64, error) {
	if len(thresholds) == 0 {
		return nil, ErrInvalidThresholds
	}

	unique := make(map[float64]struct{}, len(thresholds))
	for _, threshold := range thresholds {
		if threshold <= 0 {
			return nil, ErrInvalidThresholds
		}
		unique[threshold] = struct{}{}
		if len(unique) > maxThresholds {
			return nil, ErrInvalidThresholds
		}
	}

	out := make([]float64, 0, len(unique))
	for threshold := range unique {
		out = append(out, threshold)
	}
	sort.Float64s(out)
	return out, nil
}
