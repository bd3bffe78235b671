package application

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/dataset-analyzer/internal/analyzer"
	"github.com/eugenenazirov/dataset-analyzer/internal/config"
	"github.com/eugenenazirov/dataset-analyzer/internal/dataset"
	"github.com/eugenenazirov/dataset-analyzer/internal/render"
)

// RunAnalysis loads the input sheet, analyzes every dataset, and writes the
// staged report to out. Per-dataset search failures are reported inside the
// rendered output and do not abort the run; only input loading errors do.
func RunAnalysis(cfg config.Config, logger *zap.Logger, out io.Writer) error {
	datasets, err := dataset.LoadFile(cfg.InputPath, cfg.Layout)
	if err != nil {
		return fmt.Errorf("load input data: %w", err)
	}

	logger.Info("input loaded",
		zap.String("path", cfg.InputPath),
		zap.Int("datasets", len(datasets)),
	)

	report := analyzer.New(logger, analyzer.WithThresholds(cfg.Thresholds)).Run(datasets)

	render.New(out, render.WithPause(cfg.PauseDuration)).Report(datasets, report)

	logger.Info("analysis complete",
		zap.Int("resolved", report.Resolved()),
		zap.Int("unresolved", len(report.Sets)-report.Resolved()),
		zap.String("rating", string(report.Rating)),
	)

	return nil
}
