package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/dataset-analyzer/internal/application"
	"github.com/eugenenazirov/dataset-analyzer/internal/config"
	"github.com/eugenenazirov/dataset-analyzer/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	kingpinApp := kingpin.New("analyzer", "Dataset Analyzer - finds (n1*n2)/n3 combinations approximating dataset targets")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	inputPath := kingpinApp.Flag("input", "Path to the CSV input sheet").String()
	thresholdsStr := kingpinApp.Flag("thresholds", "Comma-separated error tolerance thresholds in percent").String()
	pause := kingpinApp.Flag("pause", "Delay between report stages (e.g. 2s)").Default("-1s").Duration()
	verbose := kingpinApp.Flag("verbose", "Enable verbose diagnostics").Short('v').Bool()

	if _, err := kingpinApp.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *inputPath != "" {
		overrides.InputPath = inputPath
	}

	if *thresholdsStr != "" {
		overrides.ThresholdsStr = thresholdsStr
	}

	if *pause >= 0 {
		overrides.PauseDuration = pause
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load configuration: %v\n", err)
		return 1
	}

	logger, err := logging.NewConsole(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	start := time.Now()
	if err := application.RunAnalysis(cfg, logger, out); err != nil {
		logger.Error("analysis failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	logger.Info("done", zap.Duration("elapsed", time.Since(start)))

	return 0
}
