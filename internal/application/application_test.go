package application

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/dataset-analyzer/internal/config"
	"github.com/eugenenazirov/dataset-analyzer/internal/dataset"
)

func TestNewInitializesDependencies(t *testing.T) {
	cfg := baseTestConfig(":8085")
	cfg.Thresholds = []float64{2, 0.5}
	logger := zaptest.NewLogger(t)

	app, err := New(cfg, logger)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	thresholds, err := app.Storage().GetThresholds()
	if err != nil {
		t.Fatalf("GetThresholds returned error: %v", err)
	}
	if want := []float64{0.5, 2}; !slices.Equal(thresholds, want) {
		t.Fatalf("expected thresholds %v, got %v", want, thresholds)
	}
	if app.server == nil || app.router == nil || app.handler == nil {
		t.Fatalf("expected server, router, and handler to be initialized")
	}
	if app.Server() != app.server {
		t.Fatalf("Server accessor did not return underlying instance")
	}
}

func TestNewServerAppliesConfig(t *testing.T) {
	cfg := baseTestConfig("9090")
	handler := http.NewServeMux()

	server := NewServer(cfg, handler)
	if server.Addr != ":9090" {
		t.Fatalf("expected address :9090, got %s", server.Addr)
	}
	if server.Handler != handler {
		t.Fatalf("expected handler to be applied")
	}
	if server.ReadHeaderTimeout != cfg.ReadHeaderTimeout ||
		server.WriteTimeout != cfg.WriteTimeout ||
		server.IdleTimeout != cfg.IdleTimeout {
		t.Fatalf("server timeouts do not match configuration")
	}
}

func TestNewReturnsErrorForInvalidThresholds(t *testing.T) {
	cfg := baseTestConfig(":0")
	cfg.Thresholds = nil

	if _, err := New(cfg, zaptest.NewLogger(t)); err == nil {
		t.Fatalf("expected error for invalid thresholds")
	}
}

func TestRunAnalysis(t *testing.T) {
	content := "title,,,\nx,,,\nx,,,\n0.6,,8,\nx,,,\nx,,,\n2,,2,\n3,,4,\n10,,,\n"
	path := filepath.Join(t.TempDir(), "dataset.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write input file: %v", err)
	}

	cfg := baseTestConfig(":0")
	cfg.InputPath = path
	cfg.Layout = dataset.Layout{TargetRow: 3, DataStartRow: 6, SetCount: 2, ColumnStep: 2}

	var buf bytes.Buffer
	if err := RunAnalysis(cfg, zaptest.NewLogger(t), &buf); err != nil {
		t.Fatalf("RunAnalysis returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"STEP 0: INPUT DATA VERIFICATION",
		"STEP 4: CONCLUSION",
		"Set A",
		"Set B",
		"Reliability Rating:",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected report to contain %q\noutput:\n%s", want, out)
		}
	}
}

func TestRunAnalysisMissingInput(t *testing.T) {
	cfg := baseTestConfig(":0")
	cfg.InputPath = filepath.Join(t.TempDir(), "missing.csv")

	var buf bytes.Buffer
	if err := RunAnalysis(cfg, zaptest.NewLogger(t), &buf); err == nil {
		t.Fatalf("expected error for missing input file")
	}
}

func baseTestConfig(port string) config.Config {
	return config.Config{
		InputPath:            "data/dataset.csv",
		Thresholds:           []float64{1, 5, 10},
		Layout:               dataset.DefaultLayout(),
		Port:                 port,
		ShutdownGracePeriod:  50 * time.Millisecond,
		ReadHeaderTimeout:    20 * time.Millisecond,
		WriteTimeout:         30 * time.Millisecond,
		IdleTimeout:          40 * time.Millisecond,
		EnableRequestLogging: false,
		RateLimitRPS:         0,
		RateLimitBurst:       0,
	}
}
