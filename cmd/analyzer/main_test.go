package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeInput(t *testing.T) string {
	t.Helper()

	content := "title,,,\nx,,,\nx,,,\n0.6,,8,\nx,,,\nx,,,\n2,,2,\n3,,4,\n10,,,\n"
	path := filepath.Join(t.TempDir(), "dataset.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write input file: %v", err)
	}
	return path
}

func writeConfig(t *testing.T) string {
	t.Helper()

	content := "layout:\n  target_row: 3\n  data_start_row: 6\n  set_count: 2\n  column_step: 2\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestRunRendersReport(t *testing.T) {
	var buf bytes.Buffer

	code := run([]string{
		"--config", writeConfig(t),
		"--input", writeInput(t),
		"--pause", "0s",
	}, &buf)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	out := buf.String()
	for _, want := range []string{
		"STEP 0: INPUT DATA VERIFICATION",
		"STEP 4: CONCLUSION",
		"Reliability Rating:",
		"Exceptional",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q\noutput:\n%s", want, out)
		}
	}
}

func TestRunMissingInput(t *testing.T) {
	var buf bytes.Buffer

	code := run([]string{
		"--config", writeConfig(t),
		"--input", filepath.Join(t.TempDir(), "missing.csv"),
	}, &buf)

	if code != 1 {
		t.Fatalf("expected exit code 1 for missing input, got %d", code)
	}
}

func TestRunRejectsBadThresholds(t *testing.T) {
	var buf bytes.Buffer

	code := run([]string{
		"--input", writeInput(t),
		"--thresholds", "0,-1",
	}, &buf)

	if code != 1 {
		t.Fatalf("expected exit code 1 for invalid thresholds, got %d", code)
	}
}
