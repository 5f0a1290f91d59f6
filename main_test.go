package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunWithDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	if err := run(&stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), stdout.String())
	}

	wantPrefixes := []string{
		"Тип тренировки: Swimming;",
		"Тип тренировки: Running;",
		"Тип тренировки: SportsWalking;",
	}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected diagnostics: %s", stderr.String())
	}
}

func TestRunReportsFailedRecords(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".fitness-tracker")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	yaml := "packages:\n  - type: XYZ\n    data: [1, 2, 3]\n  - type: RUN\n    data: [15000, 1, 75]\nlog:\n  prefix: \"test: \"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	err := run(&stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), "1 of 2 workouts failed") {
		t.Fatalf("run() error = %v, want 1 of 2 failed", err)
	}

	if !strings.Contains(stdout.String(), "Тип тренировки: Running;") {
		t.Errorf("running record should still be printed, got %q", stdout.String())
	}
	if !strings.HasPrefix(stderr.String(), "test: skipping record 0 (XYZ)") {
		t.Errorf("stderr = %q, want failure logged with prefix", stderr.String())
	}
}

func TestRunWritesMetricsTextfile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".fitness-tracker")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	promFile := filepath.Join(home, "fitness.prom")
	cfg := `{
		"packages": [
			{"type": "RUN", "data": [15000, 1, 75]},
			{"type": "RUN", "data": [15000, 1]},
			{"type": "SWM", "data": [720, 1, 80, 25, 40]}
		],
		"metrics": {"textfile": "` + promFile + `"}
	}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(cfg), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if err := run(&stdout, &stderr); err == nil {
		t.Fatal("run() error = nil, want failed record reported")
	}

	data, err := os.ReadFile(promFile)
	if err != nil {
		t.Fatalf("reading metrics textfile: %v", err)
	}
	want := []string{
		`fitness_tracker_records_processed_total{type="Running"} 1`,
		`fitness_tracker_records_processed_total{type="Swimming"} 1`,
		`fitness_tracker_records_failed_total{reason="arity_mismatch"} 1`,
	}
	for _, line := range want {
		if !strings.Contains(string(data), line) {
			t.Errorf("metrics textfile missing %q:\n%s", line, data)
		}
	}
	if !strings.Contains(stderr.String(), "metrics written to "+promFile) {
		t.Errorf("stderr = %q, want metrics path logged", stderr.String())
	}
}
