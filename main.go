package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"fitness-tracker/internal/config"
	"fitness-tracker/internal/observability"
	"fitness-tracker/internal/service"
)

func main() {
	if err := run(os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(stdout, stderr io.Writer) error {
	// Load configuration, falling back to the built-in sample packages
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		defaults := config.DefaultConfig()
		cfg = &defaults
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		return fmt.Errorf("config validation failed: %w (config dir: %s)", err, configDir)
	}

	logOut := stderr
	if cfg.Log.Quiet {
		logOut = io.Discard
	}
	logger := log.New(logOut, cfg.Log.Prefix, 0)

	reg := prometheus.NewRegistry()
	processor := service.NewProcessor(stdout,
		service.WithLogger(logger),
		service.WithMetrics(observability.NewMetrics(reg)),
	)

	summary := processor.Process(cfg.Packages)

	// Counters are exported even when some records failed
	if path := cfg.Metrics.Textfile; path != "" {
		if err := prometheus.WriteToTextfile(path, reg); err != nil {
			return fmt.Errorf("writing metrics textfile: %w", err)
		}
		logger.Printf("metrics written to %s", path)
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d workouts failed", summary.Failed, len(cfg.Packages))
	}

	return nil
}
