package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Packages []Package     `json:"packages" yaml:"packages"`
	Log      LogConfig     `json:"log" yaml:"log"`
	Metrics  MetricsConfig `json:"metrics" yaml:"metrics"`
}

// Package is one raw workout record: a type code and its positional values
type Package struct {
	Type string    `json:"type" yaml:"type"`
	Data []float64 `json:"data" yaml:"data"`
}

// LogConfig holds diagnostics preferences
type LogConfig struct {
	Prefix string `json:"prefix" yaml:"prefix"`
	Quiet  bool   `json:"quiet" yaml:"quiet"`
}

// MetricsConfig holds where record counters are exported after a run
type MetricsConfig struct {
	// Textfile is a Prometheus text-format file written after processing; empty disables it
	Textfile string `json:"textfile" yaml:"textfile"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

const (
	configDirName = ".fitness-tracker"
	defaultPrefix = "fitness-tracker: "
)

// configFiles are tried in order; the first one present wins
var configFiles = []string{"config.json", "config.yaml", "config.yml"}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Packages: []Package{
			{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
			{Type: "RUN", Data: []float64{15000, 1, 75}},
			{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
		},
		Log: LogConfig{
			Prefix: defaultPrefix,
		},
	}
}

// Load reads the configuration from ~/.fitness-tracker/config.{json,yaml,yml}
func Load() (*Config, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}

	for _, name := range configFiles {
		path := filepath.Join(dir, name)
		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		return LoadFile(path)
	}

	return nil, ErrNoConfig
}

// LoadFile reads a configuration file, choosing the decoder by extension
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills missing values from DefaultConfig.
// An explicitly empty package list is kept so Validate can reject it.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Packages == nil {
		c.Packages = defaults.Packages
	}
	if c.Log.Prefix == "" {
		c.Log.Prefix = defaults.Log.Prefix
	}
}

// Validate checks that every package names a type.
// Unknown types and wrong value counts are reported per record while processing.
func (c *Config) Validate() error {
	if len(c.Packages) == 0 {
		return errors.New("packages must contain at least one workout")
	}
	for i, p := range c.Packages {
		if strings.TrimSpace(p.Type) == "" {
			return fmt.Errorf("packages[%d].type is required", i)
		}
	}
	return nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}
