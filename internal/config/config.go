// Package config loads and merges the wastelink configuration: defaults,
// then an optional YAML file whose top-level sections replace the
// corresponding defaults wholesale.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nmehta6/wastelink/internal/matching"
	"github.com/nmehta6/wastelink/internal/transport"
)

// DefaultConfigDir is the directory under the user home where wastelink
// keeps its configuration.
const DefaultConfigDir = ".wastelink"

// DefaultConfigFile is the config file name inside DefaultConfigDir.
const DefaultConfigFile = "config.yaml"

// Config is the full wastelink configuration.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
	Transport TransportConfig `yaml:"transport"`
	Matching  MatchingConfig  `yaml:"matching"`
	Factors   FactorsConfig   `yaml:"factors"`
}

// OutputConfig controls how command results are rendered.
type OutputConfig struct {
	// Format is table, json, or ndjson.
	Format string `yaml:"format"`
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
	Caller bool   `yaml:"caller"`
}

// TransportConfig overrides transport estimation defaults.
type TransportConfig struct {
	CircuityFactor float64 `yaml:"circuity_factor"`
	CostPerKmINR   float64 `yaml:"cost_per_km_inr"`
}

// MatchingConfig overrides the match score weights.
type MatchingConfig struct {
	Weights matching.Weights `yaml:"weights"`
}

// FactorsConfig points at an optional emission-factor overlay file.
type FactorsConfig struct {
	// Overlay is a path to a YAML factor dataset merged onto the built-in
	// defaults. Empty means defaults only.
	Overlay string `yaml:"overlay"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output: OutputConfig{Format: "table"},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Transport: TransportConfig{
			CircuityFactor: transport.DefaultCircuityFactor,
			CostPerKmINR:   transport.DefaultCostPerKmINR,
		},
		Matching: MatchingConfig{Weights: matching.DefaultWeights()},
		Factors:  FactorsConfig{},
	}
}

// DefaultPath returns the standard config file location, or an empty
// string when the home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
}

// Load returns the defaults merged with the YAML file at path. An empty
// path loads from DefaultPath; a missing file at the default location is
// not an error, but a missing explicitly-given file is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	err := shallowMergeYAML(&cfg, path)
	if err != nil && !explicit && errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the semantic constraints the YAML schema cannot express.
func (c Config) Validate() error {
	switch c.Output.Format {
	case "table", "json", "ndjson":
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}

	if c.Transport.CircuityFactor < 1.0 {
		return fmt.Errorf("circuity factor %v must be at least 1.0", c.Transport.CircuityFactor)
	}
	if c.Transport.CostPerKmINR <= 0 {
		return fmt.Errorf("cost per km %v must be positive", c.Transport.CostPerKmINR)
	}

	if err := c.Matching.Weights.Validate(); err != nil {
		return err
	}
	return nil
}
