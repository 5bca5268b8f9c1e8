package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Pattern names
const (
	PatternOnceCell = "oncecell"
	PatternSteal    = "steal"
)

// Config describes one simulation run
type Config struct {
	Pattern    string `yaml:"pattern"`
	Periods    int    `yaml:"periods"`
	IdleSlices int    `yaml:"idle_slices"`

	// Optional serial port the LED trace is mirrored to
	TracePort string `yaml:"trace_port"`
	Baud      int    `yaml:"baud"`
}

// Load parses a YAML configuration. Keys missing from data keep their
// default values; keys that are present, including zero values, win.
func Load(data []byte) (*Config, error) {
	cfg := defaults()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads and parses a YAML configuration file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Load(data)
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := defaults()
	return &cfg
}

// defaults is the configuration before any file or flag is applied
func defaults() Config {
	return Config{
		Pattern:    PatternOnceCell,
		Periods:    10,
		IdleSlices: 4,
		Baud:       115200,
	}
}

// Validate checks the configuration for values the simulator cannot run
func (c *Config) Validate() error {
	switch c.Pattern {
	case PatternOnceCell, PatternSteal:
	default:
		return fmt.Errorf("unknown pattern %q", c.Pattern)
	}
	if c.Periods < 0 {
		return fmt.Errorf("periods must not be negative, got %d", c.Periods)
	}
	if c.IdleSlices < 0 {
		return fmt.Errorf("idle_slices must not be negative, got %d", c.IdleSlices)
	}
	return nil
}
