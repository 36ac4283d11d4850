// Package config loads the engine configuration from YAML with environment
// overrides and turns it into kernel options and a logger.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geokernel/kernel"
)

// Environment variables that override file values.
const (
	EnvLogLevel = "GEOKERNEL_LOG_LEVEL"
	EnvEpsilon  = "GEOKERNEL_EPSILON"
)

// KnownFeatures lists the feature names accepted in the features section.
var KnownFeatures = []string{
	string(kernel.FeatureAdjustWidgets),
	string(kernel.FeatureSymbolicSolve),
}

// Config is the root configuration document.
type Config struct {
	Kernel   KernelConfig  `yaml:"kernel"`
	Features []string      `yaml:"features"`
	Logging  LoggingConfig `yaml:"logging"`
	Metrics  MetricsConfig `yaml:"metrics"`
}

// KernelConfig tunes the construction.
type KernelConfig struct {
	Epsilon         float64 `yaml:"epsilon"`
	PruneUnchanged  bool    `yaml:"prune_unchanged"`
	SuggestionLimit int     `yaml:"suggestion_limit"`
}

// LoggingConfig selects the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
}

// MetricsConfig controls Prometheus collection. When Textfile is set the
// CLI writes the gathered metrics there after every run.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
	Textfile  string `yaml:"textfile"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Kernel: KernelConfig{
			Epsilon:         kernel.DefaultEpsilon,
			SuggestionLimit: 4,
		},
		Features: slices.Clone(KnownFeatures),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Namespace: "geokernel",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults;
// environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.Logging.Level = lvl
	}
	if eps := os.Getenv(EnvEpsilon); eps != "" {
		v, err := strconv.ParseFloat(eps, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvEpsilon, err)
		}
		c.Kernel.Epsilon = v
	}

	return nil
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	if c.Kernel.Epsilon <= 0 {
		return fmt.Errorf("kernel.epsilon must be positive, got %g", c.Kernel.Epsilon)
	}
	if c.Kernel.SuggestionLimit < 1 {
		return fmt.Errorf("kernel.suggestion_limit must be at least 1, got %d", c.Kernel.SuggestionLimit)
	}
	for _, f := range c.Features {
		if !slices.Contains(KnownFeatures, f) {
			return fmt.Errorf("unknown feature %q (valid: %v)", f, KnownFeatures)
		}
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging.level: %w", err)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("invalid logging.format %q (valid: json, console)", c.Logging.Format)
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("metrics.namespace is required when metrics are enabled")
	}

	return nil
}

// KernelConfig converts the file configuration into kernel.Config.
func (c *Config) KernelConfig() kernel.Config {
	features := make(map[kernel.Feature]bool, len(c.Features))
	for _, f := range c.Features {
		features[kernel.Feature(f)] = true
	}

	return kernel.Config{
		Epsilon:         c.Kernel.Epsilon,
		PruneUnchanged:  c.Kernel.PruneUnchanged,
		SuggestionLimit: c.Kernel.SuggestionLimit,
		Features:        features,
	}
}

// Build returns a zap logger for this configuration. verbose forces debug.
func (l LoggingConfig) Build(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if l.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid logging.level: %w", err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}
