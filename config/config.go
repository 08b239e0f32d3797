// Package config loads settings for the sparsecalc shell: where operand
// files live, where results go and which numeric policy the kernels use.
//
// Sources, in increasing priority: built-in defaults, a YAML file, a .env
// file in the working directory, SPARSECALC_* environment variables. Command
// line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvInputDir  = "SPARSECALC_INPUT_DIR"
	EnvOutputDir = "SPARSECALC_OUTPUT_DIR"
	EnvEpsilon   = "SPARSECALC_EPSILON"
	EnvLogLevel  = "SPARSECALC_LOG_LEVEL"
)

// Defaults mirror the layout sparsecalc expects next to its working directory.
const (
	DefaultInputDir   = "sample_inputs"
	DefaultOutputDir  = "results"
	DefaultFilePrefix = "matrix"
	DefaultFileSuffix = ".txt"
	DefaultLogLevel   = "info"
)

var (
	// ErrInvalidConfig is wrapped by every Validate failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config is the resolved sparsecalc configuration. The yaml tags name the
// keys accepted in the config file; InputDir and OutputDir may be local paths
// or any storage URL the workspace afs service understands.
type Config struct {
	InputDir   string  `yaml:"input_dir"`
	OutputDir  string  `yaml:"output_dir"`
	FilePrefix string  `yaml:"file_prefix"`
	FileSuffix string  `yaml:"file_suffix"`
	Epsilon    float64 `yaml:"epsilon"`   // zero tolerance for results; 0 = exact
	LogLevel   string  `yaml:"log_level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		InputDir:   DefaultInputDir,
		OutputDir:  DefaultOutputDir,
		FilePrefix: DefaultFilePrefix,
		FileSuffix: DefaultFileSuffix,
		LogLevel:   DefaultLogLevel,
	}
}

// Load builds a Config from path (optional: "" or a missing file keeps the
// defaults), then .env, then environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	// 3. Override with Environment Variables if present
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvInputDir); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvEpsilon); v != "" {
		eps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvEpsilon, v, err)
		}
		c.Epsilon = eps
	}

	return nil
}

// Validate checks that directories are set, epsilon is a finite
// non-negative number and the log level is known.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.InputDir) == "" {
		return fmt.Errorf("%w: input_dir is empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("%w: output_dir is empty", ErrInvalidConfig)
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("%w: epsilon must be finite and >= 0, got %v", ErrInvalidConfig, c.Epsilon)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level maps LogLevel onto slog levels.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	return lvl, nil
}
