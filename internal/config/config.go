// Package config loads analysis settings from an optional config file and
// ZPLANE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned for malformed configuration values.
var ErrInvalidConfig = errors.New("invalid configuration")

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "ZPLANE"

// Keys understood in config files and as ZPLANE_<KEY> environment variables.
const (
	KeyNumerator      = "b"
	KeyDenominator    = "a"
	KeySamples        = "samples"
	KeySFNorm         = "sfnorm"
	KeyAxisLimit      = "axis_lim"
	KeyIncludeNyquist = "nyquist"
	KeyWhole          = "whole"
	KeyStrict         = "strict"
	KeyStep           = "step"
)

// Defaults
const (
	defaultSamples   = 1024
	defaultSFNorm    = 1.0
	defaultAxisLimit = 1.0
	defaultStep      = 1
)

// Config holds the transfer function and analysis settings.
type Config struct {
	Numerator   []float64
	Denominator []float64
	Analysis    AnalysisConfig
	Output      OutputConfig
}

// AnalysisConfig holds frequency grid settings.
type AnalysisConfig struct {
	Samples        int
	SFNorm         float64
	IncludeNyquist bool
	Whole          bool
	Strict         bool
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	AxisLimit float64
	Step      int
}

// Load reads configuration with precedence environment > file > defaults.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyNumerator, "")
	v.SetDefault(KeyDenominator, "1")
	v.SetDefault(KeySamples, defaultSamples)
	v.SetDefault(KeySFNorm, defaultSFNorm)
	v.SetDefault(KeyAxisLimit, defaultAxisLimit)
	v.SetDefault(KeyIncludeNyquist, false)
	v.SetDefault(KeyWhole, false)
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyStep, defaultStep)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("loaded config file")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	b, err := coefficients(v, KeyNumerator)
	if err != nil {
		return nil, err
	}
	a, err := coefficients(v, KeyDenominator)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Numerator:   b,
		Denominator: a,
		Analysis: AnalysisConfig{
			Samples:        v.GetInt(KeySamples),
			SFNorm:         v.GetFloat64(KeySFNorm),
			IncludeNyquist: v.GetBool(KeyIncludeNyquist),
			Whole:          v.GetBool(KeyWhole),
			Strict:         v.GetBool(KeyStrict),
		},
		Output: OutputConfig{
			AxisLimit: v.GetFloat64(KeyAxisLimit),
			Step:      v.GetInt(KeyStep),
		},
	}

	log.Debug().
		Floats64("b", cfg.Numerator).
		Floats64("a", cfg.Denominator).
		Int("samples", cfg.Analysis.Samples).
		Float64("sfnorm", cfg.Analysis.SFNorm).
		Msg("configuration loaded")

	return cfg, cfg.Validate()
}

// Validate checks value ranges. Empty coefficient lists are allowed here so
// commands can fill them from flags.
func (c *Config) Validate() error {
	if c.Analysis.Samples <= 0 {
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidConfig, c.Analysis.Samples)
	}
	if c.Analysis.SFNorm <= 0 {
		return fmt.Errorf("%w: sfnorm must be positive, got %g", ErrInvalidConfig, c.Analysis.SFNorm)
	}
	if c.Output.AxisLimit <= 0 {
		return fmt.Errorf("%w: axis_lim must be positive, got %g", ErrInvalidConfig, c.Output.AxisLimit)
	}
	return nil
}

// ParseCoefficients parses a comma or whitespace separated list of numbers.
func ParseCoefficients(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '[' || r == ']'
	})

	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: coefficient %q: %w", ErrInvalidConfig, f, err)
		}
		out = append(out, x)
	}
	return out, nil
}

// coefficients reads a list from a config file array or a comma separated
// string (the form environment variables take).
func coefficients(v *viper.Viper, key string) ([]float64, error) {
	parts := v.GetStringSlice(key)
	c, err := ParseCoefficients(strings.Join(parts, ","))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return c, nil
}
