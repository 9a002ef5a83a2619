// Package config provides configuration loading, defaults and validation for
// coulomb3d.
package config

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/coulomb3d/logging"
	"github.com/katalvlaran/coulomb3d/mds"
	"github.com/katalvlaran/coulomb3d/reconstruct"
	"github.com/katalvlaran/coulomb3d/trilat"
)

// Config is the complete runtime configuration.
type Config struct {
	// Method is "mds" (with trilateration fallback) or "simple".
	Method string `mapstructure:"method" yaml:"method"`

	// Verbose enables batch progress entries.
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`

	// ProgressEvery is the number of molecules between progress entries.
	ProgressEvery int `mapstructure:"progress_every" yaml:"progress_every"`

	MDS    MDSConfig         `mapstructure:"mds" yaml:"mds"`
	Trilat TrilatConfig      `mapstructure:"trilat" yaml:"trilat"`
	Log    logging.LogConfig `mapstructure:"log" yaml:"log"`
}

// MDSConfig mirrors mds.Options.
type MDSConfig struct {
	Dim     int     `mapstructure:"dim" yaml:"dim"`
	Seed    int64   `mapstructure:"seed" yaml:"seed"`
	NInit   int     `mapstructure:"n_init" yaml:"n_init"`
	MaxIter int     `mapstructure:"max_iter" yaml:"max_iter"`
	Eps     float64 `mapstructure:"eps" yaml:"eps"`

	// Init is "random" or "classical".
	Init string `mapstructure:"init" yaml:"init"`
}

// TrilatConfig mirrors trilat.Options.
type TrilatConfig struct {
	MaxIterations     int     `mapstructure:"max_iterations" yaml:"max_iterations"`
	GradientThreshold float64 `mapstructure:"gradient_threshold" yaml:"gradient_threshold"`
}

// Default returns a Config holding every default.
func Default() *Config {
	cfg := &Config{Verbose: DefaultVerbose}
	ApplyDefaults(cfg)

	return cfg
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Method {
	case reconstruct.MethodMDS.String(), reconstruct.MethodSimple.String():
	default:
		return fmt.Errorf("config: method %q is invalid; expected mds|simple", c.Method)
	}
	if c.ProgressEvery < 1 {
		return fmt.Errorf("config: progress_every must be ≥ 1, got %d", c.ProgressEvery)
	}

	if c.MDS.Dim != reconstruct.Dim {
		return fmt.Errorf("config: mds.dim must be %d, got %d", reconstruct.Dim, c.MDS.Dim)
	}
	if c.MDS.NInit < 1 {
		return fmt.Errorf("config: mds.n_init must be ≥ 1, got %d", c.MDS.NInit)
	}
	if c.MDS.MaxIter < 1 {
		return fmt.Errorf("config: mds.max_iter must be ≥ 1, got %d", c.MDS.MaxIter)
	}
	if math.IsNaN(c.MDS.Eps) || c.MDS.Eps <= 0 {
		return fmt.Errorf("config: mds.eps must be > 0, got %g", c.MDS.Eps)
	}
	if _, err := parseInit(c.MDS.Init); err != nil {
		return err
	}

	if c.Trilat.MaxIterations < 0 {
		return fmt.Errorf("config: trilat.max_iterations must be ≥ 0, got %d", c.Trilat.MaxIterations)
	}
	if math.IsNaN(c.Trilat.GradientThreshold) || c.Trilat.GradientThreshold < 0 {
		return fmt.Errorf("config: trilat.gradient_threshold must be ≥ 0, got %g", c.Trilat.GradientThreshold)
	}

	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("config: log: %w", err)
	}

	return nil
}

// MDSOptions converts the mds section. Call Validate first.
func (c *Config) MDSOptions() mds.Options {
	opts := mds.DefaultOptions()
	opts.Dim = c.MDS.Dim
	opts.Seed = c.MDS.Seed
	opts.NInit = c.MDS.NInit
	opts.MaxIter = c.MDS.MaxIter
	opts.Eps = c.MDS.Eps
	opts.Init, _ = parseInit(c.MDS.Init)

	return opts
}

// TrilatOptions converts the trilat section.
func (c *Config) TrilatOptions() trilat.Options {
	return trilat.Options{
		MaxIterations:     c.Trilat.MaxIterations,
		GradientThreshold: c.Trilat.GradientThreshold,
	}
}

// ReconstructOptions converts the configuration into reconstruct options
// that log to logger. Call Validate first; invalid values panic in the
// option constructors.
func (c *Config) ReconstructOptions(logger *zap.Logger) []reconstruct.Option {
	return []reconstruct.Option{
		reconstruct.WithMethod(reconstruct.ParseMethod(c.Method)),
		reconstruct.WithVerbose(c.Verbose),
		reconstruct.WithProgressEvery(c.ProgressEvery),
		reconstruct.WithMDSOptions(c.MDSOptions()),
		reconstruct.WithTrilatOptions(c.TrilatOptions()),
		reconstruct.WithLogger(logger),
	}
}

func parseInit(s string) (mds.Init, error) {
	switch s {
	case mds.InitRandom.String():
		return mds.InitRandom, nil
	case mds.InitClassical.String():
		return mds.InitClassical, nil
	default:
		return mds.InitRandom, fmt.Errorf("config: mds.init %q is invalid; expected random|classical", s)
	}
}
