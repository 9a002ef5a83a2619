package config

import (
	"github.com/katalvlaran/coulomb3d/logging"
	"github.com/katalvlaran/coulomb3d/mds"
	"github.com/katalvlaran/coulomb3d/reconstruct"
	"github.com/katalvlaran/coulomb3d/trilat"
)

// Default value constants.
var (
	DefaultMethod        = reconstruct.DefaultMethod.String()
	DefaultVerbose       = reconstruct.DefaultVerbose
	DefaultProgressEvery = reconstruct.DefaultProgressEvery

	DefaultMDSDim     = mds.DefaultOptions().Dim
	DefaultMDSSeed    = mds.DefaultOptions().Seed
	DefaultMDSNInit   = mds.DefaultOptions().NInit
	DefaultMDSMaxIter = mds.DefaultOptions().MaxIter
	DefaultMDSEps     = mds.DefaultOptions().Eps
	DefaultMDSInit    = mds.DefaultOptions().Init.String()

	DefaultTrilatMaxIterations     = trilat.DefaultOptions().MaxIterations
	DefaultTrilatGradientThreshold = trilat.DefaultOptions().GradientThreshold

	DefaultLogLevel  = logging.DefaultLevel
	DefaultLogFormat = logging.DefaultFormat
)

// ApplyDefaults fills every zero-value field of a hand-built cfg with its
// default. Zero is read as "unset", so a zero seed or iteration cap cannot be
// expressed this way; Load keeps them because viper tracks unset keys.
// Booleans cannot be told apart from "unset" and are left alone.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Method == "" {
		cfg.Method = DefaultMethod
	}
	if cfg.ProgressEvery == 0 {
		cfg.ProgressEvery = DefaultProgressEvery
	}

	if cfg.MDS.Dim == 0 {
		cfg.MDS.Dim = DefaultMDSDim
	}
	if cfg.MDS.Seed == 0 {
		cfg.MDS.Seed = DefaultMDSSeed
	}
	if cfg.MDS.NInit == 0 {
		cfg.MDS.NInit = DefaultMDSNInit
	}
	if cfg.MDS.MaxIter == 0 {
		cfg.MDS.MaxIter = DefaultMDSMaxIter
	}
	if cfg.MDS.Eps == 0 {
		cfg.MDS.Eps = DefaultMDSEps
	}
	if cfg.MDS.Init == "" {
		cfg.MDS.Init = DefaultMDSInit
	}

	if cfg.Trilat.MaxIterations == 0 {
		cfg.Trilat.MaxIterations = DefaultTrilatMaxIterations
	}
	if cfg.Trilat.GradientThreshold == 0 {
		cfg.Trilat.GradientThreshold = DefaultTrilatGradientThreshold
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stderr"}
	}
}
