package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix of every setting.
const envPrefix = "COULOMB3D"

// newViper builds a Viper instance with YAML file type, COULOMB3D_ env prefix,
// automatic env binding, and a "." → "_" key replacer so that nested keys
// like "mds.max_iter" resolve to COULOMB3D_MDS_MAX_ITER.
//
// Every key is registered with its default; Unmarshal only consults the
// environment for keys Viper already knows.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("method", DefaultMethod)
	v.SetDefault("verbose", DefaultVerbose)
	v.SetDefault("progress_every", DefaultProgressEvery)
	v.SetDefault("mds.dim", DefaultMDSDim)
	v.SetDefault("mds.seed", DefaultMDSSeed)
	v.SetDefault("mds.n_init", DefaultMDSNInit)
	v.SetDefault("mds.max_iter", DefaultMDSMaxIter)
	v.SetDefault("mds.eps", DefaultMDSEps)
	v.SetDefault("mds.init", DefaultMDSInit)
	v.SetDefault("trilat.max_iterations", DefaultTrilatMaxIterations)
	v.SetDefault("trilat.gradient_threshold", DefaultTrilatGradientThreshold)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.output_paths", []string{"stderr"})

	return v
}

// Load reads the YAML file at configPath, merges COULOMB3D_* environment
// overrides, falls back to defaults for unset keys, and validates the result.
// An empty configPath skips the file: environment and defaults only.
func Load(configPath string) (*Config, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
		}
	}

	return unmarshalAndFinalize(v)
}

// unmarshalAndFinalize unmarshals viper state into a Config and validates
// the result. Unset keys already carry their viper defaults, so explicit
// zeros such as trilat.max_iterations: 0 or mds.seed: 0 are kept.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}
