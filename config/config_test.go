package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/coulomb3d/config"
	"github.com/katalvlaran/coulomb3d/mds"
	"github.com/katalvlaran/coulomb3d/reconstruct"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coulomb3d.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// TestDefault matches the library defaults and validates.
func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "mds", cfg.Method)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 100, cfg.ProgressEvery)
	assert.Equal(t, mds.DefaultOptions(), cfg.MDSOptions())
	assert.Equal(t, 600, cfg.TrilatOptions().MaxIterations)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"stderr"}, cfg.Log.OutputPaths)
}

// TestApplyDefaults keeps explicit values and tolerates nil.
func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Method: "simple", MDS: config.MDSConfig{NInit: 9}}
	config.ApplyDefaults(cfg)
	assert.Equal(t, "simple", cfg.Method)
	assert.Equal(t, 9, cfg.MDS.NInit)
	assert.Equal(t, 300, cfg.MDS.MaxIter)

	assert.NotPanics(t, func() { config.ApplyDefaults(nil) })
}

// TestValidate rejects each malformed field.
func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"unknown method", func(c *config.Config) { c.Method = "nerf" }},
		{"progress every zero", func(c *config.Config) { c.ProgressEvery = 0 }},
		{"dim 2", func(c *config.Config) { c.MDS.Dim = 2 }},
		{"n_init zero", func(c *config.Config) { c.MDS.NInit = 0 }},
		{"max_iter negative", func(c *config.Config) { c.MDS.MaxIter = -1 }},
		{"eps zero", func(c *config.Config) { c.MDS.Eps = 0 }},
		{"unknown init", func(c *config.Config) { c.MDS.Init = "pca" }},
		{"negative trilat iterations", func(c *config.Config) { c.Trilat.MaxIterations = -1 }},
		{"negative gradient threshold", func(c *config.Config) { c.Trilat.GradientThreshold = -1 }},
		{"bad log level", func(c *config.Config) { c.Log.Level = "loud" }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

// TestLoad_File reads nested keys and fills the rest with defaults.
func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
method: simple
verbose: false
progress_every: 10
mds:
  seed: 7
  init: classical
trilat:
  max_iterations: 50
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "simple", cfg.Method)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, 10, cfg.ProgressEvery)
	assert.Equal(t, int64(7), cfg.MDS.Seed)
	assert.Equal(t, mds.InitClassical, cfg.MDSOptions().Init)
	assert.Equal(t, 4, cfg.MDS.NInit)
	assert.Equal(t, 50, cfg.Trilat.MaxIterations)
	assert.Equal(t, 1e-5, cfg.Trilat.GradientThreshold)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

// TestLoad_ExplicitZeros keeps zero values that differ from the defaults.
func TestLoad_ExplicitZeros(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
mds:
  seed: 0
trilat:
  max_iterations: 0
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Zero(t, cfg.MDS.Seed)
	assert.Zero(t, cfg.MDSOptions().Seed)
	assert.Zero(t, cfg.Trilat.MaxIterations)
	assert.Zero(t, cfg.TrilatOptions().MaxIterations)
	assert.Equal(t, 4, cfg.MDS.NInit)
}

// TestLoad_Errors covers unreadable and invalid files.
func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "method: nerf\n"))
	assert.ErrorContains(t, err, "validation failed")
}

// TestLoad_Env overrides defaults from COULOMB3D_* variables.
func TestLoad_Env(t *testing.T) {
	t.Setenv("COULOMB3D_METHOD", "simple")
	t.Setenv("COULOMB3D_MDS_MAX_ITER", "120")
	t.Setenv("COULOMB3D_LOG_LEVEL", "warn")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "simple", cfg.Method)
	assert.Equal(t, 120, cfg.MDS.MaxIter)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Verbose)
}

// TestReconstructOptions drives a reconstruction end to end.
func TestReconstructOptions(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Method = "simple"

	opts := cfg.ReconstructOptions(zap.NewNop())
	require.Len(t, opts, 6)

	// Two hydrogens with C_01 = 1 sit one unit apart.
	c := mat.NewDense(2, 2, []float64{0.5, 1, 1, 0.5})
	x, err := reconstruct.FromCoulomb(c, []float64{1, 1}, opts...)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 1, 0, 0}, x.RawMatrix().Data)
}
