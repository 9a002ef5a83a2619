package mds

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrTooFewPoints indicates fewer than two points; there is nothing to scale.
	ErrTooFewPoints = errors.New("mds: at least two points are required")

	// ErrBadDissimilarity indicates a dissimilarity matrix that is not square,
	// not finite, negative or asymmetric.
	ErrBadDissimilarity = errors.New("mds: invalid dissimilarity matrix")

	// ErrBadOptions indicates nonsensical options (Dim<1, NInit<1, MaxIter<1, Eps<0).
	ErrBadOptions = errors.New("mds: invalid options")

	// ErrNotConverged indicates that no SMACOF run reached the convergence
	// criterion within MaxIter iterations with a finite configuration.
	ErrNotConverged = errors.New("mds: stress minimization did not converge")
)

// Init selects how each SMACOF run is started.
//
//   - InitRandom    — NInit runs, each from a uniform [0,1) configuration drawn
//     from a stream derived from Seed. The lowest-stress run wins.
//   - InitClassical — a single run started from the Torgerson (classical MDS)
//     embedding. NInit and Seed are ignored.
type Init int

const (
	// InitRandom starts from seeded uniform configurations.
	InitRandom Init = iota

	// InitClassical starts from classical (Torgerson) scaling.
	InitClassical
)

// String returns the configuration name of the init mode.
func (i Init) String() string {
	switch i {
	case InitRandom:
		return "random"
	case InitClassical:
		return "classical"
	default:
		return "unknown"
	}
}

// Options configures Embed.
//
// Fields:
//   - Dim     — target dimensionality (3 for molecular coordinates).
//   - Seed    — master seed of the random starts; identical seeds give identical output.
//   - NInit   — number of random starts.
//   - MaxIter — iteration cap per run.
//   - Eps     — relative stress-decrease threshold that declares convergence.
//   - Init    — start strategy.
//   - SymTol  — tolerance of the symmetry check on the input.
type Options struct {
	Dim     int
	Seed    int64
	NInit   int
	MaxIter int
	Eps     float64
	Init    Init
	SymTol  float64
}

// DefaultOptions returns the reference configuration: 3 dimensions, seed 42,
// 4 random starts, 300 iterations, eps 1e-3.
func DefaultOptions() Options {
	return Options{
		Dim:     3,
		Seed:    42,
		NInit:   4,
		MaxIter: 300,
		Eps:     1e-3,
		Init:    InitRandom,
		SymTol:  1e-9,
	}
}

// Result is the outcome of a successful embedding.
type Result struct {
	// X holds one row per point, Dim columns.
	X *mat.Dense

	// Stress is the raw stress ½·Σ(‖x_i−x_j‖ − D[i,j])² of the winning run,
	// measured at its last iteration.
	Stress float64

	// Iterations is the number of iterations of the winning run.
	Iterations int
}
