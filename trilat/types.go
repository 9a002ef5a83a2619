package trilat

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

const (
	// WeightEpsilon stabilises inverse-distance weights when a distance is 0.
	WeightEpsilon = 1e-6

	// Dim is the dimensionality of the reconstructed space.
	Dim = 3

	// minOptimizeRefs is the smallest reference set that is optimized;
	// smaller sets go straight to the weighted centroid.
	minOptimizeRefs = 3
)

// ErrShape is returned when the distance matrix is not square.
var ErrShape = errors.New("trilat: distance matrix must be square")

// Placement records how one atom was positioned.
//
//   - PlacedOrigin    — atom 0, fixed at (0,0,0).
//   - PlacedAxis      — atom 1, at (D[0,1],0,0).
//   - PlacedPlane     — atom 2, law of cosines in the z=0 plane, y ≥ 0.
//   - PlacedOptimized — local least squares converged.
//   - PlacedCentroid  — too few references; weighted centroid of all prior atoms.
//   - PlacedFallback  — the optimizer did not converge; its initial guess was kept.
//   - PlacedRecovered — the placement step panicked; weighted centroid of all prior atoms.
type Placement int

const (
	PlacedOrigin Placement = iota
	PlacedAxis
	PlacedPlane
	PlacedOptimized
	PlacedCentroid
	PlacedFallback
	PlacedRecovered
)

// String provides a readable name for logs.
func (p Placement) String() string {
	switch p {
	case PlacedOrigin:
		return "origin"
	case PlacedAxis:
		return "axis"
	case PlacedPlane:
		return "plane"
	case PlacedOptimized:
		return "optimized"
	case PlacedCentroid:
		return "centroid"
	case PlacedFallback:
		return "fallback"
	case PlacedRecovered:
		return "recovered"
	default:
		return "unknown"
	}
}

// Options configures the per-atom local optimization.
//
// Fields:
//   - MaxIterations     — BFGS major-iteration cap; reaching it counts as
//     non-convergence. 0 leaves the cap to the optimizer's converger.
//   - GradientThreshold — infinity-norm of the gradient that declares convergence.
type Options struct {
	MaxIterations     int
	GradientThreshold float64
}

// DefaultOptions mirrors the usual quasi-Newton defaults for a 3-variable
// problem: 600 iterations, gradient threshold 1e-5.
func DefaultOptions() Options {
	return Options{
		MaxIterations:     600,
		GradientThreshold: 1e-5,
	}
}

// Result is the outcome of Embed.
type Result struct {
	// X holds one row per atom: n×3.
	X *mat.Dense

	// Placements[i] tells how atom i was positioned.
	Placements []Placement
}

// Degraded returns the indices of atoms whose placement fell back after an
// optimizer failure or a recovered panic, in ascending order.
func (r Result) Degraded() []int {
	var out []int
	for i, p := range r.Placements {
		if p == PlacedFallback || p == PlacedRecovered {
			out = append(out, i)
		}
	}

	return out
}
