package mds

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/coulomb3d/matrix"
)

// zeroDistanceFloor replaces zero current distances in the Guttman ratio step.
const zeroDistanceFloor = 1e-5

// Embed maps a precomputed dissimilarity matrix d (n×n) to n points in
// opts.Dim dimensions by metric stress minimization (SMACOF).
//
// Algorithm Outline (one run):
//  1. Start from X0 (seeded uniform, or classical scaling).
//  2. Repeat up to MaxIter times:
//     δ_ij = ‖x_i − x_j‖,  stress = ½·Σ(δ_ij − d_ij)²
//     B_ij = −d_ij/δ_ij (i≠j, δ floored at 1e-5),  B_ii = −Σ_{j≠i} B_ij
//     X ← B·X / n                                   (Guttman transform)
//     stop when  prev − stress/Σ_i‖x_i‖ < Eps.
//
// With InitRandom, NInit runs are made from streams derived from Seed and the
// converged run with the lowest stress is returned. Identical inputs and
// options always give identical output.
//
// Errors:
//   - ErrBadOptions       — invalid options.
//   - ErrBadDissimilarity — non-square, non-finite, negative or asymmetric d.
//   - ErrTooFewPoints     — n < 2.
//   - ErrNotConverged     — no run converged to a finite configuration.
//
// Complexity: O(NInit · MaxIter · n²·Dim) time, O(n²) memory.
func Embed(d mat.Matrix, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, fmt.Errorf("Embed: %w", err)
	}
	if err := matrix.ValidateDissimilarity(d, opts.SymTol); err != nil {
		return Result{}, fmt.Errorf("Embed: %w: %w", ErrBadDissimilarity, err)
	}
	n, _ := d.Dims()
	if n < 2 {
		return Result{}, fmt.Errorf("Embed: n=%d: %w", n, ErrTooFewPoints)
	}
	dis := mat.DenseCopyOf(d)

	var starts []*mat.Dense
	switch opts.Init {
	case InitClassical:
		x0, err := classicalStart(dis, opts.Dim)
		if err != nil {
			return Result{}, fmt.Errorf("Embed: %w", err)
		}
		starts = []*mat.Dense{x0}
	default:
		base := rngFromSeed(opts.Seed)
		starts = make([]*mat.Dense, opts.NInit)
		for k := range starts {
			starts[k] = uniformStart(deriveRNG(base, uint64(k)), n, opts.Dim)
		}
	}

	var (
		best  Result
		found bool
	)
	for _, x0 := range starts {
		res, ok := smacof(dis, x0, opts.MaxIter, opts.Eps)
		if !ok {
			continue
		}
		if !found || res.Stress < best.Stress {
			best, found = res, true
		}
	}
	if !found {
		return Result{}, fmt.Errorf("Embed: %d run(s) of %d iterations: %w", len(starts), opts.MaxIter, ErrNotConverged)
	}

	return best, nil
}

// smacof performs one stress-majorization run from x0 (which it overwrites).
// ok is false when the run hit maxIter or produced a non-finite configuration.
func smacof(dis *mat.Dense, x0 *mat.Dense, maxIter int, eps float64) (res Result, ok bool) {
	n, dim := x0.Dims()
	var (
		x       = x0
		next    = mat.NewDense(n, dim, nil)
		b       = mat.NewDense(n, n, nil)
		cur     = mat.NewDense(n, n, nil)
		stress  float64
		prev    float64
		hasPrev bool
		norm    float64
		it      int
	)
	for it = 0; it < maxIter; it++ {
		stress = pairwiseStress(x, dis, cur)
		guttman(b, cur, dis)
		next.Mul(b, x)
		next.Scale(1/float64(n), next)
		x, next = next, x

		if math.IsNaN(stress) || math.IsInf(stress, 0) || !allFinite(x) {
			return Result{X: x, Stress: stress, Iterations: it + 1}, false
		}
		norm = rowNormSum(x)
		if norm == 0 {
			// Collapsed configuration: only a perfect fit counts.
			return Result{X: x, Stress: stress, Iterations: it + 1}, stress == 0
		}
		if hasPrev && prev-stress/norm < eps {
			return Result{X: x, Stress: stress, Iterations: it + 1}, true
		}
		prev, hasPrev = stress/norm, true
	}

	return Result{X: x, Stress: stress, Iterations: it}, false
}

// pairwiseStress fills cur with the current pairwise distances of x and
// returns the raw stress against dis.
func pairwiseStress(x, dis, cur *mat.Dense) float64 {
	n, dim := x.Dims()
	var (
		i, j, k int
		s, diff float64
		delta   float64
		stress  float64
	)
	for i = 0; i < n; i++ {
		cur.Set(i, i, 0)
		for j = i + 1; j < n; j++ {
			s = 0
			for k = 0; k < dim; k++ {
				diff = x.At(i, k) - x.At(j, k)
				s += diff * diff
			}
			delta = math.Sqrt(s)
			cur.Set(i, j, delta)
			cur.Set(j, i, delta)
			diff = delta - dis.At(i, j)
			stress += diff * diff
		}
	}

	// Unordered pairs once, i.e. ½ of the ordered-pair sum.
	return stress
}

// guttman fills b with the Guttman transform matrix B(X).
func guttman(b, cur, dis *mat.Dense) {
	n, _ := b.Dims()
	var (
		i, j        int
		delta, rsum float64
		ratio       float64
	)
	for i = 0; i < n; i++ {
		rsum = 0
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			delta = cur.At(i, j)
			if delta == 0 {
				delta = zeroDistanceFloor
			}
			ratio = dis.At(i, j) / delta
			b.Set(i, j, -ratio)
			rsum += ratio
		}
		b.Set(i, i, rsum)
	}
}

// rowNormSum returns Σ_i ‖x_i‖.
func rowNormSum(x *mat.Dense) float64 {
	n, _ := x.Dims()
	var sum float64
	for i := 0; i < n; i++ {
		sum += floats.Norm(x.RawRowView(i), 2)
	}

	return sum
}

// allFinite reports whether every entry of x is finite.
func allFinite(x *mat.Dense) bool {
	return matrix.ValidateFinite(x) == nil
}

// validateOptions rejects nonsensical option values.
func validateOptions(o Options) error {
	switch {
	case o.Dim < 1:
		return fmt.Errorf("Dim=%d: %w", o.Dim, ErrBadOptions)
	case o.MaxIter < 1:
		return fmt.Errorf("MaxIter=%d: %w", o.MaxIter, ErrBadOptions)
	case o.Init == InitRandom && o.NInit < 1:
		return fmt.Errorf("NInit=%d: %w", o.NInit, ErrBadOptions)
	case o.Init != InitRandom && o.Init != InitClassical:
		return fmt.Errorf("Init=%d: %w", o.Init, ErrBadOptions)
	case math.IsNaN(o.Eps) || o.Eps < 0:
		return fmt.Errorf("Eps=%g: %w", o.Eps, ErrBadOptions)
	}

	return nil
}
