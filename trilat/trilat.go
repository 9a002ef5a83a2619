package trilat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/coulomb3d/matrix"
)

// Embed reconstructs n×3 coordinates from the n×n distance matrix d by
// incremental trilateration.
//
// Only the upper-left triangle up to each atom is read: atom i uses D[i,k]
// for k < i. Atoms are placed in index order and never revisited.
//
// Steps:
//  1. Validate that d is square (ErrShape otherwise).
//  2. Place atoms 0, 1 and 2 analytically.
//  3. For every later atom choose references, then optimize or take the
//     weighted centroid; see placeAtom.
//
// Edge cases:
//   - n == 0 → empty matrix, no error.
//   - Non-finite distances never abort the run; affected atoms are reported
//     through Result.Placements.
//
// Complexity: O(n²) plus one small BFGS solve per atom beyond the fourth.
func Embed(d mat.Matrix, opts Options) (Result, error) {
	n, err := matrix.ValidateSquare(d)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrShape, err)
	}

	x := matrix.Zeros(n, Dim)
	placements := make([]Placement, n)
	if n == 0 {
		return Result{X: x, Placements: placements}, nil
	}

	placements[0] = PlacedOrigin
	if n > 1 {
		x.Set(1, 0, d.At(0, 1))
		placements[1] = PlacedAxis
	}
	if n > 2 {
		d02 := d.At(0, 2)
		cos, sin := LawOfCosines(d.At(0, 1), d02, d.At(1, 2))
		x.Set(2, 0, d02*cos)
		x.Set(2, 1, d02*sin)
		placements[2] = PlacedPlane
	}
	for i := 3; i < n; i++ {
		placements[i] = placeAtom(x, d, i, opts)
	}

	return Result{X: x, Placements: placements}, nil
}

// LawOfCosines returns the cosine and non-negative sine of the angle at the
// origin between the directions to atoms 1 and 2:
//
//	cos = (d01² + d02² − d12²) / (2·d01·d02), clamped to [-1, 1]
//	sin = √(1 − cos²)
//
// Inconsistent triangles clamp instead of producing NaN. A zero or
// non-finite denominator yields cos = 1, placing atom 2 on the x-axis.
func LawOfCosines(d01, d02, d12 float64) (cos, sin float64) {
	den := 2 * d01 * d02
	if den != 0 {
		cos = (d01*d01 + d02*d02 - d12*d12) / den
	}
	if den == 0 || math.IsNaN(cos) {
		cos = 1
	}
	cos = math.Max(-1, math.Min(1, cos))
	sin = math.Sqrt(math.Max(0, 1-cos*cos))

	return cos, sin
}

// References returns the already-placed atoms used to position atom i:
// {0,1,2} for i > 3, {0,1} for i == 3, and the prior atoms otherwise.
func References(i int) []int {
	switch {
	case i > 3:
		return []int{0, 1, 2}
	case i == 3:
		return []int{0, 1}
	default:
		return priorAtoms(i)
	}
}

// placeAtom writes row i of x and reports how it was placed. Any panic in
// the step is recovered into the weighted centroid of all prior atoms.
func placeAtom(x *mat.Dense, d mat.Matrix, i int, opts Options) (p Placement) {
	defer func() {
		if r := recover(); r != nil {
			prior := priorAtoms(i)
			x.SetRow(i, WeightedCentroid(x, prior, targetDistances(d, i, prior)))
			p = PlacedRecovered
		}
	}()

	refs := References(i)
	if len(refs) < minOptimizeRefs {
		prior := priorAtoms(i)
		x.SetRow(i, WeightedCentroid(x, prior, targetDistances(d, i, prior)))
		return PlacedCentroid
	}

	dist := targetDistances(d, i, refs)
	guess := WeightedCentroid(x, refs, dist)
	pos, ok := solveLocal(x, refs, dist, guess, opts)
	if !ok {
		x.SetRow(i, guess)
		return PlacedFallback
	}
	x.SetRow(i, pos)

	return PlacedOptimized
}

// solveLocal minimizes Σ_k (‖p − x[refs[k]]‖ − dist[k])² with BFGS from guess.
// ok is false when the inputs are not finite, when the optimizer errors or
// stops early, and when the reported optimum is not finite.
func solveLocal(x mat.Matrix, refs []int, dist, guess []float64, opts Options) (pos []float64, ok bool) {
	if !allFinite(dist) || !allFinite(guess) {
		return nil, false
	}

	anchors := make([][]float64, len(refs))
	for k, ref := range refs {
		anchors[k] = mat.Row(nil, ref, x)
	}

	diff := make([]float64, Dim)
	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			var f float64
			for k, a := range anchors {
				r := floats.Distance(p, a, 2) - dist[k]
				f += r * r
			}
			return f
		},
		Grad: func(grad, p []float64) {
			for j := range grad {
				grad[j] = 0
			}
			for k, a := range anchors {
				floats.SubTo(diff, p, a)
				norm := floats.Norm(diff, 2)
				if norm == 0 {
					continue
				}
				floats.AddScaled(grad, 2*(norm-dist[k])/norm, diff)
			}
		},
	}

	settings := &optimize.Settings{
		GradientThreshold: opts.GradientThreshold,
		MajorIterations:   opts.MaxIterations,
	}
	res, err := optimize.Minimize(problem, append([]float64(nil), guess...), settings, &optimize.BFGS{})
	if err != nil || res == nil || res.Status.Early() {
		return nil, false
	}
	if !allFinite(res.X) || math.IsNaN(res.F) || math.IsInf(res.F, 0) {
		return nil, false
	}

	return res.X, true
}

func allFinite(v []float64) bool {
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}

	return true
}

// priorAtoms returns 0..i-1.
func priorAtoms(i int) []int {
	out := make([]int, i)
	for k := range out {
		out[k] = k
	}

	return out
}

// targetDistances returns D[i, refs[k]] for every reference.
func targetDistances(d mat.Matrix, i int, refs []int) []float64 {
	out := make([]float64, len(refs))
	for k, ref := range refs {
		out[k] = d.At(i, ref)
	}

	return out
}
