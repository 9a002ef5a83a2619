package align

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/coulomb3d/matrix"
)

var (
	// ErrShape is returned when two coordinate arrays, or coordinates and a
	// distance matrix, disagree in size.
	ErrShape = errors.New("align: shape mismatch")

	// ErrFactorization is returned when the SVD of the covariance fails.
	ErrFactorization = errors.New("align: singular value decomposition failed")
)

// Center returns a translated copy of x whose rows have zero mean, and the
// subtracted centroid. x must be non-nil.
func Center(x mat.Matrix) (*mat.Dense, []float64) {
	out, centroid, _ := matrix.CenterColumns(x)

	return out, centroid
}

// PairwiseDistances returns the n×n Euclidean distance matrix of the rows of x.
// Complexity: O(n²·k).
func PairwiseDistances(x mat.Matrix) *mat.Dense {
	n, _ := x.Dims()
	d := matrix.Zeros(n, n)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = mat.Row(nil, i, x)
	}

	var (
		i, j int
		dij  float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dij = floats.Distance(rows[i], rows[j], 2)
			d.Set(i, j, dij)
			d.Set(j, i, dij)
		}
	}

	return d
}

// DistanceRMSD compares the pairwise distances of x with the target matrix d:
//
//	sqrt( mean_{i<j} (‖x_i − x_j‖ − d_ij)² )
//
// It is invariant under rotation, translation and reflection of x, so it
// scores a reconstruction without aligning it. Fewer than two rows give 0.
//
// Errors: ErrShape when d is not n×n for n rows of x.
func DistanceRMSD(x, d mat.Matrix) (float64, error) {
	n, _ := x.Dims()
	if r, c := d.Dims(); r != n || c != n {
		return 0, fmt.Errorf("DistanceRMSD: %d rows against %dx%d: %w", n, r, c, ErrShape)
	}
	if n < 2 {
		return 0, nil
	}

	got := PairwiseDistances(x)
	var (
		i, j  int
		diff  float64
		sum   float64
		pairs int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			diff = got.At(i, j) - d.At(i, j)
			sum += diff * diff
			pairs++
		}
	}

	return math.Sqrt(sum / float64(pairs)), nil
}

// RMSD is the root-mean-square row displacement between a and b, without
// any alignment. Empty inputs give 0.
//
// Errors: ErrShape, wrapping matrix.ErrNilMatrix or
// matrix.ErrDimensionMismatch, when a or b is nil or the dimensions differ.
func RMSD(a, b mat.Matrix) (float64, error) {
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return 0, fmt.Errorf("RMSD: %w: %w", ErrShape, err)
	}
	ar, ac := a.Dims()
	if ar == 0 {
		return 0, nil
	}

	var sum float64
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			diff := a.At(i, j) - b.At(i, j)
			sum += diff * diff
		}
	}

	return math.Sqrt(sum / float64(ar)), nil
}

// Superpose rigidly moves mobile onto target (Kabsch) and returns the moved
// copy together with the RMSD after superposition.
//
// Algorithm:
//  1. Center both arrays.
//  2. H = Pᵀ·Q, factorize H = U·Σ·Vᵀ.
//  3. R = V·Uᵀ. Without allowReflection, a negative det(R) flips the sign of
//     the last singular direction so R is a proper rotation.
//  4. mobile' = P·Rᵀ + centroid(target).
//
// Reconstructions from distances are defined only up to reflection, so
// allowReflection is the usual choice when scoring them.
//
// Errors: ErrShape for differing dimensions, ErrFactorization when the SVD fails.
// Complexity: O(n·k²) plus one k×k SVD.
func Superpose(mobile, target mat.Matrix, allowReflection bool) (*mat.Dense, float64, error) {
	mr, mc := mobile.Dims()
	tr, tc := target.Dims()
	if mr != tr || mc != tc {
		return nil, 0, fmt.Errorf("Superpose: %dx%d onto %dx%d: %w", mr, mc, tr, tc, ErrShape)
	}
	if mr == 0 || mc == 0 {
		return matrix.Zeros(mr, mc), 0, nil
	}

	p, _ := Center(mobile)
	q, centroid := Center(target)

	var h mat.Dense
	h.Mul(p.T(), q)

	var svd mat.SVD
	if ok := svd.Factorize(&h, mat.SVDFull); !ok {
		return nil, 0, fmt.Errorf("Superpose: %w", ErrFactorization)
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	var rot mat.Dense
	rot.Mul(&v, u.T())
	if !allowReflection && mat.Det(&rot) < 0 {
		for i := 0; i < mc; i++ {
			v.Set(i, mc-1, -v.At(i, mc-1))
		}
		rot.Mul(&v, u.T())
	}

	moved := mat.NewDense(mr, mc, nil)
	moved.Mul(p, rot.T())
	for i := 0; i < mr; i++ {
		floats.Add(moved.RawRowView(i), centroid)
	}

	rmsd, err := RMSD(moved, target)
	if err != nil {
		return nil, 0, fmt.Errorf("Superpose: %w", err)
	}

	return moved, rmsd, nil
}
