package mds

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/coulomb3d/matrix"
)

// Stress returns the raw stress ½·Σ_{i≠j}(‖x_i − x_j‖ − d_ij)² of the
// configuration x (n×k) against the dissimilarity matrix d (n×n).
// Each unordered pair contributes once.
//
// Errors:
//   - ErrBadDissimilarity — d is not a valid dissimilarity matrix.
//   - matrix.ErrDimensionMismatch — x does not have one row per point of d.
func Stress(x, d mat.Matrix, symTol float64) (float64, error) {
	if err := matrix.ValidateDissimilarity(d, symTol); err != nil {
		return 0, fmt.Errorf("Stress: %w: %w", ErrBadDissimilarity, err)
	}
	n, _ := d.Dims()
	if r, _ := x.Dims(); r != n {
		return 0, fmt.Errorf("Stress: x has %d rows, d is %d×%d: %w", r, n, n, matrix.ErrDimensionMismatch)
	}
	if n == 0 {
		return 0, nil
	}

	cur := mat.NewDense(n, n, nil)

	return pairwiseStress(mat.DenseCopyOf(x), mat.DenseCopyOf(d), cur), nil
}
