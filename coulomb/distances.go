package coulomb

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/coulomb3d/matrix"
)

// Distances inverts a Coulomb matrix into a pairwise Euclidean distance matrix.
//
// For i≠j:
//
//	D[i,j] = Z[i]·Z[j] / C[i,j]   if C[i,j] > DistanceFloor
//	D[i,j] = FallbackDistance     otherwise
//
// and D[i,i] = 0. Each entry is derived from C[i,j] alone, so a symmetric C
// yields a symmetric D.
//
// Numeric degeneracy never errors. The only failures are structural:
// ErrShape when c is not square or len(z) differs from its order.
//
// Complexity: O(n²) time and memory.
func Distances(c mat.Matrix, z []float64) (*mat.Dense, error) {
	n, err := Order(c, z)
	if err != nil {
		return nil, fmt.Errorf("Distances: %w", err)
	}
	d := matrix.Zeros(n, n)

	var (
		i, j int
		cij  float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			cij = c.At(i, j)
			if cij > DistanceFloor {
				d.Set(i, j, z[i]*z[j]/cij)
			} else {
				d.Set(i, j, FallbackDistance)
			}
		}
	}

	return d, nil
}

// Order validates C against Z and returns the molecule size n.
// A nil C with no charges is the empty molecule (n = 0).
func Order(c mat.Matrix, z []float64) (int, error) {
	if c == nil {
		if len(z) == 0 {
			return 0, nil
		}
		return 0, fmt.Errorf("nil matrix for %d charges: %w", len(z), ErrShape)
	}
	n, err := matrix.ValidateSquare(c)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, ErrShape)
	}
	if err = matrix.ValidateVecLen(z, n); err != nil {
		return 0, fmt.Errorf("%d charges for order %d: %w", len(z), n, ErrShape)
	}

	return n, nil
}
