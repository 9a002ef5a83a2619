package coulomb

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/coulomb3d/matrix"
)

// Encode builds the Coulomb matrix of a molecule from its n×3 coordinates r
// and charges z:
//
//	C[i,i] = 0.5 · Z[i]^2.4
//	C[i,j] = Z[i]·Z[j] / |R_i − R_j|
//
// Coincident atoms (zero distance) encode as 0, which Distances maps back to
// FallbackDistance. Padding slots (Z ≤ 0) encode a zero row and column.
//
// Errors: ErrCoordinates when r is not n×3 with n == len(z).
// Complexity: O(n²).
func Encode(r mat.Matrix, z []float64) (*mat.Dense, error) {
	n := len(z)
	if r == nil {
		if n == 0 {
			return matrix.Zeros(0, 0), nil
		}
		return nil, fmt.Errorf("Encode: nil coordinates: %w", ErrCoordinates)
	}
	rows, cols := r.Dims()
	if rows != n || (n > 0 && cols != 3) {
		return nil, fmt.Errorf("Encode: %dx%d for %d charges: %w", rows, cols, n, ErrCoordinates)
	}
	c := matrix.Zeros(n, n)

	var (
		i, j int
		dist float64
	)
	for i = 0; i < n; i++ {
		if z[i] <= 0 {
			continue
		}
		c.Set(i, i, DiagonalScale*math.Pow(z[i], DiagonalExponent))
		for j = i + 1; j < n; j++ {
			if z[j] <= 0 {
				continue
			}
			dist = math.Sqrt(sqDist(r, i, j))
			if dist == 0 {
				continue
			}
			c.Set(i, j, z[i]*z[j]/dist)
			c.Set(j, i, z[i]*z[j]/dist)
		}
	}

	return c, nil
}

// sqDist is the squared Euclidean distance between rows i and j of r.
func sqDist(r mat.Matrix, i, j int) float64 {
	var s, d float64
	for k := 0; k < 3; k++ {
		d = r.At(i, k) - r.At(j, k)
		s += d * d
	}

	return s
}
