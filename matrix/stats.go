// SPDX-License-Identifier: MIT
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const ctxCenterColumns = "CenterColumns"

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate x (non-nil); zero-size input gives an empty copy.
//   - Stage 2: Compute column means with stat.Mean in column order.
//   - Stage 3: Broadcast-subtract the means into a fresh copy.
//
// Returns:
//   - *mat.Dense: centered copy (r×c).
//   - []float64: column means (len=c), to un-center later.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func CenterColumns(x mat.Matrix) (*mat.Dense, []float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ctxCenterColumns, err)
	}
	r, c := x.Dims()
	means := make([]float64, c)
	out := Zeros(r, c)
	if r == 0 || c == 0 {
		return out, means, nil
	}

	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, x)
		means[j] = stat.Mean(col, nil)
		floats.AddConst(-means[j], col)
		out.SetCol(j, col)
	}

	return out, means, nil
}
