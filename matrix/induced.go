// SPDX-License-Identifier: MIT

// Package matrix - copy-based index selection on gonum matrices.
//
// Purpose:
//   - Materialise masked submatrices (Induced) and top-left blocks (Truncate)
//     as independent *mat.Dense values.
//   - Write a compact block of rows back into a padded layout (ScatterRows).
//   - Tolerate zero-sized results: gonum forbids 0×c allocations, so empty
//     results are returned as an empty (IsEmpty) *mat.Dense.
//
// Complexity quicksheet:
//   - Induced: O(r'*c'); Truncate: O(n²); ScatterRows: O(r*c); Zeros: O(r*c).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxInduce   = "Induced"
	ctxTruncate = "Truncate"
	ctxScatter  = "ScatterRows"
)

// Zeros returns an r×c zero matrix, or an empty *mat.Dense when r or c is zero.
// Complexity: O(r*c).
func Zeros(r, c int) *mat.Dense {
	if r <= 0 || c <= 0 {
		return &mat.Dense{}
	}

	return mat.NewDense(r, c, nil)
}

// Induced copies the submatrix of m selected by rowsIdx × colsIdx.
//
// Implementation:
//   - Stage 1: handle zero-sized result (legal, returns an empty Dense).
//   - Stage 2: bounds-check every index once.
//   - Stage 3: nested loops i→j copying m[rowsIdx[i], colsIdx[j]].
//
// Behavior highlights:
//   - Duplicates in index sets are allowed (repeated rows/cols in the result).
//   - The result never aliases m.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrOutOfRange when an index is outside bounds.
//
// Complexity:
//   - Time O(r'*c'), Space O(r'*c').
func Induced(m mat.Matrix, rowsIdx, colsIdx []int) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", ctxInduce, ErrNilMatrix)
	}
	r, c := m.Dims()
	for _, ri := range rowsIdx {
		if ri < 0 || ri >= r {
			return nil, fmt.Errorf("%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
	}
	for _, cj := range colsIdx {
		if cj < 0 || cj >= c {
			return nil, fmt.Errorf("%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
		}
	}

	res := Zeros(len(rowsIdx), len(colsIdx))
	if res.IsEmpty() {
		return res, nil
	}

	var i, j int
	for i = 0; i < len(rowsIdx); i++ {
		for j = 0; j < len(colsIdx); j++ {
			res.Set(i, j, m.At(rowsIdx[i], colsIdx[j]))
		}
	}

	return res, nil
}

// Truncate copies the top-left n×n block of a square-or-larger matrix m.
// Rows and columns beyond n are treated as padding and dropped.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrDimensionMismatch when n exceeds either dimension of m or n < 0.
//
// Complexity: O(n²).
func Truncate(m mat.Matrix, n int) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", ctxTruncate, ErrNilMatrix)
	}
	r, c := m.Dims()
	if n < 0 || n > r || n > c {
		return nil, fmt.Errorf("%s: %dx%d to %d: %w", ctxTruncate, r, c, n, ErrDimensionMismatch)
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return Induced(m, idx, idx)
}

// ScatterRows writes row i of src into row rowsIdx[i] of dst, for every i.
// Rows of dst not named in rowsIdx are left untouched.
//
// Errors:
//   - ErrNilMatrix when dst or src is nil.
//   - ErrDimensionMismatch when column counts differ or len(rowsIdx) != rows(src).
//   - ErrOutOfRange when a target row is outside dst.
//
// Complexity: O(len(rowsIdx)*cols).
func ScatterRows(dst *mat.Dense, src mat.Matrix, rowsIdx []int) error {
	if dst == nil || src == nil {
		return fmt.Errorf("%s: %w", ctxScatter, ErrNilMatrix)
	}
	if len(rowsIdx) == 0 {
		return nil
	}
	dr, dc := dst.Dims()
	sr, sc := src.Dims()
	if sc != dc || sr != len(rowsIdx) {
		return fmt.Errorf("%s: src %dx%d into %dx%d: %w", ctxScatter, sr, sc, dr, dc, ErrDimensionMismatch)
	}

	var i, j, ri int
	for i = 0; i < sr; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= dr {
			return fmt.Errorf("%s: row index %d: %w", ctxScatter, ri, ErrOutOfRange)
		}
		for j = 0; j < sc; j++ {
			dst.Set(ri, j, src.At(i, j))
		}
	}

	return nil
}
