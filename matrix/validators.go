// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the structural and numeric
//    checks shared by distance recovery, MDS and trilateration.
//  - Keep kernels minimal by delegating shape/nil/symmetry/finiteness checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m mat.Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square, and returns its order.
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if Rows != Cols.
// Complexity: O(1).
func ValidateSquare(m mat.Matrix) (int, error) {
	if m == nil {
		return 0, validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	r, c := m.Dims()
	if r != c {
		return 0, validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return r, nil
}

// ValidateSameShape ensures a and b are non-nil with identical dimensions.
//
// Errors: ErrNilMatrix if either is nil, ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateSameShape(a, b mat.Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
//
// A nil vector is accepted only when n == 0.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks that m is square and symmetric within tolerance tol:
// |m[i,j] - m[j,i]| ≤ tol for all i<j.
//
// Implementation:
//   - Stage 1: structural checks (nil, square) and tolerance sanity.
//   - Stage 2: scan the strict upper triangle, fail fast on the first violation.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (Stage 1).
//   - ErrNaNInf when tol is not finite (Stage 1).
//   - ErrAsymmetry on violation (Stage 2).
//
// Complexity:
//   - Time O(n²), Space O(1).
//
// Notes:
//   - A negative tol is used by its absolute value.
//   - NaN entries never compare within tolerance, so they surface as ErrAsymmetry;
//     run ValidateFinite first when the distinction matters.
func ValidateSymmetric(m mat.Matrix, tol float64) error {
	n, err := ValidateSquare(m)
	if err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			// !(diff <= tol) also rejects NaN.
			if !(math.Abs(m.At(i, j)-m.At(j, i)) <= tol) {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf entry of m.
//
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(r*c).
func ValidateFinite(m mat.Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateFinite", ErrNilMatrix)
	}
	r, c := m.Dims()

	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateNonNegative rejects any entry of m below zero.
//
// Errors: ErrNilMatrix, ErrNegative.
// Complexity: O(r*c).
func ValidateNonNegative(m mat.Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNonNegative", ErrNilMatrix)
	}
	r, c := m.Dims()

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if m.At(i, j) < 0 {
				return validatorErrorf("ValidateNonNegative", ErrNegative)
			}
		}
	}

	return nil
}

// ValidateDissimilarity is the composite check used before metric embeddings:
// Square → Finite → NonNegative → Symmetric(tol).
//
// Errors: any sentinel of the composed validators, in that priority.
// Complexity: O(n²).
func ValidateDissimilarity(m mat.Matrix, tol float64) error {
	if _, err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateDissimilarity", err)
	}
	if err := ValidateFinite(m); err != nil {
		return validatorErrorf("ValidateDissimilarity", err)
	}
	if err := ValidateNonNegative(m); err != nil {
		return validatorErrorf("ValidateDissimilarity", err)
	}
	if err := ValidateSymmetric(m, tol); err != nil {
		return validatorErrorf("ValidateDissimilarity", err)
	}

	return nil
}
