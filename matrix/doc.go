// Package matrix holds the shared numeric guards and index-selection helpers
// used across coulomb3d on top of gonum matrices.
//
// The matrix package provides:
//
//   - Validators (ValidateSquare, ValidateSymmetric, ValidateFinite,
//     ValidateNonNegative, ValidateDissimilarity, ValidateVecLen) returning
//     tagged sentinel errors that callers match with errors.Is.
//   - Copy-based selection (Induced, Truncate) to restrict a Coulomb matrix to
//     its valid atoms or to drop padding rows/columns.
//   - ScatterRows to write a compact coordinate block back into a padded n×3
//     layout, leaving padding rows at zero.
//   - CenterColumns for coordinate centering of reconstructed geometries.
//
// All helpers are deterministic and never alias their inputs.
package matrix
