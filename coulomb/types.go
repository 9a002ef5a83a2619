package coulomb

import "errors"

const (
	// DistanceFloor is the smallest Coulomb entry that is still inverted.
	// Entries at or below it recover to FallbackDistance.
	DistanceFloor = 1e-10

	// FallbackDistance is assigned to pairs whose Coulomb entry vanishes:
	// "unknown, treat as moderately far".
	FallbackDistance = 10.0

	// DiagonalExponent and DiagonalScale define the self-interaction term
	// C[i,i] = DiagonalScale · Z[i]^DiagonalExponent used by Encode.
	DiagonalExponent = 2.4
	DiagonalScale    = 0.5
)

var (
	// ErrShape is returned when the Coulomb matrix is not square or when the
	// charge vector length differs from its order.
	ErrShape = errors.New("coulomb: inconsistent matrix/charge shape")

	// ErrCoordinates is returned by Encode when the coordinate array is not n×3.
	ErrCoordinates = errors.New("coulomb: coordinates must be n×3")
)
