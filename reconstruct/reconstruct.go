package reconstruct

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/coulomb3d/coulomb"
	"github.com/katalvlaran/coulomb3d/matrix"
	"github.com/katalvlaran/coulomb3d/mds"
	"github.com/katalvlaran/coulomb3d/trilat"
)

// MDS recovers distances from (c, z) and embeds them by metric MDS.
// No validity mask is applied: every slot is treated as an atom.
//
// Errors:
//   - coulomb.ErrShape for inconsistent c and z.
//   - any mds error (ErrTooFewPoints, ErrBadDissimilarity, ErrNotConverged);
//     callers are expected to fall back to Simple.
func MDS(c mat.Matrix, z []float64, opts mds.Options) (*mat.Dense, error) {
	d, err := coulomb.Distances(c, z)
	if err != nil {
		return nil, fmt.Errorf("MDS: %w", err)
	}
	res, err := mds.Embed(d, opts)
	if err != nil {
		return nil, fmt.Errorf("MDS: %w", err)
	}

	return res.X, nil
}

// Simple recovers distances from (c, z) and places atoms by incremental
// trilateration. No validity mask is applied.
//
// Numeric trouble never errors; atoms whose local solve fails are placed by
// the weighted-centroid heuristic. The only error is coulomb.ErrShape.
func Simple(c mat.Matrix, z []float64, opts trilat.Options) (*mat.Dense, error) {
	d, err := coulomb.Distances(c, z)
	if err != nil {
		return nil, fmt.Errorf("Simple: %w", err)
	}
	res, err := trilat.Embed(d, opts)
	if err != nil {
		return nil, fmt.Errorf("Simple: %w", err)
	}

	return res.X, nil
}

// FromCoulomb reconstructs n×3 coordinates for one possibly padded molecule.
//
// Steps:
//  1. Atoms with Z ≤ 0 are padding. With no real atom the result is n×3 zeros.
//  2. C and Z are restricted to the real atoms (rows and columns).
//  3. MethodMDS tries MDS first and, on any error, logs a warning and uses
//     trilateration; MethodSimple uses trilateration directly.
//  4. Coordinates are scattered back; padding rows stay exactly zero.
//
// Errors: coulomb.ErrShape when c is not square or len(z) differs from its
// order. Embedding failures are never returned.
//
// Complexity: O(n²) plus the chosen embedding.
func FromCoulomb(c mat.Matrix, z []float64, opts ...Option) (*mat.Dense, error) {
	o := gatherOptions(opts...)

	return fromCoulomb(c, z, o, o.logger)
}

// fromCoulomb is FromCoulomb with resolved options and a scoped logger.
func fromCoulomb(c mat.Matrix, z []float64, o Options, log *zap.Logger) (*mat.Dense, error) {
	n, err := coulomb.Order(c, z)
	if err != nil {
		return nil, fmt.Errorf("FromCoulomb: %w", err)
	}
	out := matrix.Zeros(n, Dim)

	idx := coulomb.ValidIndices(z)
	if len(idx) == 0 {
		return out, nil
	}
	cv, err := matrix.Induced(c, idx, idx)
	if err != nil {
		return nil, fmt.Errorf("FromCoulomb: %w", err)
	}
	d, err := coulomb.Distances(cv, coulomb.Select(z, idx))
	if err != nil {
		return nil, fmt.Errorf("FromCoulomb: %w", err)
	}

	x, err := embed(d, o, log)
	if err != nil {
		return nil, fmt.Errorf("FromCoulomb: %w", err)
	}
	if err = matrix.ScatterRows(out, x, idx); err != nil {
		return nil, fmt.Errorf("FromCoulomb: %w", err)
	}

	return out, nil
}

// embed dispatches on the method. MDS failure is a warning, not an error.
// A single atom needs no embedding and goes straight to trilateration.
func embed(d *mat.Dense, o Options, log *zap.Logger) (*mat.Dense, error) {
	n, _ := d.Dims()
	if o.method == MethodMDS && n >= minMDSAtoms {
		res, err := mds.Embed(d, o.mds)
		if err == nil {
			return res.X, nil
		}
		log.Warn("mds embedding failed, falling back to trilateration",
			zap.Int("atoms", n),
			zap.Error(err),
		)
	}

	res, err := trilat.Embed(d, o.trilat)
	if err != nil {
		return nil, err
	}
	if degraded := res.Degraded(); len(degraded) > 0 {
		log.Debug("trilateration used centroid fallback",
			zap.Int("atoms", n),
			zap.Ints("degraded", degraded),
		)
	}

	return res.X, nil
}
