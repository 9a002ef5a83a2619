package reconstruct

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/coulomb3d/matrix"
)

// Batch reconstructs every molecule k from (cs[k], zs[k]) and returns one
// coordinate array per charge vector, in input order.
//
// Behavior highlights:
//   - Molecules are independent; results never depend on their neighbours.
//   - A Coulomb matrix larger than len(zs[k]) is truncated to its top-left
//     block; the extra rows and columns are padding.
//   - Batch never fails. A molecule that cannot be reconstructed (missing,
//     too small or malformed matrix) yields a len(zs[k])×3 zero array and a
//     warning.
//   - Unless WithVerbose(false), an Info entry is logged before every
//     ProgressEvery-th molecule.
//
// Complexity: the sum of the per-molecule costs.
func Batch(cs []mat.Matrix, zs [][]float64, opts ...Option) []*mat.Dense {
	o := gatherOptions(opts...)
	out := make([]*mat.Dense, len(zs))
	for k, z := range zs {
		if o.verbose && (k+1)%o.progressEvery == 0 {
			o.logger.Info("processing molecule",
				zap.Int("molecule", k+1),
				zap.Int("total", len(zs)),
			)
		}

		log := o.logger.With(zap.Int("molecule", k))
		var c mat.Matrix
		if k < len(cs) {
			c = cs[k]
		}
		r, err := batchOne(c, z, o, log)
		if err != nil {
			log.Warn("molecule skipped, emitting zero coordinates",
				zap.Int("atoms", len(z)),
				zap.Error(err),
			)
			r = matrix.Zeros(len(z), Dim)
		}
		out[k] = r
	}

	return out
}

// ScalarCharge wraps a single charge into a one-atom charge vector.
func ScalarCharge(z float64) []float64 {
	return []float64{z}
}

// batchOne truncates c to the charge count and reconstructs one molecule.
func batchOne(c mat.Matrix, z []float64, o Options, log *zap.Logger) (*mat.Dense, error) {
	if c == nil {
		return nil, matrix.ErrNilMatrix
	}
	if r, _ := c.Dims(); r != len(z) {
		t, err := matrix.Truncate(c, len(z))
		if err != nil {
			return nil, err
		}
		c = t
	}

	return fromCoulomb(c, z, o, log)
}
