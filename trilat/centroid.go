package trilat

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// WeightedCentroid returns the inverse-distance weighted centroid of the
// reference rows refs of x:
//
//	w_k = 1/(dist[k] + 1e-6),  normalised to Σw = 1
//	c   = Σ_k w_k · x[refs[k]]
//
// Closer references pull harder. dist[k] is the target distance to refs[k];
// len(dist) must equal len(refs). An empty reference set yields the origin.
//
// Complexity: O(len(refs)·cols).
func WeightedCentroid(x mat.Matrix, refs []int, dist []float64) []float64 {
	_, cols := x.Dims()
	c := make([]float64, cols)
	if len(refs) == 0 {
		return c
	}

	w := make([]float64, len(refs))
	for k, dk := range dist {
		w[k] = 1 / (dk + WeightEpsilon)
	}
	floats.Scale(1/floats.Sum(w), w)

	row := make([]float64, cols)
	for k, ref := range refs {
		mat.Row(row, ref, x)
		floats.AddScaled(c, w[k], row)
	}

	return c
}
