package trilat_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/coulomb3d/trilat"
)

// benchDistances returns the distance matrix of n random points in a 10 Å box.
func benchDistances(n int) *mat.Dense {
	rng := rand.New(rand.NewSource(11))
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = []float64{rng.Float64() * 10, rng.Float64() * 10, rng.Float64() * 10}
	}
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d.Set(i, j, floats.Distance(pts[i], pts[j], 2))
		}
	}
	return d
}

func BenchmarkEmbed_29(b *testing.B) {
	d := benchDistances(29)
	opts := trilat.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = trilat.Embed(d, opts)
	}
}

func BenchmarkWeightedCentroid(b *testing.B) {
	d := benchDistances(29)
	refs := []int{0, 1, 2, 3, 4, 5, 6, 7}
	dist := mat.Row(nil, 8, d)[:len(refs)]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = trilat.WeightedCentroid(d, refs, dist)
	}
}
