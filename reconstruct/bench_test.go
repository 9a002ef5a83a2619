package reconstruct_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/coulomb3d/coulomb"
	"github.com/katalvlaran/coulomb3d/reconstruct"
)

// benchBatch builds m random padded molecules of up to n atoms.
func benchBatch(b *testing.B, m, n int) ([]mat.Matrix, [][]float64) {
	b.Helper()
	rng := rand.New(rand.NewSource(3))
	cs := make([]mat.Matrix, m)
	zs := make([][]float64, m)
	for k := range cs {
		r := mat.NewDense(n, 3, nil)
		z := make([]float64, n)
		atoms := 2 + rng.Intn(n-1)
		for i := 0; i < atoms; i++ {
			z[i] = float64(1 + rng.Intn(8))
			r.SetRow(i, []float64{rng.Float64() * 6, rng.Float64() * 6, rng.Float64() * 6})
		}
		c, err := coulomb.Encode(r, z)
		if err != nil {
			b.Fatal(err)
		}
		cs[k], zs[k] = c, z
	}
	return cs, zs
}

func BenchmarkBatch_Simple(b *testing.B) {
	cs, zs := benchBatch(b, 32, 23)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = reconstruct.Batch(cs, zs, reconstruct.WithMethod(reconstruct.MethodSimple))
	}
}

func BenchmarkBatch_MDS(b *testing.B) {
	cs, zs := benchBatch(b, 8, 23)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = reconstruct.Batch(cs, zs, reconstruct.WithMethod(reconstruct.MethodMDS))
	}
}
