package align_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/coulomb3d/align"
	"github.com/katalvlaran/coulomb3d/matrix"
)

// chiral is a non-planar, asymmetric 4-point configuration.
func chiral() *mat.Dense {
	return mat.NewDense(4, 3, []float64{
		0, 0, 0,
		1.5, 0, 0,
		0, 1.1, 0,
		0.3, 0.2, 0.9,
	})
}

// rotateZ rotates the rows of x by theta around z and then translates them.
func rotateZ(x *mat.Dense, theta float64, shift []float64) *mat.Dense {
	c, s := math.Cos(theta), math.Sin(theta)
	n, _ := x.Dims()
	out := mat.NewDense(n, 3, nil)
	for i := 0; i < n; i++ {
		px, py, pz := x.At(i, 0), x.At(i, 1), x.At(i, 2)
		out.SetRow(i, []float64{c*px - s*py + shift[0], s*px + c*py + shift[1], pz + shift[2]})
	}
	return out
}

// mirrorZ negates the z column.
func mirrorZ(x *mat.Dense) *mat.Dense {
	out := mat.DenseCopyOf(x)
	n, _ := out.Dims()
	for i := 0; i < n; i++ {
		out.Set(i, 2, -out.At(i, 2))
	}
	return out
}

// TestCenter removes the centroid.
func TestCenter(t *testing.T) {
	t.Parallel()

	x := mat.NewDense(2, 3, []float64{1, 2, 3, 3, 4, 5})
	c, centroid := align.Center(x)
	assert.Equal(t, []float64{2, 3, 4}, centroid)
	assert.Equal(t, []float64{-1, -1, -1, 1, 1, 1}, c.RawMatrix().Data)

	empty, centroid := align.Center(&mat.Dense{})
	assert.True(t, empty.IsEmpty())
	assert.Empty(t, centroid)
}

// TestPairwiseDistances measures a 3-4-5 triangle.
func TestPairwiseDistances(t *testing.T) {
	t.Parallel()

	x := mat.NewDense(3, 3, []float64{0, 0, 0, 3, 0, 0, 0, 4, 0})
	d := align.PairwiseDistances(x)
	assert.Equal(t, []float64{
		0, 3, 4,
		3, 0, 5,
		4, 5, 0,
	}, d.RawMatrix().Data)
}

// TestDistanceRMSD is zero for an exact fit and ignores rigid motion.
func TestDistanceRMSD(t *testing.T) {
	t.Parallel()

	x := chiral()
	d := align.PairwiseDistances(x)

	got, err := align.DistanceRMSD(rotateZ(mirrorZ(x), 1.1, []float64{4, -2, 7}), d)
	require.NoError(t, err)
	assert.InDelta(t, 0, got, 1e-12)

	// One pair off by 0.6 among 6 pairs.
	d.Set(0, 1, d.At(0, 1)+0.6)
	d.Set(1, 0, d.At(0, 1))
	got, err = align.DistanceRMSD(x, d)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(0.36/6), got, 1e-12)

	got, err = align.DistanceRMSD(mat.NewDense(1, 3, nil), mat.NewDense(1, 1, nil))
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = align.DistanceRMSD(x, mat.NewDense(3, 3, nil))
	require.ErrorIs(t, err, align.ErrShape)
}

// TestRMSD measures plain displacement.
func TestRMSD(t *testing.T) {
	t.Parallel()

	a := mat.NewDense(2, 3, []float64{0, 0, 0, 1, 1, 1})
	b := mat.NewDense(2, 3, []float64{0, 0, 2, 1, 1, 1})
	got, err := align.RMSD(a, b)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(2), got, 1e-12)

	_, err = align.RMSD(a, mat.NewDense(3, 3, nil))
	require.ErrorIs(t, err, align.ErrShape)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = align.RMSD(nil, b)
	require.ErrorIs(t, err, align.ErrShape)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSuperpose undoes rigid motion and handles reflection on request.
func TestSuperpose(t *testing.T) {
	t.Parallel()

	target := chiral()

	tests := []struct {
		name       string
		mobile     *mat.Dense
		reflection bool
		exact      bool
	}{
		{"rotation", rotateZ(target, 0.7, []float64{1, 2, 3}), false, true},
		{"rotation with reflection allowed", rotateZ(target, -2.1, []float64{0, 0, 5}), true, true},
		{"mirror image, proper only", mirrorZ(target), false, false},
		{"mirror image, reflection allowed", rotateZ(mirrorZ(target), 0.4, []float64{-1, 0, 0}), true, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			moved, rmsd, err := align.Superpose(tc.mobile, target, tc.reflection)
			require.NoError(t, err)
			if tc.exact {
				assert.InDelta(t, 0, rmsd, 1e-9)
				assert.InDeltaSlice(t, target.RawMatrix().Data, moved.RawMatrix().Data, 1e-9)
			} else {
				assert.Greater(t, rmsd, 0.05)
			}
		})
	}
}

// TestSuperpose_Errors covers shape mismatch and empty input.
func TestSuperpose_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := align.Superpose(mat.NewDense(2, 3, nil), mat.NewDense(3, 3, nil), true)
	require.ErrorIs(t, err, align.ErrShape)

	moved, rmsd, err := align.Superpose(&mat.Dense{}, &mat.Dense{}, true)
	require.NoError(t, err)
	assert.True(t, moved.IsEmpty())
	assert.Zero(t, rmsd)
}
