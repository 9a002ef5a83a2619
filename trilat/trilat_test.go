package trilat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/coulomb3d/trilat"
)

// distancesOf returns the exact pairwise distance matrix of the rows of pts.
func distancesOf(pts [][]float64) *mat.Dense {
	n := len(pts)
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d.Set(i, j, floats.Distance(pts[i], pts[j], 2))
		}
	}
	return d
}

func rowDistance(x *mat.Dense, i, j int) float64 {
	return floats.Distance(mat.Row(nil, i, x), mat.Row(nil, j, x), 2)
}

// TestEmbed_Empty returns an empty result without error.
func TestEmbed_Empty(t *testing.T) {
	t.Parallel()

	res, err := trilat.Embed(&mat.Dense{}, trilat.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.X.IsEmpty())
	assert.Empty(t, res.Placements)
}

// TestEmbed_NonSquare rejects rectangular input.
func TestEmbed_NonSquare(t *testing.T) {
	t.Parallel()

	_, err := trilat.Embed(mat.NewDense(2, 3, nil), trilat.DefaultOptions())
	require.ErrorIs(t, err, trilat.ErrShape)
}

// TestEmbed_FirstThreeAtoms checks the analytic frame: origin, x-axis, z=0 plane.
func TestEmbed_FirstThreeAtoms(t *testing.T) {
	t.Parallel()

	d := mat.NewDense(3, 3, []float64{
		0, 1.2, 1.5,
		1.2, 0, 0.9,
		1.5, 0.9, 0,
	})
	res, err := trilat.Embed(d, trilat.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0, 0}, mat.Row(nil, 0, res.X))
	assert.Equal(t, []float64{1.2, 0, 0}, mat.Row(nil, 1, res.X))
	assert.InDelta(t, 1.5, floats.Norm(mat.Row(nil, 2, res.X), 2), 1e-12)
	assert.GreaterOrEqual(t, res.X.At(2, 1), 0.0)
	assert.Zero(t, res.X.At(2, 2))
	assert.InDelta(t, 0.9, rowDistance(res.X, 1, 2), 1e-12)
	assert.Equal(t, []trilat.Placement{trilat.PlacedOrigin, trilat.PlacedAxis, trilat.PlacedPlane}, res.Placements)
}

// TestEmbed_SingleAtom places the only atom at the origin.
func TestEmbed_SingleAtom(t *testing.T) {
	t.Parallel()

	res, err := trilat.Embed(mat.NewDense(1, 1, []float64{0}), trilat.DefaultOptions())
	require.NoError(t, err)
	r, c := res.X.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []float64{0, 0, 0}, res.X.RawMatrix().Data)
}

// TestEmbed_TriangleViolation clamps the cosine instead of producing NaN.
func TestEmbed_TriangleViolation(t *testing.T) {
	t.Parallel()

	d := mat.NewDense(3, 3, []float64{
		0, 1, 1,
		1, 0, 10,
		1, 10, 0,
	})
	res, err := trilat.Embed(d, trilat.DefaultOptions())
	require.NoError(t, err)
	row := mat.Row(nil, 2, res.X)
	assert.False(t, floats.HasNaN(row))
	assert.InDelta(t, -1, row[0], 1e-12)
	assert.InDelta(t, 0, row[1], 1e-12)
}

// TestEmbed_FourthAtomIsCentroid uses the weighted centroid of atoms 0..2 for atom 3.
func TestEmbed_FourthAtomIsCentroid(t *testing.T) {
	t.Parallel()

	d := distancesOf([][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0.2, 0.3, 0.8}})
	res, err := trilat.Embed(d, trilat.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, trilat.PlacedCentroid, res.Placements[3])

	refs := []int{0, 1, 2}
	want := trilat.WeightedCentroid(res.X, refs, []float64{d.At(3, 0), d.At(3, 1), d.At(3, 2)})
	assert.InDeltaSlice(t, want, mat.Row(nil, 3, res.X), 1e-12)
}

// TestEmbed_OptimizedAtom recovers an in-plane atom exactly from references 0..2.
func TestEmbed_OptimizedAtom(t *testing.T) {
	t.Parallel()

	d := distancesOf([][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0.5, 0.5, 0.7},
		{1, 1, 0},
	})
	res, err := trilat.Embed(d, trilat.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, trilat.PlacedOptimized, res.Placements[4])

	for _, ref := range trilat.References(4) {
		assert.InDelta(t, d.At(4, ref), rowDistance(res.X, 4, ref), 1e-3, "ref %d", ref)
	}
	assert.Empty(t, res.Degraded())
}

// TestEmbed_Deterministic repeats a run and compares bit-for-bit.
func TestEmbed_Deterministic(t *testing.T) {
	t.Parallel()

	d := distancesOf([][]float64{
		{0, 0, 0}, {1.1, 0, 0}, {0.3, 1.2, 0}, {0.4, 0.2, 1}, {1.3, 0.9, 0.4}, {-0.6, 0.5, 0.5},
	})
	a, err := trilat.Embed(d, trilat.DefaultOptions())
	require.NoError(t, err)
	b, err := trilat.Embed(d, trilat.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, a.X.RawMatrix().Data, b.X.RawMatrix().Data)
	assert.Equal(t, a.Placements, b.Placements)
}

// TestEmbed_NonFiniteDistances never aborts the run.
func TestEmbed_NonFiniteDistances(t *testing.T) {
	t.Parallel()

	d := distancesOf([][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}})
	d.Set(4, 0, math.NaN())
	d.Set(0, 4, math.NaN())

	var res trilat.Result
	var err error
	require.NotPanics(t, func() { res, err = trilat.Embed(d, trilat.DefaultOptions()) })
	require.NoError(t, err)
	assert.Len(t, res.Placements, 5)
	assert.Equal(t, []float64{1, 0, 0}, mat.Row(nil, 1, res.X))
}

// TestLawOfCosines covers the clamp and the degenerate denominator.
func TestLawOfCosines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		d01, d02, d12 float64
		cos, sin      float64
	}{
		{"right angle", 3, 4, 5, 0, 1},
		{"equilateral", 1, 1, 1, 0.5, math.Sqrt(3) / 2},
		{"collinear same side", 1, 2, 1, 1, 0},
		{"violation clamps to -1", 1, 1, 10, -1, 0},
		{"coincident outer atoms", 5, 5, 0, 1, 0},
		{"zero denominator", 0, 2, 2, 1, 0},
		{"nan", math.NaN(), 1, 1, 1, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, s := trilat.LawOfCosines(tc.d01, tc.d02, tc.d12)
			assert.InDelta(t, tc.cos, c, 1e-12)
			assert.InDelta(t, tc.sin, s, 1e-12)
		})
	}
}

// TestReferences picks {0,1,2} beyond atom 3 and {0,1} at atom 3.
func TestReferences(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{0, 1}, trilat.References(3))
	assert.Equal(t, []int{0, 1, 2}, trilat.References(4))
	assert.Equal(t, []int{0, 1, 2}, trilat.References(40))
	assert.Equal(t, []int{0, 1}, trilat.References(2))
}

// TestWeightedCentroid checks normalisation and the pull of near references.
func TestWeightedCentroid(t *testing.T) {
	t.Parallel()

	x := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		2, 0, 0,
		0, 2, 0,
	})

	t.Run("equal distances give the mean", func(t *testing.T) {
		c := trilat.WeightedCentroid(x, []int{0, 1, 2}, []float64{1, 1, 1})
		assert.InDeltaSlice(t, []float64{2.0 / 3, 2.0 / 3, 0}, c, 1e-12)
	})
	t.Run("zero distance dominates", func(t *testing.T) {
		c := trilat.WeightedCentroid(x, []int{0, 1}, []float64{0, 1})
		assert.InDelta(t, 0, c[0], 1e-5)
	})
	t.Run("weights sum to one", func(t *testing.T) {
		c := trilat.WeightedCentroid(x, []int{1, 2}, []float64{3, 1})
		assert.InDelta(t, 2, c[0]+c[1], 1e-12)
		assert.Greater(t, c[1], c[0])
	})
	t.Run("no references", func(t *testing.T) {
		assert.Equal(t, []float64{0, 0, 0}, trilat.WeightedCentroid(x, nil, nil))
	})
}

// TestPlacement_String names every placement kind.
func TestPlacement_String(t *testing.T) {
	t.Parallel()

	names := map[trilat.Placement]string{
		trilat.PlacedOrigin:    "origin",
		trilat.PlacedAxis:      "axis",
		trilat.PlacedPlane:     "plane",
		trilat.PlacedOptimized: "optimized",
		trilat.PlacedCentroid:  "centroid",
		trilat.PlacedFallback:  "fallback",
		trilat.PlacedRecovered: "recovered",
		trilat.Placement(99):   "unknown",
	}
	for p, want := range names {
		assert.Equal(t, want, p.String())
	}
}

// TestResult_Degraded lists fallback and recovered atoms only.
func TestResult_Degraded(t *testing.T) {
	t.Parallel()

	r := trilat.Result{Placements: []trilat.Placement{
		trilat.PlacedOrigin, trilat.PlacedAxis, trilat.PlacedPlane,
		trilat.PlacedCentroid, trilat.PlacedFallback, trilat.PlacedOptimized, trilat.PlacedRecovered,
	}}
	assert.Equal(t, []int{4, 6}, r.Degraded())
}

// panicAt is a distance matrix whose entry (i, j) panics on first read.
type panicAt struct {
	*mat.Dense
	i, j  int
	fired bool
}

func (p *panicAt) At(i, j int) float64 {
	if !p.fired && i == p.i && j == p.j {
		p.fired = true
		panic("unreadable entry")
	}
	return p.Dense.At(i, j)
}

// TestEmbed_DegradedPlacements keeps the run alive when one atom's
// placement fails, and places that atom at a weighted centroid.
func TestEmbed_DegradedPlacements(t *testing.T) {
	t.Parallel()

	pts := [][]float64{
		{0, 0, 0},
		{1.5, 0, 0},
		{0.3, 1.2, 0},
		{0.5, 0.5, 1.0},
		{1.0, 1.0, 1.2},
		{-0.8, 0.6, 0.9},
	}
	dist := distancesOf(pts)

	tests := []struct {
		name     string
		d        mat.Matrix
		opts     trilat.Options
		want     []trilat.Placement
		refs     map[int][]int // degraded atom → references of its centroid
		degraded []int
	}{
		{
			name: "optimizer iteration cap",
			d:    dist,
			opts: trilat.Options{MaxIterations: 1, GradientThreshold: 1e-5},
			want: []trilat.Placement{
				trilat.PlacedOrigin, trilat.PlacedAxis, trilat.PlacedPlane,
				trilat.PlacedCentroid, trilat.PlacedFallback, trilat.PlacedFallback,
			},
			refs:     map[int][]int{4: {0, 1, 2}, 5: {0, 1, 2}},
			degraded: []int{4, 5},
		},
		{
			name: "panic while reading distances",
			d:    &panicAt{Dense: dist, i: 4, j: 2},
			opts: trilat.DefaultOptions(),
			want: []trilat.Placement{
				trilat.PlacedOrigin, trilat.PlacedAxis, trilat.PlacedPlane,
				trilat.PlacedCentroid, trilat.PlacedRecovered, trilat.PlacedOptimized,
			},
			refs:     map[int][]int{4: {0, 1, 2, 3}},
			degraded: []int{4},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := trilat.Embed(tc.d, tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Placements)
			assert.Equal(t, tc.degraded, res.Degraded())

			for i, refs := range tc.refs {
				target := make([]float64, len(refs))
				for k, ref := range refs {
					target[k] = dist.At(i, ref)
				}
				want := trilat.WeightedCentroid(res.X, refs, target)
				assert.InDeltaSlice(t, want, mat.Row(nil, i, res.X), 1e-12, "atom %d", i)
			}
		})
	}
}
