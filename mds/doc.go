// Package mds embeds a dissimilarity matrix into Euclidean space by metric
// multidimensional scaling.
//
// 🚀 What is metric MDS?
//
//	Given target distances D between n points, find coordinates X (n×Dim)
//	whose pairwise distances approximate D in the least-squares sense
//	(minimum raw stress). The answer is defined only up to rotation,
//	translation and reflection.
//
// ✨ Key features:
//   - SMACOF (Guttman transform) stress majorization on gonum matrices
//   - several seeded random starts, lowest stress wins (deterministic)
//   - optional classical (Torgerson) start via gonum/stat/mds
//   - strict failure reporting: invalid input or non-convergence is an error,
//     so callers can fall back to another embedding
//
// ⚙️ Usage:
//
//	opts := mds.DefaultOptions() // Dim 3, Seed 42, 4 starts, 300 iterations
//	res, err := mds.Embed(d, opts)
//	if err != nil {
//	  // ErrTooFewPoints, ErrBadDissimilarity, ErrNotConverged, ErrBadOptions
//	}
//	fmt.Println(res.Stress)
//
// Performance:
//
//   - Time:   O(NInit·MaxIter·n²·Dim)
//   - Memory: O(n²)
package mds
