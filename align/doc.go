// Package align scores reconstructed coordinates against references.
//
// A reconstruction from distances is fixed only up to rotation, translation
// and reflection. Two scores respect that:
//
//   - DistanceRMSD compares pairwise distances and needs no alignment.
//   - Superpose finds the best rigid (optionally improper) transform by the
//     Kabsch method on gonum's SVD, then RMSD measures what is left.
//
// Center and PairwiseDistances are the building blocks, exported for callers
// that need them directly.
package align
