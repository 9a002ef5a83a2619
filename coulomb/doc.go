// Package coulomb converts between Coulomb matrices and pairwise distances.
//
// A Coulomb matrix of a molecule with nuclear charges Z and positions R is
//
//	C[i,i] = 0.5 · Z[i]^2.4
//	C[i,j] = Z[i]·Z[j] / |R_i − R_j|   (i ≠ j)
//
// so every off-diagonal entry can be inverted into a distance:
//
//	|R_i − R_j| = Z[i]·Z[j] / C[i,j]
//
// Distances performs that inversion with a numerical floor: entries at or
// below 1e-10 recover to a fixed 10.0 instead of blowing up. Encode is the
// forward direction, useful to build inputs from known geometries.
//
// Charges Z ≤ 0 mark padding slots in fixed-size batched representations;
// ValidMask, ValidIndices and Select help restrict inputs to real atoms.
package coulomb
