// Package reconstruct turns Coulomb matrices back into 3D coordinates.
//
// It is the orchestration layer over coulomb, mds and trilat:
//
//	C, Z ──mask Z>0──▶ C', Z' ──Distances──▶ D ──mds.Embed──▶ R'
//	                                          └─trilat.Embed─┘ (fallback)
//	R' ──scatter──▶ R (n×3, padding rows zero)
//
// Entry points:
//   - MDS, Simple  — a single strategy on an unmasked molecule.
//   - FromCoulomb  — masking, strategy selection and fallback.
//   - Batch        — FromCoulomb over many molecules; never fails.
//
// Coordinates are defined only up to rotation, translation and reflection.
// Every path is deterministic: trilateration has no randomness and MDS draws
// from a fixed seed.
//
// Diagnostics go to the *zap.Logger set by WithLogger (silent by default).
package reconstruct
