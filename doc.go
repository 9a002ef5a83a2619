// Package coulomb3d recovers three-dimensional molecular geometry from
// Coulomb matrices.
//
// 🚀 What is coulomb3d?
//
//	A numeric pipeline that inverts the Coulomb-matrix encoding
//		C[i,i] = 0.5·Z[i]^2.4,   C[i,j] = Z[i]·Z[j] / |R_i − R_j|
//	back into Cartesian coordinates, defined up to rotation, translation
//	and reflection:
//		• Distance recovery: D[i,j] = Z[i]·Z[j] / C[i,j]
//		• Metric MDS (SMACOF) with seeded random or classical starts
//		• Incremental trilateration with per-atom BFGS refinement
//		• Validity masking of padding atoms (Z ≤ 0) and batch processing
//
// ✨ Why choose coulomb3d?
//
//   - Never fails on numeric degeneracy – sentinels, clamps and fallbacks
//   - Deterministic – fixed seeds, fixed traversal order
//   - Built on gonum – mat, optimize, stat and floats
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/      — shared validators, masking and selection helpers on gonum matrices
//	coulomb/     — distance recovery, forward encoding, validity masks
//	mds/         — SMACOF metric multidimensional scaling
//	trilat/      — incremental trilateration
//	reconstruct/ — single-molecule and batch orchestration with fallback
//	align/       — Kabsch superposition and RMSD scoring
//	dataset/     — YAML molecule files and XYZ output
//	config/      — viper-backed configuration
//	logging/     — zap logger construction
//
// The coulomb3d command (cmd/coulomb3d) wires them into reconstruct, encode
// and evaluate subcommands.
package coulomb3d
