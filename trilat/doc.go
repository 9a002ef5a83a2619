// Package trilat places atoms one at a time from a distance matrix.
//
// 🚀 How it works:
//
//	atom 0   → origin
//	atom 1   → (D[0,1], 0, 0)
//	atom 2   → law of cosines in the z=0 plane (cosine clamped to [-1,1], y ≥ 0)
//	atom 3   → inverse-distance weighted centroid of atoms 0..2
//	atom i>3 → BFGS on Σ_k (‖p − x_k‖ − D[i,k])² over references {0,1,2},
//	           started from their weighted centroid
//
// Each atom is fixed once placed; there is no backtracking. A failed local
// solve keeps the initial guess, and a panic during placement is recovered
// into the weighted centroid of every earlier atom. Embed always returns a
// finite-or-best-effort n×3 matrix for square input.
//
// ⚙️ Usage:
//
//	res, err := trilat.Embed(d, trilat.DefaultOptions())
//	if err != nil {
//	  // ErrShape
//	}
//	for _, i := range res.Degraded() {
//	  log.Printf("atom %d placed by fallback", i)
//	}
//
// Performance:
//
//   - Time:   O(n·iterations) for the local solves plus O(n²) for centroids
//   - Memory: O(n)
package trilat
