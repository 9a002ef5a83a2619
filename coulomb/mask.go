package coulomb

// ValidMask reports, per atom slot, whether the slot holds a real atom (Z > 0).
// Slots with Z ≤ 0 are padding.
func ValidMask(z []float64) []bool {
	mask := make([]bool, len(z))
	for i, zi := range z {
		mask[i] = zi > 0
	}

	return mask
}

// ValidIndices returns the ascending indices of real atoms (Z > 0).
// The result is empty, never nil, when no atom is valid.
func ValidIndices(z []float64) []int {
	idx := make([]int, 0, len(z))
	for i, ok := range ValidMask(z) {
		if ok {
			idx = append(idx, i)
		}
	}

	return idx
}

// Select returns the charges at the given indices, in order.
func Select(z []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for k, i := range idx {
		out[k] = z[i]
	}

	return out
}
