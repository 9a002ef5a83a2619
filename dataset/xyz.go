package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/mat"
)

// symbols lists element symbols by atomic number, starting at hydrogen.
var symbols = [...]string{
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
}

// Symbol returns the element symbol of nuclear charge z. Charges that are
// not a whole number in the table give "X".
func Symbol(z float64) string {
	if z != math.Trunc(z) || z < 1 || z > float64(len(symbols)) {
		return "X"
	}

	return symbols[int(z)-1]
}

// WriteXYZ writes one XYZ frame: the atom count, a comment line, then one
// "Symbol x y z" line per real atom. Padding slots (Z ≤ 0) are skipped.
//
// Errors: ErrShape when r is not len(z)×3; write errors from w.
func WriteXYZ(w io.Writer, comment string, z []float64, r mat.Matrix) error {
	rows, cols := r.Dims()
	if rows != len(z) || (rows > 0 && cols != 3) {
		return fmt.Errorf("write xyz: %dx%d coordinates for %d charges: %w", rows, cols, len(z), ErrShape)
	}

	var atoms int
	for _, zi := range z {
		if zi > 0 {
			atoms++
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%s\n", atoms, comment)
	for i, zi := range z {
		if zi <= 0 {
			continue
		}
		fmt.Fprintf(bw, "%-2s %12.6f %12.6f %12.6f\n", Symbol(zi), r.At(i, 0), r.At(i, 1), r.At(i, 2))
	}

	return bw.Flush()
}
