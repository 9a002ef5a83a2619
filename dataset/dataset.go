package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/coulomb3d/matrix"
)

// Decode reads a dataset document from r. JSON input is accepted as well,
// since it is a subset of YAML.
func Decode(r io.Reader) ([]Molecule, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	return f.Molecules, nil
}

// Read decodes the dataset file at path.
func Read(path string) ([]Molecule, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer fh.Close()

	mols, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return mols, nil
}

// Encode writes mols to w as a YAML document.
func Encode(w io.Writer, mols []Molecule) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Molecules: mols}); err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	return enc.Close()
}

// Write encodes mols into the file at path, replacing it.
func Write(path string, mols []Molecule) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	if err = Encode(fh, mols); err != nil {
		fh.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return fh.Close()
}

// CoulombMatrix returns the molecule's Coulomb matrix as a dense matrix.
//
// Errors: ErrMissing without a matrix, ErrShape when it is ragged or not square.
func (m Molecule) CoulombMatrix() (*mat.Dense, error) {
	if len(m.Coulomb) == 0 {
		if len(m.Charges) == 0 {
			return matrix.Zeros(0, 0), nil
		}
		return nil, fmt.Errorf("molecule %q: coulomb: %w", m.Name, ErrMissing)
	}
	c, err := toDense(m.Coulomb, len(m.Coulomb))
	if err != nil {
		return nil, fmt.Errorf("molecule %q: coulomb: %w", m.Name, err)
	}

	return c, nil
}

// CoordinateMatrix returns the reference geometry as an n×3 matrix,
// n = len(Charges).
//
// Errors: ErrMissing without coordinates, ErrShape for a wrong row count or width.
func (m Molecule) CoordinateMatrix() (*mat.Dense, error) {
	if len(m.Coordinates) == 0 {
		if len(m.Charges) == 0 {
			return matrix.Zeros(0, 3), nil
		}
		return nil, fmt.Errorf("molecule %q: coordinates: %w", m.Name, ErrMissing)
	}
	if len(m.Coordinates) != len(m.Charges) {
		return nil, fmt.Errorf("molecule %q: %d coordinate rows for %d charges: %w",
			m.Name, len(m.Coordinates), len(m.Charges), ErrShape)
	}
	r, err := toDense(m.Coordinates, 3)
	if err != nil {
		return nil, fmt.Errorf("molecule %q: coordinates: %w", m.Name, err)
	}

	return r, nil
}

// Inputs splits molecules into the parallel slices consumed by batch
// reconstruction. The slices always have one entry per molecule. A molecule
// without a usable matrix gets a nil entry in the first slice, and err
// joins the reasons of every such molecule.
func Inputs(mols []Molecule) ([]mat.Matrix, [][]float64, error) {
	cs := make([]mat.Matrix, len(mols))
	zs := make([][]float64, len(mols))
	var errs []error
	for k, m := range mols {
		zs[k] = m.Charges
		c, err := m.CoulombMatrix()
		if err != nil {
			errs = append(errs, fmt.Errorf("molecule %d: %w", k, err))
			continue
		}
		cs[k] = c
	}

	return cs, zs, errors.Join(errs...)
}

// Rows converts a matrix into row slices for serialization.
func Rows(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}

	return out
}

// toDense copies rows into an len(rows)×cols matrix; every row must have cols entries.
func toDense(rows [][]float64, cols int) (*mat.Dense, error) {
	d := matrix.Zeros(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), cols, ErrShape)
		}
		d.SetRow(i, row)
	}

	return d, nil
}
