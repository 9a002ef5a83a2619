package dataset

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrCharges is returned when charges are neither a number nor a list of numbers.
	ErrCharges = errors.New("dataset: charges must be a number or a list of numbers")

	// ErrShape is returned for ragged matrices or arrays whose size does not
	// match the charge count.
	ErrShape = errors.New("dataset: inconsistent molecule shape")

	// ErrMissing is returned when a molecule lacks a field an operation needs.
	ErrMissing = errors.New("dataset: missing field")
)

// Charges is a per-atom charge vector. In YAML it may be written either as a
// list or as a single number; a single number is a one-atom molecule.
type Charges []float64

// UnmarshalYAML accepts a scalar or a sequence of numbers.
func (c *Charges) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var z float64
		if err := node.Decode(&z); err != nil {
			return fmt.Errorf("line %d: %w: %v", node.Line, ErrCharges, err)
		}
		*c = Charges{z}
	case yaml.SequenceNode:
		var zs []float64
		if err := node.Decode(&zs); err != nil {
			return fmt.Errorf("line %d: %w: %v", node.Line, ErrCharges, err)
		}
		*c = zs
	default:
		return fmt.Errorf("line %d: %w", node.Line, ErrCharges)
	}

	return nil
}

// Molecule is one record of a dataset file.
//
// Fields:
//   - Name        — free-form label, used as the XYZ comment line.
//   - Charges     — nuclear charges; Z ≤ 0 marks a padding slot.
//   - Coulomb     — optional Coulomb matrix, at least len(Charges) square.
//   - Coordinates — optional reference geometry, one [x, y, z] per slot.
type Molecule struct {
	Name        string      `yaml:"name,omitempty"`
	Charges     Charges     `yaml:"charges"`
	Coulomb     [][]float64 `yaml:"coulomb,omitempty"`
	Coordinates [][]float64 `yaml:"coordinates,omitempty"`
}

// File is the document layout of a dataset file.
type File struct {
	Molecules []Molecule `yaml:"molecules"`
}
