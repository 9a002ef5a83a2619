package reconstruct

import (
	"strings"
)

// Method selects the embedding strategy of FromCoulomb and Batch.
//
//   - MethodMDS    — metric MDS, falling back to trilateration on failure.
//   - MethodSimple — incremental trilateration only.
type Method int

const (
	// MethodMDS embeds by metric multidimensional scaling.
	MethodMDS Method = iota

	// MethodSimple embeds by incremental trilateration.
	MethodSimple
)

// String returns the configuration name of the method.
func (m Method) String() string {
	switch m {
	case MethodMDS:
		return "mds"
	default:
		return "simple"
	}
}

// ParseMethod maps a method name onto a Method. "mds" (any case, surrounding
// space ignored) selects MethodMDS; every other name selects MethodSimple.
func ParseMethod(s string) Method {
	if strings.EqualFold(strings.TrimSpace(s), MethodMDS.String()) {
		return MethodMDS
	}

	return MethodSimple
}

// Dim is the width of every coordinate array produced by this package.
const Dim = 3

// minMDSAtoms is the smallest molecule handed to the MDS solver.
const minMDSAtoms = 2

// Defaults.
const (
	DefaultMethod        = MethodMDS
	DefaultVerbose       = true
	DefaultProgressEvery = 100
)

// Panic messages of option constructors.
const (
	panicProgressEvery = "reconstruct: WithProgressEvery requires a positive interval"
	panicNilLogger     = "reconstruct: WithLogger requires a non-nil logger"
	panicMDSDim        = "reconstruct: WithMDSOptions requires Dim == 3"
)
