package mds

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	gmds "gonum.org/v1/gonum/stat/mds"
)

// errClassical reports a failed eigen decomposition in classical scaling.
var errClassical = errors.New("classical scaling failed")

// classicalStart returns the Torgerson embedding of dis truncated (or zero
// padded) to dim columns.
//
// Classical scaling only fails on a failed eigen decomposition; gonum reports
// shape problems by panicking, which is turned into an error here.
func classicalStart(dis *mat.Dense, dim int) (x0 *mat.Dense, err error) {
	defer func() {
		if r := recover(); r != nil {
			x0, err = nil, fmt.Errorf("%w: %v", errClassical, r)
		}
	}()

	n, _ := dis.Dims()
	sym := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sym.SetSym(i, j, dis.At(i, j))
		}
	}

	var coords mat.Dense
	k, _ := gmds.TorgersonScaling(&coords, nil, sym)
	if coords.IsEmpty() {
		return nil, fmt.Errorf("%w: eigen decomposition", errClassical)
	}

	x0 = mat.NewDense(n, dim, nil)
	if k > dim {
		k = dim
	}
	for i = 0; i < n; i++ {
		for j = 0; j < k; j++ {
			x0.Set(i, j, coords.At(i, j))
		}
	}

	return x0, nil
}
