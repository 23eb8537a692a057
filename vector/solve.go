// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/matrix"
)

// SolveFor solves a·x = v for every v in vs with one decomposition and writes
// each solution back into its vector. On error no vector is modified.
//
// Errors: ErrShapeMismatch (nil vector or length != a.Size()), plus the
// matrix solver's errors (ErrNilMatrix, ErrSingular).
func SolveFor(a *matrix.SquareMatrix[algebra.Real], vs []*Vector, opts ...matrix.Option) error {
	if a == nil {
		return matrix.ErrNilMatrix
	}
	bs := make([][]algebra.Real, len(vs))
	for j, v := range vs {
		if v == nil {
			return fmt.Errorf("SolveFor: vector %d is nil: %w", j, ErrShapeMismatch)
		}
		bs[j] = algebra.Reals(v.c)
	}
	xs, err := a.SolveVectors(bs, opts...)
	if err != nil {
		return err
	}
	for j, v := range vs {
		v.c = algebra.Floats(xs[j])
	}

	return nil
}
