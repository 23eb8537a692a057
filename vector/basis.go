// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/matrix"
)

// Basis is an ordered set of equal-length vectors.
type Basis struct {
	dim int
	vs  []*Vector
}

// NewBasis collects vs (not copied) into a basis.
// Errors: ErrShapeMismatch when the lengths differ or a vector is nil.
func NewBasis(vs ...*Vector) (*Basis, error) {
	b := &Basis{}
	for _, v := range vs {
		if err := b.Add(v); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Add appends v.
// Errors: ErrShapeMismatch when v's length differs from the basis dimension.
func (b *Basis) Add(v *Vector) error {
	if v == nil {
		return fmt.Errorf("Basis.Add: nil vector: %w", ErrShapeMismatch)
	}
	if len(b.vs) == 0 {
		b.dim = v.Size()
	} else if v.Size() != b.dim {
		return fmt.Errorf("Basis.Add: length %d vs %d: %w", v.Size(), b.dim, ErrShapeMismatch)
	}
	b.vs = append(b.vs, v)

	return nil
}

// Len returns the number of vectors.
func (b *Basis) Len() int { return len(b.vs) }

// Dim returns the common vector length.
func (b *Basis) Dim() int { return b.dim }

// Vector returns the i-th vector (shared, not copied).
// Errors: ErrOutOfRange.
func (b *Basis) Vector(i int) (*Vector, error) {
	if i < 0 || i >= len(b.vs) {
		return nil, fmt.Errorf("Basis.Vector(%d) of %d: %w", i, len(b.vs), ErrOutOfRange)
	}

	return b.vs[i], nil
}

// AsMatrix returns a Dim×Len matrix holding the vectors as columns.
func (b *Basis) AsMatrix() *matrix.Matrix[algebra.Real] {
	m, _ := matrix.New[algebra.Real](b.dim, len(b.vs))
	for j, v := range b.vs {
		// Lengths are enforced by Add.
		_ = m.SetCol(j, algebra.Reals(v.c))
	}

	return m
}

// FromMatrix builds a basis from the columns of m.
// Errors: ErrNilMatrix.
func FromMatrix(m *matrix.Matrix[algebra.Real]) (*Basis, error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}
	b := &Basis{dim: m.Rows()}
	for j := 0; j < m.Cols(); j++ {
		v, err := FromColumn(m, j)
		if err != nil {
			return nil, err
		}
		b.vs = append(b.vs, v)
	}

	return b, nil
}

// Orthonormalize applies modified Gram-Schmidt in place.
// Errors: ErrDivideByZero when a vector is (or becomes) zero, i.e. the set is
// linearly dependent. Vectors before the failing one are already processed.
func (b *Basis) Orthonormalize() error {
	for i, v := range b.vs {
		for _, u := range b.vs[:i] {
			if err := v.OrthogonalizeTo(u); err != nil {
				return err
			}
		}
		if err := v.Normalize(); err != nil {
			return fmt.Errorf("Basis.Orthonormalize: vector %d: %w", i, err)
		}
	}

	return nil
}

// IsOrthonormal reports whether every pair is orthogonal and every vector
// has unit length, within tol.
func (b *Basis) IsOrthonormal(tol float64) bool {
	for i, v := range b.vs {
		for j := i; j < len(b.vs); j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(v.dot(b.vs[j])-want) > tol {
				return false
			}
		}
	}

	return true
}
