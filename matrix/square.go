// SPDX-License-Identifier: MIT

// Package matrix - square specialization.
//
// Purpose:
//   - SquareMatrix adds the rows == cols invariant and the algebra that needs
//     it: decomposition (impl_lu.go), Gauss-Jordan (impl_gauss_jordan.go),
//     inversion and solving (impl_solve.go).
//   - Operations that would break the invariant report ErrUnsupported.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
)

// SquareMatrix is an n×n Matrix. All Matrix methods are promoted except the
// shape-changing ones, which are overridden to fail.
type SquareMatrix[T algebra.Element[T]] struct {
	*Matrix[T]
}

// NewSquare creates an n×n matrix of zeros (see New for the prototype rule).
// Errors: ErrInvalidDimensions for n < 0.
func NewSquare[T algebra.Element[T]](n int) (*SquareMatrix[T], error) {
	m, err := New[T](n, n)
	if err != nil {
		return nil, err
	}

	return &SquareMatrix[T]{Matrix: m}, nil
}

// NewSquareLike creates an n×n matrix whose cells are shaped like zero.
func NewSquareLike[T algebra.Element[T]](n int, zero T) (*SquareMatrix[T], error) {
	m, err := NewLike(n, n, zero)
	if err != nil {
		return nil, err
	}

	return &SquareMatrix[T]{Matrix: m}, nil
}

// NewSquareIdentity returns the n×n identity over T.
func NewSquareIdentity[T algebra.Element[T]](n int) (*SquareMatrix[T], error) {
	m, err := Identity[T](n)
	if err != nil {
		return nil, err
	}

	return &SquareMatrix[T]{Matrix: m}, nil
}

// SquareFromArray builds a square matrix from a 2D array (copied).
// Errors: ErrShapeMismatch for ragged or non-square input.
func SquareFromArray[T algebra.Element[T]](a [][]T) (*SquareMatrix[T], error) {
	m, err := FromArray(a)
	if err != nil {
		return nil, err
	}

	return AsSquare(m)
}

// AsSquare views m as a SquareMatrix. The result shares m's storage; Clone
// first when an independent copy is required.
// Errors: ErrNilMatrix; ErrShapeMismatch when m is not square.
func AsSquare[T algebra.Element[T]](m *Matrix[T]) (*SquareMatrix[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}

	return &SquareMatrix[T]{Matrix: m}, nil
}

// Size returns n.
func (s *SquareMatrix[T]) Size() int { return s.r }

// CheckShape validates storage invariants and rows == cols.
func (s *SquareMatrix[T]) CheckShape() error {
	if err := s.Matrix.CheckShape(); err != nil {
		return err
	}
	if s.r != s.c {
		return fmt.Errorf("SquareMatrix.CheckShape: %dx%d: %w", s.r, s.c, ErrShapeMismatch)
	}

	return nil
}

// SetIdentity overwrites the receiver with the identity, in place.
func (s *SquareMatrix[T]) SetIdentity() {
	one := s.zero.Identity()
	n := s.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				s.data[i*n+j] = one.Copy()
			} else {
				s.data[i*n+j] = s.zero.Copy()
			}
		}
	}
}

// Clone returns an independent deep copy.
func (s *SquareMatrix[T]) Clone() *SquareMatrix[T] {
	return &SquareMatrix[T]{Matrix: s.Matrix.Clone()}
}

// Resize is not supported on a square matrix.
func (s *SquareMatrix[T]) Resize(_, _ int) error {
	return fmt.Errorf("SquareMatrix.%s: %w", ctxResize, ErrUnsupported)
}

// AddRows is not supported on a square matrix.
func (s *SquareMatrix[T]) AddRows(_ *Matrix[T]) error {
	return fmt.Errorf("SquareMatrix.%s: %w", ctxAddRows, ErrUnsupported)
}

// AddColumns is not supported on a square matrix.
func (s *SquareMatrix[T]) AddColumns(_ *Matrix[T]) error {
	return fmt.Errorf("SquareMatrix.%s: %w", ctxAddCols, ErrUnsupported)
}
