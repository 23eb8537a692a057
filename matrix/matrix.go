// SPDX-License-Identifier: MIT

// Package matrix - generic row-major container & constructors.
//
// Purpose:
//   - Hold rows×cols algebraic elements in one flat buffer (offset i*cols + j).
//   - Keep a zero prototype so composite element types (blocks) get correctly
//     shaped additive identities in new cells.
//   - Copy elements on the way in (FromArray, Set, Paste) so no cell aliases
//     caller-owned state.
//
// Complexity quicksheet:
//   - New/NewLike: O(r*c); At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxRow       = "Row"
	ctxCol       = "Col"
	ctxSetRow    = "SetRow"
	ctxSetCol    = "SetCol"
	ctxSwapRows  = "SwapRows"
	ctxPaste     = "Paste"
	ctxSubMatrix = "SubMatrix"
	ctxResize    = "Resize"
	ctxAddRows   = "AddRows"
	ctxAddCols   = "AddColumns"
	ctxFromArray = "FromArray"
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a rows×cols grid of algebraic elements in row-major order.
//   - r,c hold dimensions (>= 0).
//   - data has length r*c; cell (i,j) lives at data[i*c+j].
//   - zero is the additive identity prototype used for new cells.
//
// A Matrix is not safe for concurrent mutation.
type Matrix[T algebra.Element[T]] struct {
	r, c int
	data []T
	zero T
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[algebra.Real])(nil)

// New creates an r×c matrix filled with the additive identity.
// The identity is taken from the Go zero value of T, which must be a usable
// receiver for Zero(); scalar types such as algebra.Real qualify. Use NewLike
// for composite elements that need a shaped prototype.
//
// Errors: ErrInvalidDimensions when rows<0 or cols<0.
// Complexity: O(r*c).
func New[T algebra.Element[T]](rows, cols int) (*Matrix[T], error) {
	var z T

	return NewLike(rows, cols, z)
}

// NewLike creates an r×c matrix whose cells are zero.Zero().
// The prototype is an explicit element factory: its Zero() fixes the shape of
// every cell (e.g. the block size of block.Block).
//
// Errors: ErrInvalidDimensions when rows<0 or cols<0.
// Complexity: O(r*c).
func NewLike[T algebra.Element[T]](rows, cols int, zero T) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	z := zero.Zero()
	buf := make([]T, rows*cols)
	for i := range buf {
		buf[i] = z.Copy()
	}

	return &Matrix[T]{r: rows, c: cols, data: buf, zero: z}, nil
}

// FromArray builds a matrix from a 2D array, copying every element.
// All rows must have the same length; an empty array yields a 0×0 matrix.
// The zero prototype is the Add-fold of every cell's Zero(), so a shaped cell
// anywhere in the array shapes the prototype even when other cells hold an
// unsized universal zero.
//
// Errors: ErrShapeMismatch for ragged input.
// Complexity: O(r*c).
func FromArray[T algebra.Element[T]](a [][]T) (*Matrix[T], error) {
	rows := len(a)
	cols := 0
	if rows > 0 {
		cols = len(a[0])
	}
	var i, j int
	for i = 0; i < rows; i++ {
		if len(a[i]) != cols {
			return nil, fmt.Errorf("Matrix.%s: row %d has %d columns, want %d: %w",
				ctxFromArray, i, len(a[i]), cols, ErrShapeMismatch)
		}
	}

	var z T
	if rows > 0 && cols > 0 {
		z = a[0][0].Zero()
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				z = z.Add(a[i][j].Zero())
			}
		}
	}
	m, err := NewLike(rows, cols, z)
	if err != nil {
		return nil, err
	}
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			m.data[i*cols+j] = a[i][j].Copy()
		}
	}

	return m, nil
}

// Identity returns the n×n identity over T (see New for the prototype rule).
func Identity[T algebra.Element[T]](n int) (*Matrix[T], error) {
	var z T

	return IdentityLike(n, z)
}

// IdentityLike returns the n×n identity whose cells are shaped like zero.
func IdentityLike[T algebra.Element[T]](n int, zero T) (*Matrix[T], error) {
	m, err := NewLike(n, n, zero)
	if err != nil {
		return nil, err
	}
	one := m.zero.Identity()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one.Copy()
	}

	return m, nil
}

// ZeroElement returns (a copy of) the additive identity used for new cells.
func (m *Matrix[T]) ZeroElement() T { return m.zero.Copy() }

// like allocates an r×c matrix sharing m's zero prototype.
// Dimensions are produced internally and never negative.
func (m *Matrix[T]) like(rows, cols int) *Matrix[T] {
	out, _ := NewLike(rows, cols, m.zero)

	return out
}
