// SPDX-License-Identifier: MIT

// Package matrix - structural methods: row/column slicing, paste, sub-matrix
// extraction, transposition and explicit resizing.
//
// Purpose:
//   - Shape-changing operations live here and only here; algebra kernels
//     never resize implicitly.
//   - Every method validates its indices first and leaves the receiver
//     untouched on error.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
)

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	base := i * m.c
	for j := 0; j < m.c; j++ {
		out[j] = m.data[base+j].Copy()
	}

	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange.
// Complexity: O(r).
func (m *Matrix[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j].Copy()
	}

	return out, nil
}

// SetRow overwrites row i with copies of vals.
// Errors: ErrOutOfRange for i; ErrShapeMismatch when len(vals) != Cols().
func (m *Matrix[T]) SetRow(i int, vals []T) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(vals) != m.c {
		return fmt.Errorf("Matrix.%s: %d values for %d columns: %w", ctxSetRow, len(vals), m.c, ErrShapeMismatch)
	}
	base := i * m.c
	for j, v := range vals {
		m.data[base+j] = v.Copy()
	}

	return nil
}

// SetCol overwrites column j with copies of vals.
// Errors: ErrOutOfRange for j; ErrShapeMismatch when len(vals) != Rows().
func (m *Matrix[T]) SetCol(j int, vals []T) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxSetCol, 0, j, ErrOutOfRange)
	}
	if len(vals) != m.r {
		return fmt.Errorf("Matrix.%s: %d values for %d rows: %w", ctxSetCol, len(vals), m.r, ErrShapeMismatch)
	}
	for i, v := range vals {
		m.data[i*m.c+j] = v.Copy()
	}

	return nil
}

// SwapRows exchanges rows i and k in place. Swapping a row with itself is a no-op.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Matrix[T]) SwapRows(i, k int) error {
	if i < 0 || i >= m.r || k < 0 || k >= m.r {
		return denseErrorf(ctxSwapRows, i, k, ErrOutOfRange)
	}
	swapRows(m.data, m.c, i, k)

	return nil
}

// swapRows exchanges two full rows of a row-major buffer with the given stride.
func swapRows[T any](d []T, stride, i, k int) {
	if i == k {
		return
	}
	a, b := i*stride, k*stride
	for j := 0; j < stride; j++ {
		d[a+j], d[b+j] = d[b+j], d[a+j]
	}
}

// Paste copies src into m with src(0,0) landing at (atRow, atCol).
// MAIN DESCRIPTION:
//   - Region copy used to assemble augmented matrices [A | B].
//
// Implementation:
//   - Stage 1: validate offsets and that the region fits inside m.
//   - Stage 2: copy row by row, element Copy() per cell.
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrShapeMismatch when the pasted region would exceed m's bounds
//     (m is left untouched).
//
// Complexity:
//   - Time O(src.r*src.c).
func (m *Matrix[T]) Paste(src *Matrix[T], atRow, atCol int) error {
	if src == nil {
		return fmt.Errorf("Matrix.%s: %w", ctxPaste, ErrNilMatrix)
	}
	if atRow < 0 || atCol < 0 || atRow+src.r > m.r || atCol+src.c > m.c {
		return fmt.Errorf("Matrix.%s: %dx%d at (%d,%d) into %dx%d: %w",
			ctxPaste, src.r, src.c, atRow, atCol, m.r, m.c, ErrShapeMismatch)
	}
	var i, j int
	for i = 0; i < src.r; i++ {
		dst := (atRow+i)*m.c + atCol
		from := i * src.c
		for j = 0; j < src.c; j++ {
			m.data[dst+j] = src.data[from+j].Copy()
		}
	}

	return nil
}

// SubMatrix returns a copy of rows [r0,r1) and columns [c0,c1).
// Empty ranges (r0==r1 or c0==c1) are legal and give a zero-area matrix.
//
// Errors:
//   - ErrBadRange when a range is inverted or exceeds the bounds.
//
// Complexity:
//   - Time O((r1-r0)*(c1-c0)).
func (m *Matrix[T]) SubMatrix(r0, r1, c0, c1 int) (*Matrix[T], error) {
	if r0 < 0 || c0 < 0 || r1 < r0 || c1 < c0 || r1 > m.r || c1 > m.c {
		return nil, fmt.Errorf("Matrix.%s: rows [%d,%d) cols [%d,%d) of %dx%d: %w",
			ctxSubMatrix, r0, r1, c0, c1, m.r, m.c, ErrBadRange)
	}
	rows, cols := r1-r0, c1-c0
	out := m.like(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		from := (r0+i)*m.c + c0
		for j = 0; j < cols; j++ {
			out.data[i*cols+j] = m.data[from+j].Copy()
		}
	}

	return out, nil
}

// Transpose returns a new c×r matrix with rows and columns swapped.
// The receiver is not modified.
// Complexity: O(r*c).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := m.like(m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j].Copy()
		}
	}

	return out
}

// Resize changes the dimensions in place. The overlapping top-left region
// keeps its elements; new cells are zero. Algebra operations never call this.
//
// Errors: ErrInvalidDimensions for negative sizes.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("Matrix.%s(%d,%d): %w", ctxResize, rows, cols, ErrInvalidDimensions)
	}
	next := m.like(rows, cols)
	keepR, keepC := min(rows, m.r), min(cols, m.c)
	var i, j int
	for i = 0; i < keepR; i++ {
		for j = 0; j < keepC; j++ {
			next.data[i*cols+j] = m.data[i*m.c+j]
		}
	}
	m.r, m.c, m.data = rows, cols, next.data

	return nil
}

// AddRows appends the rows of b below m.
// Errors: ErrNilMatrix; ErrShapeMismatch when column counts differ
// (an empty 0×0 receiver adopts b's width).
func (m *Matrix[T]) AddRows(b *Matrix[T]) error {
	if b == nil {
		return fmt.Errorf("Matrix.%s: %w", ctxAddRows, ErrNilMatrix)
	}
	if m.r == 0 && m.c == 0 {
		m.c = b.c
	}
	if b.c != m.c {
		return fmt.Errorf("Matrix.%s: %d columns onto %d: %w", ctxAddRows, b.c, m.c, ErrShapeMismatch)
	}
	for _, v := range b.data {
		m.data = append(m.data, v.Copy())
	}
	m.r += b.r

	return nil
}

// AddColumns appends the columns of b to the right of m.
// Errors: ErrNilMatrix; ErrShapeMismatch when row counts differ
// (an empty 0×0 receiver adopts b's height).
func (m *Matrix[T]) AddColumns(b *Matrix[T]) error {
	if b == nil {
		return fmt.Errorf("Matrix.%s: %w", ctxAddCols, ErrNilMatrix)
	}
	if m.r == 0 && m.c == 0 {
		m.r = b.r
	}
	if b.r != m.r {
		return fmt.Errorf("Matrix.%s: %d rows onto %d: %w", ctxAddCols, b.r, m.r, ErrShapeMismatch)
	}
	cols := m.c + b.c
	next := make([]T, 0, m.r*cols)
	var i, j int
	for i = 0; i < m.r; i++ {
		next = append(next, m.data[i*m.c:(i+1)*m.c]...)
		for j = 0; j < b.c; j++ {
			next = append(next, b.data[i*b.c+j].Copy())
		}
	}
	m.c, m.data = cols, next

	return nil
}

// Augment returns the side-by-side matrix [a | b]. Neither input is modified.
// Errors: ErrNilMatrix; ErrShapeMismatch when row counts differ.
// Complexity: O(r*(ca+cb)).
func Augment[T algebra.Element[T]](a, b *Matrix[T]) (*Matrix[T], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Augment: %w", ErrNilMatrix)
	}
	if a.r != b.r {
		return nil, fmt.Errorf("Augment: %d rows vs %d: %w", a.r, b.r, ErrShapeMismatch)
	}
	out := a.like(a.r, a.c+b.c)
	// Both pastes fit by construction.
	_ = out.Paste(a, 0, 0)
	_ = out.Paste(b, 0, a.c)

	return out, nil
}
