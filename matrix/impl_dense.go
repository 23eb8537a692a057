// SPDX-License-Identifier: MIT

// Package matrix - safe accessors, cloning and formatting.
//
// Purpose:
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - At/Set: O(1); Clone, Zero, Fill, String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Rows returns the row count. No side effects.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Matrix[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports rows == cols.
func (m *Matrix[T]) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own context.
// Complexity: O(1).
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the element at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates; the stored value is returned as-is
//     (elements are immutable by convention, callers Copy before mutating).
//
// Errors:
//   - ErrOutOfRange when out of bounds (wrapped with coordinates).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var z T

		return z, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores a copy of v at (row, col).
// MAIN DESCRIPTION:
//   - Safe element write; v.Copy() is stored so the cell never aliases
//     caller-owned state.
//
// Errors:
//   - ErrOutOfRange when out of bounds (wrapped with coordinates).
//
// Complexity:
//   - Time O(1) plus the cost of Copy.
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v.Copy()

	return nil
}

// Clone returns a deep copy (new buffer, every element copied).
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data))
	for i, v := range m.data {
		cp[i] = v.Copy()
	}

	return &Matrix[T]{r: m.r, c: m.c, data: cp, zero: m.zero}
}

// Zero sets every element to the additive identity, in place.
func (m *Matrix[T]) Zero() {
	for i := range m.data {
		m.data[i] = m.zero.Copy()
	}
}

// Fill sets every element to a copy of v, in place.
func (m *Matrix[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v.Copy()
	}
}

// IsNull reports whether every element is the additive identity.
func (m *Matrix[T]) IsNull() bool {
	for _, v := range m.data {
		if !v.IsNull() {
			return false
		}
	}

	return true
}

// CheckShape validates the storage invariants: non-negative dimensions and
// len(data) == rows*cols. It never truncates or pads.
//
// Errors: ErrShapeMismatch (wrapped with the offending dimensions).
func (m *Matrix[T]) CheckShape() error {
	if m.r < 0 || m.c < 0 || len(m.data) != m.r*m.c {
		return fmt.Errorf("Matrix.CheckShape: %dx%d with %d cells: %w",
			m.r, m.c, len(m.data), ErrShapeMismatch)
	}

	return nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c).
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, row-major order.
// Complexity: O(r*c).
func (m *Matrix[T]) Apply(f func(i, j int, v T) T) {
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// String provides a readable row-wise dump for diagnostics.
// Elements are formatted with %v (Real and Complex print as %g).
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
