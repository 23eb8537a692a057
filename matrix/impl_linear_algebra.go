// SPDX-License-Identifier: MIT
// Package matrix provides element-generic operations on Matrix values:
// element-wise addition and subtraction, matrix multiplication, scaling by a
// real factor, matrix-vector products and approximate comparison. All
// functions perform strict fail-fast validation and return clear errors on
// dimension mismatches. Inputs are never mutated.
//
// Purpose:
//   - Canonical arithmetic kernels shared by the decomposition code and tests.
//   - Operation tags for uniform error reporting.
//
// Notes:
//   - Multiplication keeps operand order (Σ a_ik·b_kj) so non-commutative
//     element types (blocks) give the mathematically correct product.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opScale    = "Scale"
	opMulVec   = "MulVec"
	opAllClose = "AllClose"
	opLU       = "LU"
	opInverse  = "Inverse"
	opGauss    = "GaussJordan"
	opSolve    = "Solve"
	opDet      = "Determinant"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise a+b (sub=false) or a-b (sub=true) into a fresh matrix.
func addSub[T algebra.Element[T]](a, b *Matrix[T], sub bool, opTag string) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := a.like(a.r, a.c)
	for i := range a.data {
		if sub {
			out.data[i] = a.data[i].Sub(b.data[i])
		} else {
			out.data[i] = a.data[i].Add(b.data[i])
		}
	}

	return out, nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c).
func Add[T algebra.Element[T]](a, b *Matrix[T]) (*Matrix[T], error) {
	return addSub(a, b, false, opAdd)
}

// Sub returns a - b.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c).
func Sub[T algebra.Element[T]](a, b *Matrix[T]) (*Matrix[T], error) {
	return addSub(a, b, true, opSub)
}

// Mul returns the matrix product a·b.
// MAIN DESCRIPTION:
//   - out[i][j] = Σ_k a[i][k]·b[k][j], left operand always from a.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i→j→k loops, accumulating from the zero prototype.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T algebra.Element[T]](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.r, a.c, b.c
	out := a.like(rows, cols)
	var (
		i, j, k int
		acc     T
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			acc = a.zero.Copy()
			for k = 0; k < inner; k++ {
				acc = acc.Add(a.data[i*inner+k].Mul(b.data[k*cols+j]))
			}
			out.data[i*cols+j] = acc
		}
	}

	return out, nil
}

// Scale returns alpha·m.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale[T algebra.Element[T]](m *Matrix[T], alpha float64) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := m.like(m.r, m.c)
	for i, v := range m.data {
		out.data[i] = v.Scale(alpha)
	}

	return out, nil
}

// MulVec returns y = m·x for len(x) == m.Cols().
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c).
func MulVec[T algebra.Element[T]](m *Matrix[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	y := make([]T, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		acc := m.zero.Copy()
		for j = 0; j < m.c; j++ {
			acc = acc.Add(m.data[i*m.c+j].Mul(x[j]))
		}
		y[i] = acc
	}

	return y, nil
}

// AllClose reports whether |a_ij - b_ij| <= atol + rtol·|b_ij| for every cell,
// magnitudes measured with the element's Abs.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func AllClose[T algebra.Element[T]](a, b *Matrix[T], rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for i := range a.data {
		if a.data[i].Sub(b.data[i]).Abs() > atol+rtol*b.data[i].Abs() {
			return false, nil
		}
	}

	return true, nil
}
