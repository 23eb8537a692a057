// SPDX-License-Identifier: MIT

// Package matrix - Crout LU decomposition with scaled partial pivoting.
//
// Purpose:
//   - Factor a square matrix in place into a packed L\U form plus a pivot
//     record and a permutation parity flag.
//   - Serve every solve and inversion path: one decomposition, then forward
//     and back substitution per right-hand column.
//
// Determinism:
//   - Fixed loop orders. Pivot candidates are scanned from the last row up to
//     the diagonal and accepted on ">=", so ties resolve to the lowest row.
//
// Non-commutative elements:
//   - L entries are right-multiplied by the inverse of the pivot and back
//     substitution left-multiplies by the inverse of U's diagonal, so block
//     elements factor as A = P·L·U with operand order preserved.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
)

// crout factors the leading n×n block of the row-major buffer d in place.
// stride is the row width of d (>= n); whole rows are swapped so trailing
// augmented columns follow the pivoting. zero is the matrix prototype; the
// surrogate diagonal is shaped from it, not from the (possibly unsized) cell.
//
// Implementation:
//   - Stage 1: implicit scaling v[i] = 1/max_j |d[i][j]|; a row with no
//     non-null magnitude is singular.
//   - Stage 2: per column j, reduce the upper part (i<j), reduce the
//     candidates (i>=j) while tracking the largest scaled magnitude, swap
//     the pivot row into place, resolve a null diagonal per policy and
//     right-multiply the sub-diagonal column by the diagonal's inverse.
//
// Returns:
//   - index: index[j] is the row swapped into position j.
//   - even : true when an even number of swaps occurred.
//   - degraded: true when a surrogate diagonal was substituted.
//
// Errors:
//   - ErrSingular (wrapped with the row or column).
//
// Complexity:
//   - Time O(n^3 + n^2·stride) worst case, Space O(n).
func crout[T algebra.Element[T]](d []T, stride, n int, zero T, o Options) (index []int, even, degraded bool, err error) {
	index = make([]int, n)
	even = true
	v := make([]float64, n)

	var (
		i, j, k int
		big     float64
		tmp     float64
	)

	// Stage 1: scale factors.
	for i = n - 1; i >= 0; i-- {
		big = 0
		for j = n - 1; j >= 0; j-- {
			if tmp = d[i*stride+j].Abs(); tmp > big {
				big = tmp
			}
		}
		if big == 0 {
			return nil, false, false, fmt.Errorf("row %d has no non-null entry: %w", i, ErrSingular)
		}
		v[i] = 1 / big
	}

	// Stage 2: column sweep.
	var sum T
	for j = 0; j < n; j++ {
		for i = j - 1; i >= 0; i-- {
			sum = d[i*stride+j]
			for k = i - 1; k >= 0; k-- {
				sum = sum.Sub(d[i*stride+k].Mul(d[k*stride+j]))
			}
			d[i*stride+j] = sum
		}

		imax := j
		big = 0
		for i = n - 1; i >= j; i-- {
			sum = d[i*stride+j]
			for k = j - 1; k >= 0; k-- {
				sum = sum.Sub(d[i*stride+k].Mul(d[k*stride+j]))
			}
			d[i*stride+j] = sum
			if tmp = v[i] * sum.Abs(); tmp >= big {
				big = tmp
				imax = i
			}
		}

		if imax != j {
			swapRows(d, stride, imax, j)
			even = !even
			v[imax] = v[j]
			o.logger.Debug().Int("col", j).Int("row", imax).Msg("lu pivot swap")
			o.onPivot(j, imax)
		}
		index[j] = imax

		diag := d[j*stride+j]
		if diag.IsNull() {
			if o.policy != PivotSurrogate {
				return nil, false, false, fmt.Errorf("null pivot in column %d: %w", j, ErrSingular)
			}
			diag = zero.Identity().Scale(o.tiny)
			d[j*stride+j] = diag
			degraded = true
			o.logger.Warn().Int("col", j).Float64("tiny", o.tiny).Msg("lu null pivot replaced by surrogate")
			o.onSurrogate(j)
		}

		if j != n-1 {
			inv, ierr := diag.Inverse()
			if ierr != nil {
				return nil, false, false, fmt.Errorf("pivot in column %d: %w: %w", j, ErrSingular, ierr)
			}
			for i = n - 1; i > j; i-- {
				d[i*stride+j] = d[i*stride+j].Mul(inv)
			}
		}
	}

	return index, even, degraded, nil
}

// invertDiagonal returns U[i][i]⁻¹ for every i of a packed factorization.
// Errors: ErrSingular when a diagonal element has no inverse.
func invertDiagonal[T algebra.Element[T]](lu []T, stride, n int) ([]T, error) {
	out := make([]T, n)
	for i := 0; i < n; i++ {
		inv, err := lu[i*stride+i].Inverse()
		if err != nil {
			return nil, fmt.Errorf("diagonal %d: %w: %w", i, ErrSingular, err)
		}
		out[i] = inv
	}

	return out, nil
}

// substitute solves L·U·x = b for column bCol of the row-major buffer b,
// which must already be permuted like the factorization. The solution
// overwrites the column. lu and b may be the same buffer when the right-hand
// columns live in the augmented part (bCol >= n).
//
// Complexity: O(n^2).
func substitute[T algebra.Element[T]](lu []T, luStride int, dinv []T, b []T, bStride, bCol, n int) {
	var (
		i, k int
		sum  T
	)
	// Forward: L has an implicit unit diagonal.
	for i = 0; i < n; i++ {
		sum = b[i*bStride+bCol]
		for k = 0; k < i; k++ {
			sum = sum.Sub(lu[i*luStride+k].Mul(b[k*bStride+bCol]))
		}
		b[i*bStride+bCol] = sum
	}
	// Back.
	for i = n - 1; i >= 0; i-- {
		sum = b[i*bStride+bCol]
		for k = i + 1; k < n; k++ {
			sum = sum.Sub(lu[i*luStride+k].Mul(b[k*bStride+bCol]))
		}
		b[i*bStride+bCol] = dinv[i].Mul(sum)
	}
}

// LU is a packed Crout factorization P·A = L·U of a square matrix.
// L has an implicit unit diagonal and lives strictly below the diagonal of the
// packed storage; U occupies the diagonal and above.
//
// An LU is read-only after construction and safe for concurrent Solve calls
// on distinct right-hand sides.
type LU[T algebra.Element[T]] struct {
	lu       *SquareMatrix[T]
	dinv     []T
	index    []int
	even     bool
	degraded bool
}

// DecomposeLU factors work in place and returns the factorization, which keeps
// referencing work's storage. The original contents of work are destroyed,
// including on error; pass a Clone to keep them.
//
// Options: WithPivotPolicy/WithSurrogatePivot, WithTinyValue, WithLogger,
// WithOnDecompose, WithOnPivot, WithOnSurrogate.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (storage invariant broken).
//   - ErrSingular: a row with no non-null entry, or a null pivot under PivotFail.
//
// Complexity: O(n^3).
func DecomposeLU[T algebra.Element[T]](work *SquareMatrix[T], opts ...Option) (*LU[T], error) {
	if work == nil || work.Matrix == nil {
		return nil, matrixErrorf(opLU, ErrNilMatrix)
	}
	if err := work.CheckShape(); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	n := work.r
	o.onDecompose(n)
	o.logger.Debug().Int("n", n).Msg("lu decomposition")

	index, even, degraded, err := crout(work.data, n, n, work.zero, o)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	dinv, err := invertDiagonal(work.data, n, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	return &LU[T]{lu: work, dinv: dinv, index: index, even: even, degraded: degraded}, nil
}

// LU factors a copy of s; s itself is left unchanged.
func (s *SquareMatrix[T]) LU(opts ...Option) (*LU[T], error) {
	if s == nil || s.Matrix == nil {
		return nil, matrixErrorf(opLU, ErrNilMatrix)
	}

	return DecomposeLU(s.Clone(), opts...)
}

// Determinant returns det(s) from the LU diagonal and the pivot parity.
// A singular matrix yields the zero element and no error.
// s is not modified.
func (s *SquareMatrix[T]) Determinant(opts ...Option) (T, error) {
	f, err := s.LU(opts...)
	if err != nil {
		if errors.Is(err, ErrSingular) {
			return s.zero.Copy(), nil
		}
		var z T

		return z, matrixErrorf(opDet, err)
	}

	return f.Determinant(), nil
}

// Size returns n.
func (f *LU[T]) Size() int { return len(f.index) }

// Pivots returns a copy of the pivot record: entry j is the row swapped into
// position j during step j.
func (f *LU[T]) Pivots() []int {
	out := make([]int, len(f.index))
	copy(out, f.index)

	return out
}

// EvenPermutation reports whether an even number of row swaps occurred.
func (f *LU[T]) EvenPermutation() bool { return f.even }

// Degraded reports whether a surrogate diagonal was substituted for a null
// pivot. Results derived from a degraded factorization are finite but may be
// meaningless for genuinely singular input.
func (f *LU[T]) Degraded() bool { return f.degraded }

// Packed returns a copy of the packed L\U storage.
func (f *LU[T]) Packed() *SquareMatrix[T] { return f.lu.Clone() }

// Permutation returns perm such that row i of L·U equals row perm[i] of the
// original matrix.
func (f *LU[T]) Permutation() []int {
	perm := make([]int, len(f.index))
	for i := range perm {
		perm[i] = i
	}
	for j, p := range f.index {
		perm[j], perm[p] = perm[p], perm[j]
	}

	return perm
}

// Lower returns L with its unit diagonal made explicit.
func (f *LU[T]) Lower() *SquareMatrix[T] {
	n := f.Size()
	out := &SquareMatrix[T]{Matrix: f.lu.like(n, n)}
	one := f.lu.zero.Identity()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			out.data[i*n+j] = f.lu.data[i*n+j].Copy()
		}
		out.data[i*n+i] = one.Copy()
	}

	return out
}

// Upper returns U.
func (f *LU[T]) Upper() *SquareMatrix[T] {
	n := f.Size()
	out := &SquareMatrix[T]{Matrix: f.lu.like(n, n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			out.data[i*n+j] = f.lu.data[i*n+j].Copy()
		}
	}

	return out
}

// Determinant returns the product of U's diagonal, negated for an odd
// permutation. For n == 0 it is the multiplicative identity.
func (f *LU[T]) Determinant() T {
	n := f.Size()
	det := f.lu.zero.Identity()
	for i := 0; i < n; i++ {
		det = det.Mul(f.lu.data[i*n+i])
	}
	if !f.even {
		det = det.Scale(-1)
	}

	return det
}

// SolveInPlace overwrites every column b_j of b with the solution of A·x = b_j.
// Errors: ErrNilMatrix; ErrShapeMismatch when b.Rows() != n.
// Complexity: O(n^2 · b.Cols()).
func (f *LU[T]) SolveInPlace(b *Matrix[T]) error {
	if b == nil {
		return matrixErrorf(opSolve, ErrNilMatrix)
	}
	n := f.Size()
	if b.r != n {
		return matrixErrorf(opSolve, fmt.Errorf("%d right-hand rows for size %d: %w", b.r, n, ErrShapeMismatch))
	}
	for j, p := range f.index {
		swapRows(b.data, b.c, j, p)
	}
	for col := 0; col < b.c; col++ {
		substitute(f.lu.data, n, f.dinv, b.data, b.c, col, n)
	}

	return nil
}

// Solve returns X with A·X = b; b is not modified.
func (f *LU[T]) Solve(b *Matrix[T]) (*Matrix[T], error) {
	if b == nil {
		return nil, matrixErrorf(opSolve, ErrNilMatrix)
	}
	x := b.Clone()
	if err := f.SolveInPlace(x); err != nil {
		return nil, err
	}

	return x, nil
}

// SolveVector returns x with A·x = b; b is not modified.
// Errors: ErrShapeMismatch when len(b) != n.
func (f *LU[T]) SolveVector(b []T) ([]T, error) {
	n := f.Size()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	col := f.lu.like(n, 1)
	for i, v := range b {
		col.data[i] = v.Copy()
	}
	if err := f.SolveInPlace(col); err != nil {
		return nil, err
	}

	return col.data, nil
}

// Inverse returns A⁻¹ by solving against the identity.
func (f *LU[T]) Inverse() (*SquareMatrix[T], error) {
	n := f.Size()
	inv := &SquareMatrix[T]{Matrix: f.lu.like(n, n)}
	inv.SetIdentity()
	if err := f.SolveInPlace(inv.Matrix); err != nil {
		return nil, err
	}

	return inv, nil
}
