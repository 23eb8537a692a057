// SPDX-License-Identifier: MIT

// Package matrix - Gauss-Jordan elimination on augmented matrices.
//
// Purpose:
//   - Reduce the left n×n block of [A | B] to the identity so the right block
//     reads off A⁻¹·B directly. Used by GaussInverse and StrategyGaussJordan.
//
// Determinism:
//   - Partial pivoting by magnitude; the first row holding the column maximum
//     wins. Rows are processed top to bottom.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
)

// gaussJordan reduces the leading n×n block of the row-major buffer d
// (row width stride >= n) to the identity, applying every row operation to the
// full row.
//
// Implementation:
//   - Stage 1: pick the candidate row with the largest |d[r][col]|, r >= col.
//   - Stage 2: resolve a null pivot per policy, swap it into place.
//   - Stage 3: normalize the pivot row by left-multiplying with the pivot's
//     inverse, then eliminate the column from every other row.
//
// Errors:
//   - ErrSingular when a column has only null candidates under PivotFail, or
//     the pivot has no inverse.
//
// Complexity:
//   - Time O(n^2 · stride), Space O(1) beyond the buffer.
func gaussJordan[T algebra.Element[T]](d []T, stride, n int, zero T, o Options) (degraded bool, err error) {
	var (
		col, r, k int
		best, mag float64
	)
	for col = 0; col < n; col++ {
		p := col
		best = d[col*stride+col].Abs()
		for r = col + 1; r < n; r++ {
			if mag = d[r*stride+col].Abs(); mag > best {
				best, p = mag, r
			}
		}

		if p != col {
			swapRows(d, stride, p, col)
			o.logger.Debug().Int("col", col).Int("row", p).Msg("gauss-jordan pivot swap")
			o.onPivot(col, p)
		}

		pivot := d[col*stride+col]
		if pivot.IsNull() {
			if o.policy != PivotSurrogate {
				return false, fmt.Errorf("null pivot in column %d: %w", col, ErrSingular)
			}
			pivot = zero.Identity().Scale(o.tiny)
			d[col*stride+col] = pivot
			degraded = true
			o.logger.Warn().Int("col", col).Float64("tiny", o.tiny).Msg("gauss-jordan null pivot replaced by surrogate")
			o.onSurrogate(col)
		}

		inv, ierr := pivot.Inverse()
		if ierr != nil {
			return false, fmt.Errorf("pivot in column %d: %w: %w", col, ErrSingular, ierr)
		}
		base := col * stride
		for k = 0; k < stride; k++ {
			d[base+k] = inv.Mul(d[base+k])
		}

		for r = 0; r < n; r++ {
			if r == col {
				continue
			}
			f := d[r*stride+col]
			if f.IsNull() {
				continue
			}
			for k = 0; k < stride; k++ {
				d[r*stride+k] = d[r*stride+k].Sub(f.Mul(d[base+k]))
			}
		}
	}

	return degraded, nil
}

// GaussJordan row-reduces aug in place until its left left×left block is the
// identity; the remaining columns then hold the solutions A⁻¹·B.
//
// Options: WithPivotPolicy, WithTinyValue, WithLogger and the hooks.
// WithOnDecompose fires once per call.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrShapeMismatch when aug.Rows() != left or aug.Cols() < left.
//   - ErrSingular (aug is left partially reduced).
func GaussJordan[T algebra.Element[T]](aug *Matrix[T], left int, opts ...Option) error {
	if err := ValidateNotNil(aug); err != nil {
		return matrixErrorf(opGauss, err)
	}
	if left < 0 || aug.r != left || aug.c < left {
		return matrixErrorf(opGauss, fmt.Errorf("left block %d of %dx%d: %w", left, aug.r, aug.c, ErrShapeMismatch))
	}
	o := gatherOptions(opts...)
	o.onDecompose(left)
	o.logger.Debug().Int("n", left).Int("cols", aug.c).Msg("gauss-jordan elimination")
	if _, err := gaussJordan(aug.data, aug.c, left, aug.zero, o); err != nil {
		return matrixErrorf(opGauss, err)
	}

	return nil
}
