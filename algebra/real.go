// SPDX-License-Identifier: MIT

// Package algebra: Real, the float64 element.

package algebra

import (
	"fmt"
	"math"
)

// Real is a float64 satisfying Element[Real].
type Real float64

// Compile-time conformance.
var _ Element[Real] = Real(0)

// Add returns x + o.
func (x Real) Add(o Real) Real { return x + o }

// Sub returns x - o.
func (x Real) Sub(o Real) Real { return x - o }

// Mul returns x · o.
func (x Real) Mul(o Real) Real { return x * o }

// Scale returns x · f.
func (x Real) Scale(f float64) Real { return x * Real(f) }

// Inverse returns 1/x, or ErrNotInvertible for x == 0.
func (x Real) Inverse() (Real, error) {
	if x == 0 {
		return 0, ErrNotInvertible
	}

	return 1 / x, nil
}

// Abs returns |x|.
func (x Real) Abs() float64 { return math.Abs(float64(x)) }

// IsNull reports x == 0.
func (x Real) IsNull() bool { return x == 0 }

// Zero returns 0.
func (Real) Zero() Real { return 0 }

// Identity returns 1.
func (Real) Identity() Real { return 1 }

// Copy returns x (Real is a plain value).
func (x Real) Copy() Real { return x }

// String formats with %g, matching the matrix dump format.
func (x Real) String() string { return fmt.Sprintf("%g", float64(x)) }

// Reals converts a float64 slice into a new Real slice.
func Reals(xs []float64) []Real {
	out := make([]Real, len(xs))
	for i, v := range xs {
		out[i] = Real(v)
	}

	return out
}

// Floats converts a Real slice into a new float64 slice.
func Floats(xs []Real) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = float64(v)
	}

	return out
}
