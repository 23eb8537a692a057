// SPDX-License-Identifier: MIT

// Package algebra: Complex, the complex128 element.

package algebra

import (
	"fmt"
	"math/cmplx"
)

// Complex is a complex128 satisfying Element[Complex].
// Abs is the modulus, so pivoting compares moduli.
type Complex complex128

// Compile-time conformance.
var _ Element[Complex] = Complex(0)

// Add returns z + o.
func (z Complex) Add(o Complex) Complex { return z + o }

// Sub returns z - o.
func (z Complex) Sub(o Complex) Complex { return z - o }

// Mul returns z · o.
func (z Complex) Mul(o Complex) Complex { return z * o }

// Scale returns z · f.
func (z Complex) Scale(f float64) Complex { return z * Complex(complex(f, 0)) }

// Inverse returns 1/z, or ErrNotInvertible for z == 0.
func (z Complex) Inverse() (Complex, error) {
	if z == 0 {
		return 0, ErrNotInvertible
	}

	return 1 / z, nil
}

// Abs returns the modulus |z|.
func (z Complex) Abs() float64 { return cmplx.Abs(complex128(z)) }

// IsNull reports z == 0.
func (z Complex) IsNull() bool { return z == 0 }

// Zero returns 0.
func (Complex) Zero() Complex { return 0 }

// Identity returns 1.
func (Complex) Identity() Complex { return 1 }

// Copy returns z.
func (z Complex) Copy() Complex { return z }

// Conj returns the complex conjugate.
func (z Complex) Conj() Complex { return Complex(cmplx.Conj(complex128(z))) }

// String formats with %g.
func (z Complex) String() string { return fmt.Sprintf("%g", complex128(z)) }
