// SPDX-License-Identifier: MIT
// Package algebra_test covers the Real and Complex element implementations.
package algebra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/algebra"
)

// TestReal_RingOperations checks the basic arithmetic and identities.
func TestReal_RingOperations(t *testing.T) {
	a, b := algebra.Real(3), algebra.Real(-2)

	require.Equal(t, algebra.Real(1), a.Add(b))
	require.Equal(t, algebra.Real(5), a.Sub(b))
	require.Equal(t, algebra.Real(-6), a.Mul(b))
	require.Equal(t, algebra.Real(7.5), a.Scale(2.5))
	require.Equal(t, 2.0, b.Abs())
	require.Equal(t, algebra.Real(0), a.Zero())
	require.Equal(t, algebra.Real(1), a.Identity())
	require.True(t, a.Zero().IsNull())
	require.False(t, a.IsNull())
	require.Equal(t, a, a.Copy())
}

// TestReal_Inverse checks 1/x and the zero case.
func TestReal_Inverse(t *testing.T) {
	inv, err := algebra.Real(4).Inverse()
	require.NoError(t, err)
	require.Equal(t, algebra.Real(0.25), inv)

	_, err = algebra.Real(0).Inverse()
	require.ErrorIs(t, err, algebra.ErrNotInvertible)
}

// TestComplex_Operations checks modulus, inverse and conjugate.
func TestComplex_Operations(t *testing.T) {
	z := algebra.Complex(3 + 4i)

	require.Equal(t, 5.0, z.Abs())
	require.Equal(t, algebra.Complex(3-4i), z.Conj())
	require.Equal(t, algebra.Complex(6+8i), z.Scale(2))
	require.Equal(t, algebra.Complex(-7+24i), z.Mul(z))

	inv, err := z.Inverse()
	require.NoError(t, err)
	require.True(t, algebra.Equal(z.Mul(inv), z.Identity(), 1e-15))

	_, err = algebra.Complex(0).Inverse()
	require.ErrorIs(t, err, algebra.ErrNotInvertible)
}

// TestHelpers covers Equal, Sum, Dot and the slice converters.
func TestHelpers(t *testing.T) {
	require.True(t, algebra.Equal(algebra.Real(1), algebra.Real(1+1e-13), 1e-12))
	require.False(t, algebra.Equal(algebra.Real(1), algebra.Real(1.1), 1e-12))

	xs := algebra.Reals([]float64{1, 2, 3})
	require.Equal(t, algebra.Real(6), algebra.Sum(algebra.Real(0), xs...))
	require.Equal(t, algebra.Real(14), algebra.Dot(algebra.Real(0), xs, xs))
	require.Equal(t, []float64{1, 2, 3}, algebra.Floats(xs))
	require.Equal(t, algebra.Real(0), algebra.Sum(algebra.Real(0)))

	require.Equal(t, "1.5", algebra.Real(1.5).String())
	require.False(t, math.IsNaN(algebra.Complex(1i).Abs()))
}
