// SPDX-License-Identifier: MIT
// Package matrix_test covers the element-generic arithmetic kernels.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/matrix"
)

func TestAddSub(t *testing.T) {
	a := mustReal(t, [][]float64{{1, 2}, {3, 4}})
	b := mustReal(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireApprox(t, [][]float64{{11, 22}, {33, 44}}, sum)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	requireApprox(t, [][]float64{{9, 18}, {27, 36}}, diff)

	// operands untouched
	requireApprox(t, [][]float64{{1, 2}, {3, 4}}, a)

	_, err = matrix.Add(a, mustReal(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := mustReal(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustReal(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireApprox(t, [][]float64{{58, 64}, {139, 154}}, p)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestMulComplex(t *testing.T) {
	a, err := matrix.FromArray([][]algebra.Complex{{1i, 1}, {0, 2}})
	require.NoError(t, err)
	b, err := matrix.FromArray([][]algebra.Complex{{1i}, {1 + 1i}})
	require.NoError(t, err)

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	v0, _ := p.At(0, 0)
	v1, _ := p.At(1, 0)
	require.Equal(t, algebra.Complex(-1+1+1i), v0) // i·i + (1+i)
	require.Equal(t, algebra.Complex(2+2i), v1)
}

func TestScaleMulVec(t *testing.T) {
	a := mustReal(t, [][]float64{{1, -2}, {0.5, 4}})

	s, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	requireApprox(t, [][]float64{{-2, 4}, {-1, -8}}, s)

	y, err := matrix.MulVec(a, algebra.Reals([]float64{2, 1}))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 5}, algebra.Floats(y))

	_, err = matrix.MulVec(a, algebra.Reals([]float64{1}))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.Scale[algebra.Real](nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAllClose(t *testing.T) {
	a := mustReal(t, [][]float64{{1, 2}, {3, 4}})
	b := mustReal(t, [][]float64{{1 + 1e-12, 2}, {3, 4 - 1e-12}})
	c := mustReal(t, [][]float64{{1.1, 2}, {3, 4}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, c, 1e-6, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, mustReal(t, [][]float64{{1}}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}
