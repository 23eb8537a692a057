// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the container and the
//     decomposition kernels.
//   • Convert between Real matrices, [][]float64 and gonum for comparisons.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/matrix"
)

// tol is the absolute tolerance for well-conditioned float comparisons.
const tol = 1e-9

// approx compares float slices with an absolute tolerance.
var approx = cmpopts.EquateApprox(0, tol)

// mustReal builds a Real matrix from rows or fails the test.
func mustReal(t testing.TB, rows [][]float64) *matrix.Matrix[algebra.Real] {
	t.Helper()
	a := make([][]algebra.Real, len(rows))
	for i, r := range rows {
		a[i] = algebra.Reals(r)
	}
	m, err := matrix.FromArray(a)
	require.NoError(t, err)

	return m
}

// mustSquare builds a Real square matrix from rows or fails the test.
func mustSquare(t testing.TB, rows [][]float64) *matrix.SquareMatrix[algebra.Real] {
	t.Helper()
	s, err := matrix.AsSquare(mustReal(t, rows))
	require.NoError(t, err)

	return s
}

// floats dumps a Real matrix to [][]float64.
func floats(t testing.TB, m *matrix.Matrix[algebra.Real]) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		require.NoError(t, err)
		out[i] = algebra.Floats(row)
	}

	return out
}

// requireApprox fails unless got matches want within tol.
func requireApprox(t testing.TB, want [][]float64, got *matrix.Matrix[algebra.Real]) {
	t.Helper()
	if diff := cmp.Diff(want, floats(t, got), approx); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// requireIdentity fails unless m is the identity within tol.
func requireIdentity(t testing.TB, m *matrix.Matrix[algebra.Real]) {
	t.Helper()
	id, err := matrix.Identity[algebra.Real](m.Rows())
	require.NoError(t, err)
	requireApprox(t, floats(t, id), m)
}

// randomDominant returns an n×n strictly diagonally dominant matrix with a
// fixed seed, hence well-conditioned and non-singular.
func randomDominant(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		var sum float64
		for j := range out[i] {
			if i == j {
				continue
			}
			v := rng.Float64()*2 - 1
			out[i][j] = v
			if v < 0 {
				sum -= v
			} else {
				sum += v
			}
		}
		out[i][i] = sum + 1 + rng.Float64()
	}

	return out
}

// toGonum copies rows into a gonum Dense.
func toGonum(rows [][]float64) *mat.Dense {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	flat := make([]float64, 0, r*c)
	for _, row := range rows {
		flat = append(flat, row...)
	}

	return mat.NewDense(r, c, flat)
}

// fromGonum dumps a gonum matrix to [][]float64.
func fromGonum(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = m.At(i, j)
		}
	}

	return out
}
