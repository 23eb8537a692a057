// Package matrix_test contains unit tests for the generic Matrix container.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/matrix"
)

// TestNewInvalidDimensions ensures that New rejects negative dimensions and
// accepts empty ones.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := matrix.New[algebra.Real](-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.New[algebra.Real](5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.New[algebra.Real](0, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 0, r)
	require.Equal(t, 3, c)
	require.NoError(t, m.CheckShape())
}

// TestNewFillsWithZero verifies default initialization to the additive identity.
func TestNewFillsWithZero(t *testing.T) {
	m, err := matrix.New[algebra.Complex](2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.True(t, m.IsNull())
	require.False(t, m.IsSquare())
}

// TestFromArrayRagged ensures ragged input is rejected and valid input copied.
func TestFromArrayRagged(t *testing.T) {
	_, err := matrix.FromArray([][]algebra.Real{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	src := [][]algebra.Real{{1, 2}, {3, 4}}
	m, err := matrix.FromArray(src)
	require.NoError(t, err)
	src[0][0] = 99 // must not leak into m
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, algebra.Real(1), v)

	empty, err := matrix.FromArray[algebra.Real](nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 0, empty.Cols())
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.New[algebra.Real](2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.New[algebra.Real](3, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(2, 1, 7.5))
	v, err := m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, algebra.Real(7.5), v)
}

// TestCloneIndependent verifies Clone produces a deep, independent copy.
func TestCloneIndependent(t *testing.T) {
	m := mustReal(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 100))

	requireApprox(t, [][]float64{{1, 2}, {3, 4}}, m)
	requireApprox(t, [][]float64{{100, 2}, {3, 4}}, cp)
}

// TestZeroFillIsNull covers the in-place fillers.
func TestZeroFillIsNull(t *testing.T) {
	m := mustReal(t, [][]float64{{1, 2}, {3, 4}})
	require.False(t, m.IsNull())

	m.Zero()
	require.True(t, m.IsNull())

	m.Fill(2.5)
	requireApprox(t, [][]float64{{2.5, 2.5}, {2.5, 2.5}}, m)
}

// TestIdentity checks the unit diagonal.
func TestIdentity(t *testing.T) {
	id, err := matrix.Identity[algebra.Real](3)
	require.NoError(t, err)
	requireApprox(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)

	_, err = matrix.Identity[algebra.Real](-2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDoApply checks visiting order, early stop and in-place mapping.
func TestDoApply(t *testing.T) {
	m := mustReal(t, [][]float64{{1, 2}, {3, 4}})

	var seen []float64
	m.Do(func(i, j int, v algebra.Real) bool {
		seen = append(seen, float64(v))

		return len(seen) < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)

	m.Apply(func(i, j int, v algebra.Real) algebra.Real {
		return v.Add(algebra.Real(i * 10))
	})
	requireApprox(t, [][]float64{{1, 2}, {13, 14}}, m)
}

// TestString checks the row-wise dump format.
func TestString(t *testing.T) {
	m := mustReal(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
