// SPDX-License-Identifier: MIT
package sysfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/internal/sysfile"
	"github.com/katalvlaran/lvlalg/matrix"
)

const sample = `
matrix: [[2, 1], [1, 3]]
rhs: [[3, 5], [1, 0]]
strategy: gauss-jordan
pivot: surrogate
tiny: 1e-12
`

func TestParse(t *testing.T) {
	sys, err := sysfile.Parse([]byte(sample))
	require.NoError(t, err)

	want := &sysfile.System{
		Matrix:   [][]float64{{2, 1}, {1, 3}},
		RHS:      [][]float64{{3, 5}, {1, 0}},
		Strategy: "gauss-jordan",
		Pivot:    "surrogate",
		Tiny:     1e-12,
	}
	if diff := cmp.Diff(want, sys); diff != "" {
		t.Fatalf("system mismatch (-want +got):\n%s", diff)
	}

	o := matrix.NewOptions(sys.Options()...)
	require.Equal(t, matrix.StrategyGaussJordan, o.Strategy())
	require.Equal(t, matrix.PivotSurrogate, o.PivotPolicy())
	require.Equal(t, 1e-12, o.TinyValue())

	a, err := sys.Square()
	require.NoError(t, err)
	xs, err := a.SolveVectors(sys.Vectors(), sys.Options()...)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.8, 1.4}, algebra.Floats(xs[0]), 1e-12)
}

func TestParse_Defaults(t *testing.T) {
	sys, err := sysfile.Parse([]byte("matrix: [[1]]\n"))
	require.NoError(t, err)

	o := matrix.NewOptions(sys.Options()...)
	require.Equal(t, matrix.DefaultStrategy, o.Strategy())
	require.Equal(t, matrix.DefaultPivotPolicy, o.PivotPolicy())
	require.Equal(t, matrix.DefaultTinyValue, o.TinyValue())
	require.Empty(t, sys.Vectors())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", sysfile.ErrInvalidSystem},
		{"no matrix", "rhs: [[1]]\n", sysfile.ErrInvalidSystem},
		{"bad strategy", "matrix: [[1]]\nstrategy: qr\n", sysfile.ErrInvalidSystem},
		{"bad pivot", "matrix: [[1]]\npivot: maybe\n", sysfile.ErrInvalidSystem},
		{"negative tiny", "matrix: [[1]]\ntiny: -1\n", sysfile.ErrInvalidSystem},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sysfile.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := sysfile.Parse([]byte("matrix: [[1]]\nmatrx: 2\n"))
	require.Error(t, err, "unknown keys are rejected")

	sys, err := sysfile.Parse([]byte("matrix: [[1, 2], [3]]\n"))
	require.NoError(t, err)
	_, err = sys.Square()
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sys.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	sys, err := sysfile.Load(path)
	require.NoError(t, err)
	require.Len(t, sys.RHS, 2)

	_, err = sysfile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sysfile.Encode(&buf, sysfile.Solutions{Solutions: [][]float64{{0.8, 1.4}}}))

	var back sysfile.Solutions
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, [][]float64{{0.8, 1.4}}, back.Solutions)
	require.Contains(t, buf.String(), "solutions:")
}

func TestRows(t *testing.T) {
	m, err := matrix.FromArray([][]algebra.Real{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, sysfile.Rows(m))
}
