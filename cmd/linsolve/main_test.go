// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlalg/internal/sysfile"
	"github.com/katalvlaran/lvlalg/matrix"
)

func writeSystem(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sys.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	path := writeSystem(t, "matrix: [[2, 1], [1, 3]]\nrhs: [[3, 5]]\n")

	for _, strategy := range []string{"lu", "gauss-jordan"} {
		out, err := run(t, "solve", "-f", path, "--strategy", strategy)
		require.NoError(t, err)

		var got sysfile.Solutions
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		require.Len(t, got.Solutions, 1)
		require.InDeltaSlice(t, []float64{0.8, 1.4}, got.Solutions[0], 1e-12)
	}
}

func TestInvertDetLUCommands(t *testing.T) {
	path := writeSystem(t, "matrix: [[0, 1], [1, 0]]\n")

	out, err := run(t, "invert", "-f", path)
	require.NoError(t, err)
	var inv sysfile.Inverse
	require.NoError(t, yaml.Unmarshal([]byte(out), &inv))
	require.Equal(t, [][]float64{{0, 1}, {1, 0}}, inv.Inverse)

	out, err = run(t, "det", "-f", path)
	require.NoError(t, err)
	var det sysfile.Determinant
	require.NoError(t, yaml.Unmarshal([]byte(out), &det))
	require.Equal(t, -1.0, det.Determinant)

	out, err = run(t, "lu", "-f", path)
	require.NoError(t, err)
	var f sysfile.Factorization
	require.NoError(t, yaml.Unmarshal([]byte(out), &f))
	require.Equal(t, []int{1, 1}, f.Pivots)
	require.False(t, f.EvenPermutation)
	require.False(t, f.Degraded)
}

func TestSingularAndSurrogate(t *testing.T) {
	path := writeSystem(t, "matrix: [[1, 2], [2, 4]]\nrhs: [[1, 2]]\n")

	_, err := run(t, "solve", "-f", path)
	require.ErrorIs(t, err, matrix.ErrSingular)

	out, err := run(t, "lu", "-f", path, "--pivot", "surrogate", "--tiny", "1e-10")
	require.NoError(t, err)
	var f sysfile.Factorization
	require.NoError(t, yaml.Unmarshal([]byte(out), &f))
	require.True(t, f.Degraded)
	require.Equal(t, 1e-10, f.Upper[1][1])
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "solve")
	require.Error(t, err)

	path := writeSystem(t, "matrix: [[1, 0], [0, 1]]\n")
	_, err = run(t, "solve", "-f", path)
	require.Error(t, err)

	_, err = run(t, "det", "-f", path, "--strategy", "qr")
	require.ErrorIs(t, err, sysfile.ErrInvalidSystem)

	_, err = run(t, "det", "-f", path, "--log-level", "loud")
	require.Error(t, err)
}
