// SPDX-License-Identifier: MIT

// Package sysfile reads linear systems from YAML and writes results back.
//
// File layout:
//
//	matrix: [[2, 1], [1, 3]]
//	rhs: [[3, 5]]          # right-hand-side vectors, one per entry
//	strategy: lu           # lu | gauss-jordan
//	pivot: fail            # fail | surrogate
//	tiny: 1e-20            # surrogate magnitude, optional
package sysfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/matrix"
)

// ErrInvalidSystem reports a syntactically valid file whose content cannot
// describe a system (missing matrix, bad option names or values).
var ErrInvalidSystem = errors.New("sysfile: invalid system")

// System is the on-disk representation of A·X = B plus solver settings.
type System struct {
	Matrix   [][]float64 `yaml:"matrix"`
	RHS      [][]float64 `yaml:"rhs,omitempty"`
	Strategy string      `yaml:"strategy,omitempty"`
	Pivot    string      `yaml:"pivot,omitempty"`
	Tiny     float64     `yaml:"tiny,omitempty"`
}

// Load reads and parses the system file at path.
func Load(path string) (*System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sysfile: read %s: %w", path, err)
	}
	sys, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sys, nil
}

// Parse decodes YAML into a System and validates it. Unknown keys are rejected.
func Parse(data []byte) (*System, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sys System
	if err := dec.Decode(&sys); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("sysfile: empty document: %w", ErrInvalidSystem)
		}

		return nil, fmt.Errorf("sysfile: decode: %w", err)
	}
	if err := sys.Validate(); err != nil {
		return nil, err
	}

	return &sys, nil
}

// Validate checks the option names, the tiny value and that a matrix is present.
// Shape problems surface from Square and Vectors as matrix.ErrShapeMismatch.
func (s *System) Validate() error {
	if len(s.Matrix) == 0 {
		return fmt.Errorf("sysfile: no matrix: %w", ErrInvalidSystem)
	}
	if _, err := matrix.ParseStrategy(s.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSystem, err)
	}
	if _, err := matrix.ParsePivotPolicy(s.Pivot); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSystem, err)
	}
	if s.Tiny < 0 || math.IsNaN(s.Tiny) || math.IsInf(s.Tiny, 0) {
		return fmt.Errorf("sysfile: tiny %v: %w", s.Tiny, ErrInvalidSystem)
	}

	return nil
}

// Square returns the coefficient matrix.
// Errors: matrix.ErrShapeMismatch for ragged or non-square data.
func (s *System) Square() (*matrix.SquareMatrix[algebra.Real], error) {
	rows := make([][]algebra.Real, len(s.Matrix))
	for i, r := range s.Matrix {
		rows[i] = algebra.Reals(r)
	}

	return matrix.SquareFromArray(rows)
}

// Vectors returns the right-hand sides.
func (s *System) Vectors() [][]algebra.Real {
	out := make([][]algebra.Real, len(s.RHS))
	for i, r := range s.RHS {
		out[i] = algebra.Reals(r)
	}

	return out
}

// Options translates the solver settings into matrix options.
// The System must have passed Validate.
func (s *System) Options() []matrix.Option {
	strategy, _ := matrix.ParseStrategy(s.Strategy)
	policy, _ := matrix.ParsePivotPolicy(s.Pivot)
	opts := []matrix.Option{matrix.WithStrategy(strategy), matrix.WithPivotPolicy(policy)}
	if s.Tiny > 0 {
		opts = append(opts, matrix.WithTinyValue(s.Tiny))
	}

	return opts
}

// Rows dumps a Real matrix as float rows for encoding.
func Rows(m *matrix.Matrix[algebra.Real]) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		row, _ := m.Row(i)
		out[i] = algebra.Floats(row)
	}

	return out
}

// Solutions is the result document of a solve.
type Solutions struct {
	Solutions [][]float64 `yaml:"solutions"`
}

// Inverse is the result document of an inversion.
type Inverse struct {
	Inverse [][]float64 `yaml:"inverse"`
}

// Determinant is the result document of a determinant query.
type Determinant struct {
	Determinant float64 `yaml:"determinant"`
}

// Factorization is the result document of an LU decomposition.
type Factorization struct {
	Lower           [][]float64 `yaml:"lower"`
	Upper           [][]float64 `yaml:"upper"`
	Pivots          []int       `yaml:"pivots"`
	Permutation     []int       `yaml:"permutation"`
	EvenPermutation bool        `yaml:"even_permutation"`
	Degraded        bool        `yaml:"degraded"`
}

// Encode writes v as a YAML document with two-space indentation.
func Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("sysfile: encode: %w", err)
	}

	return enc.Close()
}
