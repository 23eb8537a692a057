// SPDX-License-Identifier: MIT

// Package block provides Block, a square real matrix that is itself an
// algebra.Element, so matrices of blocks run through the same decomposition,
// inversion and solving code as matrices of scalars.
//
// Purpose:
//   - Exercise the non-commutative path of the matrix algorithms
//     (Mul keeps operand order; Inverse is a full matrix inverse).
//   - Provide a shaped zero prototype for matrix.NewLike.
//
// Sizing:
//   - The zero value Block{} is unsized and acts as a universal additive
//     identity: adding it changes nothing, multiplying by it gives zero.
//   - Mixing two sized blocks of different size is a programmer error and
//     panics, as does asking an unsized block for its Identity.
package block

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/matrix"
)

const (
	panicSizeMismatch = "block: size mismatch"
	panicUnsizedIdent = "block: Identity of an unsized block"
)

// Block is an n×n real matrix stored row-major. Operations never mutate the
// receiver or the argument.
type Block struct {
	n    int
	data []float64
}

var _ algebra.Element[Block] = Block{}

// New returns the n×n zero block. A negative n panics.
func New(n int) Block {
	if n < 0 {
		panic(fmt.Sprintf("block: negative size %d", n))
	}

	return Block{n: n, data: make([]float64, n*n)}
}

// IdentityOf returns the n×n identity block.
func IdentityOf(n int) Block {
	b := New(n)
	for i := 0; i < n; i++ {
		b.data[i*n+i] = 1
	}

	return b
}

// FromRows builds a block from square row data (copied).
// Errors: matrix.ErrShapeMismatch for ragged or non-square input.
func FromRows(rows [][]float64) (Block, error) {
	n := len(rows)
	b := New(n)
	for i, r := range rows {
		if len(r) != n {
			return Block{}, fmt.Errorf("block: row %d has %d entries, want %d: %w", i, len(r), n, matrix.ErrShapeMismatch)
		}
		copy(b.data[i*n:(i+1)*n], r)
	}

	return b, nil
}

// MustFromRows is FromRows for literals; it panics on bad input.
func MustFromRows(rows [][]float64) Block {
	b, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return b
}

// Size returns n (0 for the unsized zero).
func (b Block) Size() int { return b.n }

// At returns entry (i, j). Out-of-range indices panic like slice access.
func (b Block) At(i, j int) float64 { return b.data[i*b.n+j] }

// Rows returns a copy of the entries as rows.
func (b Block) Rows() [][]float64 {
	out := make([][]float64, b.n)
	for i := range out {
		out[i] = append([]float64(nil), b.data[i*b.n:(i+1)*b.n]...)
	}

	return out
}

// sized reports whether b carries storage.
func (b Block) sized() bool { return b.data != nil }

// pair resolves the common size of two operands.
func pair(a, o Block) int {
	switch {
	case !a.sized():
		return o.n
	case !o.sized():
		return a.n
	case a.n != o.n:
		panic(panicSizeMismatch)
	default:
		return a.n
	}
}

// entries returns b's data or an n×n zero buffer for the unsized zero.
func entries(b Block, n int) []float64 {
	if b.sized() {
		return b.data
	}

	return make([]float64, n*n)
}

func (b Block) combine(o Block, sign float64) Block {
	if !b.sized() && !o.sized() {
		return Block{}
	}
	n := pair(b, o)
	x, y := entries(b, n), entries(o, n)
	out := New(n)
	for i := range out.data {
		out.data[i] = x[i] + sign*y[i]
	}

	return out
}

// Add returns b + o.
func (b Block) Add(o Block) Block { return b.combine(o, 1) }

// Sub returns b - o.
func (b Block) Sub(o Block) Block { return b.combine(o, -1) }

// Mul returns the matrix product b·o.
func (b Block) Mul(o Block) Block {
	if !b.sized() || !o.sized() {
		if !b.sized() && !o.sized() {
			return Block{}
		}

		return New(pair(b, o))
	}
	n := pair(b, o)
	out := New(n)
	var i, j, k int
	for i = 0; i < n; i++ {
		for k = 0; k < n; k++ {
			f := b.data[i*n+k]
			if f == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				out.data[i*n+j] += f * o.data[k*n+j]
			}
		}
	}

	return out
}

// Scale returns f·b.
func (b Block) Scale(f float64) Block {
	if !b.sized() {
		return Block{}
	}
	out := New(b.n)
	for i, v := range b.data {
		out.data[i] = f * v
	}

	return out
}

// Inverse returns b⁻¹ computed by the matrix package.
// Errors: algebra.ErrNotInvertible for singular or unsized blocks.
func (b Block) Inverse() (Block, error) {
	if !b.sized() || b.n == 0 {
		return Block{}, fmt.Errorf("block: unsized: %w", algebra.ErrNotInvertible)
	}
	rows := make([][]algebra.Real, b.n)
	for i := range rows {
		rows[i] = algebra.Reals(b.data[i*b.n : (i+1)*b.n])
	}
	s, err := matrix.SquareFromArray(rows)
	if err != nil {
		return Block{}, err
	}
	inv, err := s.Inverse()
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return Block{}, fmt.Errorf("block: %v: %w", err, algebra.ErrNotInvertible)
		}

		return Block{}, err
	}
	out := New(b.n)
	inv.Do(func(i, j int, v algebra.Real) bool {
		out.data[i*b.n+j] = float64(v)

		return true
	})

	return out, nil
}

// Abs returns the largest absolute entry.
func (b Block) Abs() float64 {
	var m float64
	for _, v := range b.data {
		m = math.Max(m, math.Abs(v))
	}

	return m
}

// IsNull reports whether every entry is zero.
func (b Block) IsNull() bool {
	for _, v := range b.data {
		if v != 0 {
			return false
		}
	}

	return true
}

// Zero returns a zero block of b's size.
func (b Block) Zero() Block {
	if !b.sized() {
		return Block{}
	}

	return New(b.n)
}

// Identity returns the identity block of b's size.
func (b Block) Identity() Block {
	if !b.sized() {
		panic(panicUnsizedIdent)
	}

	return IdentityOf(b.n)
}

// Copy returns a deep copy.
func (b Block) Copy() Block {
	if !b.sized() {
		return Block{}
	}

	return Block{n: b.n, data: append([]float64(nil), b.data...)}
}

// String formats the block as nested rows, e.g. [[1 0] [0 1]].
func (b Block) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < b.n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, b.data[i*b.n:(i+1)*b.n])
	}
	sb.WriteByte(']')

	return sb.String()
}
