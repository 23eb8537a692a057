// SPDX-License-Identifier: MIT

// Package vector provides a fixed-length real coordinate vector and an
// orthonormal-basis helper that interoperate with package matrix.
//
// Mutating methods (Add, Scale, ProjectOn, ...) change the receiver in place
// and return an error only when the operand lengths disagree or a division
// by a zero magnitude would occur. Use Clone to keep the original.
package vector

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/matrix"
)

// Vector is a real coordinate tuple.
type Vector struct {
	c []float64
}

// New returns the zero vector of length n (n < 0 is treated as 0).
func New(n int) *Vector {
	return &Vector{c: make([]float64, max(n, 0))}
}

// FromSlice copies xs into a new vector.
func FromSlice(xs []float64) *Vector {
	return &Vector{c: append(make([]float64, 0, len(xs)), xs...)}
}

// Size returns the number of components.
func (v *Vector) Size() int { return len(v.c) }

// Data returns a copy of the components.
func (v *Vector) Data() []float64 { return append([]float64(nil), v.c...) }

// Component returns component i.
// Errors: ErrOutOfRange.
func (v *Vector) Component(i int) (float64, error) {
	if i < 0 || i >= len(v.c) {
		return 0, fmt.Errorf("Vector.Component(%d) of %d: %w", i, len(v.c), ErrOutOfRange)
	}

	return v.c[i], nil
}

// SetComponent sets component i.
// Errors: ErrOutOfRange.
func (v *Vector) SetComponent(i int, x float64) error {
	if i < 0 || i >= len(v.c) {
		return fmt.Errorf("Vector.SetComponent(%d) of %d: %w", i, len(v.c), ErrOutOfRange)
	}
	v.c[i] = x

	return nil
}

func (v *Vector) at(i int) float64 {
	if i < len(v.c) {
		return v.c[i]
	}

	return 0
}

// X returns the first component, or 0 for an empty vector.
func (v *Vector) X() float64 { return v.at(0) }

// Y returns the second component, or 0 when absent.
func (v *Vector) Y() float64 { return v.at(1) }

// Z returns the third component, or 0 when absent.
func (v *Vector) Z() float64 { return v.at(2) }

// sameSize fails with ErrShapeMismatch unless every operand has v's length.
func (v *Vector) sameSize(op string, os ...*Vector) error {
	for _, o := range os {
		if o == nil || len(o.c) != len(v.c) {
			n := -1
			if o != nil {
				n = len(o.c)
			}

			return fmt.Errorf("Vector.%s: length %d vs %d: %w", op, len(v.c), n, ErrShapeMismatch)
		}
	}

	return nil
}

// Dot returns Σ v_i·o_i.
func (v *Vector) Dot(o *Vector) (float64, error) {
	if err := v.sameSize("Dot", o); err != nil {
		return 0, err
	}

	return v.dot(o), nil
}

func (v *Vector) dot(o *Vector) float64 {
	var sum float64
	for i, x := range v.c {
		sum += x * o.c[i]
	}

	return sum
}

// AddScaled performs v += f·o.
func (v *Vector) AddScaled(o *Vector, f float64) error {
	if err := v.sameSize("AddScaled", o); err != nil {
		return err
	}
	for i := range v.c {
		v.c[i] += f * o.c[i]
	}

	return nil
}

// Add performs v += o.
func (v *Vector) Add(o *Vector) error { return v.AddScaled(o, 1) }

// Sub performs v -= o.
func (v *Vector) Sub(o *Vector) error { return v.AddScaled(o, -1) }

// Scale performs v *= f.
func (v *Vector) Scale(f float64) {
	for i := range v.c {
		v.c[i] *= f
	}
}

// MultiplyByComponents performs v_i *= o_i.
func (v *Vector) MultiplyByComponents(o *Vector) error {
	if err := v.sameSize("MultiplyByComponents", o); err != nil {
		return err
	}
	for i := range v.c {
		v.c[i] *= o.c[i]
	}

	return nil
}

// SetSum overwrites v with a + b.
func (v *Vector) SetSum(a, b *Vector) error {
	if err := v.sameSize("SetSum", a, b); err != nil {
		return err
	}
	for i := range v.c {
		v.c[i] = a.c[i] + b.c[i]
	}

	return nil
}

// SetDifference overwrites v with a - b.
func (v *Vector) SetDifference(a, b *Vector) error {
	if err := v.sameSize("SetDifference", a, b); err != nil {
		return err
	}
	for i := range v.c {
		v.c[i] = a.c[i] - b.c[i]
	}

	return nil
}

// AbsSquared returns v·v.
func (v *Vector) AbsSquared() float64 { return v.dot(v) }

// Abs returns the Euclidean length.
func (v *Vector) Abs() float64 { return math.Sqrt(v.AbsSquared()) }

// DistanceTo returns |v - o|.
func (v *Vector) DistanceTo(o *Vector) (float64, error) {
	if err := v.sameSize("DistanceTo", o); err != nil {
		return 0, err
	}
	var d2 float64
	for i := range v.c {
		d := v.c[i] - o.c[i]
		d2 += d * d
	}

	return math.Sqrt(d2), nil
}

// ProjectOn replaces v with its projection (v·o/|o|²)·o.
// Errors: ErrShapeMismatch; ErrDivideByZero when o has zero magnitude
// (v is left unchanged).
func (v *Vector) ProjectOn(o *Vector) error {
	if err := v.sameSize("ProjectOn", o); err != nil {
		return err
	}
	o2 := o.AbsSquared()
	if o2 == 0 {
		return fmt.Errorf("Vector.ProjectOn: %w", ErrDivideByZero)
	}
	f := v.dot(o) / o2
	for i := range v.c {
		v.c[i] = f * o.c[i]
	}

	return nil
}

// OrthogonalizeTo removes from v its component along o (one Gram-Schmidt
// step): v -= (v·o/|o|²)·o.
// Errors: ErrShapeMismatch; ErrDivideByZero when o has zero magnitude.
func (v *Vector) OrthogonalizeTo(o *Vector) error {
	if err := v.sameSize("OrthogonalizeTo", o); err != nil {
		return err
	}
	o2 := o.AbsSquared()
	if o2 == 0 {
		return fmt.Errorf("Vector.OrthogonalizeTo: %w", ErrDivideByZero)
	}

	return v.AddScaled(o, -v.dot(o)/o2)
}

// Normalize scales v to unit length.
// Errors: ErrDivideByZero for the zero vector.
func (v *Vector) Normalize() error {
	a := v.Abs()
	if a == 0 {
		return fmt.Errorf("Vector.Normalize: %w", ErrDivideByZero)
	}
	v.Scale(1 / a)

	return nil
}

// IsNull reports whether every component is zero.
func (v *Vector) IsNull() bool {
	for _, x := range v.c {
		if x != 0 {
			return false
		}
	}

	return true
}

// Zero sets every component to 0.
func (v *Vector) Zero() { v.Fill(0) }

// Fill sets every component to x.
func (v *Vector) Fill(x float64) {
	for i := range v.c {
		v.c[i] = x
	}
}

// Copy overwrites v with o's components, adopting o's length.
func (v *Vector) Copy(o *Vector) { v.c = append(v.c[:0:0], o.c...) }

// Clone returns an independent copy.
func (v *Vector) Clone() *Vector { return FromSlice(v.c) }

// AsRowMatrix returns v as a 1×n matrix.
func (v *Vector) AsRowMatrix() *matrix.Matrix[algebra.Real] {
	m, _ := matrix.FromArray([][]algebra.Real{algebra.Reals(v.c)})

	return m
}

// AsColumnMatrix returns v as an n×1 matrix.
func (v *Vector) AsColumnMatrix() *matrix.Matrix[algebra.Real] {
	m, _ := matrix.New[algebra.Real](len(v.c), 1)
	// Column length equals the row count by construction.
	_ = m.SetCol(0, algebra.Reals(v.c))

	return m
}

// FromRow copies row i of m into a new vector.
// Errors: ErrNilMatrix, ErrOutOfRange.
func FromRow(m *matrix.Matrix[algebra.Real], i int) (*Vector, error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}
	row, err := m.Row(i)
	if err != nil {
		return nil, err
	}

	return &Vector{c: algebra.Floats(row)}, nil
}

// FromColumn copies column j of m into a new vector.
// Errors: ErrNilMatrix, ErrOutOfRange.
func FromColumn(m *matrix.Matrix[algebra.Real], j int) (*Vector, error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}
	col, err := m.Col(j)
	if err != nil {
		return nil, err
	}

	return &Vector{c: algebra.Floats(col)}, nil
}

// String formats v as (x, y, ...).
func (v *Vector) String() string {
	parts := make([]string, len(v.c))
	for i, x := range v.c {
		parts[i] = fmt.Sprintf("%g", x)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
