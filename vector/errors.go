// SPDX-License-Identifier: MIT

package vector

import (
	"errors"

	"github.com/katalvlaran/lvlalg/matrix"
)

var (
	// ErrDivideByZero is returned when projecting onto, orthogonalizing
	// against or normalizing a zero-magnitude vector.
	ErrDivideByZero = errors.New("vector: divide by zero")

	// ErrShapeMismatch aliases matrix.ErrShapeMismatch for vector length
	// disagreements so either name matches with errors.Is.
	ErrShapeMismatch = matrix.ErrShapeMismatch

	// ErrOutOfRange aliases matrix.ErrOutOfRange for component indices.
	ErrOutOfRange = matrix.ErrOutOfRange
)
