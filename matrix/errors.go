// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors (invalid Option values).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap sentinels with an operation tag
// via matrixErrorf ("LU: matrix: singular matrix"); callers still match
// with errors.Is.
//
// ERROR PRIORITY (TestErrorPriority):
// nil -> shape/index/range -> singularity.

var (
	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates negative requested dimensions.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row/Col) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadRange indicates an inverted or out-of-bounds index range
	// passed to SubMatrix.
	ErrBadRange = errors.New("matrix: invalid index range")

	// ErrShapeMismatch indicates incompatible dimensions: a non-square
	// matrix where a square one is required, operands of different shape,
	// a pasted region exceeding the target, or right-hand sides whose length
	// disagrees with the system size.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrSingular is returned when decomposition or elimination finds no
	// pivot of non-zero magnitude: a row whose entries are all null during
	// scale-factor computation, or (under PivotFail) a column whose pivot
	// candidates are all null.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrUnsupported marks an operation that would break a type invariant,
	// e.g. appending rows to a SquareMatrix.
	ErrUnsupported = errors.New("matrix: operation not supported")
)
