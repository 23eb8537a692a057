// SPDX-License-Identifier: MIT

// Package algebra: the Element capability interface.

package algebra

// Element is the algebraic capability set required of matrix elements.
// T is the implementing type itself (F-bounded), e.g. Real implements
// Element[Real].
//
// Contract:
//   - Operations never mutate the receiver or the argument.
//   - Zero and Identity return values "shaped like" the receiver; for
//     scalar types the receiver is irrelevant, for composite types (blocks)
//     it carries the dimension.
//   - Inverse returns ErrNotInvertible (possibly wrapped) for singular
//     elements; this is a runtime condition, not a missing capability.
//   - Abs is non-negative and Abs()==0 iff IsNull() for all provided types.
type Element[T any] interface {
	// Add returns receiver + o.
	Add(o T) T
	// Sub returns receiver - o.
	Sub(o T) T
	// Mul returns receiver · o (operand order is preserved).
	Mul(o T) T
	// Scale returns receiver · f for a real scalar f.
	Scale(f float64) T
	// Inverse returns the multiplicative inverse of the receiver.
	Inverse() (T, error)
	// Abs returns a non-negative magnitude.
	Abs() float64
	// IsNull reports whether the receiver is exactly the additive identity.
	IsNull() bool
	// Zero returns the additive identity.
	Zero() T
	// Identity returns the multiplicative identity.
	Identity() T
	// Copy returns a value that shares no mutable state with the receiver.
	Copy() T
}

// Equal reports whether |a-b| <= tol, measured with the element magnitude.
// Complexity: one Sub and one Abs.
func Equal[T Element[T]](a, b T, tol float64) bool {
	return a.Sub(b).Abs() <= tol
}

// Sum folds xs with Add starting from zero. An empty xs yields zero.
func Sum[T Element[T]](zero T, xs ...T) T {
	acc := zero.Zero()
	for _, x := range xs {
		acc = acc.Add(x)
	}

	return acc
}

// Dot returns Σ a[i]·b[i] (left operand from a). Slices must have equal
// length; the caller validates.
func Dot[T Element[T]](zero T, a, b []T) T {
	acc := zero.Zero()
	for i := range a {
		acc = acc.Add(a[i].Mul(b[i]))
	}

	return acc
}
