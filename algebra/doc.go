// SPDX-License-Identifier: MIT

// Package algebra defines the capability set a matrix element must satisfy.
//
// The matrix package does not work on float64 directly. Every algorithm
// (LU, Gauss-Jordan, inversion, solving) is written once against Element[T],
// so the same code serves plain reals, complex numbers and composite
// elements such as square blocks (see package block).
//
// What an element must provide:
//
//   - Add, Sub, Mul            ring operations (Mul need not commute);
//   - Scale                    multiplication by a real scalar;
//   - Inverse                  partial multiplicative inverse (ErrNotInvertible);
//   - Abs                      non-negative magnitude used for pivoting;
//   - IsNull                   exact additive-identity test;
//   - Zero, Identity           identities shaped like the receiver;
//   - Copy                     detached copy stored into matrix cells.
//
// Elements are treated as immutable values: every operation returns a new
// value and leaves its operands untouched.
//
// Provided implementations: Real (float64) and Complex (complex128).
package algebra
