// SPDX-License-Identifier: MIT

// Package matrix is a generic dense matrix engine over algebraic elements.
//
// The matrix package provides:
//
//   - Matrix[T]: a row-major rows×cols grid of any T satisfying
//     algebra.Element[T], with bounds-checked access, paste/sub-matrix
//     extraction, transposition, row/column slicing and explicit resizing.
//   - SquareMatrix[T]: the rows==cols specialization carrying the algebra:
//     Crout LU decomposition with scaled partial pivoting, Gauss-Jordan
//     elimination, inversion, determinant and batched linear solving.
//   - LU[T]: a reusable factorization (packed L\U plus pivot record) that
//     serves any number of right-hand sides from one decomposition pass.
//
// Elements are not float64 but values with a capability set (add, scale,
// multiply, invert, magnitude, identities), so the same code solves real,
// complex and block systems.
//
// Ownership: decomposition is destructive. DecomposeLU works in place on the
// matrix the caller passes as working storage; the SquareMatrix.LU,
// Inverse and Solve* conveniences clone first and say so in their docs.
//
// Concurrency: no internal locking and no package-level mutable state.
// Distinct matrices may be used from different goroutines freely; a single
// matrix must not be mutated concurrently.
//
// Errors are package sentinels (see errors.go) matched with errors.Is.
package matrix
