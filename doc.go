// Package lvlalg is a small, generic linear-algebra engine for square
// systems whose entries are any algebraic element: real numbers, complex
// numbers, or whole matrices used as blocks.
//
// 🚀 What is lvlalg?
//
//	A pure-Go library that brings together:
//		• Element contract: one interface for scalars, complex values and blocks
//		• Dense containers: generic rectangular and square matrices
//		• Factorization: Crout LU with partial pivoting and reusable factors
//		• Solvers: LU or Gauss–Jordan, batched right-hand sides, inverses
//		• Vectors: projections, Gram–Schmidt bases, basis-level solves
//
// ✨ Why choose lvlalg?
//
//   - Non-commutative safe: every product keeps its operand order
//   - Explicit failure: a null pivot is ErrSingular unless you opt in to
//     the surrogate policy
//   - Observable: zerolog logger and hooks through functional options
//
// Under the hood, everything is organized under these subpackages:
//
//	algebra/          — Element contract plus Real and Complex scalars
//	matrix/           — Matrix, SquareMatrix, LU, Gauss–Jordan and solvers
//	vector/           — real Vector and Basis on top of matrix
//	block/            — fixed-size square blocks usable as matrix entries
//	internal/sysfile/ — YAML system files for the linsolve CLI
//	cmd/linsolve/     — solve, invert, det and lu from the command line
//
// Quick example, x+y=3 and x−y=1:
//
//	A = │1  1│   b = │3│   ⇒   x = │2│
//	    │1 −1│       │1│           │1│
//
//	go get github.com/katalvlaran/lvlalg/matrix
package lvlalg
