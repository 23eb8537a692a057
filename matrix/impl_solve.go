// SPDX-License-Identifier: MIT

// Package matrix - inversion and linear-system solving on SquareMatrix.
//
// Purpose:
//   - Build the transient augmented matrix [A | B] (B = identity for
//     inversion, caller columns for solving), run one elimination pass over
//     it and read the right block back.
//   - k right-hand sides cost one decomposition plus k substitutions.
//
// Strategy:
//   - StrategyLU (default): Crout on the left block with whole augmented rows
//     swapped, then forward/back substitution per right column.
//   - StrategyGaussJordan: full reduction of the left block to the identity.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
)

// validateSystem checks s and the right-hand block dimensions.
func validateSystem[T algebra.Element[T]](s *SquareMatrix[T], rhs *Matrix[T]) error {
	if s == nil || s.Matrix == nil || rhs == nil {
		return ErrNilMatrix
	}
	if err := s.CheckShape(); err != nil {
		return err
	}
	if rhs.r != s.r {
		return fmt.Errorf("%d right-hand rows for size %d: %w", rhs.r, s.r, ErrShapeMismatch)
	}

	return nil
}

// solveAugmented returns X with s·X = rhs using a single elimination pass.
// Neither s nor rhs is modified.
func solveAugmented[T algebra.Element[T]](s *SquareMatrix[T], rhs *Matrix[T], o Options) (*Matrix[T], error) {
	if err := validateSystem(s, rhs); err != nil {
		return nil, err
	}
	n, k := s.r, rhs.c
	aug, err := Augment(s.Matrix, rhs)
	if err != nil {
		return nil, err
	}
	stride := n + k

	o.onDecompose(n)
	o.logger.Debug().Int("n", n).Int("rhs", k).Str("strategy", o.strategy.String()).Msg("solve augmented")

	switch o.strategy {
	case StrategyGaussJordan:
		if _, err = gaussJordan(aug.data, stride, n, aug.zero, o); err != nil {
			return nil, err
		}
	default:
		if _, _, _, err = crout(aug.data, stride, n, aug.zero, o); err != nil {
			return nil, err
		}
		dinv, err := invertDiagonal(aug.data, stride, n)
		if err != nil {
			return nil, err
		}
		for col := n; col < stride; col++ {
			substitute(aug.data, stride, dinv, aug.data, stride, col, n)
		}
	}

	return aug.SubMatrix(0, n, n, stride)
}

// Inverse returns s⁻¹; s is not modified.
//
// Options: WithStrategy (LU by default), WithPivotPolicy, WithTinyValue,
// WithLogger, hooks.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrSingular.
//
// Complexity: O(n^3).
func (s *SquareMatrix[T]) Inverse(opts ...Option) (*SquareMatrix[T], error) {
	if s == nil || s.Matrix == nil {
		return nil, matrixErrorf(opInverse, ErrNilMatrix)
	}
	id := &SquareMatrix[T]{Matrix: s.like(s.r, s.r)}
	id.SetIdentity()
	x, err := solveAugmented(s, id.Matrix, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return &SquareMatrix[T]{Matrix: x}, nil
}

// LUInverse is Inverse forced onto StrategyLU.
func (s *SquareMatrix[T]) LUInverse(opts ...Option) (*SquareMatrix[T], error) {
	return s.Inverse(append(opts[:len(opts):len(opts)], WithStrategy(StrategyLU))...)
}

// GaussInverse is Inverse forced onto StrategyGaussJordan.
func (s *SquareMatrix[T]) GaussInverse(opts ...Option) (*SquareMatrix[T], error) {
	return s.Inverse(append(opts[:len(opts):len(opts)], WithStrategy(StrategyGaussJordan))...)
}

// Invert replaces the contents of s with its inverse. On error s is unchanged.
func (s *SquareMatrix[T]) Invert(opts ...Option) error {
	inv, err := s.Inverse(opts...)
	if err != nil {
		return err
	}
	s.data = inv.data

	return nil
}

// SolveMatrix returns X with s·X = b for every column of b.
// Errors: ErrNilMatrix, ErrShapeMismatch (b.Rows() != n), ErrSingular.
func (s *SquareMatrix[T]) SolveMatrix(b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	x, err := solveAugmented(s, b, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// SolveInPlace overwrites b with the solutions of s·X = b. On error b is
// unchanged.
func (s *SquareMatrix[T]) SolveInPlace(b *Matrix[T], opts ...Option) error {
	x, err := s.SolveMatrix(b, opts...)
	if err != nil {
		return err
	}
	b.data = x.data

	return nil
}

// SolveVectors solves s·x_j = bs[j] for every right-hand side with one
// decomposition pass and returns the solutions in input order. The inputs
// are not modified. No right-hand sides yields an empty result.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (non-square s or len(bs[j]) != n),
//     ErrSingular.
//
// Complexity: O(n^3 + k·n^2).
func (s *SquareMatrix[T]) SolveVectors(bs [][]T, opts ...Option) ([][]T, error) {
	if s == nil || s.Matrix == nil {
		return nil, matrixErrorf(opSolve, ErrNilMatrix)
	}
	n, k := s.r, len(bs)
	if k == 0 {
		return [][]T{}, nil
	}
	rhs := s.like(n, k)
	var i, j int
	for j = 0; j < k; j++ {
		if err := ValidateVecLen(bs[j], n); err != nil {
			return nil, matrixErrorf(opSolve, fmt.Errorf("rhs %d: %w", j, err))
		}
		for i = 0; i < n; i++ {
			rhs.data[i*k+j] = bs[j][i].Copy()
		}
	}

	x, err := s.SolveMatrix(rhs, opts...)
	if err != nil {
		return nil, err
	}
	out := make([][]T, k)
	for j = 0; j < k; j++ {
		out[j] = make([]T, n)
		for i = 0; i < n; i++ {
			out[j][i] = x.data[i*k+j]
		}
	}

	return out, nil
}

// Solve returns x with s·x = b.
func (s *SquareMatrix[T]) Solve(b []T, opts ...Option) ([]T, error) {
	xs, err := s.SolveVectors([][]T{b}, opts...)
	if err != nil {
		return nil, err
	}

	return xs[0], nil
}
