// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/internal/sysfile"
)

func runSolve(cmd *cobra.Command, fv *flagValues) error {
	sys, opts, err := loadSystem(cmd, fv)
	if err != nil {
		return err
	}
	if len(sys.RHS) == 0 {
		return fmt.Errorf("%s: no right-hand sides (rhs)", fv.file)
	}
	a, err := sys.Square()
	if err != nil {
		return err
	}
	xs, err := a.SolveVectors(sys.Vectors(), opts...)
	if err != nil {
		return err
	}
	out := sysfile.Solutions{Solutions: make([][]float64, len(xs))}
	for i, x := range xs {
		out.Solutions[i] = algebra.Floats(x)
	}

	return sysfile.Encode(cmd.OutOrStdout(), out)
}

func runInvert(cmd *cobra.Command, fv *flagValues) error {
	sys, opts, err := loadSystem(cmd, fv)
	if err != nil {
		return err
	}
	a, err := sys.Square()
	if err != nil {
		return err
	}
	inv, err := a.Inverse(opts...)
	if err != nil {
		return err
	}

	return sysfile.Encode(cmd.OutOrStdout(), sysfile.Inverse{Inverse: sysfile.Rows(inv.Matrix)})
}

func runDet(cmd *cobra.Command, fv *flagValues) error {
	sys, opts, err := loadSystem(cmd, fv)
	if err != nil {
		return err
	}
	a, err := sys.Square()
	if err != nil {
		return err
	}
	det, err := a.Determinant(opts...)
	if err != nil {
		return err
	}

	return sysfile.Encode(cmd.OutOrStdout(), sysfile.Determinant{Determinant: float64(det)})
}

func runLU(cmd *cobra.Command, fv *flagValues) error {
	sys, opts, err := loadSystem(cmd, fv)
	if err != nil {
		return err
	}
	a, err := sys.Square()
	if err != nil {
		return err
	}
	f, err := a.LU(opts...)
	if err != nil {
		return err
	}

	return sysfile.Encode(cmd.OutOrStdout(), sysfile.Factorization{
		Lower:           sysfile.Rows(f.Lower().Matrix),
		Upper:           sysfile.Rows(f.Upper().Matrix),
		Pivots:          f.Pivots(),
		Permutation:     f.Permutation(),
		EvenPermutation: f.EvenPermutation(),
		Degraded:        f.Degraded(),
	})
}
