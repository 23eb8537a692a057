// SPDX-License-Identifier: MIT

// Package matrix: small domain enums shared by options and algorithms.
// The Matrix/SquareMatrix/LU types live in matrix.go, square.go and
// impl_lu.go respectively.
package matrix

import "fmt"

// Strategy selects the elimination path used by Inverse and the Solve* family.
type Strategy int

const (
	// StrategyLU decomposes once (Crout, scaled partial pivoting) and
	// back-substitutes every right-hand column.
	StrategyLU Strategy = iota

	// StrategyGaussJordan reduces the augmented matrix to [I | X] directly.
	// Equivalent results, more work per right-hand side.
	StrategyGaussJordan
)

// String returns the stable lower-case name used in config files and logs.
func (s Strategy) String() string {
	switch s {
	case StrategyLU:
		return "lu"
	case StrategyGaussJordan:
		return "gauss-jordan"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a config name back to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "lu":
		return StrategyLU, nil
	case "gauss-jordan", "gauss", "gj":
		return StrategyGaussJordan, nil
	default:
		return 0, fmt.Errorf("matrix: unknown strategy %q", name)
	}
}

// PivotPolicy decides what happens when the best pivot candidate of a column
// is exactly null (the additive identity).
type PivotPolicy int

const (
	// PivotFail returns ErrSingular.
	PivotFail PivotPolicy = iota

	// PivotSurrogate replaces the null diagonal with Identity()·tiny
	// (WithTinyValue, default 1e-20) and continues. The factorization is
	// marked Degraded; results are finite but may be meaningless for
	// genuinely singular input.
	PivotSurrogate
)

// String returns the stable lower-case name used in config files and logs.
func (p PivotPolicy) String() string {
	switch p {
	case PivotFail:
		return "fail"
	case PivotSurrogate:
		return "surrogate"
	default:
		return fmt.Sprintf("pivot(%d)", int(p))
	}
}

// ParsePivotPolicy maps a config name back to a PivotPolicy.
func ParsePivotPolicy(name string) (PivotPolicy, error) {
	switch name {
	case "", "fail":
		return PivotFail, nil
	case "surrogate":
		return PivotSurrogate, nil
	default:
		return 0, fmt.Errorf("matrix: unknown pivot policy %q", name)
	}
}
