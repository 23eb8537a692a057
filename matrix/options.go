// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for decomposition, inversion and
// solving. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The null-pivot policy is explicit. PivotFail (default) reports
//     ErrSingular; PivotSurrogate keeps going with Identity()·tiny on the
//     diagonal and marks the LU as degraded.
//   - Hooks observe the algorithm; they never alter it.
package matrix

import (
	"math"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTinyValue is the magnitude of the surrogate diagonal substituted
	// for a null pivot under PivotSurrogate.
	DefaultTinyValue = 1e-20

	// DefaultPivotPolicy reports a null pivot column as ErrSingular.
	DefaultPivotPolicy = PivotFail

	// DefaultStrategy decomposes once and back-substitutes.
	DefaultStrategy = StrategyLU
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicTinyInvalid     = "matrix: WithTinyValue: tiny must be finite and > 0"
	panicPolicyInvalid   = "matrix: WithPivotPolicy: unknown policy"
	panicStrategyInvalid = "matrix: WithStrategy: unknown strategy"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	tiny     float64     // surrogate pivot magnitude; DefaultTinyValue
	policy   PivotPolicy // DefaultPivotPolicy
	strategy Strategy    // DefaultStrategy

	logger zerolog.Logger // zerolog.Nop() unless WithLogger

	onDecompose func(n int)        // once per decomposition pass
	onPivot     func(col, row int) // row swapped into position col
	onSurrogate func(col int)      // surrogate diagonal substituted at col
}

// WithTinyValue sets the surrogate pivot magnitude used by PivotSurrogate.
// Panics unless tiny is finite and strictly positive.
func WithTinyValue(tiny float64) Option {
	if math.IsNaN(tiny) || math.IsInf(tiny, 0) || tiny <= 0 {
		panic(panicTinyInvalid)
	}

	return func(o *Options) { o.tiny = tiny }
}

// WithPivotPolicy selects the null-pivot policy.
// Panics on values other than PivotFail and PivotSurrogate.
func WithPivotPolicy(p PivotPolicy) Option {
	if p != PivotFail && p != PivotSurrogate {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithSurrogatePivot is shorthand for WithPivotPolicy(PivotSurrogate).
func WithSurrogatePivot() Option { return WithPivotPolicy(PivotSurrogate) }

// WithStrategy selects the elimination path for Inverse and Solve*.
// Panics on unknown strategies.
func WithStrategy(s Strategy) Option {
	if s != StrategyLU && s != StrategyGaussJordan {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.strategy = s }
}

// WithLogger routes diagnostic events (pivot swaps at debug level,
// surrogate pivots at warn level) to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithOnDecompose registers a callback fired once per decomposition pass
// with the system size. A nil fn is ignored.
func WithOnDecompose(fn func(n int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onDecompose = fn
		}
	}
}

// WithOnPivot registers a callback fired whenever row is swapped into pivot
// position col. A nil fn is ignored.
func WithOnPivot(fn func(col, row int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onPivot = fn
		}
	}
}

// WithOnSurrogate registers a callback fired whenever a null pivot at col is
// replaced by the surrogate diagonal. A nil fn is ignored.
func WithOnSurrogate(fn func(col int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onSurrogate = fn
		}
	}
}

// TinyValue returns the effective surrogate magnitude.
func (o Options) TinyValue() float64 { return o.tiny }

// PivotPolicy returns the effective null-pivot policy.
func (o Options) PivotPolicy() PivotPolicy { return o.policy }

// Strategy returns the effective elimination strategy.
func (o Options) Strategy() Strategy { return o.strategy }

// NewOptions resolves option setters against documented defaults.
// Last writer wins.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters on top of defaults.
// Hooks default to no-ops so algorithms call them unconditionally.
func gatherOptions(user ...Option) Options {
	o := Options{
		tiny:        DefaultTinyValue,
		policy:      DefaultPivotPolicy,
		strategy:    DefaultStrategy,
		logger:      zerolog.Nop(),
		onDecompose: func(int) {},
		onPivot:     func(int, int) {},
		onSurrogate: func(int) {},
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
