// SPDX-License-Identifier: MIT

// Package algebra: sentinel errors for element-level operations.
// Callers match them with errors.Is; implementations may wrap with context.

package algebra

import "errors"

// ErrNotInvertible is returned by Element.Inverse when the element has no
// multiplicative inverse (zero real, zero complex, singular block, ...).
var ErrNotInvertible = errors.New("algebra: element is not invertible")
