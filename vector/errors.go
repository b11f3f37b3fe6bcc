// SPDX-License-Identifier: MIT

// Package vector: sentinel error set. All operations return these
// sentinels (possibly wrapped with call context via %w) and tests check
// them with errors.Is. No operation panics on user-triggered conditions.

package vector

import "errors"

var (
	// ErrEmpty is returned when a constructor receives no elements.
	ErrEmpty = errors.New("vector: vector must have at least one element")

	// ErrOutOfRange indicates that an element index is outside [0, Len).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates binary operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNilVector indicates a nil *Vector receiver or argument.
	ErrNilVector = errors.New("vector: nil vector")
)
