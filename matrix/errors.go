// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set. All operations return these
// sentinels, wrapped with call context via %w where coordinates help
// diagnostics; tests check them with errors.Is. No operation panics on
// user-triggered conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates non-positive requested dimensions.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g.
	// Add/Sub with different shapes, Mul where a.Cols != b.Rows, or a
	// ragged 2-D input slice.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilVector indicates a nil *vector.Vector argument.
	ErrNilVector = errors.New("matrix: nil vector")
)
