// SPDX-License-Identifier: MIT

// Package vector: the Vector container and its operations.

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ivl/interval"
	"github.com/katalvlaran/ivl/parallel"
)

// Formatting literals.
const (
	_fmtOpen  = "("
	_fmtClose = ")"
	_fmtSep   = ", "
)

// Vector is an ordered, fixed-length sequence of intervals. Length is
// immutable after construction; elements are read through At and replaced
// only by constructing a new Vector.
type Vector struct {
	elems []interval.Interval // backing storage, owned by the Vector
}

// New wraps elems in a Vector WITHOUT copying.
//
// Ownership contract: the Vector takes exclusive ownership of elems; the
// caller must not retain a mutable alias. Use FromExact/FromMeasured (or
// copy first) when the slice must remain caller-owned.
//
// Stage 1 (Validate): reject empty input with ErrEmpty.
// Stage 2 (Finalize): alias the slice.
// Complexity: O(1).
func New(elems []interval.Interval) (*Vector, error) {
	if len(elems) == 0 {
		return nil, ErrEmpty
	}

	return &Vector{elems: elems}, nil
}

// FromExact builds a Vector of exact points from vals (copied in).
// Every value is claimed to be a true mathematical point.
// Complexity: O(n).
func FromExact(vals []float64) (*Vector, error) {
	if len(vals) == 0 {
		return nil, ErrEmpty
	}
	elems := make([]interval.Interval, len(vals))
	for k, v := range vals {
		elems[k] = interval.Point(v)
	}

	return &Vector{elems: elems}, nil
}

// FromMeasured builds a Vector from approximate inputs (copied in): every
// value is padded one ULP on each side via interval.Measured.
// Complexity: O(n).
func FromMeasured(vals []float64) (*Vector, error) {
	if len(vals) == 0 {
		return nil, ErrEmpty
	}
	elems := make([]interval.Interval, len(vals))
	for k, v := range vals {
		elems[k] = interval.Measured(v)
	}

	return &Vector{elems: elems}, nil
}

// Len returns the number of elements.
// Complexity: O(1).
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}

	return len(v.elems)
}

// At returns element i or ErrOutOfRange.
// Complexity: O(1).
func (v *Vector) At(i int) (interval.Interval, error) {
	if v == nil {
		return interval.Empty(), ErrNilVector
	}
	if i < 0 || i >= len(v.elems) {
		return interval.Empty(), fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.elems[i], nil
}

// Slice returns a copy of the elements. The copy is caller-owned; mutating
// it does not affect the Vector.
// Complexity: O(n).
func (v *Vector) Slice() []interval.Interval {
	if v == nil {
		return nil
	}
	cp := make([]interval.Interval, len(v.elems))
	copy(cp, v.elems)

	return cp
}

// Add returns v + o element-wise. Lengths must match.
// Dispatches through parallel.For with complexity = element count.
// Complexity: O(n).
func (v *Vector) Add(o *Vector, opts ...parallel.Option) (*Vector, error) {
	return v.zip(o, interval.Interval.Add, opts)
}

// Sub returns v − o element-wise. Lengths must match.
// Dispatches through parallel.For with complexity = element count.
// Complexity: O(n).
func (v *Vector) Sub(o *Vector, opts ...parallel.Option) (*Vector, error) {
	return v.zip(o, interval.Interval.Sub, opts)
}

// zip applies a binary interval operator element-wise into a fresh Vector.
// Per-index writes land in disjoint cells of the result buffer, so the
// parallel branch needs no locking.
func (v *Vector) zip(o *Vector, op func(interval.Interval, interval.Interval) interval.Interval, opts []parallel.Option) (*Vector, error) {
	if v == nil || o == nil {
		return nil, ErrNilVector
	}
	if len(v.elems) != len(o.elems) {
		return nil, fmt.Errorf("len %d vs %d: %w", len(v.elems), len(o.elems), ErrDimensionMismatch)
	}
	n := len(v.elems)
	out := make([]interval.Interval, n)
	cfg := parallel.Resolve(opts...)
	_ = parallel.For(cfg, int64(n), n, func(start, end int) error {
		for k := start; k < end; k++ {
			out[k] = op(v.elems[k], o.elems[k])
		}

		return nil
	})

	return &Vector{elems: out}, nil
}

// Scale returns s·v element-wise.
// Dispatches through parallel.For with complexity = element count.
// Complexity: O(n).
func (v *Vector) Scale(s interval.Interval, opts ...parallel.Option) (*Vector, error) {
	if v == nil {
		return nil, ErrNilVector
	}
	n := len(v.elems)
	out := make([]interval.Interval, n)
	cfg := parallel.Resolve(opts...)
	_ = parallel.For(cfg, int64(n), n, func(start, end int) error {
		for k := start; k < end; k++ {
			out[k] = s.Mul(v.elems[k])
		}

		return nil
	})

	return &Vector{elems: out}, nil
}

// Dot returns the interval dot product v · o. Lengths must match.
//
// Accumulation is strictly sequential in index order: interval summation
// is not associative under outward rounding, so the order is part of the
// contract and must be identical on every call for determinism.
// Complexity: O(n).
func (v *Vector) Dot(o *Vector) (interval.Interval, error) {
	if v == nil || o == nil {
		return interval.Empty(), ErrNilVector
	}
	if len(v.elems) != len(o.elems) {
		return interval.Empty(), fmt.Errorf("len %d vs %d: %w", len(v.elems), len(o.elems), ErrDimensionMismatch)
	}
	if len(v.elems) == 0 {
		return interval.Empty(), ErrEmpty
	}
	acc := v.elems[0].Mul(o.elems[0])
	for k := 1; k < len(v.elems); k++ {
		acc = acc.Add(v.elems[k].Mul(o.elems[k]))
	}

	return acc, nil
}

// Norm2 returns the squared Euclidean norm: the self dot product.
// Computed on demand, never cached. A nil receiver yields Empty.
// Complexity: O(n).
func (v *Vector) Norm2() interval.Interval {
	n2, err := v.Dot(v)
	if err != nil {
		return interval.Empty()
	}

	return n2
}

// Norm returns the Euclidean norm: Sqrt of Norm2. For vectors of exact
// points the point fast paths keep this exact (e.g. (3,4) has norm 5).
// Complexity: O(n).
func (v *Vector) Norm() interval.Interval {
	return v.Norm2().Sqrt()
}

// String renders the vector as a parenthesized comma list, one interval
// per element. Intended for diagnostics, not hot paths.
// Complexity: O(n).
func (v *Vector) String() string {
	if v == nil {
		return _fmtOpen + _fmtClose
	}
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for k, e := range v.elems {
		if k > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(e.String())
	}
	b.WriteString(_fmtClose)

	return b.String()
}
