// SPDX-License-Identifier: MIT

// Package interval: the Interval value type, constructors, accessors and
// exact set relations. Arithmetic lives in arithmetic.go, elementary
// extensions in functions.go, rendering in format.go.

package interval

import (
	"fmt"
	"math"
)

// Interval is a closed range [lo, hi] of float64 values with lo ≤ hi.
// The zero value is the exact point [0, 0].
//
// Interval is immutable: every operation returns a new value and never
// mutates its receiver or arguments.
//
// The Empty sentinel (both bounds NaN) represents "no certain result";
// check IsEmpty before trusting bounds of a computed interval.
type Interval struct {
	lo, hi float64 // lower and upper bounds; NaN/NaN for Empty
}

// New constructs [lo, hi] from explicit bounds.
// Stage 1 (Validate): reject lo > hi with ErrInvalidBounds.
// Stage 2 (Finalize): return the value.
// NaN bounds are not rejected: they construct the Empty sentinel, since
// NaN comparisons are always false and IsEmpty reports such values.
// Complexity: O(1).
func New(lo, hi float64) (Interval, error) {
	if lo > hi {
		return Empty(), fmt.Errorf("New(%g,%g): %w", lo, hi, ErrInvalidBounds)
	}

	return Interval{lo: lo, hi: hi}, nil
}

// Point returns the degenerate interval [v, v]: a true mathematical point.
// Use this only when v is claimed exact; for rounded inputs use Measured.
// Complexity: O(1).
func Point(v float64) Interval {
	return Interval{lo: v, hi: v}
}

// Measured returns v padded by one ULP on each side: [v−ULP(v), v+ULP(v)].
// Use this when v is an approximate or previously rounded input whose true
// value may be anywhere within one representable step.
// Note: Measured(0) is the exact point [0, 0] because ULP(0) == 0.
// Complexity: O(1).
func Measured(v float64) Interval {
	u := ULP(v)

	return Interval{lo: v - u, hi: v + u}
}

// Empty returns the "no value" sentinel: both bounds NaN.
// Complexity: O(1).
func Empty() Interval {
	nan := math.NaN()

	return Interval{lo: nan, hi: nan}
}

// Entire returns the unbounded interval (−∞, +∞).
// Complexity: O(1).
func Entire() Interval {
	return Interval{lo: math.Inf(-1), hi: math.Inf(1)}
}

// Lo returns the lower bound (NaN for Empty).
// Complexity: O(1).
func (i Interval) Lo() float64 { return i.lo }

// Hi returns the upper bound (NaN for Empty).
// Complexity: O(1).
func (i Interval) Hi() float64 { return i.hi }

// Mid returns the midpoint (lo+hi)/2, or NaN for Empty.
// Complexity: O(1).
func (i Interval) Mid() float64 {
	if i.IsEmpty() {
		return math.NaN()
	}

	return (i.lo + i.hi) / 2
}

// Width returns hi−lo, or NaN for Empty.
// Complexity: O(1).
func (i Interval) Width() float64 {
	if i.IsEmpty() {
		return math.NaN()
	}

	return i.hi - i.lo
}

// IsEmpty reports whether i is the Empty sentinel: either bound NaN, or
// hi < lo (which no constructor produces, but the check keeps IsEmpty a
// complete validity predicate).
// Complexity: O(1).
func (i Interval) IsEmpty() bool {
	return math.IsNaN(i.lo) || math.IsNaN(i.hi) || i.hi < i.lo
}

// IsPoint reports whether i is degenerate: lo == hi and not Empty.
// A point can arise from an explicit Point construction or incidentally
// when an operation's computed bounds coincide; it is a derived property,
// not a stored flag.
// Complexity: O(1).
func (i Interval) IsPoint() bool {
	return !i.IsEmpty() && i.lo == i.hi
}

// Contains reports whether the real number x lies in i.
// Empty contains nothing.
// Complexity: O(1).
func (i Interval) Contains(x float64) bool {
	return !i.IsEmpty() && i.lo <= x && x <= i.hi
}

// ContainsInterval reports whether o ⊆ i. The Empty interval is a subset
// of everything; nothing non-empty is a subset of Empty.
// Complexity: O(1).
func (i Interval) ContainsInterval(o Interval) bool {
	if o.IsEmpty() {
		return true
	}
	if i.IsEmpty() {
		return false
	}

	return i.lo <= o.lo && o.hi <= i.hi
}

// Intersects reports whether i and o share at least one point.
// Empty intersects nothing.
// Complexity: O(1).
func (i Interval) Intersects(o Interval) bool {
	if i.IsEmpty() || o.IsEmpty() {
		return false
	}

	return i.lo <= o.hi && o.lo <= i.hi
}

// Intersect returns i ∩ o: Empty when the operands are disjoint or either
// is Empty, the exact overlap [max(lo), min(hi)] otherwise. No rounding.
// Complexity: O(1).
func (i Interval) Intersect(o Interval) Interval {
	if !i.Intersects(o) {
		return Empty()
	}

	return Interval{lo: math.Max(i.lo, o.lo), hi: math.Min(i.hi, o.hi)}
}

// Union returns the convex hull of i and o: the tightest interval
// containing both. Union with Empty returns the other operand. No rounding.
// Complexity: O(1).
func (i Interval) Union(o Interval) Interval {
	if i.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return i
	}

	return Interval{lo: math.Min(i.lo, o.lo), hi: math.Max(i.hi, o.hi)}
}

// Equal reports exact bound equality, with Empty equal to Empty.
// It is the equality used by tests and set-law checks; it is NOT a
// tolerance comparison.
// Complexity: O(1).
func (i Interval) Equal(o Interval) bool {
	if i.IsEmpty() || o.IsEmpty() {
		return i.IsEmpty() && o.IsEmpty()
	}

	return i.lo == o.lo && i.hi == o.hi
}
