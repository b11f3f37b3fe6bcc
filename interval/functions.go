// SPDX-License-Identifier: MIT

// Package interval: elementary extension functions.
// Each extension lifts a monotone (or piecewise-monotone) scalar function
// to intervals: exact on points, outward-padded on proper intervals, Empty
// when no real result is certain to exist.

package interval

import "math"

// Sqrt returns the interval square root.
//   - Empty input, or a lower bound below zero: Empty. A negative lower
//     bound means a real square root is not certain to exist for every
//     member, so no sound bounded result can be claimed.
//   - Point input: exact point sqrt.
//   - Otherwise [sqrt(lo), sqrt(hi)] padded one ULP per bound.
//
// Complexity: O(1).
func (i Interval) Sqrt() Interval {
	if i.IsEmpty() || i.lo < 0 {
		return Empty()
	}
	if i.IsPoint() {
		return Point(math.Sqrt(i.lo))
	}

	return outward(math.Sqrt(i.lo), math.Sqrt(i.hi))
}

// Exp returns the interval exponential e^i.
//   - Empty input: Empty.
//   - Point input: exact point exp.
//   - Otherwise [exp(lo), exp(hi)] padded one ULP per bound (exp is
//     monotone increasing, so the input bounds map to the output bounds).
//
// Complexity: O(1).
func (i Interval) Exp() Interval {
	if i.IsEmpty() {
		return Empty()
	}
	if i.IsPoint() {
		return Point(math.Exp(i.lo))
	}

	return outward(math.Exp(i.lo), math.Exp(i.hi))
}

// Abs returns the interval absolute value. All branches are exact
// transformations of already-correct bounds, so no padding is applied.
//   - Empty input: Empty.
//   - Point input: exact |lo|.
//   - Straddling zero: [0, max(|lo|, |hi|)].
//   - Otherwise [min(|lo|, |hi|), max(|lo|, |hi|)].
//
// Complexity: O(1).
func (i Interval) Abs() Interval {
	if i.IsEmpty() {
		return Empty()
	}
	if i.IsPoint() {
		return Point(math.Abs(i.lo))
	}
	al, ah := math.Abs(i.lo), math.Abs(i.hi)
	if i.lo <= 0 && 0 <= i.hi {
		return Interval{lo: 0, hi: math.Max(al, ah)}
	}

	return Interval{lo: math.Min(al, ah), hi: math.Max(al, ah)}
}
