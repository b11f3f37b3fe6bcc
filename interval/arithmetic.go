// SPDX-License-Identifier: MIT

// Package interval: outward-rounded arithmetic operators.
//
// Purpose:
//   - Implement + − × ÷ and negation so that for all x ∈ A, y ∈ B the true
//     value x op y lies in A.Op(B) — not merely its float approximation.
//
// Design:
//   - Every binary operator follows the same shape: propagate Empty, take
//     the exact point∘point fast path, otherwise compute candidate bounds
//     and pad each outward by its own ULP.
//   - The point fast paths skip padding: a single IEEE-754 operation on two
//     exact doubles is correctly rounded to nearest, so the float result is
//     the canonical representative of the exact one. Overflow is the one
//     exception: an infinite result from finite points falls back to
//     outward bounds.
//   - Infinite bounds stay unpadded (they are already the widest sound
//     bound), an overflowed bound saturates to ±MaxFloat64 on its finite
//     side, and indeterminate 0·∞ and ∞⁄∞ corners resolve to 0. Empty
//     never arises from unbounded or overflowing inputs, only from
//     genuinely undefined results.
//   - Negation is exact in binary floating point and never pads.
//
// Determinism:
//   - No branches depend on anything but the operand bounds; identical
//     inputs always produce bit-identical outputs.

package interval

import "math"

// outward builds [lo, hi] widened by one ULP on each side. It absorbs the
// round-to-nearest error (at most half an ULP) of the bound computation
// that produced lo and hi. A zero bound stays at zero since ULP(0) == 0.
//
// Infinite bounds are handled per side:
//   - a −∞ lower / +∞ upper bound stays as it is: already the widest sound
//     bound, and ULP(±Inf) is NaN so padding would poison the result;
//   - a lower bound that overflowed to +∞ (or an upper bound to −∞) came
//     from a finite value beyond MaxFloat64, so the largest finite value
//     of the matching sign is a sound replacement.
//
// Complexity: O(1).
func outward(lo, hi float64) Interval {
	switch {
	case math.IsInf(lo, 1):
		lo = math.MaxFloat64
	case !math.IsInf(lo, -1):
		lo -= ULP(lo)
	}
	switch {
	case math.IsInf(hi, -1):
		hi = -math.MaxFloat64
	case !math.IsInf(hi, 1):
		hi += ULP(hi)
	}

	return Interval{lo: lo, hi: hi}
}

// exactPoint returns the exact point result of a point∘point operation,
// unless the operation overflowed: an infinite v from finite operands is
// the rounding of a finite true value, so that side falls back to the
// outward bound instead of claiming [±∞, ±∞].
// Complexity: O(1).
func exactPoint(v, a, b float64) Interval {
	if math.IsInf(v, 0) && !math.IsInf(a, 0) && !math.IsInf(b, 0) {
		return outward(v, v)
	}

	return Point(v)
}

// zeroIfNaN resolves an indeterminate corner product or quotient to 0.
// In Mul a NaN corner is always 0·±∞: the zero bound belongs to its
// interval and pairs with the finite members of the unbounded operand, so
// 0 is an achieved product. In Div it is ±∞/±∞, where substituting 0 can
// only widen the hull. Either way the min4/max4 chain stays NaN-free.
// Complexity: O(1).
func zeroIfNaN(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}

	return x
}

// Add returns i + o with outward rounding.
// Point+point is the exact float sum (correctly rounded, no padding);
// the general case pads [lo_i+lo_o, hi_i+hi_o] by one ULP per bound.
// Empty operands propagate Empty.
// Complexity: O(1).
func (i Interval) Add(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty()
	}
	if i.IsPoint() && o.IsPoint() {
		return exactPoint(i.lo+o.lo, i.lo, o.lo)
	}

	return outward(i.lo+o.lo, i.hi+o.hi)
}

// Sub returns i − o with outward rounding.
// Point−point is the exact float difference; the general case pads
// [lo_i−hi_o, hi_i−lo_o] by one ULP per bound. Empty propagates.
// Complexity: O(1).
func (i Interval) Sub(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty()
	}
	if i.IsPoint() && o.IsPoint() {
		return exactPoint(i.lo-o.lo, i.lo, o.lo)
	}

	return outward(i.lo-o.hi, i.hi-o.lo)
}

// Neg returns −i = [−hi, −lo]. Negation of a binary float is exact, so no
// padding is applied. Empty propagates.
// Complexity: O(1).
func (i Interval) Neg() Interval {
	if i.IsEmpty() {
		return Empty()
	}

	return Interval{lo: -i.hi, hi: -i.lo}
}

// Mul returns i × o with outward rounding.
// Point×point is the exact float product. Otherwise the four corner
// products lo·lo, lo·hi, hi·lo, hi·hi bracket the result; their min and
// max are padded by one ULP per bound. Empty propagates.
// Complexity: O(1).
func (i Interval) Mul(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty()
	}
	if i.IsPoint() && o.IsPoint() {
		return exactPoint(i.lo*o.lo, i.lo, o.lo)
	}
	// Four corner products; 0·±∞ corners resolve to 0.
	ll := zeroIfNaN(i.lo * o.lo)
	lh := zeroIfNaN(i.lo * o.hi)
	hl := zeroIfNaN(i.hi * o.lo)
	hh := zeroIfNaN(i.hi * o.hi)

	return outward(min4(ll, lh, hl, hh), max4(ll, lh, hl, hh))
}

// Div returns i ÷ o with outward rounding.
//
// Zero-divisor policy:
//   - o contains 0 and i contains 0: Empty (0/0 is undefined; returning a
//     bounded interval here would be silently misleading).
//   - o contains 0 and i does not: Entire (−∞, +∞) — unbounded but defined.
//
// Point÷point is the exact float quotient; the general case mirrors Mul
// with four corner quotients, min/max and one ULP of padding per bound.
// Empty propagates.
// Complexity: O(1).
func (i Interval) Div(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty()
	}
	if o.Contains(0) {
		if i.Contains(0) {
			return Empty()
		}

		return Entire()
	}
	if i.IsPoint() && o.IsPoint() {
		return exactPoint(i.lo/o.lo, i.lo, o.lo)
	}
	// Four corner quotients; the divisor excludes zero here, so a NaN
	// corner is ±∞/±∞ and resolves to 0.
	ll := zeroIfNaN(i.lo / o.lo)
	lh := zeroIfNaN(i.lo / o.hi)
	hl := zeroIfNaN(i.hi / o.lo)
	hh := zeroIfNaN(i.hi / o.hi)

	return outward(min4(ll, lh, hl, hh), max4(ll, lh, hl, hh))
}

// min4 returns the smallest of four values.
// Complexity: O(1).
func min4(a, b, c, d float64) float64 {
	return math.Min(math.Min(a, b), math.Min(c, d))
}

// max4 returns the largest of four values.
// Complexity: O(1).
func max4(a, b, c, d float64) float64 {
	return math.Max(math.Max(a, b), math.Max(c, d))
}
