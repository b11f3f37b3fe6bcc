// SPDX-License-Identifier: MIT

// Package interval: ULP unit.
//
// Purpose:
//   - Compute the magnitude of one unit in the last place of a float64
//     directly from its IEEE-754 bit layout.
//   - This value drives outward rounding: padding a computed bound by its
//     own ULP absorbs the round-to-nearest error of the bound computation.
//
// Notes:
//   - No math.Nextafter on purpose: the result must be a clean power of two
//     built by bit placement, and the subnormal range must be handled by
//     setting a single mantissa bit rather than by exponent arithmetic,
//     which is itself imprecise near the subnormal boundary.
//   - math.Float64bits yields the full 64-bit pattern independent of host
//     byte order, so no explicit word selection is needed.

package interval

import "math"

// IEEE-754 binary64 layout constants.
const (
	mantissaBits uint64 = 52    // width of the fraction field
	exponentMask uint64 = 0x7FF // 11-bit biased exponent mask
)

// ULP returns the positive magnitude of one unit in the last place of x:
// the smallest increment that changes the bit pattern of a finite x.
//
// Contract:
//   - ULP(0) == 0: the additive identity carries no rounding slack, and
//     callers that need a nonzero pad at zero must special-case it.
//   - ULP(x) == ULP(-x): the result depends only on magnitude.
//   - x is expected finite; NaN and ±Inf yield NaN.
//
// Implementation:
//   - Stage 1: reinterpret x as its raw bit pattern.
//   - Stage 2: extract the 11-bit biased exponent e.
//   - Stage 3: if e > 52 the ULP is itself a normal power of two with
//     biased exponent e−52 and zero mantissa.
//   - Stage 4: otherwise the ULP lives in the subnormal range: a zero
//     exponent field with a single mantissa bit at position e−1
//     (the minimum subnormal when x is itself subnormal, e == 0).
//   - Stage 5: reinterpret the constructed pattern back to float64.
//
// Complexity: O(1).
func ULP(x float64) float64 {
	if x == 0 {
		return 0
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}
	bits := math.Float64bits(x)
	exp := (bits >> mantissaBits) & exponentMask
	if exp > mantissaBits {
		// Large enough that 2^(e-52) is a normal number: exponent field
		// e-52, mantissa zero.
		return math.Float64frombits((exp - mantissaBits) << mantissaBits)
	}
	if exp == 0 {
		// x is subnormal; its spacing is the minimum subnormal 2^-1074.
		return math.Float64frombits(1)
	}

	// Subnormal-range power of two via direct bit placement: zero exponent
	// field, single mantissa bit at position e-1.
	return math.Float64frombits(uint64(1) << (exp - 1))
}
