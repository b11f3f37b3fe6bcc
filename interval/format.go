// SPDX-License-Identifier: MIT

// Package interval: textual rendering.

package interval

import "fmt"

// Formatting literals.
const (
	_fmtEmpty = "[empty]"
	_fmtPair  = "[%g; %g]"
	_fmtOne   = "%g"

	// _widthULPFactor: an interval whose width is within one order of
	// magnitude of the ULP at its midpoint carries no information beyond
	// its midpoint at display precision, so it renders as a single number.
	_widthULPFactor = 10.0
)

// String renders i for diagnostics:
//   - "[empty]" for the Empty sentinel,
//   - a single "%g" number when the width is within one order of magnitude
//     of the midpoint's own ULP (points included),
//   - a bracketed "[lo; hi]" pair otherwise.
//
// Complexity: O(1).
func (i Interval) String() string {
	if i.IsEmpty() {
		return _fmtEmpty
	}
	mid := i.Mid()
	if i.Width() <= _widthULPFactor*ULP(mid) {
		return fmt.Sprintf(_fmtOne, mid)
	}

	return fmt.Sprintf(_fmtPair, i.lo, i.hi)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Interval{}
