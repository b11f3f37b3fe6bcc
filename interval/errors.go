// SPDX-License-Identifier: MIT

// Package interval: sentinel error set.
// This file defines ONLY package-level sentinel errors. Constructors MUST
// return these sentinels and tests MUST check them via errors.Is. No
// operation panics on user-triggered conditions; undefined numeric results
// are reported through the Empty interval value, not through errors.

package interval

import "errors"

// ErrInvalidBounds is returned when an interval is constructed with its
// lower bound strictly greater than its upper bound. Fatal to that call.
var ErrInvalidBounds = errors.New("interval: lower bound greater than upper bound")
