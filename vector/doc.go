// Package vector provides fixed-length 1-D containers of intervals with
// element-wise arithmetic, dot product and the induced norm.
//
// Element-wise operations (Add, Sub, Scale) dispatch through the parallel
// package with complexity = element count and accept per-call
// parallel.Option overrides.
//
// The dot product is strictly sequential: interval summation is not
// associative under outward rounding, so index order is part of the
// contract and is reproduced identically on every call.
//
// Constructors follow an explicit ownership model: New takes ownership of
// the supplied slice, FromExact and FromMeasured copy scalar inputs in.
package vector
