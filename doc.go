// Package ivl is your toolkit for validated numerics: interval arithmetic
// whose every result is guaranteed to contain the true mathematical answer,
// even though it is computed with finite 64-bit floating point.
//
// 🚀 What is ivl?
//
//	A pure-Go library for rigorous computation built on outward rounding:
//		• Interval core: closed [lo, hi] ranges with sound + − × ÷
//		• ULP unit: bit-level "unit in the last place" that drives the rounding
//		• Elementary extensions: Sqrt, Exp, Abs over intervals
//		• Vector algebra: element-wise ops, dot product, induced norm
//		• Matrix algebra: add/sub/scale, multiply, transpose, Frobenius norm
//		• Fork-join dispatch: complexity-gated sequential vs parallel kernels
//
// ✨ Why choose ivl?
//
//   - Soundness first – computed bounds are widened so round-off can never
//     push the true result outside the returned interval
//   - Rock-solid error contract – sentinel errors, errors.Is everywhere,
//     Empty interval as a first-class "no certain result" value
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders; sequential dot products by contract
//
// Everything is organized under four subpackages:
//
//	interval/ — Interval value type, ULP computation, outward-rounded operators
//	parallel/ — complexity-gated fork-join dispatch and its configuration
//	vector/   — 1-D interval containers with dot product and norms
//	matrix/   — dense 2-D interval grids with multiply, transpose, Frobenius
//
// Quick example:
//
//	a := interval.Point(3)
//	b := interval.Measured(0.1) // padded one ULP each side
//	fmt.Println(a.Mul(b))       // an interval certain to contain 0.3
//
// Dive into the per-package docs and example tests for full walkthroughs.
//
//	go get github.com/katalvlaran/ivl
package ivl
