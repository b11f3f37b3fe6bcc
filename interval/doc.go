// Package interval implements validated interval arithmetic over 64-bit
// IEEE-754 floating point.
//
// 🚀 What is an Interval?
//
//	A closed range [lo, hi] standing in for a real number that is only
//	known up to rounding. Every operator is outward-rounded: computed
//	bounds are widened by one ULP so that the true mathematical result
//	is guaranteed to lie inside the returned interval. It's widely used in:
//	  • Rigorous root finding & global optimization
//	  • Error propagation through long float pipelines
//	  • Certifying numerical results of simulations
//
// ✨ Key features:
//   - sound + − × ÷ with point fast paths (exact when inputs are exact)
//   - Empty sentinel for "no certain result" (0/0, sqrt of negatives)
//   - Entire interval (−∞, +∞) for unbounded-but-defined results
//   - bit-level ULP computation, no math.Nextafter
//   - exact set relations: Contains, Intersects, Intersect, Union
//
// ⚙️ Usage:
//
//	a, err := interval.New(1, 2)   // explicit bounds, err on lo > hi
//	p := interval.Point(0.5)       // exact point [0.5, 0.5]
//	m := interval.Measured(0.1)    // rounded input, padded ±1 ULP
//
//	sum := a.Add(m)                // outward-rounded
//	q := a.Div(interval.Point(0))  // divisor spans zero: Entire or Empty
//	if q.IsEmpty() {
//	  // 0/0-style undefined result
//	}
//
// Soundness invariant: for all x ∈ A and y ∈ B, (x op y) ∈ A.Op(B).
//
// Complexity: every operation in this package is O(1) time and space.
package interval
