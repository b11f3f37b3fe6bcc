// Package parallel provides the complexity-gated fork-join dispatcher used
// by the vector and matrix packages for bulk element-wise work.
//
// 🚀 What does it do?
//
//	A bulk operation either runs as a plain sequential loop or forks a
//	blocking parallel-for over chunked index ranges. The choice is made
//	per call by comparing the operation's complexity score (element count,
//	or element count × inner dimension for multiplication) against a
//	threshold, gated by an enable flag.
//
// ✨ Key properties:
//   - fork-join only: the caller blocks until every worker range completes;
//     there is no async mode, no cancellation, no timeout
//   - a worker error surfaces at the join point as a single aggregate
//     failure (golang.org/x/sync/errgroup); no partial-result recovery
//   - configuration is an explicit Config value resolved per call, with
//     race-free process-wide ambient defaults behind atomics
//
// ⚙️ Usage:
//
//	cfg := parallel.Resolve(parallel.WithThreshold(1 << 14))
//	err := parallel.For(cfg, complexity, n, func(start, end int) error {
//	  for k := start; k < end; k++ {
//	    out[k] = f(in[k]) // disjoint writes need no locking
//	  }
//	  return nil
//	})
//
// Shared-accumulator reductions must keep a private partial per range and
// merge under a mutex; see matrix.Frob2 for the canonical pattern.
package parallel
