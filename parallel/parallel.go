// SPDX-License-Identifier: MIT

// Package parallel: the fork-join dispatcher.

package parallel

import (
	"golang.org/x/sync/errgroup"
)

// For runs body over [0, n) either sequentially or as a blocking fork-join
// parallel-for, decided per call.
//
// Dispatch rule:
//   - sequential when the parallel branch is disabled, when complexity does
//     not exceed cfg.Threshold, or when n < 2;
//   - otherwise [0, n) is split into one contiguous chunk per worker
//     (workers = min(cfg.Workers, n)) and each chunk runs on its own
//     goroutine.
//
// body receives a half-open range [start, end) and must confine its writes
// to that range; disjoint per-index writes into a fresh result buffer need
// no locking. Reductions must accumulate privately per range and merge
// under a mutex on the caller's side.
//
// A body error cancels nothing — every launched range still runs to
// completion — but the first error is returned at the join point as the
// single aggregate failure of the whole operation.
//
// Complexity: O(n) calls into body plus O(workers) goroutine overhead on
// the parallel branch.
func For(cfg Config, complexity int64, n int, body func(start, end int) error) error {
	if n <= 0 {
		return nil
	}
	if !cfg.Enabled || complexity <= cfg.Threshold || n < 2 {
		return body(0, n)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = Ambient().Workers
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		return body(0, n)
	}

	// Chunk size rounds up so the ranges cover [0, n) exactly.
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error { return body(start, end) })
	}

	// Join point: block until every range completes; first error wins.
	return g.Wait()
}
