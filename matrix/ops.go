// SPDX-License-Identifier: MIT

// Package matrix: algebra kernels.
//
// Purpose:
//   - Route every element-wise construction through one apply primitive
//     (mapCells) parameterized by a complexity score, so the sequential vs
//     parallel decision lives in exactly one place (parallel.For).
//   - Keep multiplication row-parallel: each output cell is an independent
//     sequential dot product, so the fork-join branch needs no locking.
//   - Implement the Frobenius reduction as partial-sum-per-worker followed
//     by a serialized merge — never a naive shared increment, and never an
//     atomic add (interval addition is not a primitive atomic operation).

package matrix

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/ivl/interval"
	"github.com/katalvlaran/ivl/parallel"
	"github.com/katalvlaran/ivl/vector"
)

// mapCells builds a fresh matrix of the given shape where cell k is f(k).
// It is the single internal apply primitive: the dispatch decision is
// delegated to parallel.For with the caller's complexity score. Per-index
// writes land in disjoint cells of the fresh buffer, so the parallel
// branch needs no locking; f must be pure.
// Complexity: O(len(cells)) calls into f.
func mapCells(rows, cols int, cfg parallel.Config, complexity int64, f func(k int) interval.Interval) *Matrix {
	out := &Matrix{r: rows, c: cols, cells: make([]interval.Interval, rows*cols)}
	// f is pure and the writes are disjoint: no body error is possible.
	_ = parallel.For(cfg, complexity, len(out.cells), func(start, end int) error {
		for k := start; k < end; k++ {
			out.cells[k] = f(k)
		}

		return nil
	})

	return out
}

// Transpose returns mᵀ. Element-wise (complexity = element count).
// Complexity: O(r*c).
func (m *Matrix) Transpose(opts ...parallel.Option) *Matrix {
	if m == nil {
		return nil
	}
	cfg := parallel.Resolve(opts...)

	// Output cell k sits at (k/m.r, k%m.r) in the transposed shape and
	// reads the mirrored source offset.
	return mapCells(m.c, m.r, cfg, int64(len(m.cells)), func(k int) interval.Interval {
		i, j := k/m.r, k%m.r

		return m.cells[j*m.c+i]
	})
}

// Scale returns s·m element-wise (complexity = element count).
// Complexity: O(r*c).
func (m *Matrix) Scale(s interval.Interval, opts ...parallel.Option) *Matrix {
	if m == nil {
		return nil
	}
	cfg := parallel.Resolve(opts...)

	return mapCells(m.r, m.c, cfg, int64(len(m.cells)), func(k int) interval.Interval {
		return s.Mul(m.cells[k])
	})
}

// Neg returns −m element-wise (complexity = element count).
// Complexity: O(r*c).
func (m *Matrix) Neg(opts ...parallel.Option) *Matrix {
	if m == nil {
		return nil
	}
	cfg := parallel.Resolve(opts...)

	return mapCells(m.r, m.c, cfg, int64(len(m.cells)), func(k int) interval.Interval {
		return m.cells[k].Neg()
	})
}

// Add returns m + o element-wise. Shapes must match.
// Complexity: O(r*c).
func (m *Matrix) Add(o *Matrix, opts ...parallel.Option) (*Matrix, error) {
	return m.zip(o, opAdd, interval.Interval.Add, opts)
}

// Sub returns m − o element-wise. Shapes must match.
// Complexity: O(r*c).
func (m *Matrix) Sub(o *Matrix, opts ...parallel.Option) (*Matrix, error) {
	return m.zip(o, opSub, interval.Interval.Sub, opts)
}

// Operation tags for error wrapping.
const (
	opAdd    = "Add"
	opSub    = "Sub"
	opMul    = "Mul"
	opMulVec = "MulVec"
)

// zip shares validation and dispatch between Add and Sub.
func (m *Matrix) zip(o *Matrix, tag string, op func(interval.Interval, interval.Interval) interval.Interval, opts []parallel.Option) (*Matrix, error) {
	if m == nil || o == nil {
		return nil, fmt.Errorf("%s: %w", tag, ErrNilMatrix)
	}
	if m.r != o.r || m.c != o.c {
		return nil, fmt.Errorf("%s: %dx%d vs %dx%d: %w", tag, m.r, m.c, o.r, o.c, ErrDimensionMismatch)
	}
	cfg := parallel.Resolve(opts...)

	return mapCells(m.r, m.c, cfg, int64(len(m.cells)), func(k int) interval.Interval {
		return op(m.cells[k], o.cells[k])
	}), nil
}

// Mul returns the matrix product m·o; m.Cols must equal o.Rows.
//
// The standard O(r·n·c) triple loop with a sequential index-order dot
// product per output cell. Complexity score = r*n*c; the fork-join branch
// parallelizes over output rows, which are independent.
// Complexity: O(r*n*c).
func (m *Matrix) Mul(o *Matrix, opts ...parallel.Option) (*Matrix, error) {
	if m == nil || o == nil {
		return nil, fmt.Errorf("%s: %w", opMul, ErrNilMatrix)
	}
	if m.c != o.r {
		return nil, fmt.Errorf("%s: %dx%d vs %dx%d: %w", opMul, m.r, m.c, o.r, o.c, ErrDimensionMismatch)
	}
	cfg := parallel.Resolve(opts...)
	out := &Matrix{r: m.r, c: o.c, cells: make([]interval.Interval, m.r*o.c)}
	complexity := int64(m.r) * int64(m.c) * int64(o.c)
	// Row ranges write disjoint slices of out; no locking required.
	_ = parallel.For(cfg, complexity, m.r, func(start, end int) error {
		for i := start; i < end; i++ {
			base := i * m.c
			for j := 0; j < o.c; j++ {
				// Sequential index-order accumulation (the summation
				// order is part of the determinism contract).
				acc := m.cells[base].Mul(o.cells[j])
				for k := 1; k < m.c; k++ {
					acc = acc.Add(m.cells[base+k].Mul(o.cells[k*o.c+j]))
				}
				out.cells[i*o.c+j] = acc
			}
		}

		return nil
	})

	return out, nil
}

// MulVec returns the matrix-vector product m·v; m.Cols must equal v.Len().
// Row-parallel like Mul, with one sequential dot product per output entry.
// Complexity: O(r*c).
func (m *Matrix) MulVec(v *vector.Vector, opts ...parallel.Option) (*vector.Vector, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opMulVec, ErrNilMatrix)
	}
	if v == nil {
		return nil, fmt.Errorf("%s: %w", opMulVec, ErrNilVector)
	}
	if m.c != v.Len() {
		return nil, fmt.Errorf("%s: %dx%d vs len %d: %w", opMulVec, m.r, m.c, v.Len(), ErrDimensionMismatch)
	}
	vs := v.Slice()
	cfg := parallel.Resolve(opts...)
	out := make([]interval.Interval, m.r)
	complexity := int64(m.r) * int64(m.c)
	_ = parallel.For(cfg, complexity, m.r, func(start, end int) error {
		for i := start; i < end; i++ {
			base := i * m.c
			acc := m.cells[base].Mul(vs[0])
			for k := 1; k < m.c; k++ {
				acc = acc.Add(m.cells[base+k].Mul(vs[k]))
			}
			out[i] = acc
		}

		return nil
	})

	return vector.New(out)
}

// MulExact returns m·vals treating the scalar array as exact points.
// Convenience array form of MulVec.
// Complexity: O(r*c).
func (m *Matrix) MulExact(vals []float64, opts ...parallel.Option) (*vector.Vector, error) {
	v, err := vector.FromExact(vals)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMulVec, err)
	}

	return m.MulVec(v, opts...)
}

// Frob2 returns the squared Frobenius norm: the interval sum of squared
// cells. This is the one true reduction in the package: below the dispatch
// gate it is a single sequential index-order sum; above it, each worker
// accumulates a private partial over its range and merges into the shared
// accumulator under a mutex (the merge is serialized; the per-range work
// is not). Merge order on the parallel branch is nondeterministic, so
// parallel and sequential results agree within padding tolerance only —
// an accepted property of outward-rounded reduction, not a bug.
// A nil receiver yields Empty.
// Complexity: O(r*c).
func (m *Matrix) Frob2(opts ...parallel.Option) interval.Interval {
	if m == nil {
		return interval.Empty()
	}
	cfg := parallel.Resolve(opts...)
	total := interval.Point(0)
	var mu sync.Mutex
	_ = parallel.For(cfg, int64(len(m.cells)), len(m.cells), func(start, end int) error {
		// Private partial: index order within the range.
		part := m.cells[start].Mul(m.cells[start])
		for k := start + 1; k < end; k++ {
			part = part.Add(m.cells[k].Mul(m.cells[k]))
		}
		// Serialized read-modify-write of the shared accumulator. Never
		// an atomic add: interval addition is not primitive.
		mu.Lock()
		total = total.Add(part)
		mu.Unlock()

		return nil
	})

	return total
}

// Frob returns the Frobenius norm: Sqrt of Frob2. When cells straddle
// zero, the squared sum's lower bound can dip below zero under interval
// multiplication, in which case Sqrt soundly reports Empty.
// Complexity: O(r*c).
func (m *Matrix) Frob(opts ...parallel.Option) interval.Interval {
	return m.Frob2(opts...).Sqrt()
}
