// Package matrix provides dense rows×cols grids of intervals with
// element-wise algebra, multiplication, transpose and the Frobenius norm.
//
// Storage is a flat row-major buffer (offset = i*cols + j): cache-friendly
// and with deterministic fixed-order loops throughout. At/Set return
// errors instead of panicking.
//
// All element-wise constructions (clone-with-transform, transpose, scalar
// multiply, add, subtract, negate) go through one internal apply primitive
// parameterized by a complexity score — element count, or element count ×
// inner dimension for multiplication — which the parallel package compares
// against its threshold to pick sequential or fork-join execution. Each
// output cell is computed independently, so the parallel branch needs no
// synchronization; the one true reduction, the Frobenius norm, merges
// per-worker partial sums under a mutex.
//
// Dimensions are immutable after construction; individual cells are
// mutable via explicit row/column accessors (Set, SetRow, FillCol,
// SwapRows, ...), kept for future decomposition-style algorithms.
package matrix
