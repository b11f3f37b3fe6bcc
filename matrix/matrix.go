// SPDX-License-Identifier: MIT

// Package matrix: dense storage, constructors and safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major interval buffer with the explicit
//     index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Keep algorithmic determinism: fixed loop orders, no map iteration.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/ivl/interval"
	"github.com/katalvlaran/ivl/vector"
)

// Method context tags used in error wrappers.
const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRow     = "Row"
	ctxCol     = "Col"
	ctxSetRow  = "SetRow"
	ctxSetCol  = "SetCol"
	ctxFillRow = "FillRow"
	ctxFillCol = "FillCol"
	ctxSwapR   = "SwapRows"
	ctxSwapC   = "SwapCols"
)

// matrixErrorf attaches a method context to a sentinel error, preserving
// the sentinel for errors.Is via %w.
// Complexity: O(1).
func matrixErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Matrix.%s(%d): %w", method, idx, err)
}

// Matrix is a fixed rows×cols grid of intervals in row-major order.
// Dimensions are immutable after construction; cells are mutable via the
// explicit accessors below. The zero interval value is the exact point
// [0, 0], so freshly allocated matrices are zero matrices.
type Matrix struct {
	r, c  int                 // row and column counts (> 0)
	cells []interval.Interval // flat row-major storage, len == r*c
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates an r×c zero matrix (every cell is the exact point [0, 0]).
// Stage 1 (Validate): rows > 0 and cols > 0, else ErrInvalidDimensions.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{r: rows, c: cols, cells: make([]interval.Interval, rows*cols)}, nil
}

// FromRows builds a matrix by copying a 2-D interval slice.
// Ragged input (rows of unequal length) fails with ErrDimensionMismatch;
// empty input fails with ErrInvalidDimensions.
// Complexity: O(r*c).
func FromRows(rows [][]interval.Interval) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m := &Matrix{r: r, c: c, cells: make([]interval.Interval, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d cols, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		copy(m.cells[i*c:(i+1)*c], row)
	}

	return m, nil
}

// FromFlat wraps a flat row-major buffer WITHOUT copying.
//
// Ownership contract: the Matrix takes exclusive ownership of data; the
// caller must not retain a mutable alias. Use FromRows (or copy first)
// when the buffer must remain caller-owned.
//
// Complexity: O(1).
func FromFlat(rows, cols int, data []interval.Interval) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("FromFlat: len %d, want %d: %w", len(data), rows*cols, ErrDimensionMismatch)
	}

	return &Matrix{r: rows, c: cols, cells: data}, nil
}

// FromExact builds a matrix of exact points from a scalar 2-D slice
// (copied in). Every value is claimed to be a true mathematical point.
// Complexity: O(r*c).
func FromExact(vals [][]float64) (*Matrix, error) {
	return fromScalars(vals, interval.Point)
}

// FromMeasured builds a matrix from approximate scalar inputs (copied in):
// every value is padded one ULP on each side via interval.Measured.
// Complexity: O(r*c).
func FromMeasured(vals [][]float64) (*Matrix, error) {
	return fromScalars(vals, interval.Measured)
}

// fromScalars shares validation and layout between FromExact/FromMeasured.
func fromScalars(vals [][]float64, lift func(float64) interval.Interval) (*Matrix, error) {
	if len(vals) == 0 || len(vals[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(vals), len(vals[0])
	m := &Matrix{r: r, c: c, cells: make([]interval.Interval, r*c)}
	for i, row := range vals {
		if len(row) != c {
			return nil, fmt.Errorf("row %d has %d cols, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		base := i * c
		for j, v := range row {
			m.cells[base+j] = lift(v)
		}
	}

	return m, nil
}

// FromVector builds the n×1 column matrix holding v's elements.
// Complexity: O(n).
func FromVector(v *vector.Vector) (*Matrix, error) {
	if v == nil {
		return nil, ErrNilVector
	}

	return &Matrix{r: v.Len(), c: 1, cells: v.Slice()}, nil
}

// Diagonal builds the square matrix with diag on the main diagonal and
// exact zeros elsewhere.
// Complexity: O(n²).
func Diagonal(diag []interval.Interval) (*Matrix, error) {
	n := len(diag)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}
	m := &Matrix{r: n, c: n, cells: make([]interval.Interval, n*n)}
	for k, d := range diag {
		m.cells[k*n+k] = d
	}

	return m, nil
}

// Identity builds the n×n identity matrix of exact points.
// Complexity: O(n²).
func Identity(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	m := &Matrix{r: n, c: n, cells: make([]interval.Interval, n*n)}
	one := interval.Point(1)
	for k := 0; k < n; k++ {
		m.cells[k*n+k] = one
	}

	return m, nil
}

// Rows returns the row count.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// indexOf computes the row-major offset or returns ErrOutOfRange. Public
// methods wrap the sentinel with method context and coordinates.
// Complexity: O(1).
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the cell at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (interval.Interval, error) {
	if m == nil {
		return interval.Empty(), ErrNilMatrix
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return interval.Empty(), fmt.Errorf("Matrix.%s(%d,%d): %w", ctxAt, row, col, err)
	}

	return m.cells[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v interval.Interval) error {
	if m == nil {
		return ErrNilMatrix
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return fmt.Errorf("Matrix.%s(%d,%d): %w", ctxSet, row, col, err)
	}
	m.cells[off] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Matrix) Row(i int) ([]interval.Interval, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if i < 0 || i >= m.r {
		return nil, matrixErrorf(ctxRow, i, ErrOutOfRange)
	}
	out := make([]interval.Interval, m.c)
	copy(out, m.cells[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Complexity: O(r).
func (m *Matrix) Col(j int) ([]interval.Interval, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if j < 0 || j >= m.c {
		return nil, matrixErrorf(ctxCol, j, ErrOutOfRange)
	}
	out := make([]interval.Interval, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.cells[i*m.c+j]
	}

	return out, nil
}

// SetRow replaces row i with elems (copied in); len(elems) must equal Cols.
// Complexity: O(c).
func (m *Matrix) SetRow(i int, elems []interval.Interval) error {
	if m == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= m.r {
		return matrixErrorf(ctxSetRow, i, ErrOutOfRange)
	}
	if len(elems) != m.c {
		return matrixErrorf(ctxSetRow, i, ErrDimensionMismatch)
	}
	copy(m.cells[i*m.c:(i+1)*m.c], elems)

	return nil
}

// SetCol replaces column j with elems (copied in); len(elems) must equal Rows.
// Complexity: O(r).
func (m *Matrix) SetCol(j int, elems []interval.Interval) error {
	if m == nil {
		return ErrNilMatrix
	}
	if j < 0 || j >= m.c {
		return matrixErrorf(ctxSetCol, j, ErrOutOfRange)
	}
	if len(elems) != m.r {
		return matrixErrorf(ctxSetCol, j, ErrDimensionMismatch)
	}
	for i := 0; i < m.r; i++ {
		m.cells[i*m.c+j] = elems[i]
	}

	return nil
}

// FillRow sets every cell of row i to v.
// Complexity: O(c).
func (m *Matrix) FillRow(i int, v interval.Interval) error {
	if m == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= m.r {
		return matrixErrorf(ctxFillRow, i, ErrOutOfRange)
	}
	base := i * m.c
	for j := 0; j < m.c; j++ {
		m.cells[base+j] = v
	}

	return nil
}

// FillCol sets every cell of column j to v.
// Complexity: O(r).
func (m *Matrix) FillCol(j int, v interval.Interval) error {
	if m == nil {
		return ErrNilMatrix
	}
	if j < 0 || j >= m.c {
		return matrixErrorf(ctxFillCol, j, ErrOutOfRange)
	}
	for i := 0; i < m.r; i++ {
		m.cells[i*m.c+j] = v
	}

	return nil
}

// SwapRows exchanges rows i and j in place.
// Complexity: O(c).
func (m *Matrix) SwapRows(i, j int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= m.r {
		return matrixErrorf(ctxSwapR, i, ErrOutOfRange)
	}
	if j < 0 || j >= m.r {
		return matrixErrorf(ctxSwapR, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	bi, bj := i*m.c, j*m.c
	for k := 0; k < m.c; k++ {
		m.cells[bi+k], m.cells[bj+k] = m.cells[bj+k], m.cells[bi+k]
	}

	return nil
}

// SwapCols exchanges columns i and j in place.
// Complexity: O(r).
func (m *Matrix) SwapCols(i, j int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= m.c {
		return matrixErrorf(ctxSwapC, i, ErrOutOfRange)
	}
	if j < 0 || j >= m.c {
		return matrixErrorf(ctxSwapC, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	for k := 0; k < m.r; k++ {
		base := k * m.c
		m.cells[base+i], m.cells[base+j] = m.cells[base+j], m.cells[base+i]
	}

	return nil
}

// Clone returns a deep copy (fresh buffer, same shape).
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	cp := make([]interval.Interval, len(m.cells))
	copy(cp, m.cells)

	return &Matrix{r: m.r, c: m.c, cells: cp}
}
