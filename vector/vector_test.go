package vector_test

import (
	"testing"

	"github.com/katalvlaran/ivl/interval"
	"github.com/katalvlaran/ivl/parallel"
	"github.com/katalvlaran/ivl/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Empty verifies that constructors reject zero-length input.
func TestNew_Empty(t *testing.T) {
	_, err := vector.New(nil)
	assert.ErrorIs(t, err, vector.ErrEmpty)

	_, err = vector.FromExact([]float64{})
	assert.ErrorIs(t, err, vector.ErrEmpty)

	_, err = vector.FromMeasured(nil)
	assert.ErrorIs(t, err, vector.ErrEmpty)
}

// TestFromExact_Points verifies exact-point synthesis from scalars.
func TestFromExact_Points(t *testing.T) {
	v, err := vector.FromExact([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())

	e, err := v.At(1)
	require.NoError(t, err)
	assert.True(t, e.Equal(interval.Point(2)))
}

// TestFromMeasured_Pads verifies measured synthesis pads one ULP per side.
func TestFromMeasured_Pads(t *testing.T) {
	v, err := vector.FromMeasured([]float64{1})
	require.NoError(t, err)
	e, _ := v.At(0)
	assert.Equal(t, 1-interval.ULP(1.0), e.Lo())
	assert.Equal(t, 1+interval.ULP(1.0), e.Hi())
}

// TestAt_OutOfRange verifies index validation.
func TestAt_OutOfRange(t *testing.T) {
	v, _ := vector.FromExact([]float64{1})
	_, err := v.At(-1)
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.At(1)
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
}

// TestAdd_DimensionMismatch verifies the binary length contract.
func TestAdd_DimensionMismatch(t *testing.T) {
	a, _ := vector.FromExact([]float64{1, 2})
	b, _ := vector.FromExact([]float64{1, 2, 3})
	_, err := a.Add(b)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = a.Sub(b)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = a.Dot(b)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestAddSub_ExactPoints verifies element-wise arithmetic on exact input.
func TestAddSub_ExactPoints(t *testing.T) {
	a, _ := vector.FromExact([]float64{1, 2})
	b, _ := vector.FromExact([]float64{10, 20})

	sum, err := a.Add(b)
	require.NoError(t, err)
	s0, _ := sum.At(0)
	s1, _ := sum.At(1)
	assert.True(t, s0.Equal(interval.Point(11)))
	assert.True(t, s1.Equal(interval.Point(22)))

	diff, err := b.Sub(a)
	require.NoError(t, err)
	d0, _ := diff.At(0)
	assert.True(t, d0.Equal(interval.Point(9)))
}

// TestScale_ExactPoints verifies scalar-times-vector.
func TestScale_ExactPoints(t *testing.T) {
	v, _ := vector.FromExact([]float64{1, -2})
	s, err := v.Scale(interval.Point(3))
	require.NoError(t, err)
	e0, _ := s.At(0)
	e1, _ := s.At(1)
	assert.True(t, e0.Equal(interval.Point(3)))
	assert.True(t, e1.Equal(interval.Point(-6)))
}

// TestDot_ExactPoints verifies the sequential interval dot product stays
// exact on points: (1,2,3)·(4,5,6) == 32.
func TestDot_ExactPoints(t *testing.T) {
	a, _ := vector.FromExact([]float64{1, 2, 3})
	b, _ := vector.FromExact([]float64{4, 5, 6})
	d, err := a.Dot(b)
	require.NoError(t, err)
	assert.True(t, d.Equal(interval.Point(32)))
}

// TestNorm_ThreeFour verifies the classic exactness property: a vector of
// exact points (3,4) has norm exactly 5 (zero width).
func TestNorm_ThreeFour(t *testing.T) {
	v, _ := vector.FromExact([]float64{3, 4})
	assert.True(t, v.Norm2().Equal(interval.Point(25)))
	n := v.Norm()
	assert.True(t, n.Equal(interval.Point(5)), "norm of exact (3,4) must be the exact point 5")
	assert.Equal(t, 0.0, n.Width())
}

// TestScale_ParallelSequentialBitIdentical verifies the per-cell
// equivalence property: forcing the parallel branch and forcing the
// sequential branch produce bit-identical elements.
func TestScale_ParallelSequentialBitIdentical(t *testing.T) {
	vals := make([]float64, 512)
	for k := range vals {
		vals[k] = float64(k) * 0.37
	}
	v, _ := vector.FromMeasured(vals)
	s := interval.Measured(1.3)

	par, err := v.Scale(s, parallel.WithParallel(), parallel.WithThreshold(0))
	require.NoError(t, err)
	seq, err := v.Scale(s, parallel.WithSequential())
	require.NoError(t, err)

	for k := 0; k < v.Len(); k++ {
		pe, _ := par.At(k)
		se, _ := seq.At(k)
		assert.True(t, pe.Equal(se), "element %d must be bit-identical", k)
	}
}

// TestSlice_IsACopy verifies Slice independence from the Vector.
func TestSlice_IsACopy(t *testing.T) {
	v, _ := vector.FromExact([]float64{1, 2})
	s := v.Slice()
	s[0] = interval.Point(99)
	e, _ := v.At(0)
	assert.True(t, e.Equal(interval.Point(1)), "mutating the copy must not affect the vector")
}

// TestString renders the parenthesized comma list.
func TestString(t *testing.T) {
	v, _ := vector.FromExact([]float64{1, 2.5})
	assert.Equal(t, "(1, 2.5)", v.String())
}
