package interval_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ivl/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// soundnessSeed fixes the random stream so failures are reproducible.
const soundnessSeed = 42

// soundnessRounds is the number of random instances per operator.
const soundnessRounds = 5000

// randInterval draws bounds in roughly [-scale, +scale], straddling zero
// about as often as not.
func randInterval(r *rand.Rand, scale float64) interval.Interval {
	lo := (r.Float64() - 0.5) * 2 * scale
	width := r.Float64() * scale
	i, _ := interval.New(lo, lo+width)

	return i
}

// sample draws a float member of i (clamped so rounding in the affine
// formula cannot escape the bounds).
func sample(r *rand.Rand, i interval.Interval) float64 {
	x := i.Lo() + r.Float64()*i.Width()

	return math.Min(math.Max(x, i.Lo()), i.Hi())
}

// TestAdd_PointExactness verifies the point fast path: exact inputs give
// an exact zero-width result with no outward padding.
func TestAdd_PointExactness(t *testing.T) {
	sum := interval.Point(5).Add(interval.Point(3))
	assert.True(t, sum.Equal(interval.Point(8)), "5 + 3 must be the exact point 8")
	assert.Equal(t, 0.0, sum.Width())
}

// TestSub_PointExactness mirrors the addition fast path.
func TestSub_PointExactness(t *testing.T) {
	d := interval.Point(5).Sub(interval.Point(3))
	assert.True(t, d.Equal(interval.Point(2)))
}

// TestMul_PointExactness verifies the multiplication fast path.
func TestMul_PointExactness(t *testing.T) {
	p := interval.Point(5).Mul(interval.Point(3))
	assert.True(t, p.Equal(interval.Point(15)))
}

// TestDiv_PointExactness verifies the division fast path.
func TestDiv_PointExactness(t *testing.T) {
	q := interval.Point(6).Div(interval.Point(3))
	assert.True(t, q.Equal(interval.Point(2)))
}

// TestAdd_OutwardPadding verifies that the general path pads each computed
// bound by its own ULP.
func TestAdd_OutwardPadding(t *testing.T) {
	a, _ := interval.New(1, 2)
	b, _ := interval.New(3, 4)
	sum := a.Add(b)
	assert.Equal(t, 4-interval.ULP(4.0), sum.Lo())
	assert.Equal(t, 6+interval.ULP(6.0), sum.Hi())
}

// TestNeg_Exact verifies −[a,b] == [−b,−a] with no padding.
func TestNeg_Exact(t *testing.T) {
	i, _ := interval.New(1, 2)
	n := i.Neg()
	assert.Equal(t, -2.0, n.Lo())
	assert.Equal(t, -1.0, n.Hi())
	assert.True(t, n.Neg().Equal(i), "double negation is the identity")
	assert.True(t, interval.Empty().Neg().IsEmpty())
}

// TestDiv_ZeroOverZero verifies the undefined-result policy:
// a zero-containing dividend over a zero-containing divisor is Empty.
func TestDiv_ZeroOverZero(t *testing.T) {
	a, _ := interval.New(-1, 1)
	assert.True(t, a.Div(a).IsEmpty(), "[-1,1]/[-1,1] must be Empty")
}

// TestDiv_ZeroDivisorUnbounded verifies the unbounded-result policy:
// a zero-free dividend over a zero-containing divisor is (−∞, +∞).
func TestDiv_ZeroDivisorUnbounded(t *testing.T) {
	a, _ := interval.New(2, 3)
	b, _ := interval.New(-1, 1)
	q := a.Div(b)
	assert.False(t, q.IsEmpty(), "the unbounded interval is a legitimate value, not an error")
	assert.True(t, math.IsInf(q.Lo(), -1))
	assert.True(t, math.IsInf(q.Hi(), 1))
}

// TestBinaryOps_EmptyPropagation verifies Empty in → Empty out for every
// binary operator.
func TestBinaryOps_EmptyPropagation(t *testing.T) {
	a, _ := interval.New(1, 2)
	e := interval.Empty()
	ops := map[string]func(interval.Interval, interval.Interval) interval.Interval{
		"Add": interval.Interval.Add,
		"Sub": interval.Interval.Sub,
		"Mul": interval.Interval.Mul,
		"Div": interval.Interval.Div,
	}
	for name, op := range ops {
		assert.True(t, op(a, e).IsEmpty(), "%s with Empty rhs", name)
		assert.True(t, op(e, a).IsEmpty(), "%s with Empty lhs", name)
	}
}

// TestSoundness_Add samples thousands of random member pairs and checks
// the defining invariant: x ∈ A, y ∈ B ⇒ x+y ∈ A+B.
func TestSoundness_Add(t *testing.T) {
	r := rand.New(rand.NewSource(soundnessSeed))
	for n := 0; n < soundnessRounds; n++ {
		a := randInterval(r, 1e6)
		b := randInterval(r, 1e6)
		x, y := sample(r, a), sample(r, b)
		require.True(t, a.Add(b).Contains(x+y), "round %d: %v + %v must contain %g", n, a, b, x+y)
	}
}

// TestSoundness_Sub is the subtraction counterpart.
func TestSoundness_Sub(t *testing.T) {
	r := rand.New(rand.NewSource(soundnessSeed))
	for n := 0; n < soundnessRounds; n++ {
		a := randInterval(r, 1e6)
		b := randInterval(r, 1e6)
		x, y := sample(r, a), sample(r, b)
		require.True(t, a.Sub(b).Contains(x-y), "round %d: %v - %v must contain %g", n, a, b, x-y)
	}
}

// TestSoundness_Mul samples across magnitudes including zero-straddling
// operands (randInterval straddles zero about half the time).
func TestSoundness_Mul(t *testing.T) {
	r := rand.New(rand.NewSource(soundnessSeed))
	for n := 0; n < soundnessRounds; n++ {
		a := randInterval(r, 1e3)
		b := randInterval(r, 1e3)
		x, y := sample(r, a), sample(r, b)
		require.True(t, a.Mul(b).Contains(x*y), "round %d: %v * %v must contain %g", n, a, b, x*y)
	}
}

// TestSoundness_Div skips zero-containing divisors (their result is the
// Entire interval or Empty by policy, covered elsewhere) and checks
// membership of the sampled quotient otherwise.
func TestSoundness_Div(t *testing.T) {
	r := rand.New(rand.NewSource(soundnessSeed))
	checked := 0
	for n := 0; checked < soundnessRounds; n++ {
		a := randInterval(r, 1e3)
		b := randInterval(r, 1e3)
		if b.Contains(0) {
			continue
		}
		x, y := sample(r, a), sample(r, b)
		require.True(t, a.Div(b).Contains(x/y), "round %d: %v / %v must contain %g", n, a, b, x/y)
		checked++
	}
}

// TestArithmetic_UnboundedOperands verifies that the unbounded interval is
// a working operand, not a dead end: arithmetic on (−∞, +∞) stays sound
// and never collapses to Empty. The 0·∞ corner resolves to the achieved
// product 0.
func TestArithmetic_UnboundedOperands(t *testing.T) {
	e := interval.Entire()
	a, _ := interval.New(1, 2)

	assert.True(t, e.Add(a).Equal(e), "Entire + [1,2] must stay Entire")
	assert.True(t, e.Sub(a).Equal(e), "Entire - [1,2] must stay Entire")
	assert.True(t, e.Mul(a).Equal(e), "Entire * [1,2] must stay Entire")
	assert.True(t, e.Div(a).Equal(e), "Entire / [1,2] must stay Entire")

	assert.True(t, e.Mul(interval.Point(0)).Equal(interval.Point(0)),
		"x*0 == 0 for every real x, so Entire * [0,0] is the exact point 0")

	half, _ := interval.New(0, 1)
	assert.True(t, half.Mul(e).Equal(e), "a zero-touching factor times Entire spans all reals")

	assert.True(t, a.Div(e).Equal(e), "zero-free dividend over a zero-containing divisor is Entire")
	assert.True(t, e.Div(e).IsEmpty(), "both sides contain 0, so 0/0 is possible and the result is Empty")
}

// TestArithmetic_OverflowSaturates verifies that a bound computation which
// overflows to an infinity yields a sound half-unbounded interval rather
// than Empty: the overflowed side stays infinite and the opposite side
// saturates at the largest finite value.
func TestArithmetic_OverflowSaturates(t *testing.T) {
	a, _ := interval.New(1e308, 1.7e308)
	sum := a.Add(a)
	require.False(t, sum.IsEmpty(), "finite overflow must not report Empty")
	assert.Equal(t, math.MaxFloat64, sum.Lo(), "an overflowed lower bound saturates to MaxFloat64")
	assert.True(t, math.IsInf(sum.Hi(), 1))
	assert.True(t, sum.Contains(math.MaxFloat64))

	neg := a.Neg().Add(a.Neg())
	require.False(t, neg.IsEmpty())
	assert.True(t, math.IsInf(neg.Lo(), -1))
	assert.Equal(t, -math.MaxFloat64, neg.Hi(), "an overflowed upper bound saturates to -MaxFloat64")

	p := interval.Point(1e308).Add(interval.Point(1e308))
	require.False(t, p.IsEmpty(), "the point fast path must also survive overflow")
	assert.Equal(t, math.MaxFloat64, p.Lo())
	assert.True(t, math.IsInf(p.Hi(), 1))

	sq := interval.Point(1e200).Mul(interval.Point(1e200))
	require.False(t, sq.IsEmpty())
	assert.Equal(t, math.MaxFloat64, sq.Lo())
	assert.True(t, math.IsInf(sq.Hi(), 1))

	wide, _ := interval.New(1e200, 3e200)
	prod := wide.Mul(wide)
	require.False(t, prod.IsEmpty())
	assert.Equal(t, math.MaxFloat64, prod.Lo())
	assert.True(t, math.IsInf(prod.Hi(), 1))
}

// TestSoundness_PointFastPaths verifies that the exact fast paths still
// contain the float result of operating on their (exact) members.
func TestSoundness_PointFastPaths(t *testing.T) {
	r := rand.New(rand.NewSource(soundnessSeed))
	for n := 0; n < soundnessRounds; n++ {
		x := (r.Float64() - 0.5) * 1e6
		y := (r.Float64() - 0.5) * 1e6
		a, b := interval.Point(x), interval.Point(y)
		assert.True(t, a.Add(b).Contains(x+y))
		assert.True(t, a.Sub(b).Contains(x-y))
		assert.True(t, a.Mul(b).Contains(x*y))
		if y != 0 {
			assert.True(t, a.Div(b).Contains(x/y))
		}
	}
}
