package seqint_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqint"
	"github.com/katalvlaran/seqint/engine"
	"github.com/katalvlaran/seqint/expression"
	"github.com/katalvlaran/seqint/simpson"
)

func one1(float64) float64 { return 1 }

func zero1(float64) float64 { return 0 }

func zero2(float64, float64) float64 { return 0 }

// clampedSqrt mirrors the expression evaluator's sqrt near zero.
func clampedSqrt(v float64) float64 { return math.Sqrt(math.Max(0, v)) }

func TestSingleIntegral_Properties(t *testing.T) {
	t.Parallel()

	v, err := seqint.SingleIntegral(one1, -2, 3, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, v, 1e-12, "∫1 = b − a")

	r, err := seqint.SingleIntegral(one1, 3, -2, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, -5.0, r, 1e-12, "reversal flips the sign")

	z, err := seqint.SingleIntegral(one1, 1, 1, 0.1)
	require.NoError(t, err)
	assert.Zero(t, z)

	s, err := seqint.SingleIntegral(math.Sin, 0, math.Pi, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, s, 1e-8)
}

// TestSingleIntegralExpr_Semicircle: area of the upper half of the unit disc.
func TestSingleIntegralExpr_Semicircle(t *testing.T) {
	t.Parallel()

	v, err := seqint.SingleIntegralExpr("max(sqrt(1 - x^2))", -1, 1, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, v, 1e-2)
}

// TestDoubleIntegralExpr_HalfDisc: ∫∫ 1 over y ∈ [0, √(1−x²)] = π/2.
func TestDoubleIntegralExpr_HalfDisc(t *testing.T) {
	t.Parallel()

	v, err := seqint.DoubleIntegralExpr("1", -1, 1, 0.005, "0", "max(sqrt(1 - x^2))", 0.005)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, v, 1e-2)
}

// TestDoubleIntegral_Ratio: ∫_1^2 ∫_{1/x}^{x} x²/y² dy dx = 9/4.
func TestDoubleIntegral_Ratio(t *testing.T) {
	t.Parallel()

	v, err := seqint.DoubleIntegral(
		func(x, y float64) float64 { return x * x / (y * y) },
		1, 2, 0.001,
		func(x float64) float64 { return 1 / x },
		func(x float64) float64 { return x },
		0.001)
	require.NoError(t, err)
	assert.InDelta(t, 2.25, v, 1e-2)
}

func TestDoubleIntegralExpr_Ratio(t *testing.T) {
	if testing.Short() {
		t.Skip("textual integrand over a fine grid")
	}
	t.Parallel()

	v, err := seqint.DoubleIntegralExpr("x ^ 2/ y ^ 2", 1, 2, 0.001, "1/x", "x", 0.001)
	require.NoError(t, err)
	assert.InDelta(t, 2.25, v, 1e-2)
}

// TestTripleIntegralExpr_SphereQuarter: volume of a quarter of the unit ball.
func TestTripleIntegralExpr_SphereQuarter(t *testing.T) {
	if testing.Short() {
		t.Skip("textual integrand over a fine grid")
	}
	t.Parallel()

	v, err := seqint.TripleIntegralExpr("1",
		-1, 1, 0.01,
		"0", "max(sqrt(1 - x^2))", 0.01,
		"0", "max(sqrt(1 - x^2 - y^2))", 0.01)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/3, v, 2e-2)
}

func TestTripleIntegral_SphereQuarter(t *testing.T) {
	t.Parallel()

	v, err := seqint.TripleIntegral(
		func(x, y, z float64) float64 { return 1 },
		-1, 1, 0.01,
		zero1, func(x float64) float64 { return clampedSqrt(1 - x*x) }, 0.01,
		zero2, func(x, y float64) float64 { return clampedSqrt(1 - x*x - y*y) }, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/3, v, 2e-2)
}

func TestTripleIntegralExpr_Cube(t *testing.T) {
	t.Parallel()

	v, err := seqint.TripleIntegralExpr("1", -1, 1, 0.05, "0", "2", 0.05, "0", "2", 0.05)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, v, 1e-2)
}

// TestTripleIntegral_SumOfSquares covers inner limits that change order
// across the domain (x/2 < 0 for x < 0, x² + y < 0 near the origin) and fully
// reversed limits.
func TestTripleIntegral_SumOfSquares(t *testing.T) {
	t.Parallel()

	f := func(x, y, z float64) float64 { return x*x + y*y + z*z }
	half := func(x float64) float64 { return x / 2 }
	ident := func(x float64) float64 { return x }
	top := func(x, y float64) float64 { return x*x + y }

	cases := []struct {
		name     string
		a, b, h  float64
		lo2, hi2 func(float64) float64
		lo3, hi3 func(float64, float64) float64
		want     float64
		tol      float64
	}{
		{"forward", -1, 1, 0.005, zero1, half, zero2, top, 79.0 / 840, 1e-2},
		{"inner y reversed", -1, 1, 0.005, half, zero1, zero2, top, -79.0 / 840, 1e-2},
		{"outer and inner reversed", 1, -1, 0.01, ident, half, top, zero2, -107.0 / 280, 3e-2},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v, err := seqint.TripleIntegral(f, tc.a, tc.b, tc.h, tc.lo2, tc.hi2, tc.h, tc.lo3, tc.hi3, tc.h)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, v, tc.tol)
		})
	}
}

// TestTripleIntegralExpr_Reversed runs the fully reversed case through the
// textual path with the limits written in their reversed form.
func TestTripleIntegralExpr_Reversed(t *testing.T) {
	if testing.Short() {
		t.Skip("textual integrand over a fine grid")
	}
	t.Parallel()

	v, err := seqint.TripleIntegralExpr("x ^ 2 + y ^ 2 + z ^ 2",
		1, -1, 0.01,
		"x", "x / 2", 0.01,
		"x^2 + y", "0", 0.01)
	require.NoError(t, err)
	assert.InDelta(t, -107.0/280, v, 3e-2)
}

// TestNativeAndTextualAgree: the same integrand through both paths.
func TestNativeAndTextualAgree(t *testing.T) {
	t.Parallel()

	native, err := seqint.DoubleIntegral(
		func(x, y float64) float64 { return x*y + 1 },
		0, 1, 0.02,
		zero1, func(x float64) float64 { return x }, 0.02)
	require.NoError(t, err)

	textual, err := seqint.DoubleIntegralExpr("x*y + 1", 0, 1, 0.02, "0", "x", 0.02)
	require.NoError(t, err)

	assert.InDelta(t, native, textual, 1e-12)
}

// TestIdempotent: repeated calls return bit-identical values.
func TestIdempotent(t *testing.T) {
	t.Parallel()

	run := func() float64 {
		v, err := seqint.TripleIntegralExpr("x*y + z", 0, 1, 0.1, "0", "1 - x", 0.1, "0", "x + y", 0.1)
		require.NoError(t, err)
		return v
	}
	first := run()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, run())
	}
}

// TestQuadratureReuse: one quadrature value shared by concurrent callers.
func TestQuadratureReuse(t *testing.T) {
	q, err := simpson.NewSingle(engine.Func1(math.Cos), 0.01)
	require.NoError(t, err)

	results := make(chan float64, 8)
	for i := 0; i < cap(results); i++ {
		go func() {
			v, err := engine.IntegrateSingle(q, 0, math.Pi/2)
			if err != nil {
				v = math.NaN()
			}
			results <- v
		}()
	}
	for i := 0; i < cap(results); i++ {
		assert.InDelta(t, 1.0, <-results, 1e-8)
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	_, err := seqint.SingleIntegral(nil, 0, 1, 0.1)
	assert.ErrorIs(t, err, engine.ErrNilFunction)

	_, err = seqint.DoubleIntegral(func(x, y float64) float64 { return 1 }, 0, 1, 0.1, nil, one1, 0.1)
	assert.ErrorIs(t, err, engine.ErrNilFunction)

	_, err = seqint.TripleIntegral(func(x, y, z float64) float64 { return 1 }, 0, 1, 0.1, zero1, one1, 0.1, zero2, nil, 0.1)
	assert.ErrorIs(t, err, engine.ErrNilFunction)

	_, err = seqint.SingleIntegral(one1, 0, 1, 0)
	assert.ErrorIs(t, err, simpson.ErrInvalidStep)

	_, err = seqint.SingleIntegral(one1, 1e17, 1e17+1000, 1)
	assert.ErrorIs(t, err, engine.ErrRangeOutOfBounds, "step below float spacing at the limits")

	_, err = seqint.SingleIntegral(one1, math.NaN(), 1, 0.1)
	assert.ErrorIs(t, err, engine.ErrNonFiniteBound)

	_, err = seqint.SingleIntegralExpr("x +", 0, 1, 0.1)
	assert.ErrorIs(t, err, expression.ErrExpression)

	_, err = seqint.SingleIntegralExpr("[x, -x]", 0, 1, 0.1)
	assert.ErrorIs(t, err, expression.ErrMultipleResults)

	// Bound failures surface from inside the nested layers.
	_, err = seqint.DoubleIntegralExpr("1", -2, 2, 0.1, "0", "sqrt(1 - x^2)", 0.1)
	assert.ErrorIs(t, err, expression.ErrExpression)

	_, err = seqint.TripleIntegralExpr("1", 0, 1, 0.1, "0", "1", 0.1, "0", "y / 0 - y / 0", 0.1)
	assert.ErrorIs(t, err, engine.ErrNonFiniteBound, "NaN inner limit")

	_, err = seqint.DoubleIntegralExpr("1", 0, 1, 0.1, "0", "z", 0.1)
	assert.ErrorIs(t, err, expression.ErrExpression, "z is not bound for y limits")

	_, err = seqint.TripleIntegralExpr("1", 0, 1, 0.1, "0", "1", 0, "0", "1", 0.1)
	assert.ErrorIs(t, err, simpson.ErrInvalidStep)
}
