package seqint

import (
	"github.com/katalvlaran/seqint/engine"
	"github.com/katalvlaran/seqint/expression"
	"github.com/katalvlaran/seqint/simpson"
)

// SingleIntegralExpr computes ∫_a^b equation dx, where equation is an
// expression in x. Evaluation errors are marked with expression.ErrExpression
// or expression.ErrMultipleResults.
func SingleIntegralExpr(equation string, a, b, h float64) (float64, error) {
	f, err := expression.Function1(equation)
	if err != nil {
		return 0, err
	}
	q, err := simpson.NewSingle(f, h)
	if err != nil {
		return 0, err
	}

	return engine.IntegrateSingle(q, a, b)
}

// DoubleIntegralExpr computes ∫_a^b ∫_lo^hi equation dy dx. equation may use x
// and y; lo and hi may use x.
func DoubleIntegralExpr(equation string, a, b, h float64, lo, hi string, k float64) (float64, error) {
	f, err := expression.Function2(equation)
	if err != nil {
		return 0, err
	}
	lower, err := expression.Function1(lo)
	if err != nil {
		return 0, err
	}
	upper, err := expression.Function1(hi)
	if err != nil {
		return 0, err
	}
	q, err := simpson.NewDouble(f, h, k)
	if err != nil {
		return 0, err
	}

	return engine.IntegrateDouble(q, a, b, lower, upper)
}

// TripleIntegralExpr computes ∫_a^b ∫_lo2^hi2 ∫_lo3^hi3 equation dz dy dx.
// equation may use x, y and z; lo2/hi2 may use x; lo3/hi3 may use x and y.
func TripleIntegralExpr(
	equation string,
	a, b, h float64,
	lo2, hi2 string, k float64,
	lo3, hi3 string, l float64,
) (float64, error) {
	f, err := expression.Function3(equation)
	if err != nil {
		return 0, err
	}
	lower2, err := expression.Function1(lo2)
	if err != nil {
		return 0, err
	}
	upper2, err := expression.Function1(hi2)
	if err != nil {
		return 0, err
	}
	lower3, err := expression.Function2(lo3)
	if err != nil {
		return 0, err
	}
	upper3, err := expression.Function2(hi3)
	if err != nil {
		return 0, err
	}
	q, err := simpson.NewTriple(f, h, k, l)
	if err != nil {
		return 0, err
	}

	return engine.IntegrateTriple(q, a, b, lower2, upper2, lower3, upper3)
}
