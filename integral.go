// SPDX-License-Identifier: MIT

package seqint

import (
	"github.com/katalvlaran/seqint/engine"
	"github.com/katalvlaran/seqint/simpson"
)

// SingleIntegral computes ∫_a^b f(x) dx with half step h.
//
// Errors:
//   - engine.ErrNilFunction if f is nil.
//   - simpson.ErrInvalidStep if h is not finite and positive.
//   - engine.ErrNonFiniteBound if a or b is NaN or ±Inf.
func SingleIntegral(f func(x float64) float64, a, b, h float64) (float64, error) {
	if f == nil {
		return 0, engine.ErrNilFunction
	}
	q, err := simpson.NewSingle(engine.Func1(f), h)
	if err != nil {
		return 0, err
	}

	return engine.IntegrateSingle(q, a, b)
}

// DoubleIntegral computes ∫_a^b ∫_{lo(x)}^{hi(x)} f(x, y) dy dx with half steps
// h (x) and k (y).
func DoubleIntegral(
	f func(x, y float64) float64,
	a, b, h float64,
	lo, hi func(x float64) float64, k float64,
) (float64, error) {
	if f == nil || lo == nil || hi == nil {
		return 0, engine.ErrNilFunction
	}
	q, err := simpson.NewDouble(engine.Func2(f), h, k)
	if err != nil {
		return 0, err
	}

	return engine.IntegrateDouble(q, a, b, engine.Func1(lo), engine.Func1(hi))
}

// TripleIntegral computes
// ∫_a^b ∫_{lo2(x)}^{hi2(x)} ∫_{lo3(x,y)}^{hi3(x,y)} f(x, y, z) dz dy dx
// with half steps h, k, l.
func TripleIntegral(
	f func(x, y, z float64) float64,
	a, b, h float64,
	lo2, hi2 func(x float64) float64, k float64,
	lo3, hi3 func(x, y float64) float64, l float64,
) (float64, error) {
	if f == nil || lo2 == nil || hi2 == nil || lo3 == nil || hi3 == nil {
		return 0, engine.ErrNilFunction
	}
	q, err := simpson.NewTriple(engine.Func3(f), h, k, l)
	if err != nil {
		return 0, err
	}

	return engine.IntegrateTriple(q, a, b,
		engine.Func1(lo2), engine.Func1(hi2),
		engine.Func2(lo3), engine.Func2(hi3))
}
