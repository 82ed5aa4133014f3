// SPDX-License-Identifier: MIT

// Package engine: capability interfaces.
// This file contains ONLY the contracts the integration layers talk through:
// integrand/bound functions, per-arity evaluation capabilities and the
// quadrature hooks (range factory, finalizer, step sizes). Concrete rules
// live in their own packages (see simpson/).
package engine

// ---------- Integrands and bound functions ----------

// Function1 is a real function of one variable. It is used both for
// single-variable integrands and for the bounds of the second dimension,
// which depend on x.
type Function1 interface {
	Value(x float64) (float64, error)
}

// Function2 is a real function of two variables (double integrands, bounds of
// the third dimension which depend on x and y).
type Function2 interface {
	Value(x, y float64) (float64, error)
}

// Function3 is a real function of three variables (triple integrands).
type Function3 interface {
	Value(x, y, z float64) (float64, error)
}

// Func1 adapts a plain Go closure to Function1. It never fails.
type Func1 func(x float64) float64

// Value implements Function1.
func (f Func1) Value(x float64) (float64, error) { return f(x), nil }

// Func2 adapts a plain Go closure to Function2. It never fails.
type Func2 func(x, y float64) float64

// Value implements Function2.
func (f Func2) Value(x, y float64) (float64, error) { return f(x, y), nil }

// Func3 adapts a plain Go closure to Function3. It never fails.
type Func3 func(x, y, z float64) float64

// Value implements Function3.
func (f Func3) Value(x, y, z float64) (float64, error) { return f(x, y, z), nil }

// Const1 is a constant Function1, handy for fixed inner bounds.
type Const1 float64

// Value implements Function1.
func (c Const1) Value(float64) (float64, error) { return float64(c), nil }

// Const2 is a constant Function2.
type Const2 float64

// Value implements Function2.
func (c Const2) Value(float64, float64) (float64, error) { return float64(c), nil }

// ---------- Evaluation capabilities ----------

// Evaluable1 is anything that can contribute to a one-dimensional stepping
// loop: given the current step and the bounds it was drawn from, it returns
// the contribution of that panel. Implementations: the arity-1 quadrature and
// SecondIntegrator.
type Evaluable1 interface {
	Evaluate(x Step, bx Bounds) (Result, error)
}

// Evaluable2 is the two-variable counterpart of Evaluable1. Implementations:
// the arity-2 quadrature and ThirdIntegrator.
type Evaluable2 interface {
	Evaluate(x Step, bx Bounds, y Step, by Bounds) (Result, error)
}

// Evaluable3 is the three-variable counterpart. Implementation: the arity-3
// quadrature.
type Evaluable3 interface {
	Evaluate(x Step, bx Bounds, y Step, by Bounds, z Step, bz Bounds) (Result, error)
}

// ---------- Quadrature hooks ----------

// RangeGenerator produces the steps of one (sub)integration.
// Callers stop pulling after the first step whose IsLast() is true.
type RangeGenerator interface {
	Next() (Step, error)
}

// RangeFactory builds the generator matching a quadrature's stepping scheme.
// ok is false when b is a zero-width interval: there are no steps and the
// interval contributes nothing.
type RangeFactory interface {
	NewRange(b Bounds, h float64) (gen RangeGenerator, ok bool)
}

// Finalizer turns an accumulated Result into the integral value by applying
// the quadrature constant to the common channel and adding the last channel.
type Finalizer interface {
	Finalize(r Result) float64
}

// Quadrature1 bundles everything a single integral needs.
type Quadrature1 interface {
	Evaluable1
	RangeFactory
	Finalizer
	Step() float64
}

// Quadrature2 bundles everything a double integral needs.
type Quadrature2 interface {
	Evaluable2
	RangeFactory
	Finalizer
	Steps() (h, k float64)
}

// Quadrature3 bundles everything a triple integral needs.
type Quadrature3 interface {
	Evaluable3
	RangeFactory
	Finalizer
	Steps() (h, k, l float64)
}
