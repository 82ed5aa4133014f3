// SPDX-License-Identifier: MIT

package engine

import "reflect"

// SecondIntegrator integrates over the second variable y for a fixed outer
// sample x. Its lower and upper limits are functions of x, so every outer
// panel gets its own inner interval.
//
// It implements Evaluable1 and is therefore usable as the integrand of
// Integrate. It never finalizes: the raw two-channel Result goes back to the
// outer loop, which finalizes once with the arity-2 quadrature.
type SecondIntegrator struct {
	lower  Function1
	upper  Function1
	k      float64
	inner  Evaluable2
	ranges RangeFactory
}

// NewSecondIntegrator wires the y-layer.
//
// Inputs:
//   - lower, upper: y limits as functions of x (either order is legal).
//   - k: nominal y half step.
//   - inner: the arity-2 capability evaluated at each (x, y) panel.
//   - ranges: stepping scheme for y.
//
// Errors:
//   - ErrNilFunction if any collaborator is nil.
func NewSecondIntegrator(lower, upper Function1, k float64, inner Evaluable2, ranges RangeFactory) (*SecondIntegrator, error) {
	if IsNil(lower) || IsNil(upper) || IsNil(inner) || IsNil(ranges) {
		return nil, ErrNilFunction
	}

	return &SecondIntegrator{lower: lower, upper: upper, k: k, inner: inner, ranges: ranges}, nil
}

// Evaluate implements Evaluable1.
// The y limits are evaluated at the panel start x.Value(), normalized with
// Configure, and the inner loop's contributions are scaled by the direction.
func (s *SecondIntegrator) Evaluate(x Step, bx Bounds) (Result, error) {
	a, err := s.lower.Value(x.Value())
	if err != nil {
		return Result{}, err
	}
	b, err := s.upper.Value(x.Value())
	if err != nil {
		return Result{}, err
	}

	by, direction, err := Configure(a, b)
	if err != nil {
		return Result{}, err
	}

	return accumulate(s.ranges, by, s.k, func(y Step) (Result, error) {
		part, err := s.inner.Evaluate(x, bx, y, by)
		if err != nil {
			return Result{}, err
		}
		return part.Scale(direction), nil
	})
}

// ThirdIntegrator integrates over the third variable z for fixed outer
// samples (x, y). Limits are functions of (x, y). It implements Evaluable2,
// so a SecondIntegrator can drive it.
type ThirdIntegrator struct {
	lower  Function2
	upper  Function2
	l      float64
	inner  Evaluable3
	ranges RangeFactory
}

// NewThirdIntegrator wires the z-layer; see NewSecondIntegrator.
func NewThirdIntegrator(lower, upper Function2, l float64, inner Evaluable3, ranges RangeFactory) (*ThirdIntegrator, error) {
	if IsNil(lower) || IsNil(upper) || IsNil(inner) || IsNil(ranges) {
		return nil, ErrNilFunction
	}

	return &ThirdIntegrator{lower: lower, upper: upper, l: l, inner: inner, ranges: ranges}, nil
}

// Evaluate implements Evaluable2.
func (t *ThirdIntegrator) Evaluate(x Step, bx Bounds, y Step, by Bounds) (Result, error) {
	a, err := t.lower.Value(x.Value(), y.Value())
	if err != nil {
		return Result{}, err
	}
	b, err := t.upper.Value(x.Value(), y.Value())
	if err != nil {
		return Result{}, err
	}

	bz, direction, err := Configure(a, b)
	if err != nil {
		return Result{}, err
	}

	return accumulate(t.ranges, bz, t.l, func(z Step) (Result, error) {
		part, err := t.inner.Evaluate(x, bx, y, by, z, bz)
		if err != nil {
			return Result{}, err
		}
		return part.Scale(direction), nil
	})
}

// IsNil catches nil interfaces and typed nils (nil *simpson.Single, nil
// Func1, ...) hidden behind a non-nil interface value.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
