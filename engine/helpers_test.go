package engine_test

import (
	"errors"

	"github.com/katalvlaran/seqint/engine"
)

// Test doubles: a left-Riemann rule whose final panel is stretched to land
// on the end bound. With constant integrands and dyadic steps it is exact,
// which lets the engine be checked independently of package simpson.

// riemannRange steps by h and marks the step after which less than one
// stride remains as last.
type riemannRange struct {
	pos, end, h float64
	done        bool
}

func (r *riemannRange) Next() (engine.Step, error) {
	if r.done {
		return engine.Step{}, engine.ErrRangeOutOfBounds
	}
	var s engine.Step
	if r.pos >= r.end-r.h {
		s = engine.LastStep(r.pos)
		r.done = true
	} else {
		s = engine.CommonStep(r.pos)
	}
	r.pos += r.h
	return s, nil
}

type riemannRanges struct{}

func (riemannRanges) NewRange(b engine.Bounds, h float64) (engine.RangeGenerator, bool) {
	if b.IsEmpty() {
		return nil, false
	}
	return &riemannRange{pos: b.Begin(), end: b.End(), h: h}, true
}

// width returns the effective panel width along one axis.
func width(s engine.Step, b engine.Bounds, h float64) float64 {
	if s.IsLast() {
		return b.End() - s.Value()
	}
	return h
}

// riemann1 is an arity-1 quadrature double.
type riemann1 struct {
	riemannRanges
	f engine.Function1
	h float64
}

func (q riemann1) Step() float64 { return q.h }

func (q riemann1) Evaluate(x engine.Step, bx engine.Bounds) (engine.Result, error) {
	v, err := q.f.Value(x.Value())
	if err != nil {
		return engine.Result{}, err
	}
	if x.IsLast() {
		return engine.LastResult(width(x, bx, q.h) * v), nil
	}
	return engine.CommonResult(v), nil
}

func (q riemann1) Finalize(r engine.Result) float64 { return q.h*r.Common() + r.Last() }

// riemann2 is an arity-2 quadrature double.
type riemann2 struct {
	riemannRanges
	f    engine.Function2
	h, k float64
}

func (q riemann2) Steps() (float64, float64) { return q.h, q.k }

func (q riemann2) Evaluate(x engine.Step, bx engine.Bounds, y engine.Step, by engine.Bounds) (engine.Result, error) {
	v, err := q.f.Value(x.Value(), y.Value())
	if err != nil {
		return engine.Result{}, err
	}
	if x.IsLast() || y.IsLast() {
		return engine.LastResult(width(x, bx, q.h) * width(y, by, q.k) * v), nil
	}
	return engine.CommonResult(v), nil
}

func (q riemann2) Finalize(r engine.Result) float64 { return q.h*q.k*r.Common() + r.Last() }

// riemann3 is an arity-3 quadrature double.
type riemann3 struct {
	riemannRanges
	f       engine.Function3
	h, k, l float64
}

func (q riemann3) Steps() (float64, float64, float64) { return q.h, q.k, q.l }

func (q riemann3) Evaluate(
	x engine.Step, bx engine.Bounds,
	y engine.Step, by engine.Bounds,
	z engine.Step, bz engine.Bounds,
) (engine.Result, error) {
	v, err := q.f.Value(x.Value(), y.Value(), z.Value())
	if err != nil {
		return engine.Result{}, err
	}
	if x.IsLast() || y.IsLast() || z.IsLast() {
		return engine.LastResult(width(x, bx, q.h) * width(y, by, q.k) * width(z, bz, q.l) * v), nil
	}
	return engine.CommonResult(v), nil
}

func (q riemann3) Finalize(r engine.Result) float64 { return q.h*q.k*q.l*r.Common() + r.Last() }

// failing1 always returns errBoom.
type failing1 struct{}

func (failing1) Value(float64) (float64, error) { return 0, errBoom }

var errBoom = errors.New("boom")
