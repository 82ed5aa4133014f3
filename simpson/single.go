// SPDX-License-Identifier: MIT

package simpson

import "github.com/katalvlaran/seqint/engine"

// Single is the composite Simpson rule for ∫ f(x) dx.
// It implements engine.Quadrature1.
type Single struct {
	ranges
	f engine.Function1
	h float64
}

// NewSingle builds the arity-1 quadrature with half step h.
//
// Errors:
//   - engine.ErrNilFunction if f is nil.
//   - ErrInvalidStep if h is not finite and positive.
func NewSingle(f engine.Function1, h float64) (*Single, error) {
	if err := validateFunction(f); err != nil {
		return nil, err
	}
	if err := validateSteps(h); err != nil {
		return nil, err
	}

	return &Single{f: f, h: h}, nil
}

// Step returns the nominal half step h.
func (q *Single) Step() float64 { return q.h }

// Evaluate implements engine.Evaluable1: it samples the panel starting at x
// and returns its raw stencil (common channel) or, on the last panel, the
// fully weighted value h'/3 · stencil (last channel).
func (q *Single) Evaluate(x engine.Step, bx engine.Bounds) (engine.Result, error) {
	px := Points(x, bx, q.h)

	var f [3]float64
	for i, xi := range px.X {
		v, err := q.f.Value(xi)
		if err != nil {
			return engine.Result{}, err
		}
		f[i] = v
	}

	var r engine.Result
	if px.Last {
		r.SetLast(px.H * stencil1(&f) / divisor1)
	} else {
		r.AddCommon(stencil1(&f))
	}

	return r, nil
}

// Finalize implements engine.Finalizer: h/3 · common + last.
func (q *Single) Finalize(r engine.Result) float64 {
	return q.h*r.Common()/divisor1 + r.Last()
}
