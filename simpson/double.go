// SPDX-License-Identifier: MIT

package simpson

import "github.com/katalvlaran/seqint/engine"

// Double is the composite Simpson rule for ∫∫ f(x, y) dy dx on a 3×3 stencil.
// It implements engine.Quadrature2.
type Double struct {
	ranges
	f    engine.Function2
	h, k float64
}

// NewDouble builds the arity-2 quadrature with half steps h (x) and k (y).
//
// Errors:
//   - engine.ErrNilFunction if f is nil.
//   - ErrInvalidStep if h or k is not finite and positive.
func NewDouble(f engine.Function2, h, k float64) (*Double, error) {
	if err := validateFunction(f); err != nil {
		return nil, err
	}
	if err := validateSteps(h, k); err != nil {
		return nil, err
	}

	return &Double{f: f, h: h, k: k}, nil
}

// Steps returns the nominal half steps (h, k).
func (q *Double) Steps() (float64, float64) { return q.h, q.k }

// Evaluate implements engine.Evaluable2.
// If either axis sits on its last step the panel is weighted on the spot
// with the effective half steps (h'·k'/9) and goes to the last channel.
func (q *Double) Evaluate(x engine.Step, bx engine.Bounds, y engine.Step, by engine.Bounds) (engine.Result, error) {
	px := Points(x, bx, q.h)
	py := Points(y, by, q.k)

	var f [9]float64
	for i, xi := range px.X {
		for j, yj := range py.X {
			v, err := q.f.Value(xi, yj)
			if err != nil {
				return engine.Result{}, err
			}
			f[i*3+j] = v
		}
	}

	var r engine.Result
	if px.Last || py.Last {
		r.SetLast(px.H * py.H * stencil2(&f) / divisor2)
	} else {
		r.AddCommon(stencil2(&f))
	}

	return r, nil
}

// Finalize implements engine.Finalizer: hk/9 · common + last.
func (q *Double) Finalize(r engine.Result) float64 {
	return q.h*q.k*r.Common()/divisor2 + r.Last()
}
