// SPDX-License-Identifier: MIT

package simpson

import "github.com/katalvlaran/seqint/engine"

// Triple is the composite Simpson rule for ∫∫∫ f(x, y, z) on a 3×3×3 stencil.
// It implements engine.Quadrature3.
type Triple struct {
	ranges
	f       engine.Function3
	h, k, l float64
}

// NewTriple builds the arity-3 quadrature with half steps h, k, l.
//
// Errors:
//   - engine.ErrNilFunction if f is nil.
//   - ErrInvalidStep if any step is not finite and positive.
func NewTriple(f engine.Function3, h, k, l float64) (*Triple, error) {
	if err := validateFunction(f); err != nil {
		return nil, err
	}
	if err := validateSteps(h, k, l); err != nil {
		return nil, err
	}

	return &Triple{f: f, h: h, k: k, l: l}, nil
}

// Steps returns the nominal half steps (h, k, l).
func (q *Triple) Steps() (float64, float64, float64) { return q.h, q.k, q.l }

// Evaluate implements engine.Evaluable3.
// 27 samples, then one dot product; a panel touching any last step is
// weighted with h'·k'·l'/27 and stored in the last channel.
func (q *Triple) Evaluate(
	x engine.Step, bx engine.Bounds,
	y engine.Step, by engine.Bounds,
	z engine.Step, bz engine.Bounds,
) (engine.Result, error) {
	px := Points(x, bx, q.h)
	py := Points(y, by, q.k)
	pz := Points(z, bz, q.l)

	var f [27]float64
	for i, xi := range px.X {
		for j, yj := range py.X {
			for k, zk := range pz.X {
				v, err := q.f.Value(xi, yj, zk)
				if err != nil {
					return engine.Result{}, err
				}
				f[i*9+j*3+k] = v
			}
		}
	}

	var r engine.Result
	if px.Last || py.Last || pz.Last {
		r.SetLast(px.H * py.H * pz.H * stencil3(&f) / divisor3)
	} else {
		r.AddCommon(stencil3(&f))
	}

	return r, nil
}

// Finalize implements engine.Finalizer: hkl/27 · common + last.
func (q *Triple) Finalize(r engine.Result) float64 {
	return q.h*q.k*q.l*r.Common()/divisor3 + r.Last()
}
