// SPDX-License-Identifier: MIT

package engine

// Integrate — the generic one-dimensional integrator.
//
// Algorithm Outline:
//  1. (bounds, direction) = Configure(a, b). Reversed limits are legal.
//  2. If the interval has zero width, return 0.
//  3. gen = ranges.NewRange(bounds, h).
//  4. Loop: step = gen.Next(); acc += direction · eq.Evaluate(step, bounds);
//     stop after the first step with IsLast() == true.
//  5. Return fin.Finalize(acc).
//
// eq is usually either the arity-1 quadrature itself (single integral) or a
// SecondIntegrator wrapping deeper layers. Finalize runs exactly once, here.
//
// Errors:
//   - ErrNonFiniteBound from Configure.
//   - ErrRangeOutOfBounds if the generator breaks its own contract or h is
//     too small to move past a and b in float64.
//   - any error returned by eq, passed through unchanged.
//
// Complexity: O((b−a)/2h) calls to eq.
func Integrate(a, b, h float64, eq Evaluable1, ranges RangeFactory, fin Finalizer) (float64, error) {
	bounds, direction, err := Configure(a, b)
	if err != nil {
		return 0, err
	}
	if bounds.IsEmpty() {
		return 0, nil
	}

	acc, err := accumulate(ranges, bounds, h, func(x Step) (Result, error) {
		part, err := eq.Evaluate(x, bounds)
		if err != nil {
			return Result{}, err
		}
		return part.Scale(direction), nil
	})
	if err != nil {
		return 0, err
	}

	return fin.Finalize(acc), nil
}

// accumulate drives one stepping loop over b with stride h and sums the
// contributions returned by eval. A zero-width interval yields an empty
// Result. The loop ends on the first Last step; a generator that never
// produces one surfaces ErrRangeOutOfBounds through Next.
func accumulate(ranges RangeFactory, b Bounds, h float64, eval func(Step) (Result, error)) (Result, error) {
	var acc Result

	gen, ok := ranges.NewRange(b, h)
	if !ok {
		return acc, nil
	}

	for {
		step, err := gen.Next()
		if err != nil {
			return Result{}, err
		}

		part, err := eval(step)
		if err != nil {
			return Result{}, err
		}
		acc = acc.Add(part)

		if step.IsLast() {
			break
		}
	}

	return acc, nil
}
