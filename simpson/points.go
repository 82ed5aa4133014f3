package simpson

import "github.com/katalvlaran/seqint/engine"

// Panel holds the three abscissae of one Simpson panel along one axis plus
// the effective half step used to weight it.
type Panel struct {
	X    [3]float64
	H    float64
	Last bool
}

// Points derives the panel sampled at step along an axis with bounds b and
// nominal half step h.
//
//   - Common step at x: x, x+h, x+2h with half step h.
//   - Last step at x:   x, x+h', end with h' = (end − x)/2, so the panel lands
//     exactly on end. The midpoint is the absolute coordinate x + h'.
func Points(step engine.Step, b engine.Bounds, h float64) Panel {
	x0 := step.Value()
	if step.IsLast() {
		x2 := b.End()
		hh := (x2 - x0) / 2
		return Panel{X: [3]float64{x0, x0 + hh, x2}, H: hh, Last: true}
	}

	x1 := x0 + h
	return Panel{X: [3]float64{x0, x1, x1 + h}, H: h}
}
