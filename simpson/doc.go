// Package simpson implements the composite Simpson rule for seqint's engine
// in one, two and three dimensions.
//
// 🚀 What is composite Simpson?
//
//	The interval is cut into panels of width 2h. On each panel the integrand
//	is replaced by the parabola through x, x+h, x+2h, giving
//
//	  ∫ f ≈ h/3 · (f(x) + 4·f(x+h) + f(x+2h))
//
//	Double and triple integrals use the tensor product of that 1-4-1 stencil:
//	3×3 samples weighted 1/4/16 (constant hk/9) and 3×3×3 samples weighted
//	1/4/16/64 (constant hkl/27).
//
// ✨ The final panel
//
//	(end − begin) need not be a multiple of 2h. The Range generator flags the
//	panel start after which less than one full panel remains as "last", and
//	Points stretches or shrinks that panel so it lands exactly on end, with
//	its own half step h' = (end − x)/2. Panels touching a last step are
//	weighted immediately with their effective half steps; regular panels are
//	summed raw and weighted once in Finalize.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/seqint/engine"
//	  "github.com/katalvlaran/seqint/simpson"
//	)
//
//	q, err := simpson.NewSingle(engine.Func1(math.Sin), 0.01)
//	if err != nil { ... }
//	v, err := engine.IntegrateSingle(q, 0, math.Pi) // ≈ 2
//
// Quadratures are immutable after construction and may be shared.
package simpson
