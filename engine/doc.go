// Package engine is the recursive integration core of seqint: the pieces
// every quadrature rule plugs into, independent of the rule itself.
//
// 🚀 What lives here?
//
//	• Bounds / Configure — validated intervals and reversed-limit handling
//	• Step              — one tagged sample position (common or last)
//	• Result            — the two-channel accumulator (common + last)
//	• Function1/2/3     — integrands and bound functions of 1, 2, 3 variables
//	• Evaluable1/2/3    — "evaluate at this sample" capabilities
//	• Integrate         — the one-dimensional stepping loop
//	• SecondIntegrator  — turns an Evaluable2 into an Evaluable1
//	• ThirdIntegrator   — turns an Evaluable3 into an Evaluable2
//
// ✨ How the layers compose
//
//	A triple integral is a one-dimensional integral (Integrate) whose
//	integrand is a SecondIntegrator, whose integrand is a ThirdIntegrator,
//	whose integrand is the arity-3 quadrature stencil:
//
//	  Integrate(x) ─► SecondIntegrator(y) ─► ThirdIntegrator(z) ─► stencil(x,y,z)
//
//	Every layer reuses the same stepping loop. Inner layers accumulate raw
//	Results; only the outermost layer calls Finalize, once.
//
// Reversed limits:
//
//	Configure(a, b) returns the ordered Bounds plus a direction coefficient
//	(+1 or −1). Each layer multiplies its contributions by that coefficient,
//	so ∫_a^b = −∫_b^a holds at every nesting level.
//
// Errors:
//
//	All sentinels are defined in errors.go and matched with errors.Is.
//	Errors raised by integrands or bound functions pass through unchanged.
//
// The engine never logs; presentation is the caller's business.
package engine
