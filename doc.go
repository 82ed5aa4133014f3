// Package seqint evaluates definite single, double and triple integrals with
// the composite Simpson rule, where the limits of inner variables may depend
// on the outer ones.
//
// 🚀 What does it compute?
//
//	∫_a^b f(x) dx
//	∫_a^b ∫_{lo(x)}^{hi(x)} f(x, y) dy dx
//	∫_a^b ∫_{lo2(x)}^{hi2(x)} ∫_{lo3(x,y)}^{hi3(x,y)} f(x, y, z) dz dy dx
//
//	Limits may be given in either order; swapping them flips the sign.
//	Every dimension has its own half step (h, k, l).
//
// ✨ Two flavours of every entry point
//
//   - SingleIntegral, DoubleIntegral, TripleIntegral take Go closures.
//   - SingleIntegralExpr, DoubleIntegralExpr, TripleIntegralExpr take textual
//     expressions in x, y, z (see package expression), e.g.
//     "x^2 + y^2 + z^2" with y from "0" to "max(sqrt(1 - x^2))".
//
// Under the hood:
//
//	engine/     — bounds, steps, the two-channel accumulator and the nested
//	              integrators that turn an N-D integral into 1-D loops
//	simpson/    — the Simpson range generator, panel points and stencils
//	expression/ — the textual evaluator (expr-lang/expr)
//	cmd/seqint  — command-line front end with YAML job files
//
// Quick example:
//
//	v, err := seqint.DoubleIntegralExpr("1", -1, 1, 0.005, "0", "max(sqrt(1 - x^2))", 0.005)
//	// v ≈ π/2, the area of the upper half disc
//
//	go get github.com/katalvlaran/seqint
package seqint
