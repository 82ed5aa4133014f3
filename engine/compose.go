// SPDX-License-Identifier: MIT

package engine

// IntegrateSingle computes ∫_a^b f(x) dx with the arity-1 quadrature q, which
// is at the same time the integrand capability, the range factory and the
// finalizer.
func IntegrateSingle(q Quadrature1, a, b float64) (float64, error) {
	if IsNil(q) {
		return 0, ErrNilFunction
	}

	return Integrate(a, b, q.Step(), q, q, q)
}

// IntegrateDouble computes ∫_a^b ∫_{lo(x)}^{hi(x)} f(x, y) dy dx.
//
// Layering:
//
//	Integrate(x over [a,b], step h) ─► SecondIntegrator(y, step k) ─► q.Evaluate(x, y)
//
// Finalize (the hk/9 constant) is applied once by the outer Integrate.
func IntegrateDouble(q Quadrature2, a, b float64, lo, hi Function1) (float64, error) {
	if IsNil(q) {
		return 0, ErrNilFunction
	}
	h, k := q.Steps()

	second, err := NewSecondIntegrator(lo, hi, k, q, q)
	if err != nil {
		return 0, err
	}

	return Integrate(a, b, h, second, q, q)
}

// IntegrateTriple computes
// ∫_a^b ∫_{lo2(x)}^{hi2(x)} ∫_{lo3(x,y)}^{hi3(x,y)} f(x, y, z) dz dy dx.
//
// Layering:
//
//	Integrate(x, h) ─► SecondIntegrator(y, k) ─► ThirdIntegrator(z, l) ─► q.Evaluate(x, y, z)
func IntegrateTriple(q Quadrature3, a, b float64, lo2, hi2 Function1, lo3, hi3 Function2) (float64, error) {
	if IsNil(q) {
		return 0, ErrNilFunction
	}
	h, k, l := q.Steps()

	third, err := NewThirdIntegrator(lo3, hi3, l, q, q)
	if err != nil {
		return 0, err
	}
	second, err := NewSecondIntegrator(lo2, hi2, k, third, q)
	if err != nil {
		return 0, err
	}

	return Integrate(a, b, h, second, q, q)
}
