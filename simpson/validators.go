// SPDX-License-Identifier: MIT
// Package: simpson
//
// Purpose:
//   - Single source of truth for constructor guards (step sizes, integrands).
//   - Return sentinels wrapped with a validator tag so errors.Is keeps working.
//
// Note:
//   - Composite validators follow a fixed order: integrand → steps (h, k, l).

package simpson

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/seqint/engine"
)

// ValidateStep ensures h is finite and strictly positive.
//
// Errors: ErrInvalidStep.
// Complexity: O(1).
func ValidateStep(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return errors.Wrapf(ErrInvalidStep, "ValidateStep: %v", h)
	}

	return nil
}

// validateSteps checks every step in order and reports the first failure
// together with the axis it belongs to.
func validateSteps(steps ...float64) error {
	axes := [...]string{"h", "k", "l"}
	for i, s := range steps {
		if err := ValidateStep(s); err != nil {
			return errors.Wrapf(err, "axis %s", axes[i])
		}
	}

	return nil
}

// validateFunction rejects nil integrands (interfaces and typed nils).
func validateFunction(f any) error {
	if engine.IsNil(f) {
		return errors.Wrap(engine.ErrNilFunction, "integrand")
	}

	return nil
}
