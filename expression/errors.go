package expression

import "github.com/cockroachdb/errors"

var (
	// ErrExpression marks parse, type and math failures. The underlying cause
	// (from expr or from a math function) stays in the chain.
	ErrExpression = errors.New("expression: evaluation failed")

	// ErrMultipleResults is returned when an expression yields more than one
	// value. Integrands and bounds need exactly one number.
	ErrMultipleResults = errors.New("expression: multiple results not supported")

	// ErrArity is returned for an arity outside 0..3.
	ErrArity = errors.New("expression: arity must be between 0 and 3")
)
