package expression

import (
	"math"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Variables binds the free variables of an expression. Fields beyond the
// expression's arity are ignored.
type Variables struct {
	X, Y, Z float64
}

// Each env type exposes exactly the names allowed for one arity, so that
// expr rejects out-of-arity variables at compile time.
type (
	env0 struct {
		Pi float64 `expr:"pi"`
		E  float64 `expr:"e"`
	}
	env1 struct {
		X  float64 `expr:"x"`
		Pi float64 `expr:"pi"`
		E  float64 `expr:"e"`
	}
	env2 struct {
		X  float64 `expr:"x"`
		Y  float64 `expr:"y"`
		Pi float64 `expr:"pi"`
		E  float64 `expr:"e"`
	}
	env3 struct {
		X  float64 `expr:"x"`
		Y  float64 `expr:"y"`
		Z  float64 `expr:"z"`
		Pi float64 `expr:"pi"`
		E  float64 `expr:"e"`
	}
)

// Expression is a compiled expression. It is immutable and safe for
// concurrent use.
type Expression struct {
	source  string
	arity   int
	program *vm.Program
}

// Parse compiles source for the given arity (number of free variables,
// 0..3). Errors are marked with ErrExpression, or ErrArity for a bad arity.
func Parse(source string, arity int) (*Expression, error) {
	var environment any
	switch arity {
	case 0:
		environment = env0{}
	case 1:
		environment = env1{}
	case 2:
		environment = env2{}
	case 3:
		environment = env3{}
	default:
		return nil, errors.Wrapf(ErrArity, "got %d", arity)
	}

	opts := append([]expr.Option{expr.Env(environment)}, functionOptions()...)
	program, err := expr.Compile(source, opts...)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "parse %q", source), ErrExpression)
	}

	return &Expression{source: source, arity: arity, program: program}, nil
}

// MustParse is like Parse but panics on error. For tests and fixed tables.
func MustParse(source string, arity int) *Expression {
	e, err := Parse(source, arity)
	if err != nil {
		panic(err)
	}
	return e
}

// String returns the source text.
func (e *Expression) String() string { return e.source }

// Arity returns the number of free variables the expression was parsed with.
func (e *Expression) Arity() int { return e.arity }

// Eval evaluates the expression with vars bound.
//
// Errors:
//   - ErrMultipleResults if the expression yields a list.
//   - ErrExpression for runtime failures and non-numeric results.
func (e *Expression) Eval(vars Variables) (float64, error) {
	var environment any
	switch e.arity {
	case 0:
		environment = env0{Pi: math.Pi, E: math.E}
	case 1:
		environment = env1{X: vars.X, Pi: math.Pi, E: math.E}
	case 2:
		environment = env2{X: vars.X, Y: vars.Y, Pi: math.Pi, E: math.E}
	default:
		environment = env3{X: vars.X, Y: vars.Y, Z: vars.Z, Pi: math.Pi, E: math.E}
	}

	out, err := expr.Run(e.program, environment)
	if err != nil {
		return 0, errors.Mark(errors.Wrapf(err, "eval %q", e.source), ErrExpression)
	}

	return e.number(out)
}

// number converts a raw result into a single float64.
func (e *Expression) number(out any) (float64, error) {
	if v, ok := toFloat(out); ok {
		return v, nil
	}
	if out != nil {
		kind := reflect.ValueOf(out).Kind()
		if kind == reflect.Slice || kind == reflect.Array {
			return 0, errors.Wrapf(ErrMultipleResults, "%q", e.source)
		}
	}

	return 0, errors.Wrapf(ErrExpression, "%q: result %v (%T) is not a number", e.source, out, out)
}
