package expression

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/seqint/engine"
)

// Function1 parses source with arity 1 and returns it as an engine.Function1.
func Function1(source string) (engine.Function1, error) {
	e, err := Parse(source, 1)
	if err != nil {
		return nil, err
	}
	return e.Func1()
}

// Function2 parses source with arity 2 and returns it as an engine.Function2.
func Function2(source string) (engine.Function2, error) {
	e, err := Parse(source, 2)
	if err != nil {
		return nil, err
	}
	return e.Func2()
}

// Function3 parses source with arity 3 and returns it as an engine.Function3.
func Function3(source string) (engine.Function3, error) {
	e, err := Parse(source, 3)
	if err != nil {
		return nil, err
	}
	return e.Func3()
}

// Func1 adapts e to engine.Function1. The expression may use at most x.
func (e *Expression) Func1() (engine.Function1, error) {
	if e.arity > 1 {
		return nil, errors.Wrapf(ErrArity, "%q has arity %d, need <= 1", e.source, e.arity)
	}
	return fn1{e}, nil
}

// Func2 adapts e to engine.Function2. The expression may use x and y.
func (e *Expression) Func2() (engine.Function2, error) {
	if e.arity > 2 {
		return nil, errors.Wrapf(ErrArity, "%q has arity %d, need <= 2", e.source, e.arity)
	}
	return fn2{e}, nil
}

// Func3 adapts e to engine.Function3.
func (e *Expression) Func3() (engine.Function3, error) {
	return fn3{e}, nil
}

type fn1 struct{ e *Expression }

func (f fn1) Value(x float64) (float64, error) { return f.e.Eval(Variables{X: x}) }

type fn2 struct{ e *Expression }

func (f fn2) Value(x, y float64) (float64, error) { return f.e.Eval(Variables{X: x, Y: y}) }

type fn3 struct{ e *Expression }

func (f fn3) Value(x, y, z float64) (float64, error) { return f.e.Eval(Variables{X: x, Y: y, Z: z}) }
