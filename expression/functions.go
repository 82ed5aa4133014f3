package expression

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
)

// sqrtTolerance absorbs rounding noise at the edge of sqrt's domain, e.g.
// 1 - x^2 - y^2 evaluated a few ulps below zero on a circular boundary.
const sqrtTolerance = 1e-12

// errDomain is the cause attached to out-of-domain math calls.
var errDomain = errors.New("argument outside function domain")

// unary lists the one-argument math functions available to expressions.
// expr's own builtins (abs, ceil, floor, round, max, min) are used as is.
var unary = map[string]func(float64) (float64, error){
	"sqrt":  sqrt,
	"exp":   total(math.Exp),
	"ln":    total(math.Log),
	"log":   total(math.Log),
	"log2":  total(math.Log2),
	"log10": total(math.Log10),
	"sin":   total(math.Sin),
	"cos":   total(math.Cos),
	"tan":   total(math.Tan),
	"asin":  total(math.Asin),
	"acos":  total(math.Acos),
	"atan":  total(math.Atan),
	"sinh":  total(math.Sinh),
	"cosh":  total(math.Cosh),
	"tanh":  total(math.Tanh),
}

// total lifts a math function that never fails.
func total(fn func(float64) float64) func(float64) (float64, error) {
	return func(v float64) (float64, error) { return fn(v), nil }
}

// sqrt is the principal square root. Values within sqrtTolerance below zero
// are treated as zero; anything more negative is a domain error.
func sqrt(v float64) (float64, error) {
	if v < 0 {
		if v >= -sqrtTolerance {
			return 0, nil
		}
		return 0, errors.Wrapf(errDomain, "sqrt(%v)", v)
	}
	return math.Sqrt(v), nil
}

// functionOptions converts the function table into expr options.
func functionOptions() []expr.Option {
	opts := make([]expr.Option, 0, len(unary)+3)
	for name, fn := range unary {
		name, fn := name, fn
		opts = append(opts, expr.Function(name, func(params ...any) (any, error) {
			if len(params) != 1 {
				return nil, errors.Newf("%s expects 1 argument, got %d", name, len(params))
			}
			v, ok := toFloat(params[0])
			if !ok {
				return nil, errors.Newf("%s: argument %v is not a number", name, params[0])
			}
			return fn(v)
		}))
	}
	opts = append(opts, expr.Function("pow", func(params ...any) (any, error) {
		if len(params) != 2 {
			return nil, errors.Newf("pow expects 2 arguments, got %d", len(params))
		}
		base, ok1 := toFloat(params[0])
		exp, ok2 := toFloat(params[1])
		if !ok1 || !ok2 {
			return nil, errors.Newf("pow: arguments %v, %v are not numbers", params[0], params[1])
		}
		return math.Pow(base, exp), nil
	}))
	// expr's own % only takes integers; route it through mod so x % 2 works.
	opts = append(opts,
		expr.Function("mod", mod, new(func(a, b any) float64)),
		expr.Patch(modPatcher{}),
	)

	return opts
}

// mod is the floating-point remainder a - b·trunc(a/b), with the sign of a.
func mod(params ...any) (any, error) {
	if len(params) != 2 {
		return nil, errors.Newf("mod expects 2 arguments, got %d", len(params))
	}
	a, ok1 := toFloat(params[0])
	b, ok2 := toFloat(params[1])
	if !ok1 || !ok2 {
		return nil, errors.Newf("mod: arguments %v, %v are not numbers", params[0], params[1])
	}
	if b == 0 {
		return nil, errors.Wrapf(errDomain, "mod(%v, 0)", a)
	}
	return math.Mod(a, b), nil
}

// modPatcher rewrites every a % b node into mod(a, b).
type modPatcher struct{}

func (modPatcher) Visit(node *ast.Node) {
	bin, ok := (*node).(*ast.BinaryNode)
	if !ok || bin.Operator != "%" {
		return
	}
	ast.Patch(node, &ast.CallNode{
		Callee:    &ast.IdentifierNode{Value: "mod"},
		Arguments: []ast.Node{bin.Left, bin.Right},
	})
}

// toFloat widens the numeric kinds expr produces to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
