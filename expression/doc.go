// Package expression evaluates textual integrands and bound expressions
// such as "x^2 + y" or "max(sqrt(1 - x^2))" for seqint.
//
// Expressions are compiled once with github.com/expr-lang/expr and then
// evaluated many times with different variable bindings. The set of free
// variables is fixed at parse time by the arity:
//
//	arity 0 — constants only        ("2*pi")
//	arity 1 — x                     (single integrands, y bounds)
//	arity 2 — x, y                  (double integrands, z bounds)
//	arity 3 — x, y, z               (triple integrands)
//
// Referencing a variable outside the arity is a parse error.
//
// Language: numbers, x/y/z, the constants pi and e, + - * / % and the power
// operators ^ and **, parentheses, expr's numeric builtins (abs, ceil, floor,
// round, max, min) and the math functions registered in functions.go.
// % is the floating-point remainder (math.Mod), also callable as mod(a, b).
//
// Results must be a single number. A list result (for example
// "[sqrt(x), -sqrt(x)]") fails with ErrMultipleResults; every other failure
// is marked with ErrExpression.
package expression
