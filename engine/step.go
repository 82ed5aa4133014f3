package engine

import "fmt"

// Step is one sample position produced by a RangeGenerator: the start of a
// quadrature panel, tagged with whether it is the final panel of its range.
// The final panel is generally shorter (or longer) than the regular stride,
// so stencils must know which kind they are looking at.
type Step struct {
	value float64
	last  bool
}

// CommonStep builds an interior step at x.
func CommonStep(x float64) Step { return Step{value: x} }

// LastStep builds the terminal step at x.
func LastStep(x float64) Step { return Step{value: x, last: true} }

// Value returns the panel start coordinate.
func (s Step) Value() float64 { return s.value }

// IsLast reports whether this is the terminal step of its range.
func (s Step) IsLast() bool { return s.last }

// String implements fmt.Stringer.
func (s Step) String() string {
	if s.last {
		return fmt.Sprintf("Last(%g)", s.value)
	}
	return fmt.Sprintf("Common(%g)", s.value)
}
