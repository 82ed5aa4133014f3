// SPDX-License-Identifier: MIT

package engine

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Bounds is a validated, ordered integration interval: Begin() ≤ End().
// The zero value is the degenerate interval [0, 0].
// Bounds is immutable and safe to copy.
type Bounds struct {
	begin float64
	end   float64
}

// NewBounds validates and builds an interval.
//
// Errors:
//   - ErrNonFiniteBound if begin or end is NaN or ±Inf.
//   - ErrInvalidBounds if begin > end.
//
// Complexity: O(1).
func NewBounds(begin, end float64) (Bounds, error) {
	if isNonFinite(begin) || isNonFinite(end) {
		return Bounds{}, errors.Wrapf(ErrNonFiniteBound, "bounds [%v, %v]", begin, end)
	}
	if begin > end {
		return Bounds{}, errors.Wrapf(ErrInvalidBounds, "begin %v, end %v", begin, end)
	}

	return Bounds{begin: begin, end: end}, nil
}

// Begin returns the lower limit.
func (b Bounds) Begin() float64 { return b.begin }

// End returns the upper limit.
func (b Bounds) End() float64 { return b.end }

// Width returns End() - Begin(), always ≥ 0.
func (b Bounds) Width() float64 { return b.end - b.begin }

// IsEmpty reports whether the interval has zero width.
func (b Bounds) IsEmpty() bool { return b.begin == b.end }

// Configure normalizes a raw pair of limits given in either order.
//
// Implementation:
//   - Stage 1: begin = min(a, b), end = max(a, b).
//   - Stage 2: direction = −1 when the pair was reversed (begin != a), else +1.
//
// Every contribution computed over the returned Bounds must be multiplied by
// direction; that is what makes ∫_a^b = −∫_b^a.
//
// Errors:
//   - ErrNonFiniteBound if a or b is NaN or ±Inf. ErrInvalidBounds is never
//     returned because the pair is ordered first.
//
// Complexity: O(1).
func Configure(a, b float64) (Bounds, float64, error) {
	if isNonFinite(a) || isNonFinite(b) {
		return Bounds{}, 0, errors.Wrapf(ErrNonFiniteBound, "limits (%v, %v)", a, b)
	}

	begin := math.Min(a, b)
	end := math.Max(a, b)
	direction := 1.0
	if begin != a {
		direction = -1.0
	}

	return Bounds{begin: begin, end: end}, direction, nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
