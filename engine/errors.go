// SPDX-License-Identifier: MIT
// Package engine: sentinel error set.
// Every message is prefixed with "engine: ..." for easy grepping. Context is
// attached with errors.Wrapf at the raising site; callers use errors.Is.

package engine

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidBounds is returned by NewBounds when begin > end.
	// Configure never returns it because it orders the pair first.
	ErrInvalidBounds = errors.New("engine: begin bound greater than end bound")

	// ErrNonFiniteBound signals a NaN or ±Inf integration limit. Stepping over
	// such an interval would never terminate, so it is rejected up front.
	ErrNonFiniteBound = errors.New("engine: bound is NaN or Inf")

	// ErrRangeOutOfBounds indicates that a range generator was advanced past its
	// own end. It is an invariant violation in the stepping loop, not a user error.
	ErrRangeOutOfBounds = errors.New("engine: range generator stepped out of bounds")

	// ErrNilFunction indicates that a nil integrand, bound function or inner
	// capability was handed to a constructor or composition helper.
	ErrNilFunction = errors.New("engine: nil function")
)
