// SPDX-License-Identifier: MIT

package simpson

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/seqint/engine"
)

// Range walks [begin, end) in strides of 2h, one Simpson panel per call.
//
// States:
//   - Active(position) — initial position is begin.
//   - Exhausted        — after the Last step was emitted.
//
// Next, while Active:
//  1. fail with engine.ErrRangeOutOfBounds if position ≥ end + h;
//  2. if position ≥ end − 2h (less than one more full panel fits) emit
//     LastStep(position) and become Exhausted;
//  3. otherwise emit CommonStep(position);
//  4. position += 2h.
//
// Calling Next once Exhausted also fails with engine.ErrRangeOutOfBounds, as
// does a stride of 2h that no longer moves position (2h below the float
// spacing at position, e.g. begin 1e17 with h 1).
// A Range is single-use and not safe for concurrent use.
type Range struct {
	position  float64
	end       float64
	h         float64
	exhausted bool
}

// NewRange builds a generator over b with half step h.
// ok is false for a zero-width interval: there is nothing to step over.
// h is assumed validated (see ValidateStep); quadrature constructors do it.
func NewRange(b engine.Bounds, h float64) (*Range, bool) {
	if b.IsEmpty() {
		return nil, false
	}

	return &Range{position: b.Begin(), end: b.End(), h: h}, true
}

// Next implements engine.RangeGenerator.
func (r *Range) Next() (engine.Step, error) {
	if r.exhausted {
		return engine.Step{}, errors.Wrapf(engine.ErrRangeOutOfBounds,
			"step %v after last, end %v", r.position, r.end)
	}
	if r.position >= r.end+r.h {
		return engine.Step{}, errors.Wrapf(engine.ErrRangeOutOfBounds,
			"step %v, end %v", r.position, r.end)
	}

	if r.position >= r.end-2*r.h {
		r.exhausted = true
		return engine.LastStep(r.position), nil
	}

	next := r.position + 2*r.h
	if next <= r.position {
		return engine.Step{}, errors.Wrapf(engine.ErrRangeOutOfBounds,
			"stride %v lost at position %v", 2*r.h, r.position)
	}
	step := engine.CommonStep(r.position)
	r.position = next

	return step, nil
}

// ranges is the engine.RangeFactory shared by the Simpson quadratures.
type ranges struct{}

// NewRange implements engine.RangeFactory.
func (ranges) NewRange(b engine.Bounds, h float64) (engine.RangeGenerator, bool) {
	r, ok := NewRange(b, h)
	if !ok {
		return nil, false
	}
	return r, true
}
