// SPDX-License-Identifier: MIT

package engine

// panicLastTwice is raised when a single Result receives two last-channel
// writes. A stencil evaluation writes exactly one channel exactly once, so a
// second write means the stepping logic regressed.
const panicLastTwice = "engine: Result.SetLast: last channel already written"

// Result is the two-channel accumulator of a (sub)integration.
//
// Channels:
//   - common — sum over regular panels, still missing the quadrature constant
//     (h/3, hk/9, hkl/27); the owning quadrature applies it in Finalize.
//   - last   — contributions of panels touching a final, differently sized
//     stride. These are fully weighted when produced, because each such panel
//     has its own effective half step.
//
// The zero value is an empty accumulator. Results are plain values: Add and
// Scale return new Results and never alias.
type Result struct {
	common  float64
	last    float64
	hasLast bool
}

// CommonResult returns a Result carrying v in the common channel only.
func CommonResult(v float64) Result { return Result{common: v} }

// LastResult returns a Result carrying v in the last channel only.
func LastResult(v float64) Result { return Result{last: v, hasLast: true} }

// AddCommon adds v to the common channel.
func (r *Result) AddCommon(v float64) { r.common += v }

// SetLast writes the last channel of a freshly produced Result.
// It panics if the channel was already written (programmer error).
func (r *Result) SetLast(v float64) {
	if r.hasLast {
		panic(panicLastTwice)
	}
	r.last = v
	r.hasLast = true
}

// Common returns the common channel.
func (r Result) Common() float64 { return r.common }

// Last returns the last channel (0 when nothing was written).
func (r Result) Last() float64 { return r.last }

// HasLast reports whether any last-channel contribution is present.
func (r Result) HasLast() bool { return r.hasLast }

// Add returns the channel-wise sum of r and o. Addition is commutative, so
// partial results may be reduced in any order.
func (r Result) Add(o Result) Result {
	return Result{
		common:  r.common + o.common,
		last:    r.last + o.last,
		hasLast: r.hasLast || o.hasLast,
	}
}

// Scale multiplies both channels by c (used with the direction coefficient).
func (r Result) Scale(c float64) Result {
	return Result{
		common:  r.common * c,
		last:    r.last * c,
		hasLast: r.hasLast,
	}
}
