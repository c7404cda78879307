package model

import "math"

// Bound is a two-sided interval [Lower, Upper]. Either side may be
// infinite; Lower must never exceed Upper once constructed.
type Bound struct {
	Lower float64
	Upper float64
}

// NewBound returns Bound{lower, upper}. It does not validate lower<=upper;
// callers that need the invariant enforced should use IsValid.
func NewBound(lower, upper float64) Bound {
	return Bound{Lower: lower, Upper: upper}
}

// IsValid reports whether Lower <= Upper.
func (b Bound) IsValid() bool {
	return b.Lower <= b.Upper
}

// Width returns Upper-Lower. It is +Inf if either side is infinite.
func (b Bound) Width() float64 {
	return b.Upper - b.Lower
}

// IsFixed reports whether the bound has collapsed to (within tol of) a
// single point.
func (b Bound) IsFixed(tol float64) bool {
	return b.Width() <= tol
}

// Intersect returns the tightest bound implied by b and other:
// [max(lowers), min(uppers)].
func (b Bound) Intersect(other Bound) Bound {
	return Bound{
		Lower: math.Max(b.Lower, other.Lower),
		Upper: math.Min(b.Upper, other.Upper),
	}
}
