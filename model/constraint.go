package model

// Constraint is a linear row Lower <= sum(Coeffs[i]*x_i) <= Upper, keyed by
// variable index rather than variable pointer (see package doc — this is
// what makes Model.Copy a pure data copy with no pointer rewiring inside
// coefficient maps).
type Constraint struct {
	Index  int
	Lower  float64
	Upper  float64
	Coeffs map[int]float64
}

// NewConstraint constructs an empty-coefficient Constraint with the given
// two-sided row bound.
func NewConstraint(index int, lower, upper float64) *Constraint {
	return &Constraint{
		Index:  index,
		Lower:  lower,
		Upper:  upper,
		Coeffs: make(map[int]float64),
	}
}

// SetCoeff attaches coeff for varIndex. A zero coeff is stored as a no-op
// removal (mirrors sparse-row semantics: zero entries simply don't exist).
func (c *Constraint) SetCoeff(varIndex int, coeff float64) {
	if coeff == 0 {
		delete(c.Coeffs, varIndex)
		return
	}
	c.Coeffs[varIndex] = coeff
}

// Activity returns the row's [min, max] activity interval given the
// current domains of the referenced variables (via lookup), per spec
// §4.1: for coeff a_i over [l_i, u_i], contribution to [min,max] is
// [min(a_i*l_i, a_i*u_i), max(a_i*l_i, a_i*u_i)].
func (c *Constraint) Activity(lookup func(varIndex int) *Variable) (min, max float64) {
	for idx, coeff := range c.Coeffs {
		v := lookup(idx)
		lo := coeff * v.Lower
		hi := coeff * v.Upper
		if lo > hi {
			lo, hi = hi, lo
		}
		min += lo
		max += hi
	}
	return min, max
}

// ActivityExcluding is Activity but omits the contribution of
// excludeVarIndex — the quantity propagate needs when solving for a
// single variable's implied bound from the rest of the row.
func (c *Constraint) ActivityExcluding(excludeVarIndex int, lookup func(varIndex int) *Variable) (min, max float64) {
	for idx, coeff := range c.Coeffs {
		if idx == excludeVarIndex {
			continue
		}
		v := lookup(idx)
		lo := coeff * v.Lower
		hi := coeff * v.Upper
		if lo > hi {
			lo, hi = hi, lo
		}
		min += lo
		max += hi
	}
	return min, max
}

// Clone returns a deep copy: a fresh Coeffs map with identical entries.
func (c *Constraint) Clone() *Constraint {
	clone := &Constraint{
		Index: c.Index,
		Lower: c.Lower,
		Upper: c.Upper,
	}
	clone.Coeffs = make(map[int]float64, len(c.Coeffs))
	for idx, coeff := range c.Coeffs {
		clone.Coeffs[idx] = coeff
	}
	return clone
}
