package model

import "math"

// DefaultConvergenceTolerance is the default width below which a Variable's
// domain is considered fixed (spec §3's "fixed" convergence rule).
const DefaultConvergenceTolerance = 1e-6

// Variable is a decision variable: its index, display name, current
// two-sided domain, integrality flag, and the indices of constraints it
// appears in (in the order they were first attached — ordered, not sorted,
// so propagation visits rows in a stable, reproducible sequence).
//
// Invariants: Lower <= Upper; if IsInteger, Lower and Upper are integral
// once any propagation has run. Two Variables are identity-equal iff their
// Index fields match — see Equal.
type Variable struct {
	Index               int
	Name                string
	Lower               float64
	Upper               float64
	IsInteger           bool
	IncidentConstraints []int
}

// NewVariable constructs a Variable with the given domain and integrality.
func NewVariable(index int, name string, lower, upper float64, isInteger bool) *Variable {
	return &Variable{
		Index:     index,
		Name:      name,
		Lower:     lower,
		Upper:     upper,
		IsInteger: isInteger,
	}
}

// Equal reports identity equality: same Index. Name/bounds are irrelevant —
// two copies of the same logical variable (e.g. before/after a branch) are
// Equal even though their domains differ.
func (v *Variable) Equal(other *Variable) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.Index == other.Index
}

// IsFixed reports whether the domain has collapsed to within tol of a
// point, per spec §3's convergence definition.
func (v *Variable) IsFixed(tol float64) bool {
	return v.Upper-v.Lower <= tol
}

// Value returns the fixed value of the variable and true, or (0, false) if
// the domain has not yet collapsed to within tol. Integer variables report
// their Lower bound as the value; continuous variables report the domain
// midpoint (which coincides with Lower within tol once fixed).
func (v *Variable) Value(tol float64) (float64, bool) {
	if !v.IsFixed(tol) {
		return 0, false
	}
	if v.IsInteger {
		return v.Lower, true
	}
	return (v.Lower + v.Upper) / 2, true
}

// AddConstraint appends constrIdx to IncidentConstraints, preserving
// discovery order.
func (v *Variable) AddConstraint(constrIdx int) {
	v.IncidentConstraints = append(v.IncidentConstraints, constrIdx)
}

// UpdateBounds tightens [Lower, Upper] toward [newLower, newUpper],
// rounding to integers (ceil the lower side, floor the upper side) when
// IsInteger and the candidate is finite. It returns the Bound the update
// actually produced and whether either side strictly tightened; when
// neither side changed (ok=false) the returned Bound is the unchanged
// current domain.
//
// Presolve routes its bound tightening through it, so propagated integer
// domains come out integral. lpmodel.Model.ChangeVarBounds (used by search
// for branching) assigns Lower and Upper directly without rounding.
func (v *Variable) UpdateBounds(newLower, newUpper float64) (Bound, bool) {
	lower := v.Lower
	upper := v.Upper
	changed := false

	if v.IsInteger && !math.IsInf(newLower, 0) {
		newLower = math.Ceil(newLower)
	}
	if newLower > lower {
		lower = newLower
		changed = true
	}

	if v.IsInteger && !math.IsInf(newUpper, 0) {
		newUpper = math.Floor(newUpper)
	}
	if newUpper < upper {
		upper = newUpper
		changed = true
	}

	if !changed {
		return Bound{Lower: v.Lower, Upper: v.Upper}, false
	}

	v.Lower = lower
	v.Upper = upper
	return Bound{Lower: lower, Upper: upper}, true
}

// Clone returns a deep copy sharing no memory with v except the
// IncidentConstraints backing array, which Clone does copy (not alias) so
// that a cloned Variable can be independently re-wired by a Model copy.
func (v *Variable) Clone() *Variable {
	clone := &Variable{
		Index:     v.Index,
		Name:      v.Name,
		Lower:     v.Lower,
		Upper:     v.Upper,
		IsInteger: v.IsInteger,
	}
	if len(v.IncidentConstraints) > 0 {
		clone.IncidentConstraints = append([]int(nil), v.IncidentConstraints...)
	}
	return clone
}
