package presolve

import "github.com/katalvlaran/conflictmip/model"

// DefaultSweepCap bounds the number of fixpoint passes a Propagator will
// run before giving up and reporting whatever convergence it reached. The
// source hardcodes this; no revision scales it with problem size, so it
// stays a fixed default here too, overridable via Options.
const DefaultSweepCap = 10

// Options configures a Propagator beyond its required vars/constraints.
type Options struct {
	// SweepCap overrides DefaultSweepCap. Zero means "use the default".
	SweepCap int
}

func (o Options) sweepCap() int {
	if o.SweepCap > 0 {
		return o.SweepCap
	}
	return DefaultSweepCap
}

// Listener receives one BoundTightened call for every (variable,
// constraint) pair that contributed to a bound actually being tightened
// during a sweep. A single applied bound may fire several calls — one per
// row that pushed the tightened endpoint — since the rows that shared the
// variable are exactly the provenance an implication graph wants to link.
type Listener interface {
	BoundTightened(varIndex, constraintIndex int, newBound model.Bound)
}

// SweepCompleter is an optional extension a Listener may implement to be
// notified when a full sweep finishes, regardless of whether it changed
// anything — implog uses this to advance its iteration counter once per
// sweep rather than once per bound change.
type SweepCompleter interface {
	SweepCompleted()
}

// noopListener discards every event; used when Propagator is constructed
// with a nil Listener so call sites never have to nil-check.
type noopListener struct{}

func (noopListener) BoundTightened(int, int, model.Bound) {}

// Result summarizes one Run: whether the row system proved infeasible, the
// offending variable if so, and how many sweeps it took to stop.
type Result struct {
	Infeasible    bool
	InfeasibleVar int
	Sweeps        int
}

// Propagator tightens Vars against Constraints in place. Vars must be
// indexed by Variable.Index (Vars[i].Index == i) since rows reference
// variables by index.
type Propagator struct {
	Vars        []*model.Variable
	Constraints []*model.Constraint
	Listener    Listener
	Options     Options
}

// New constructs a Propagator with default Options. A nil listener is
// replaced with a no-op so Run never needs to check for it.
func New(vars []*model.Variable, constraints []*model.Constraint, listener Listener) *Propagator {
	return NewWithOptions(vars, constraints, listener, Options{})
}

// NewWithOptions is New but lets the caller override Options (currently
// just SweepCap).
func NewWithOptions(vars []*model.Variable, constraints []*model.Constraint, listener Listener, opts Options) *Propagator {
	if listener == nil {
		listener = noopListener{}
	}
	return &Propagator{Vars: vars, Constraints: constraints, Listener: listener, Options: opts}
}

// pendingUpdate accumulates, within one sweep, the tightest bound proposed
// for a variable across every row it appears in, plus the rows that moved
// the bound past its prior value.
type pendingUpdate struct {
	bound       model.Bound
	constraints []int
}

// Run repeatedly sweeps the constraint system, tightening every variable's
// domain from the min/max activity of each row it's part of, until a full
// sweep produces no change (fixpoint), the sweep cap is exhausted, or a
// variable's domain becomes empty (lower > upper), which is reported as
// Infeasible.
//
// Each sweep computes every variable's candidate bound from the rows
// before applying any of them — applying all of a sweep's updates together
// keeps the pass order-independent, matching row-activity propagation
// that recomputes the whole system per round rather than var-by-var.
func (p *Propagator) Run() Result {
	maxSweeps := p.Options.sweepCap()
	for sweep := 1; sweep <= maxSweeps; sweep++ {
		pending := p.proposeSweep()

		changed := false
		for varIndex, u := range pending {
			v := p.Vars[varIndex]
			applied, ok := v.UpdateBounds(u.bound.Lower, u.bound.Upper)
			if v.Lower > v.Upper {
				return Result{Infeasible: true, InfeasibleVar: varIndex, Sweeps: sweep}
			}
			if !ok {
				continue
			}
			changed = true
			for _, constraintIndex := range u.constraints {
				p.Listener.BoundTightened(varIndex, constraintIndex, applied)
			}
		}

		p.retightenRows()

		if sc, ok := p.Listener.(SweepCompleter); ok {
			sc.SweepCompleted()
		}

		if !changed {
			return Result{Sweeps: sweep}
		}
	}
	return Result{Sweeps: maxSweeps}
}

// proposeSweep computes, for every variable touched by at least one row,
// the intersection of its current bound with every row-implied candidate,
// recording which rows actually narrowed it.
func (p *Propagator) proposeSweep() map[int]*pendingUpdate {
	lookup := func(idx int) *model.Variable { return p.Vars[idx] }
	pending := make(map[int]*pendingUpdate)

	for _, c := range p.Constraints {
		for varIndex, coeff := range c.Coeffs {
			v := p.Vars[varIndex]
			minExcl, maxExcl := c.ActivityExcluding(varIndex, lookup)

			var lo, hi float64
			if coeff > 0 {
				hi = (c.Upper - minExcl) / coeff
				lo = (c.Lower - maxExcl) / coeff
			} else {
				hi = (c.Lower - maxExcl) / coeff
				lo = (c.Upper - minExcl) / coeff
			}

			u, ok := pending[varIndex]
			if !ok {
				u = &pendingUpdate{bound: model.Bound{Lower: v.Lower, Upper: v.Upper}}
				pending[varIndex] = u
			}

			merged := u.bound.Intersect(model.Bound{Lower: lo, Upper: hi})
			if merged != u.bound {
				u.constraints = append(u.constraints, c.Index)
			}
			u.bound = merged
		}
	}
	return pending
}

// retightenRows recomputes each row's own [Lower, Upper] from its current
// activity, narrowing it when the post-update variable domains imply a
// tighter row bound than what's on file.
func (p *Propagator) retightenRows() {
	lookup := func(idx int) *model.Variable { return p.Vars[idx] }
	for _, c := range p.Constraints {
		min, max := c.Activity(lookup)
		if max < c.Upper {
			c.Upper = max
		}
		if min > c.Lower {
			c.Lower = min
		}
	}
}
