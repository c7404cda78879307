package lpmodel

import (
	"math"

	"github.com/katalvlaran/conflictmip/fuip"
	"github.com/katalvlaran/conflictmip/implog"
	"github.com/katalvlaran/conflictmip/model"
	"github.com/katalvlaran/conflictmip/presolve"
)

// Sense is the optimization direction of a Model's objective.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

// objectiveChangeThreshold is the "objective changed by >= 1e-4" test
// Solve uses to distinguish ResolvedAndChanged from ResolvedAndUnchanged.
const objectiveChangeThreshold = 1e-4

// SolveOutcome reports what a call to Solve actually did.
type SolveOutcome int

const (
	// NoChange means Solve did nothing: the Model was already clean and
	// had a cached Solution from a previous call.
	NoChange SolveOutcome = iota
	// ResolvedAndChanged means the Model was re-solved and the objective
	// moved by at least objectiveChangeThreshold (or feasibility status
	// changed).
	ResolvedAndChanged
	// ResolvedAndUnchanged means the Model was re-solved but landed on
	// essentially the same objective as before.
	ResolvedAndUnchanged
)

// Model is one LP relaxation: its Variables, Constraints, objective, and
// the ImplicationGraph recording how propagation has tightened it. Solve
// caches its result in LastSolution; any bound or row mutation marks the
// Model dirty so the next Solve actually re-runs instead of returning the
// cached result.
type Model struct {
	Vars        []*model.Variable
	Constraints []*model.Constraint
	Objective   map[int]float64
	Sense       Sense

	Graph *implog.Graph

	LastSolution model.Solution

	dirty bool
}

// New constructs a Model over vars/constraints/objective. Vars must be
// indexed by Variable.Index (Vars[i].Index == i), matching the convention
// presolve.Propagator requires.
func New(vars []*model.Variable, constraints []*model.Constraint, objective map[int]float64, sense Sense) *Model {
	return &Model{
		Vars:         vars,
		Constraints:  constraints,
		Objective:    objective,
		Sense:        sense,
		Graph:        implog.New(),
		LastSolution: model.NewUnknownSolution(),
		dirty:        true,
	}
}

// Relax sets every Variable's IsInteger to false, turning the Model into
// its bare continuous relaxation. The CLI's relaxation-only path calls it;
// package search never does, since its classification and branching read
// the IsInteger flags.
func (m *Model) Relax() {
	for _, v := range m.Vars {
		v.IsInteger = false
	}
}

// graphListener adapts Model's Constraints to the (varIndex,
// constraintIndex, bound) events a presolve.Propagator emits into the
// (varIndex, rowVars, bound) shape implog.Graph.AddConnection wants, and
// advances the graph's iteration counter once per completed sweep.
type graphListener struct {
	model *Model
}

func (l graphListener) BoundTightened(varIndex, constraintIndex int, newBound model.Bound) {
	c := l.model.Constraints[constraintIndex]
	rowVars := make([]int, 0, len(c.Coeffs))
	for idx := range c.Coeffs {
		rowVars = append(rowVars, idx)
	}
	l.model.Graph.AddConnection(varIndex, rowVars, newBound)
}

func (l graphListener) SweepCompleted() {
	l.model.Graph.NextIteration()
}

// Solve brings the Model up to date: if branchedVar is non-nil, first
// records a new branching depth on it (the branch that produced this
// Model, per spec — the very first solve of a fresh root has no
// branchedVar). When enablePropagation is set, runs presolve.Propagator
// before the LP solve and feeds every tightening it reports into Graph.
// Idempotent: a clean Model with a cached Solution returns NoChange
// without re-solving.
func (m *Model) Solve(branchedVar *int, enablePropagation bool) (SolveOutcome, presolve.Result, error) {
	if !m.dirty && m.LastSolution.Status != model.StatusUnknown {
		return NoChange, presolve.Result{}, nil
	}

	if branchedVar != nil {
		v := m.Vars[*branchedVar]
		m.Graph.NewDepth(*branchedVar, model.Bound{Lower: v.Lower, Upper: v.Upper})
	}

	var presolveResult presolve.Result
	if enablePropagation {
		prop := presolve.New(m.Vars, m.Constraints, graphListener{model: m})
		presolveResult = prop.Run()
		if presolveResult.Infeasible {
			prev := m.LastSolution
			m.LastSolution = model.Solution{Status: model.StatusInfeasible}
			m.dirty = false
			return m.classifyChange(prev), presolveResult, nil
		}
	}

	prev := m.LastSolution
	solution, err := m.runSimplex()
	if err != nil {
		return NoChange, presolveResult, err
	}
	m.LastSolution = solution
	m.dirty = false

	return m.classifyChange(prev), presolveResult, nil
}

// classifyChange compares prev against the just-cached LastSolution to
// decide which SolveOutcome to report.
func (m *Model) classifyChange(prev model.Solution) SolveOutcome {
	if prev.Status != m.LastSolution.Status {
		return ResolvedAndChanged
	}
	if prev.Status != model.StatusOptimal {
		return ResolvedAndUnchanged
	}
	delta := math.Abs(m.LastSolution.ObjectiveOrInf() - prev.ObjectiveOrInf())
	if delta >= objectiveChangeThreshold {
		return ResolvedAndChanged
	}
	return ResolvedAndUnchanged
}

// ChangeVarBounds tightens variable varIndex's domain and marks the Model
// dirty. It does not itself enforce lower<=upper; Solve's propagation
// pass (or the caller) is expected to catch an inverted bound.
func (m *Model) ChangeVarBounds(varIndex int, lower, upper float64) error {
	if varIndex < 0 || varIndex >= len(m.Vars) {
		return ErrUnknownVariable
	}
	m.Vars[varIndex].Lower = lower
	m.Vars[varIndex].Upper = upper
	m.dirty = true
	return nil
}

// AddRow appends cut as a new Constraint row (spec's cut encoding:
// Σ values[i]·x[indices[i]] >= 1 - num_negative) and marks the Model
// dirty. A cut with no literals is a no-op.
func (m *Model) AddRow(cut fuip.Cut) {
	if cut.IsEmpty() {
		return
	}
	row := model.NewConstraint(len(m.Constraints), float64(1-cut.NumNegative), math.Inf(1))
	for i, idx := range cut.Indices {
		row.SetCoeff(idx, cut.Values[i])
	}
	m.Constraints = append(m.Constraints, row)
	for _, idx := range cut.Indices {
		m.Vars[idx].AddConstraint(row.Index)
	}
	m.dirty = true
}

// DeleteLastRow removes the most recently added Constraint row — the
// inverse of AddRow, used by ValidateCut to restore the Model after a
// trial solve. It is a no-op on an empty Model.
func (m *Model) DeleteLastRow() {
	n := len(m.Constraints)
	if n == 0 {
		return
	}
	last := m.Constraints[n-1]
	m.Constraints = m.Constraints[:n-1]
	for idx := range last.Coeffs {
		v := m.Vars[idx]
		for i, c := range v.IncidentConstraints {
			if c == last.Index {
				v.IncidentConstraints = append(v.IncidentConstraints[:i], v.IncidentConstraints[i+1:]...)
				break
			}
		}
	}
	m.dirty = true
}

// ValidateCut checks a candidate cut before it's broadcast: temporarily
// fix every variable the cut references to the assignment that would
// violate it (the combination that caused the original infeasibility),
// re-solve, and accept the cut iff that fixed LP is infeasible. Bounds are
// always restored before returning, win or lose.
func (m *Model) ValidateCut(cut fuip.Cut) bool {
	if cut.IsEmpty() {
		return false
	}

	type saved struct{ lower, upper float64 }
	restore := make(map[int]saved, len(cut.Indices))
	for i, idx := range cut.Indices {
		v := m.Vars[idx]
		restore[idx] = saved{v.Lower, v.Upper}
		if cut.Values[i] < 0 {
			v.Lower, v.Upper = 1, 1
		} else {
			v.Lower, v.Upper = 0, 0
		}
	}
	m.dirty = true

	solution, err := m.runSimplex()

	for idx, s := range restore {
		v := m.Vars[idx]
		v.Lower, v.Upper = s.lower, s.upper
	}
	m.dirty = true

	if err != nil {
		return false
	}
	return solution.Status == model.StatusInfeasible
}

// Copy deep-clones Vars, Constraints, Objective and Graph into a fresh,
// fully independent Model sharing no pointers with m — the operation
// every branch uses to give its two children their own LP state. Every
// reference inside the clone (Constraint.Coeffs keys, Variable's
// IncidentConstraints) is already index-based, so no pointer rewiring is
// needed beyond allocating fresh Variable/Constraint instances at the
// same indices.
func (m *Model) Copy() *Model {
	vars := make([]*model.Variable, len(m.Vars))
	for i, v := range m.Vars {
		vars[i] = v.Clone()
	}
	constraints := make([]*model.Constraint, len(m.Constraints))
	for i, c := range m.Constraints {
		constraints[i] = c.Clone()
	}
	objective := make(map[int]float64, len(m.Objective))
	for idx, coeff := range m.Objective {
		objective[idx] = coeff
	}

	return &Model{
		Vars:         vars,
		Constraints:  constraints,
		Objective:    objective,
		Sense:        m.Sense,
		Graph:        m.Graph.Copy(),
		LastSolution: m.LastSolution.Clone(),
		dirty:        m.dirty,
	}
}
