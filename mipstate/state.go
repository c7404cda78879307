package mipstate

import (
	"math"

	"github.com/katalvlaran/conflictmip/lpmodel"
	"github.com/katalvlaran/conflictmip/model"
)

// SearchState is MipState's run-level status (spec §3's "InSolving /
// Converged / Infeasible" tagged enum).
type SearchState int

const (
	InSolving SearchState = iota
	Converged
	Infeasible
)

// String renders the state for logs.
func (s SearchState) String() string {
	switch s {
	case Converged:
		return "Converged"
	case Infeasible:
		return "Infeasible"
	default:
		return "InSolving"
	}
}

// Counters accumulates small per-run statistics, grounded on the
// source's BranchabilityStatistic idiom: one counter per node
// classification outcome, plus cut bookkeeping.
type Counters struct {
	NodesExplored    int
	NodesBranched    int
	NodesIntFeasible int
	NodesInfeasible  int
	NodesDropped     int
	CutsGenerated    int
	CutsRejected     int
}

// State is the primal/dual bound pair plus run state for one solve.
type State struct {
	Sense                lpmodel.Sense
	ConvergenceTolerance float64

	Primal model.Solution
	Dual   model.Solution

	SearchState SearchState
	Counters    Counters
}

// New returns a fresh State with no incumbent and an unset dual bound,
// ready for the root node's first classification.
func New(sense lpmodel.Sense, convergenceTolerance float64) *State {
	return &State{
		Sense:                sense,
		ConvergenceTolerance: convergenceTolerance,
		Primal:               model.NewUnknownSolution(),
		Dual:                 model.NewUnknownSolution(),
		SearchState:          InSolving,
	}
}

// Normalize maps an objective value into "lower is better" units
// regardless of Sense, so callers (including package search, when
// deciding whether a node's bound could still beat the incumbent) can
// apply one comparison rule to both Minimize and Maximize models.
func (s *State) Normalize(v float64) float64 {
	if s.Sense == lpmodel.Maximize {
		return -v
	}
	return v
}

// UpdatePrimal accepts candidate as the new incumbent only if it strictly
// improves on the current one (or there is no incumbent yet), then checks
// convergence. Returns whether candidate was accepted.
func (s *State) UpdatePrimal(candidate model.Solution) bool {
	if !candidate.IsFeasible() {
		return false
	}
	if s.Primal.Objective != nil {
		if s.Normalize(*candidate.Objective) >= s.Normalize(*s.Primal.Objective) {
			return false
		}
	}
	s.Primal = candidate
	s.checkConvergence()
	return true
}

// UpdateDual always adopts value as the new dual bound — the caller (the
// search loop) is responsible for computing the right aggregate (the
// minimum open-node LP objective for Minimize, the maximum for Maximize)
// before calling this; State itself never compares the incoming value
// against the old one.
func (s *State) UpdateDual(value float64) {
	s.Dual = model.Solution{Objective: &value, Status: model.StatusOptimal}
	s.checkConvergence()
}

// MarkInfeasible transitions directly to Infeasible — used when the root
// LP itself is infeasible (spec §7's GlobalInfeasibility) or the search
// exhausts its stack with no primal solution ever found.
func (s *State) MarkInfeasible() {
	s.SearchState = Infeasible
}

// checkConvergence applies spec §4.6's rule in normalized units: the run
// converges once the incumbent is at least as good as the bound, or the
// relative gap between them has closed to within ConvergenceTolerance.
func (s *State) checkConvergence() {
	if s.Primal.Objective == nil || s.Dual.Objective == nil {
		return
	}
	p := s.Normalize(*s.Primal.Objective)
	d := s.Normalize(*s.Dual.Objective)

	if p <= d {
		s.SearchState = Converged
		return
	}
	denom := math.Max(math.Abs(p), math.Abs(d))
	if denom == 0 {
		return
	}
	if (p-d)/denom < s.ConvergenceTolerance {
		s.SearchState = Converged
	}
}
