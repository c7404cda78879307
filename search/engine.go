package search

import (
	"math"
	"sort"

	"github.com/katalvlaran/conflictmip/fuip"
	"github.com/katalvlaran/conflictmip/lpmodel"
	"github.com/katalvlaran/conflictmip/mipstate"
	"github.com/katalvlaran/conflictmip/model"
)

// Solver runs spec §4.5's branch-and-bound loop over a single root
// lpmodel.Model: a LIFO stack of open (Branchable) nodes, a shared
// mipstate.State tracking the primal/dual pair, and the root Model itself
// kept around as the baseline ValidateCut re-solves against.
type Solver struct {
	Options Options
	State   *mipstate.State

	root  *lpmodel.Model
	stack []*Node
}

// New prepares a Solver over root and a fresh mipstate.State for
// opts.ConvergenceTolerance. root's Variables keep whatever IsInteger
// flags the caller set: gonum's simplex ignores them (it solves the
// continuous relaxation regardless), while presolve's integer rounding and
// this package's classify/branch bookkeeping read them, so they must
// survive untouched.
func New(root *lpmodel.Model, opts Options) *Solver {
	return &Solver{
		Options: opts,
		State:   mipstate.New(root.Sense, opts.ConvergenceTolerance),
		root:    root,
	}
}

// Run executes the search to completion and returns the final State:
// Converged once the primal/dual gap closes, Infeasible if no integer
// point is ever reachable, or left InSolving only if the caller aborted
// (Run itself always drives to one of the other two).
func (s *Solver) Run() *mipstate.State {
	root := newRoot(s.root)
	root.Dirty = true
	if s.settle(root) {
		s.push(root)
	}
	s.refreshDual()

	for len(s.stack) > 0 && s.State.SearchState != mipstate.Converged {
		node := s.pop()
		s.State.Counters.NodesExplored++

		branchable := true
		if node.Dirty {
			branchable = s.settle(node)
		}
		if !branchable {
			s.refreshDual()
			continue
		}

		s.State.Counters.NodesBranched++
		left, right := s.branch(node)
		if left == nil || right == nil {
			s.refreshDual()
			continue
		}

		var pushable []*Node
		for _, child := range []*Node{left, right} {
			if s.settle(child) {
				pushable = append(pushable, child)
			}
		}
		s.pushOrdered(pushable)
		s.refreshDual()
	}

	if s.State.SearchState != mipstate.Converged {
		if s.State.Primal.Objective == nil {
			s.State.MarkInfeasible()
		} else {
			// The stack emptied with an incumbent still standing and no
			// open node left to beat it (possibly because the root itself
			// was already IntFeasible and never reached the stack at all):
			// it is the optimum.
			s.State.UpdateDual(*s.State.Primal.Objective)
		}
	}
	return s.State
}

// settle brings node up to date (re-solving and re-classifying it if
// Dirty) and applies the side effect its classification calls for: a new
// incumbent for IntFeasible, a broadcast cut for Infeasible (and for
// Dropped when UseDropped is set). Returns whether node is Branchable and
// therefore belongs on the stack.
func (s *Solver) settle(node *Node) bool {
	if node.Dirty {
		_, _, err := node.Model.Solve(node.BranchedVar, s.Options.EnablePresolve)
		node.Dirty = false
		if err != nil {
			node.Branchability = Infeasible
		} else {
			node.Branchability = s.classify(node.Model.LastSolution, node.Model.Vars)
		}
		if s.Options.Logger != nil {
			s.Options.Logger("node classified as %s (objective=%v, status=%s)",
				node.Branchability, node.Model.LastSolution.ObjectiveOrInf(), node.Model.LastSolution.Status)
		}
	}

	switch node.Branchability {
	case IntFeasible:
		s.State.Counters.NodesIntFeasible++
		s.State.UpdatePrimal(node.Model.LastSolution)
		return false
	case Infeasible:
		s.State.Counters.NodesInfeasible++
		s.broadcastCut(node)
		return false
	case Dropped:
		s.State.Counters.NodesDropped++
		if s.Options.UseDropped {
			s.broadcastCut(node)
		}
		return false
	case Branchable:
		return true
	default:
		return false
	}
}

// classify turns a freshly solved LP into a Branchability: a non-optimal
// status (including Unbounded, which a correctly bounded MIP relaxation
// should never report) is folded conservatively into Infeasible; an
// integral assignment is IntFeasible; otherwise the node is Dropped if its
// own bound can no longer beat the current incumbent by more than
// ConvergenceTolerance, Branchable otherwise.
func (s *Solver) classify(sol model.Solution, vars []*model.Variable) Branchability {
	if sol.Status != model.StatusOptimal {
		return Infeasible
	}
	if sol.IsPrimal(vars, s.Options.PrimalTolerance) {
		return IntFeasible
	}
	if s.State.Primal.Objective == nil {
		return Branchable
	}

	nodeObj := s.State.Normalize(*sol.Objective)
	primalObj := s.State.Normalize(*s.State.Primal.Objective)
	if nodeObj >= primalObj {
		return Dropped
	}
	denom := math.Max(math.Abs(primalObj), math.Abs(nodeObj))
	if denom != 0 && (primalObj-nodeObj)/denom <= s.Options.ConvergenceTolerance {
		return Dropped
	}
	return Branchable
}

// branch picks node's branching variable and returns its two children,
// each holding its own Model.Copy() with the chosen variable's domain
// narrowed per childBounds. Neither child is solved or classified yet —
// the caller settles them. Returns (nil, nil) only if node turns out to
// have no fractional integer variable, which classify already rules out
// for any node reaching here.
func (s *Solver) branch(node *Node) (*Node, *Node) {
	idx, val, ok := mostFractionalVar(node.Model.Vars, node.Model.LastSolution.Assignment, s.Options.PrimalTolerance)
	if !ok {
		return nil, nil
	}

	loLower, loUpper, hiLower, hiUpper := childBounds(node.Model.Vars[idx], val)

	leftIdx, rightIdx := idx, idx
	left := &Node{Model: node.Model.Copy(), BranchedVar: &leftIdx, Dirty: true}
	right := &Node{Model: node.Model.Copy(), BranchedVar: &rightIdx, Dirty: true}
	_ = left.Model.ChangeVarBounds(idx, loLower, loUpper)
	_ = right.Model.ChangeVarBounds(idx, hiLower, hiUpper)

	return left, right
}

// pushOrdered applies sort_nodes (spec §4.5) to a set of already-settled,
// already-Branchable siblings and pushes them so the most promising one
// (lowest Branchability.rank, then lowest normalized LP objective) sits on
// top of the LIFO stack and is explored first.
func (s *Solver) pushOrdered(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		ri, rj := nodes[i].Branchability.rank(), nodes[j].Branchability.rank()
		if ri != rj {
			return ri < rj
		}
		oi := s.State.Normalize(nodes[i].Model.LastSolution.ObjectiveOrInf())
		oj := s.State.Normalize(nodes[j].Model.LastSolution.ObjectiveOrInf())
		return oi < oj
	})
	for i := len(nodes) - 1; i >= 0; i-- {
		s.push(nodes[i])
	}
}

// broadcastCut derives a cut from node's ImplicationGraph per the
// configured CuttingMode, then adds it to every open (stack) node — and,
// when CuttingCheck is enabled, to the root baseline ValidateCut re-solves
// against. A trivial cut is dropped unless TrivialGraphCut allows it; a
// cut that fails ValidateCut is dropped and counted as rejected.
func (s *Solver) broadcastCut(node *Node) {
	if s.Options.Cutting == CuttingNone {
		return
	}

	var cut fuip.Cut
	if s.Options.Cutting == CuttingRoot {
		cut = fuip.RootCut(node.Model.Graph)
	} else {
		cut = fuip.New(node.Model.Graph, s.Options.FUIPSize).Extract()
	}
	if cut.IsEmpty() {
		return
	}
	if cut.IsTrivial && !s.Options.TrivialGraphCut {
		s.State.Counters.CutsRejected++
		return
	}
	if s.Options.CuttingCheck && !s.root.ValidateCut(cut) {
		s.State.Counters.CutsRejected++
		return
	}

	s.State.Counters.CutsGenerated++
	for _, n := range s.stack {
		n.Model.AddRow(cut)
		n.Dirty = true
	}
	if s.Options.CuttingCheck {
		s.root.AddRow(cut)
	}
}

// refreshDual recomputes the dual bound as the best (lowest normalized)
// LP objective among every node currently open on the stack, then adopts
// it via mipstate.State.UpdateDual. A no-op while the stack is empty —
// Run handles the final dual/primal reconciliation itself once the loop
// ends.
func (s *Solver) refreshDual() {
	if len(s.stack) == 0 {
		return
	}
	best := s.stack[0].Model.LastSolution.ObjectiveOrInf()
	bestNorm := s.State.Normalize(best)
	for _, n := range s.stack[1:] {
		obj := n.Model.LastSolution.ObjectiveOrInf()
		if norm := s.State.Normalize(obj); norm < bestNorm {
			bestNorm = norm
			best = obj
		}
	}
	s.State.UpdateDual(best)
}

func (s *Solver) push(n *Node) {
	s.stack = append(s.stack, n)
}

func (s *Solver) pop() *Node {
	n := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return n
}
