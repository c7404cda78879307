package search

import "github.com/katalvlaran/conflictmip/lpmodel"

// Branchability classifies a Node after its LP has been solved (spec
// §4.5).
type Branchability int

const (
	// Unknown means the node hasn't been solved/classified yet.
	Unknown Branchability = iota
	// Branchable means the LP is optimal, fractional, and could still
	// improve the incumbent.
	Branchable
	// IntFeasible means the LP is optimal and every integer variable's
	// value is already integral — a new primal candidate.
	IntFeasible
	// Infeasible means the LP itself has no feasible point.
	Infeasible
	// Dropped means the LP is optimal but cannot improve the incumbent.
	Dropped
)

// String renders the classification for logs and test failure messages.
func (b Branchability) String() string {
	switch b {
	case Branchable:
		return "Branchable"
	case IntFeasible:
		return "IntFeasible"
	case Infeasible:
		return "Infeasible"
	case Dropped:
		return "Dropped"
	default:
		return "Unknown"
	}
}

// rank orders classifications for sort_nodes (spec §4.5): IntFeasible
// before Branchable before Infeasible before Dropped before Unknown.
func (b Branchability) rank() int {
	switch b {
	case IntFeasible:
		return 0
	case Branchable:
		return 1
	case Infeasible:
		return 2
	case Dropped:
		return 3
	default:
		return 4
	}
}

// Node is one search-tree vertex: the LP relaxation it exclusively owns,
// its current classification, and which variable the branch that created
// it fixed (nil for the root).
type Node struct {
	Model         *lpmodel.Model
	Branchability Branchability
	BranchedVar   *int
	Dirty         bool
}

// newRoot wraps model as an unclassified root node.
func newRoot(model *lpmodel.Model) *Node {
	return &Node{Model: model, Branchability: Unknown}
}
