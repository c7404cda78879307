package fuip

import "github.com/katalvlaran/conflictmip/implog"

// DefaultSize is the fuip_size used when a Solver isn't configured with an
// explicit value: emit a depth's frontier as soon as it collapses to one
// node.
const DefaultSize = 1

// Extractor walks an implog.Graph back from its current conflict frontier
// (the drains of every depth) to a minimal cut-set of decision literals.
type Extractor struct {
	Graph    *implog.Graph
	FUIPSize int
}

// New constructs an Extractor. A non-positive size falls back to
// DefaultSize.
func New(graph *implog.Graph, size int) *Extractor {
	if size <= 0 {
		size = DefaultSize
	}
	return &Extractor{Graph: graph, FUIPSize: size}
}

// Extract produces the cut implied by the graph's current conflict
// frontier. An empty Cut means no conflict information is available (e.g.
// an empty graph) — the caller should treat that as "no cut to add".
func (e *Extractor) Extract() Cut {
	currentDepth := e.Graph.Depth()

	frontier := make(map[int]map[string]bool, currentDepth+1)
	for d := 0; d <= currentDepth; d++ {
		ids := e.Graph.Drains(d)
		if len(ids) == 0 {
			continue
		}
		set := make(map[string]bool, len(ids))
		for _, id := range ids {
			set[id] = true
		}
		frontier[d] = set
	}

	var emitted []string
	for d := currentDepth; d >= 1; d-- {
		set := frontier[d]
		if len(set) == 0 {
			continue
		}
		e.collapse(d, set, frontier)
		for id := range set {
			emitted = append(emitted, id)
		}
	}

	return e.buildCut(emitted)
}

// collapse shrinks set (the frontier at depth d) to at most FUIPSize nodes
// by repeatedly replacing its highest-iteration members with their direct
// implication causes, per the algorithm in §4.3: each replaced node's
// causes join the frontier at their own depth (same-depth causes rejoin
// set itself; causes from a shallower depth are recorded in frontier for
// that depth's own pass).
func (e *Extractor) collapse(d int, set map[string]bool, frontier map[int]map[string]bool) {
	for len(set) > e.FUIPSize {
		maxIter := -1
		for id := range set {
			if info, ok := e.Graph.NodeInfo(id); ok && info.Iteration > maxIter {
				maxIter = info.Iteration
			}
		}
		if maxIter <= 0 {
			// Only branching-origin nodes remain at this depth (there is
			// exactly one per depth); nothing further to replace.
			return
		}

		var toReplace []string
		for id := range set {
			if info, ok := e.Graph.NodeInfo(id); ok && info.Iteration == maxIter {
				toReplace = append(toReplace, id)
			}
		}

		for _, id := range toReplace {
			delete(set, id)
			for _, cause := range e.Graph.InEdges(id) {
				info, ok := e.Graph.NodeInfo(cause)
				if !ok {
					continue
				}
				if info.Depth == d {
					set[cause] = true
					continue
				}
				if frontier[info.Depth] == nil {
					frontier[info.Depth] = make(map[string]bool)
				}
				frontier[info.Depth][cause] = true
			}
		}
	}
}

// literal is the per-variable contribution to a cut being assembled from
// possibly several emitted nodes that happen to share a variable index
// (e.g. a variable's branching-origin node and a later propagated node
// both survive to the emitted set).
type literal struct {
	value  float64
	origin bool
}

// buildCut turns the emitted node IDs into a Cut: one literal per distinct
// variable, signed by which side of its domain it was fixed to. When the
// same variable is represented by more than one emitted node, a
// non-origin occurrence always wins — the cut is trivial only if every
// variable it references was exclusively seen at its branching origin.
func (e *Extractor) buildCut(emitted []string) Cut {
	byVar := make(map[int]literal)
	var order []int

	for _, id := range emitted {
		info, ok := e.Graph.NodeInfo(id)
		if !ok {
			continue
		}
		isOrigin := e.Graph.IsOrigin(id)
		value := 1.0
		if info.Bound.Lower > 0 {
			value = -1.0
		}

		existing, seen := byVar[info.VarIndex]
		if !seen {
			byVar[info.VarIndex] = literal{value: value, origin: isOrigin}
			order = append(order, info.VarIndex)
			continue
		}
		if existing.origin && !isOrigin {
			byVar[info.VarIndex] = literal{value: value, origin: false}
		}
	}

	var cut Cut
	trivial := len(order) > 0
	for _, idx := range order {
		l := byVar[idx]
		cut.Indices = append(cut.Indices, idx)
		cut.Values = append(cut.Values, l.value)
		if l.value < 0 {
			cut.NumNegative++
		}
		if !l.origin {
			trivial = false
		}
	}
	cut.IsTrivial = trivial

	return cut
}
