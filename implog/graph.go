package implog

import (
	"fmt"

	"github.com/katalvlaran/conflictmip/core"
	"github.com/katalvlaran/conflictmip/model"
)

// metadataKey is the single key implog stores under Vertex.Metadata.
const metadataKey = "implog.node"

// NodeInfo is the payload attached to every core.Vertex implog creates: the
// bound-tightening event it represents.
type NodeInfo struct {
	Depth     int
	Iteration int
	VarIndex  int
	Bound     model.Bound
}

// Graph is an implication graph: one core.Graph of bound-tightening events
// plus the depth/iteration bookkeeping the underlying graph has no notion
// of. A fresh Graph starts at depth 0 before any branch has occurred.
type Graph struct {
	inner     *core.Graph
	depth     int
	iteration int

	// latest[varIndex] is the chronological list of vertex IDs recorded for
	// that variable — the last entry is its current node.
	latest map[int][]string

	// drains[d] is the set of vertex IDs at depth d with no outgoing edge —
	// the current propagation frontier at that depth.
	drains map[int]map[string]bool

	// origins[d] is the vertex ID of the branching-decision node at depth d.
	origins map[int]string
}

// New returns an empty Graph at depth 0, ready to record propagation
// events for the root node (before any branching has occurred).
func New() *Graph {
	return &Graph{
		inner:   core.NewGraph(core.WithDirected(true), core.WithMultiEdges()),
		latest:  make(map[int][]string),
		drains:  make(map[int]map[string]bool),
		origins: make(map[int]string),
	}
}

// Depth returns the current branching depth.
func (g *Graph) Depth() int { return g.depth }

// Iteration returns the current propagation-sweep counter within the
// current depth.
func (g *Graph) Iteration() int { return g.iteration }

// NewDepth records a branching decision on varIndex that set its domain to
// bound: depth advances by one, the iteration counter resets, an origin
// node is recorded at (depth, 0), and iteration then advances to 1 so that
// the first propagation sweep after the branch lands at iteration 1.
func (g *Graph) NewDepth(varIndex int, bound model.Bound) {
	g.depth++
	g.iteration = 0
	id := g.recordNode(varIndex, bound)
	g.origins[g.depth] = id
	g.iteration = 1
}

// NextIteration advances the propagation-sweep counter within the current
// depth; call once per completed propagator sweep.
func (g *Graph) NextIteration() {
	g.iteration++
}

// AddConnection records that varIndex's domain was tightened to bound by a
// row also touching rowVars, and links the new node to every other row
// variable's most recent node (the direct causes of this tightening).
func (g *Graph) AddConnection(varIndex int, rowVars []int, bound model.Bound) {
	newID := g.recordNode(varIndex, bound)

	for _, other := range rowVars {
		if other == varIndex {
			continue
		}
		causeID, ok := g.lastNode(other)
		if !ok {
			continue
		}
		g.addEdge(causeID, newID)
	}
}

// recordNode creates a vertex for varIndex's bound at the current
// (depth, iteration), registers it as the variable's latest node, and adds
// it to the current depth's drain set (it has no outgoing edges yet).
func (g *Graph) recordNode(varIndex int, bound model.Bound) string {
	id := fmt.Sprintf("%d:%d:%d", g.depth, g.iteration, varIndex)
	_ = g.inner.AddVertex(id)

	verts := g.inner.VerticesMap()
	verts[id].Metadata[metadataKey] = NodeInfo{
		Depth:     g.depth,
		Iteration: g.iteration,
		VarIndex:  varIndex,
		Bound:     bound,
	}

	g.latest[varIndex] = append(g.latest[varIndex], id)

	if g.drains[g.depth] == nil {
		g.drains[g.depth] = make(map[string]bool)
	}
	g.drains[g.depth][id] = true

	return id
}

// addEdge links causeID -> effectID and removes causeID from its depth's
// drain set now that it has an outgoing edge, preserving the invariant
// that drains[d] is exactly the set of out-degree-zero nodes at depth d.
func (g *Graph) addEdge(causeID, effectID string) {
	_, _ = g.inner.AddEdge(causeID, effectID, 0)

	info, ok := g.NodeInfo(causeID)
	if !ok {
		return
	}
	if set := g.drains[info.Depth]; set != nil {
		delete(set, causeID)
	}
}

// lastNode returns the most recently recorded node ID for varIndex.
func (g *Graph) lastNode(varIndex int) (string, bool) {
	ids := g.latest[varIndex]
	if len(ids) == 0 {
		return "", false
	}
	return ids[len(ids)-1], true
}

// NodeInfo returns the recorded bound-tightening event for vertex id.
func (g *Graph) NodeInfo(id string) (NodeInfo, bool) {
	verts := g.inner.VerticesMap()
	v, ok := verts[id]
	if !ok {
		return NodeInfo{}, false
	}
	info, ok := v.Metadata[metadataKey].(NodeInfo)
	return info, ok
}

// Drains returns the vertex IDs at depth d with no outgoing edge — the
// current propagation frontier at that depth.
func (g *Graph) Drains(depth int) []string {
	set := g.drains[depth]
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// Origin returns the branching-origin node ID for depth d.
func (g *Graph) Origin(depth int) (string, bool) {
	id, ok := g.origins[depth]
	return id, ok
}

// InEdges returns the vertex IDs with a direct edge into id — the direct
// implication causes fuip walks backward through.
func (g *Graph) InEdges(id string) []string {
	var causes []string
	for _, e := range g.inner.Edges() {
		if e.To == id {
			causes = append(causes, e.From)
		}
	}
	return causes
}

// IsOrigin reports whether id is a branching-origin node at any depth —
// i.e. it was created by NewDepth (iteration 0) rather than by a
// propagation sweep. Used by the cut extractor to classify a cut as
// trivial when its entire frontier consists of origins.
func (g *Graph) IsOrigin(id string) bool {
	info, ok := g.NodeInfo(id)
	return ok && g.origins[info.Depth] == id
}

// Copy returns a deep, independent copy: a fresh underlying core.Graph (via
// Clone) plus fresh bookkeeping maps. Mutating the copy — recording new
// nodes, edges, drains — never affects g, matching the deep-copy-on-branch
// lifecycle every LPModel and its Graph go through.
func (g *Graph) Copy() *Graph {
	cp := &Graph{
		inner:     g.inner.Clone(),
		depth:     g.depth,
		iteration: g.iteration,
		latest:    make(map[int][]string, len(g.latest)),
		drains:    make(map[int]map[string]bool, len(g.drains)),
		origins:   make(map[int]string, len(g.origins)),
	}
	for varIndex, ids := range g.latest {
		cp.latest[varIndex] = append([]string(nil), ids...)
	}
	for depth, set := range g.drains {
		copied := make(map[string]bool, len(set))
		for id := range set {
			copied[id] = true
		}
		cp.drains[depth] = copied
	}
	for depth, id := range g.origins {
		cp.origins[depth] = id
	}
	return cp
}
