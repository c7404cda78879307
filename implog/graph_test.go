package implog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conflictmip/implog"
	"github.com/katalvlaran/conflictmip/model"
)

func TestGraph_NewDepth_RecordsOrigin(t *testing.T) {
	g := implog.New()
	g.NewDepth(1, model.NewBound(1, 1))

	require.Equal(t, 1, g.Depth())
	require.Equal(t, 1, g.Iteration())

	originID, ok := g.Origin(1)
	require.True(t, ok)
	require.True(t, g.IsOrigin(originID))

	info, ok := g.NodeInfo(originID)
	require.True(t, ok)
	require.Equal(t, 0, info.Iteration)
	require.Equal(t, 1, info.VarIndex)
}

func TestGraph_AddConnection_LinksPriorNodes(t *testing.T) {
	g := implog.New()
	g.NewDepth(0, model.NewBound(1, 1)) // origin node for var 0 at (1,0)

	// Propagation sweep 1: var 1's bound tightened by a row shared with var 0.
	g.AddConnection(1, []int{0, 1}, model.NewBound(2, 5))

	causes := g.InEdges(lastNodeID(t, g, 1))
	require.Len(t, causes, 1)

	info, ok := g.NodeInfo(causes[0])
	require.True(t, ok)
	require.Equal(t, 0, info.VarIndex)
}

func TestGraph_Drains_TracksFrontier(t *testing.T) {
	g := implog.New()
	g.NewDepth(0, model.NewBound(1, 1))

	origin, _ := g.Origin(1)
	require.Contains(t, g.Drains(1), origin)

	g.AddConnection(1, []int{0, 1}, model.NewBound(2, 5))

	// Once var 1's node draws an edge from the origin, the origin is no
	// longer a drain — var 1's new node is.
	require.NotContains(t, g.Drains(1), origin)
	require.Contains(t, g.Drains(1), lastNodeID(t, g, 1))
}

func TestGraph_Copy_Isolation(t *testing.T) {
	g := implog.New()
	g.NewDepth(0, model.NewBound(1, 1))
	g.AddConnection(1, []int{0, 1}, model.NewBound(2, 5))

	cp := g.Copy()
	cp.NextIteration()
	cp.AddConnection(2, []int{1, 2}, model.NewBound(0, 3))

	// The copy sees var 2; the original must not.
	copyID := lastNodeID(t, cp, 2)
	_, copyHas := cp.NodeInfo(copyID)
	require.True(t, copyHas)
	_, origHas := g.NodeInfo(copyID)
	require.False(t, origHas)

	// Each frontier holds one node, but the copy's moved on to var 2's node.
	require.NotEqual(t, g.Drains(1), cp.Drains(1))
}

func lastNodeID(t *testing.T, g *implog.Graph, varIndex int) string {
	t.Helper()
	for _, id := range g.Drains(g.Depth()) {
		if info, ok := g.NodeInfo(id); ok && info.VarIndex == varIndex {
			return id
		}
	}
	t.Fatalf("no drain node found for var %d", varIndex)
	return ""
}
