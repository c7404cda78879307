package fuip

import "github.com/katalvlaran/conflictmip/implog"

// RootCut builds a cut from nothing but every depth's branching origin,
// ignoring any propagated implications — the `root` cutting mode from
// spec §4.3's policy list, as opposed to `fuip`'s backward walk through
// Extractor. A root cut is always trivial by definition (see Cut.IsTrivial
// and extractor_test's origin-only scenario), since it never references a
// propagated node.
func RootCut(g *implog.Graph) Cut {
	currentDepth := g.Depth()
	var emitted []string
	for d := 1; d <= currentDepth; d++ {
		if id, ok := g.Origin(d); ok {
			emitted = append(emitted, id)
		}
	}

	e := &Extractor{Graph: g}
	return e.buildCut(emitted)
}
