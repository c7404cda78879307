package search

import "github.com/katalvlaran/conflictmip/fuip"

// CuttingMode selects how (or whether) Solver derives conflict cuts from
// an Infeasible or Dropped node, mirroring spec §4.3's policy list.
type CuttingMode int

const (
	// CuttingNone disables cut generation entirely.
	CuttingNone CuttingMode = iota
	// CuttingRoot derives a cut from branching origins only
	// (fuip.RootCut) — always trivial by construction.
	CuttingRoot
	// CuttingFUIP runs the full FUIP backward walk (fuip.Extractor).
	CuttingFUIP
)

// Options configures one Solver run. Defaults mirror spec §6's CLI table.
type Options struct {
	PrimalTolerance      float64
	ConvergenceTolerance float64

	EnablePresolve bool

	Cutting         CuttingMode
	CuttingCheck    bool
	TrivialGraphCut bool
	FUIPSize        int

	UseDropped bool

	// Logger, when non-nil, receives one line per node classification —
	// the engine's only concession to the CLI's --silent flag. nil means
	// no logging at all.
	Logger func(format string, args ...interface{})
}

// DefaultOptions returns spec §6's CLI defaults: presolve on, fuip
// cutting, trivial cuts allowed, cutting_check and use_dropped off.
func DefaultOptions() Options {
	return Options{
		PrimalTolerance:      1e-6,
		ConvergenceTolerance: 1e-6,
		EnablePresolve:       true,
		Cutting:              CuttingFUIP,
		CuttingCheck:         false,
		TrivialGraphCut:      true,
		FUIPSize:             fuip.DefaultSize,
		UseDropped:           false,
	}
}
