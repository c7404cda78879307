// Package main is the conflictmip command line driver: it reads a small
// textual MIP instance (lpmodel.ParseProblem) and either solves it with
// the full branch-and-bound search or, with --solver=false, just solves
// its continuous relaxation and reports that.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/conflictmip/fuip"
	"github.com/katalvlaran/conflictmip/lpmodel"
	"github.com/katalvlaran/conflictmip/mipstate"
	"github.com/katalvlaran/conflictmip/model"
	"github.com/katalvlaran/conflictmip/search"
)

// errUnknownCuttingMode reports a --cutting value outside {root, fuip,
// disable}.
var errUnknownCuttingMode = errors.New("conflictmip: --cutting must be one of root, fuip, disable")

func main() {
	solverEnabled := flag.Bool("solver", true, "run the custom branch-and-bound search (disable to solve only the LP relaxation)")
	presolveEnabled := flag.Bool("presolve", true, "run the bound-propagation presolver before each LP solve")
	cuttingFlag := flag.String("cutting", "fuip", "cut-generation mode: root, fuip, or disable")
	cuttingCheck := flag.Bool("cutting_check", false, "validate each cut against the root LP before broadcasting it")
	trivialGraphCut := flag.Bool("trivial_graph_cut", true, "allow cuts built from branching literals only")
	useDropped := flag.Bool("use_dropped", false, "treat bound-pruned nodes as infeasible for cut generation too")
	silent := flag.Bool("silent", true, "suppress per-iteration progress logging")
	fuipSize := flag.Int("fuip_size", fuip.DefaultSize, "frontier size threshold for the FUIP cut extractor")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: conflictmip [flags] <problem-file>")
		os.Exit(2)
	}

	cutting, err := parseCuttingMode(*cuttingFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("conflictmip: %v", err)
	}
	defer f.Close()

	m, err := lpmodel.ParseProblem(f)
	if err != nil {
		log.Fatalf("conflictmip: %v", err)
	}

	if !*solverEnabled {
		runRelaxationOnly(m, *presolveEnabled)
		return
	}

	opts := search.DefaultOptions()
	opts.EnablePresolve = *presolveEnabled
	opts.Cutting = cutting
	opts.CuttingCheck = *cuttingCheck
	opts.TrivialGraphCut = *trivialGraphCut
	opts.UseDropped = *useDropped
	opts.FUIPSize = *fuipSize
	if !*silent {
		opts.Logger = log.Printf
	}

	state := search.New(m, opts).Run()
	report(state)
}

// parseCuttingMode maps the --cutting flag's three accepted values onto
// search.CuttingMode.
func parseCuttingMode(s string) (search.CuttingMode, error) {
	switch s {
	case "root":
		return search.CuttingRoot, nil
	case "fuip":
		return search.CuttingFUIP, nil
	case "disable":
		return search.CuttingNone, nil
	default:
		return search.CuttingNone, errUnknownCuttingMode
	}
}

// runRelaxationOnly implements --solver=false: solve m's continuous
// relaxation directly, bypassing the branch-and-bound search entirely.
func runRelaxationOnly(m *lpmodel.Model, enablePresolve bool) {
	m.Relax()
	if _, _, err := m.Solve(nil, enablePresolve); err != nil {
		log.Fatalf("conflictmip: solver initialization failed: %v", err)
	}

	sol := m.LastSolution
	fmt.Printf("status: %s\n", sol.Status)
	if sol.IsFeasible() {
		fmt.Printf("objective: %v\n", *sol.Objective)
		printAssignment(m.Vars, sol)
	}
}

// report prints the final mipstate.State: search outcome, primal/dual
// bounds, and (on Converged) the incumbent assignment.
func report(state *mipstate.State) {
	fmt.Printf("search state: %s\n", state.SearchState)
	fmt.Printf("nodes explored: %d  branched: %d  int-feasible: %d  infeasible: %d  dropped: %d\n",
		state.Counters.NodesExplored, state.Counters.NodesBranched,
		state.Counters.NodesIntFeasible, state.Counters.NodesInfeasible, state.Counters.NodesDropped)
	fmt.Printf("cuts generated: %d  rejected: %d\n", state.Counters.CutsGenerated, state.Counters.CutsRejected)

	if state.Dual.Objective != nil {
		fmt.Printf("dual bound: %v\n", *state.Dual.Objective)
	}
	if state.Primal.Objective == nil {
		fmt.Println("no feasible integer solution found")
		if state.SearchState == mipstate.Infeasible {
			os.Exit(1)
		}
		return
	}

	fmt.Printf("primal objective: %v\n", *state.Primal.Objective)
	for idx, val := range state.Primal.Assignment {
		fmt.Printf("  x%d = %v\n", idx, val)
	}
}

// printAssignment renders a Solution's per-variable values in variable
// order, used by the relaxation-only path.
func printAssignment(vars []*model.Variable, sol model.Solution) {
	for _, v := range vars {
		fmt.Printf("  %s = %v\n", v.Name, sol.Assignment[v.Index])
	}
}
