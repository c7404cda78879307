package search

import (
	"math"

	"github.com/katalvlaran/conflictmip/model"
)

// wideDomainWidth is the ">10" threshold spec §4.5 uses to prefer a
// midpoint split over the usual floor/ceil split on a wide domain.
const wideDomainWidth = 10

// mostFractionalVar picks the branching variable among vars: integer,
// not yet fixed, with a value whose distance from the nearest integer
// exceeds primalTolerance, preferring the one whose fractional part sits
// closest to 0.5. Returns (index, value, true), or (0, 0, false) if no
// variable qualifies (the node is actually IntFeasible).
func mostFractionalVar(vars []*model.Variable, assignment map[int]float64, primalTolerance float64) (int, float64, bool) {
	bestIdx := -1
	bestVal := 0.0
	bestScore := math.Inf(1)

	for _, v := range vars {
		if !v.IsInteger || v.IsFixed(primalTolerance) {
			continue
		}
		val, ok := assignment[v.Index]
		if !ok {
			continue
		}
		if math.Abs(val-math.Round(val)) <= primalTolerance {
			continue
		}
		frac := val - math.Floor(val)
		score := math.Abs(frac - 0.5)
		if score < bestScore {
			bestScore = score
			bestIdx = v.Index
			bestVal = val
		}
	}

	if bestIdx < 0 {
		return 0, 0, false
	}
	return bestIdx, bestVal, true
}

// childBounds computes the two children's [lower,upper] domains for
// branching variable v at fractional value val, per spec §4.5:
//   - boundary case (the floor/ceil split would leave one child a single
//     point because val sits right at the domain's edge) or a wide
//     (>10) finite domain: split the whole domain at its midpoint.
//   - otherwise: left gets [lower, floor(val)], right gets
//     [floor(val)+1, upper].
func childBounds(v *model.Variable, val float64) (loLower, loUpper, hiLower, hiUpper float64) {
	lower, upper := v.Lower, v.Upper
	b := math.Floor(val)

	bothFinite := !math.IsInf(lower, 0) && !math.IsInf(upper, 0)
	boundary := bothFinite && (b == lower || b+1 == upper)
	wide := bothFinite && (upper-lower) > wideDomainWidth

	if bothFinite && (boundary || wide) {
		mid := math.Floor((lower + upper) / 2)
		return lower, mid, mid + 1, upper
	}
	return lower, b, b + 1, upper
}
