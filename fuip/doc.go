// Package fuip extracts a First-Unique-Implication-Point conflict cut from
// an implog.Graph whose frontier reflects an infeasible node, adapting the
// SAT-solving technique of the same name: walk back from the conflict
// frontier until each depth's contribution collapses to a small enough set
// of "decision literals" to emit as a cut.
package fuip
