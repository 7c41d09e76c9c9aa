// Package simplex is the reference solving engine behind solve.Backend.
//
// It is deliberately ordinary: the continuous relaxation is handed to
// gonum's dense simplex method (optimize/convex/lp), and integrality is
// enforced by depth-first bound branching — pick the most fractional
// integer variable, split its bounds at the fractional value, keep the
// best incumbent, prune subtrees whose relaxation bound cannot beat the
// incumbent by more than the configured MIP gap. Pure LPs take a single
// relaxation call.
//
// The engine honors solve.Config as follows:
//
//   - TimeLimit: checked between nodes; on expiry the best incumbent (if
//     any) is returned with StatusSuboptimal. A pure LP's single simplex
//     call is not interruptible and runs to completion.
//   - MIPGap: relative bound-vs-incumbent pruning tolerance. A search
//     that terminates under a nonzero gap reports StatusOptimal; the
//     incumbent is optimal within the gap, not necessarily exactly.
//   - Verbose/Logger: node-level progress via slog.
//   - Threads: accepted and ignored — the search is single-threaded.
//   - Params: "pivot_tolerance" (float64) overrides the simplex pivot
//     tolerance; unknown keys are ignored, as passthroughs are engine-
//     specific by contract.
//
// Limits: every variable must have a finite lower bound (all mod builders
// produce non-negative variables), and no dual values are reported — the
// underlying simplex API does not expose them.
//
// The engine keeps no state between calls; a single Engine value may be
// shared by concurrent invocations.
package simplex
