// Package assignment solves the linear assignment problem: pair every
// row entity with exactly one column entity (and vice versa) at minimum
// total cost, delegating to a solving engine.
//
// Two input idioms are supported. Solve takes a dense cost matrix where
// every entry, including zero, prices an allowed pairing; the matrix
// must be square, since a perfect pairing of unequal sides cannot exist.
// SolveTable takes a relation of candidate pairs where combinations
// absent from the table are disallowed; the sides must have equal
// cardinality. That structural defect reports model.ErrInfeasibleStructure
// before any engine call.
//
// The formulation uses one binary indicator per allowed pair, an
// equality constraint per row entity and per column entity (exactly one
// selected pairing), tagged with the entity's label, minimizing total
// cost. Indicator values from the engine are snapped through
// solve.SnapBinary before a pairing is reported.
//
// Output: the selected pairings rendered in the input's idiom (a 0/1
// indicator matrix, or the kept candidate rows) plus the pairs as label
// tuples. A candidate table whose pairs cannot cover both sides is a
// StatusInfeasible outcome, not an error.
package assignment
