// Package matching solves maximum-weight matching over any supported
// graph container idiom by delegating to a solving engine.
//
// The input's arcs are read as undirected edges. For the matrix idioms
// the adjacency is treated as symmetric: only the strict upper triangle
// is used, and entries below the diagonal are ignored rather than
// rejected. Edge-list tables and core.Graph networks contribute one edge
// per row or arc. Self-loops can never belong to a matching and are
// rejected (ErrSelfLoop).
//
// Weights come from the input's costs. An input with no cost data at all
// (no cost column, a cost-less graph) is matched by cardinality: every
// edge gets unit weight.
//
// The formulation uses one binary indicator per edge and a degree
// constraint per touched node (at most one incident edge selected),
// tagged with the node's label, maximizing total weight. Indicator
// values from the engine are snapped through solve.SnapBinary before
// any edge is reported as matched.
//
// Output: the matched edges rendered in the input's idiom plus the
// matched pairs as label tuples. The LP relaxation of matching is not
// integral on general graphs; the engine's branch-and-bound closes that
// gap, so odd cycles still come back as proper matchings.
package matching
