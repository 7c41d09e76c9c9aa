// Package core defines the Graph, Vertex, and Edge types used as the graph
// input idiom of the optimization mods.
//
// A Graph here is an arc network: a set of labeled vertices and directed
// arcs between them, each arc carrying the numeric attributes the model
// builders consume (Cost, Capacity) and each vertex carrying a Balance
// (supply > 0, demand < 0). Mods that work on undirected structure, such as
// matching, interpret each arc as an undirected edge between its endpoints.
//
// Unlike a general-purpose graph, this container enforces the invariants
// the data→model bridge needs:
//
//   - At most one arc per ordered endpoint pair. A second AddEdge with the
//     same endpoints returns ErrDuplicateEdge: two arcs with the same domain
//     key would make the canonical index ambiguous.
//   - Self-loops are rejected unless the graph was built WithLoops().
//   - Vertex iteration is deterministic (IDs in ascending order), so the
//     canonical index derived from a graph is reproducible.
//
// Numeric defaults are explicit: an arc added without WithCost has Cost 0;
// without WithCapacity it has Capacity +Inf. The Flow field is zero on
// inputs and populated on decoded result graphs.
//
// A Graph is owned by the single invocation that reads it; the container
// itself performs no locking.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
//	ErrDuplicateEdge  - second arc between the same ordered endpoints.
package core
