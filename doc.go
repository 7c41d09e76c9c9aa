// Package optimods turns familiar data containers into mathematical
// programs and turns the solver's answer back into the caller's shape.
//
// 🚀 What is optimods?
//
//	A translation layer for well-known optimization patterns. Describe a
//	shortest-path, matching, flow, assignment or allocation problem with the
//	containers you already have — an edge-list table, a dense or sparse
//	adjacency matrix, a graph object — and receive the solution back in the
//	same idiom, with your labels, alignment and sparsity intact:
//		• Containers: table (named columns), core (graph), matrix (COO sparse),
//		  gonum/mat (dense)
//		• canon:  domain keys ⇄ dense canonical positions, encode & decode
//		• model:  variables, tagged constraints, objective — one immutable
//		  instance per call
//		• solve:  the narrow boundary to a solving engine, plus configuration
//		• simplex: a pure-Go reference engine (LP simplex + bound branching)
//		• Mods:   shortestpath, mincostflow, matching, assignment, allocation
//
// ✨ Why choose optimods?
//
//   - No hand-written model code – each mod is a single call
//   - Faithful round-trips – every output row/position maps back to exactly
//     the domain key that produced it
//   - No shared state – each invocation builds, solves and decodes its own
//     instance; concurrent calls never interfere
//   - Swappable engine – any solve.Backend drops in via solve.WithBackend
//
// Quick ASCII example:
//
//	    A──1──B
//	     \    │
//	      5   1
//	       \  │
//	        \ C
//
//	shortestpath.Solve(graph, "A", "C") → path [A B C], cost 2.
//
// Non-optimal solver outcomes (infeasible, unbounded, time-limit) are data
// on the result, never errors; only malformed input and engine faults are.
//
//	go get github.com/katalvlaran/optimods
package optimods
