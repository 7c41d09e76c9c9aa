// Package shortestpath solves single-pair shortest path problems over any
// supported graph container idiom by delegating to a solving engine.
//
// The mod formulates the path as a minimum-cost unit flow: one continuous
// [0,1] variable per arc, a conservation constraint per node pushing one
// unit from source to target. The constraint matrix is totally unimodular,
// so the engine's optimal basic solution is integral without integer
// variables.
//
// Pipeline per call (pure, no state shared across invocations):
//
//	validate → canon.Encode → build model.Instance → solve.Run → decode
//
// Input: a canon.GraphInput (edge-list table, dense or sparse adjacency,
// or core.Graph). Arc costs default to 0 when the idiom carries none; they
// must be non-negative (ErrNegativeCost otherwise, detected before any
// solver work, as a negative-cost arc would make "shortest" ill-defined
// under the unit-flow formulation).
//
// Output: a Result in the same idiom — the arcs on the optimal path as a
// row subset / matrix / subgraph — plus the ordered node labels of the
// path and the total cost. When the two endpoints are the same node the
// mod short-circuits to a zero-cost trivial path without invoking the
// engine.
//
// A missing source or target is model.ErrInfeasibleStructure, raised
// before any solver invocation. An unreachable target is NOT an error:
// the Result comes back with solve.StatusInfeasible and no values.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", core.WithCost(1))
//	_ = g.AddEdge("B", "C", core.WithCost(1))
//	_ = g.AddEdge("A", "C", core.WithCost(5))
//	res, err := shortestpath.Solve(canon.GraphOf(g), "A", "C")
//	// res.Path == [A B C], res.Cost == 2
package shortestpath
