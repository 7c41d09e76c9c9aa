// Package mincostflow solves minimum-cost flow problems over any
// supported graph container idiom by delegating to a solving engine.
//
// Inputs: a canon.GraphInput whose arcs carry Cost (default 0) and
// Capacity (default +Inf), plus per-node balances — supply when positive,
// demand when negative, transshipment at 0 (the default). For the graph
// idiom, balances come from the vertices themselves (core.WithBalance);
// the balances argument overrides or supplies them for any idiom and must
// name only nodes present in the input. Balances must sum to zero: a flow
// that creates or destroys units does not exist (ErrUnbalanced).
//
// The formulation is the textbook LP: one continuous flow variable per
// arc bounded by its capacity, one conservation equality per node
// (outflow − inflow = balance) tagged with the node's label, minimizing
// total cost. Conservation tags mean engines that report duals attach a
// node potential to every node key.
//
// Output: a Result in the input idiom, each kept arc carrying its flow
// value (an appended "flow" column for tables, entry values for matrix
// idioms, Edge.Flow for graphs). The "flow" column name is reserved: a
// table input that already has one is rejected up front
// (ErrReservedColumn). An infeasible network (not enough
// capacity to route the balances) or an unbounded one (a negative-cost
// cycle of uncapped arcs) is reported as the Result's Status, never as an
// error.
package mincostflow
