// Package allocation solves budget allocation (knapsack selection):
// choose items from a tabular catalog to maximize total value without
// exceeding a weight budget, delegating to a solving engine.
//
// Input: a table with an item label column, a value column, and a weight
// column, plus the budget capacity. Item labels must be unique; weights
// must be non-negative; capacity must be a finite non-negative number.
//
// The formulation uses one indicator per item (binary by default, a
// continuous fraction in [0, 1] with WithFractional), a single budget
// constraint tagged "budget", maximizing total value. In the binary mode
// indicator values are snapped through solve.SnapInt; the fractional
// relaxation reports values as they come.
//
// Output: the chosen rows of the input table in original order, with a
// "fraction" column appended in fractional mode, plus the chosen item
// labels. In fractional mode the "fraction" column name is reserved: a
// catalog that already has one is rejected up front (ErrReservedColumn).
// A zero-capacity budget is perfectly feasible (nothing fits) and yields
// the empty selection at value 0.
package allocation
