// Package table provides a small column-oriented relation used as the
// tabular input and output idiom of the optimization mods.
//
// A Table is an ordered set of named columns of equal length. Columns are
// either string-valued (structural: they identify entities such as arc
// endpoints or item labels) or float64-valued (data: they supply numeric
// coefficients such as costs and capacities). Row order is preserved
// exactly; a decoded result table is always a row subset of the input in
// the original order, so labels never move.
//
// # Construction
//
//	t := table.New()
//	_ = t.AddStrings("from", []string{"A", "B", "A"})
//	_ = t.AddStrings("to", []string{"B", "C", "C"})
//	_ = t.AddNumbers("cost", []float64{1, 1, 5})
//
// The first column added fixes the row count; every later column must have
// the same length (ErrLengthMismatch otherwise).
//
// # Errors (sentinel)
//
//	– ErrEmptyName       column name is empty.
//	– ErrDuplicateColumn a column with that name already exists.
//	– ErrLengthMismatch  column length differs from the table's row count.
//	– ErrNoColumn        a referenced column does not exist.
//
// All errors are matched with errors.Is; context (the column name, the
// lengths involved) is wrapped on top with fmt.Errorf.
package table
