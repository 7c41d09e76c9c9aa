package table

import (
	"errors"
	"fmt"
)

// Sentinel errors for table construction and access.
var (
	// ErrEmptyName indicates an empty column name.
	ErrEmptyName = errors.New("table: column name is empty")

	// ErrDuplicateColumn indicates a column with the same name already exists.
	ErrDuplicateColumn = errors.New("table: duplicate column")

	// ErrLengthMismatch indicates a column whose length differs from the
	// table's established row count.
	ErrLengthMismatch = errors.New("table: column length mismatch")

	// ErrNoColumn indicates a referenced column does not exist.
	ErrNoColumn = errors.New("table: no such column")
)

// Table is an ordered collection of equally long named columns.
// The zero row count is fixed by the first column added.
type Table struct {
	n     int      // row count, -1 until the first column is added
	order []string // column names in insertion order
	str   map[string][]string
	num   map[string][]float64
}

// New returns an empty Table with no columns.
// Complexity: O(1)
func New() *Table {
	return &Table{
		n:   -1,
		str: make(map[string][]string),
		num: make(map[string][]float64),
	}
}

// Len returns the number of rows. A table with no columns has 0 rows.
func (t *Table) Len() int {
	if t.n < 0 {
		return 0
	}

	return t.n
}

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)

	return out
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, okS := t.str[name]
	_, okN := t.num[name]

	return okS || okN
}

// AddStrings appends a string-valued (structural) column.
// The values slice is copied; later mutation of vals does not affect the table.
func (t *Table) AddStrings(name string, vals []string) error {
	if err := t.admit(name, len(vals)); err != nil {
		return err
	}
	cp := make([]string, len(vals))
	copy(cp, vals)
	t.str[name] = cp
	t.order = append(t.order, name)

	return nil
}

// AddNumbers appends a float64-valued (data) column.
// The values slice is copied; later mutation of vals does not affect the table.
func (t *Table) AddNumbers(name string, vals []float64) error {
	if err := t.admit(name, len(vals)); err != nil {
		return err
	}
	cp := make([]float64, len(vals))
	copy(cp, vals)
	t.num[name] = cp
	t.order = append(t.order, name)

	return nil
}

// admit validates a new column's name and length against the table.
func (t *Table) admit(name string, length int) error {
	if name == "" {
		return ErrEmptyName
	}
	if t.HasColumn(name) {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}
	if t.n >= 0 && length != t.n {
		return fmt.Errorf("%w: column %q has %d values, table has %d rows", ErrLengthMismatch, name, length, t.n)
	}
	if t.n < 0 {
		t.n = length
	}

	return nil
}

// Strings returns the values of a string column.
// The returned slice is a copy.
func (t *Table) Strings(name string) ([]string, error) {
	col, ok := t.str[name]
	if !ok {
		return nil, fmt.Errorf("%w: string column %q", ErrNoColumn, name)
	}
	out := make([]string, len(col))
	copy(out, col)

	return out, nil
}

// Numbers returns the values of a numeric column.
// The returned slice is a copy.
func (t *Table) Numbers(name string) ([]float64, error) {
	col, ok := t.num[name]
	if !ok {
		return nil, fmt.Errorf("%w: numeric column %q", ErrNoColumn, name)
	}
	out := make([]float64, len(col))
	copy(out, col)

	return out, nil
}

// Filter returns a new Table holding exactly the rows with keep[i] == true,
// in their original order, with the original column order preserved.
// keep must have one entry per row (ErrLengthMismatch otherwise).
func (t *Table) Filter(keep []bool) (*Table, error) {
	if len(keep) != t.Len() {
		return nil, fmt.Errorf("%w: keep mask has %d entries, table has %d rows", ErrLengthMismatch, len(keep), t.Len())
	}

	out := New()
	var err error
	for _, name := range t.order {
		if col, ok := t.str[name]; ok {
			sub := make([]string, 0, len(col))
			for i, v := range col {
				if keep[i] {
					sub = append(sub, v)
				}
			}
			err = out.AddStrings(name, sub)
		} else {
			col := t.num[name]
			sub := make([]float64, 0, len(col))
			for i, v := range col {
				if keep[i] {
					sub = append(sub, v)
				}
			}
			err = out.AddNumbers(name, sub)
		}
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
