package allocation

import (
	"errors"
	"time"

	"github.com/katalvlaran/optimods/solve"
	"github.com/katalvlaran/optimods/table"
)

var (
	// ErrBadCapacity - the budget capacity is negative, NaN or infinite.
	ErrBadCapacity = errors.New("allocation: capacity must be a finite non-negative number")
	// ErrNegativeWeight - an item carries a weight below zero.
	ErrNegativeWeight = errors.New("allocation: negative item weight")
	// ErrReservedColumn - the catalog already carries the fraction
	// result column in fractional mode.
	ErrReservedColumn = errors.New(`allocation: catalog column "fraction" is reserved for the result`)
)

// Schema declares the catalog columns: Item labels the rows, Value is
// the per-item objective contribution, Weight is the per-item budget
// consumption. All three are required.
type Schema struct {
	Item   string
	Value  string
	Weight string
}

// Option adjusts how an allocation is solved.
type Option func(*options)

type options struct {
	fractional bool
	solveOpts  []solve.Option
}

// WithFractional relaxes the selection to continuous fractions in
// [0, 1]: items may be taken partially. The default takes items whole.
func WithFractional() Option {
	return func(o *options) { o.fractional = true }
}

// WithSolveOptions forwards solve options (time limit, verbosity,
// backend override, ...) to the engine call.
func WithSolveOptions(opts ...solve.Option) Option {
	return func(o *options) { o.solveOpts = append(o.solveOpts, opts...) }
}

// Result carries the outcome of an allocation solve.
//
// Value, Used, Items and Selected are meaningful only when Status is
// StatusOptimal (or StatusSuboptimal with an incumbent); inspect Status
// before reading them.
type Result struct {
	// Status is the engine's verdict.
	Status solve.Status
	// Value is the total value of the chosen items.
	Value float64
	// Used is the budget consumed by the chosen items.
	Used float64
	// Items lists the chosen item labels in catalog row order. In
	// fractional mode any item with a positive fraction is listed.
	Items []string
	// Selected holds the chosen catalog rows in original order; in
	// fractional mode a "fraction" column is appended.
	Selected *table.Table
	// Runtime is the engine's wall-clock solve duration.
	Runtime time.Duration
}
