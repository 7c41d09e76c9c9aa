package mincostflow

import (
	"errors"
	"time"

	"github.com/katalvlaran/optimods/canon"
	"github.com/katalvlaran/optimods/solve"
)

var (
	// ErrUnbalanced - node balances do not sum to zero.
	ErrUnbalanced = errors.New("mincostflow: balances must sum to zero")
	// ErrNegativeCapacity - an arc carries a capacity below zero.
	ErrNegativeCapacity = errors.New("mincostflow: negative arc capacity")
	// ErrReservedColumn - a table input already carries the result
	// column name.
	ErrReservedColumn = errors.New(`mincostflow: input column "flow" is reserved for the result`)
)

// Result carries the outcome of a min-cost flow solve.
//
// Cost, Flows and FlowByArc are meaningful only when Status is
// StatusOptimal (or StatusSuboptimal with an incumbent); inspect Status
// before reading them.
type Result struct {
	// Status is the engine's verdict on the network.
	Status solve.Status
	// Cost is the total cost of the flow.
	Cost float64
	// Flows holds the arcs carrying positive flow, rendered in the
	// input's idiom with per-arc flow values attached.
	Flows *canon.Selection
	// FlowByArc maps "from→to" arc keys to their flow, positive arcs only.
	FlowByArc map[string]float64
	// Duals maps node labels to their potentials when the engine
	// reports duals; nil otherwise.
	Duals map[string]float64
	// Runtime is the engine's wall-clock solve duration.
	Runtime time.Duration
}
