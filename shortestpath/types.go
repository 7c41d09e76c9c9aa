// This file declares the mod's Result and sentinel errors.
package shortestpath

import (
	"errors"
	"time"

	"github.com/katalvlaran/optimods/canon"
	"github.com/katalvlaran/optimods/solve"
)

// Sentinel errors of the shortest-path mod.
var (
	// ErrEmptyEndpoint indicates an empty source or target label.
	ErrEmptyEndpoint = errors.New("shortestpath: source or target is empty")

	// ErrNegativeCost indicates a negative arc cost, which the unit-flow
	// formulation does not support.
	ErrNegativeCost = errors.New("shortestpath: negative arc cost")

	// ErrNotAPath indicates the engine's selected arcs did not form a
	// single source→target path; it marks an engine inconsistency, not
	// bad input.
	ErrNotAPath = errors.New("shortestpath: selected arcs do not form a path")
)

// Result is the mod's output. Inspect Status before reading values: an
// unreachable target yields solve.StatusInfeasible with Path and Edges
// empty — never placeholder values.
type Result struct {
	// Status is the solve outcome.
	Status solve.Status

	// Cost is the total cost of the path (objective value).
	Cost float64

	// Path is the node labels from source to target, in order.
	Path []string

	// Edges carries the path's arcs in the input idiom.
	Edges *canon.Selection

	// Runtime is the engine's wall-clock solve duration.
	Runtime time.Duration
}
