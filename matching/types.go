package matching

import (
	"errors"
	"time"

	"github.com/katalvlaran/optimods/canon"
	"github.com/katalvlaran/optimods/solve"
)

// ErrSelfLoop - the input carries an edge from a node to itself.
var ErrSelfLoop = errors.New("matching: self-loop edge")

// Result carries the outcome of a matching solve.
//
// Weight, Pairs and Matching are meaningful only when Status is
// StatusOptimal (or StatusSuboptimal with an incumbent); inspect Status
// before reading them.
type Result struct {
	// Status is the engine's verdict.
	Status solve.Status
	// Weight is the total weight of the matching (its cardinality when
	// the input carried no weights).
	Weight float64
	// Pairs lists the matched node label pairs in edge encoding order.
	Pairs [][2]string
	// Matching holds the matched edges rendered in the input's idiom.
	Matching *canon.Selection
	// Runtime is the engine's wall-clock solve duration.
	Runtime time.Duration
}
