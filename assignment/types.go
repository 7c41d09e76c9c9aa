package assignment

import (
	"time"

	"github.com/katalvlaran/optimods/canon"
	"github.com/katalvlaran/optimods/solve"
)

// Schema declares the columns of a candidate-pair table. Row and Col are
// the structural sides; Cost is optional (default 0 per pair).
type Schema struct {
	Row  string
	Col  string
	Cost string
}

// pairSchema converts to the canonical encoder's schema.
func (s Schema) pairSchema() canon.PairSchema {
	return canon.PairSchema{Row: s.Row, Col: s.Col, Cost: s.Cost}
}

// Result carries the outcome of an assignment solve.
//
// Cost, Pairs and Selection are meaningful only when Status is
// StatusOptimal (or StatusSuboptimal with an incumbent); inspect Status
// before reading them.
type Result struct {
	// Status is the engine's verdict.
	Status solve.Status
	// Cost is the total cost of the selected pairings.
	Cost float64
	// Pairs lists the selected (row, col) label pairs in pair encoding
	// order.
	Pairs [][2]string
	// Selection holds the pairings rendered in the input's idiom.
	Selection *canon.Selection
	// Runtime is the engine's wall-clock solve duration.
	Runtime time.Duration
}
