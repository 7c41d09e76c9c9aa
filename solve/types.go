// This file declares Status, Solution, Backend, sentinel errors, and the
// integrality snapping helpers.
package solve

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/optimods/model"
)

// Sentinel errors of the solver adapter.
var (
	// ErrBackend wraps a fault of the engine itself (resource exhaustion,
	// internal failure, unusable model for that engine). Raised once,
	// never retried.
	ErrBackend = errors.New("solve: solver backend failure")

	// ErrNilBackend indicates Run was given no engine at all.
	ErrNilBackend = errors.New("solve: nil backend")

	// ErrIntegrality indicates an integer-constrained value farther than
	// the snapping tolerance from any integer.
	ErrIntegrality = errors.New("solve: value outside integrality tolerance")
)

// DefaultIntTol is the documented tolerance for snapping integer and
// binary solver output to discrete values.
const DefaultIntTol = 1e-6

// Status is the normalized solve outcome. It is data on the Solution,
// never an error.
type Status uint8

const (
	// StatusError marks a Solution that should not exist; Run returns an
	// error instead of a Solution in every fault path.
	StatusError Status = iota

	// StatusOptimal: proven optimal solution found. Under a configured
	// MIPGap the proof is relative: the solution is optimal within that
	// gap.
	StatusOptimal

	// StatusInfeasible: no feasible point exists. No primal values.
	StatusInfeasible

	// StatusUnbounded: the objective is unbounded. No primal values.
	StatusUnbounded

	// StatusSuboptimal: the time limit expired; Primal holds the best
	// incumbent when one was found, and is empty otherwise.
	StatusSuboptimal
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusSuboptimal:
		return "suboptimal"
	default:
		return "error"
	}
}

// Solution is the engine's raw output: status, objective, primal values
// per canonical position, and optional duals per constraint tag.
type Solution struct {
	// Status is the normalized outcome. Inspect it before reading values.
	Status Status

	// Objective is the objective value; meaningless unless HasSolution.
	Objective float64

	// Primal holds one value per canonical variable position.
	// Empty for infeasible/unbounded outcomes — never fabricated.
	Primal []float64

	// Dual maps constraint tags to dual values, when the engine provides
	// them (nil otherwise).
	Dual map[string]float64

	// Runtime is the wall-clock duration of the solve call.
	Runtime time.Duration
}

// IsOptimal reports whether the solution is proven optimal.
func (s *Solution) IsOptimal() bool { return s.Status == StatusOptimal }

// HasSolution reports whether Primal carries usable values.
func (s *Solution) HasSolution() bool {
	return s.Status == StatusOptimal || (s.Status == StatusSuboptimal && len(s.Primal) > 0)
}

// Value returns the primal value at a canonical position, 0 when out of
// range.
func (s *Solution) Value(pos int) float64 {
	if pos < 0 || pos >= len(s.Primal) {
		return 0
	}

	return s.Primal[pos]
}

// Backend is the external solving engine: one build-solve-report call.
// Implementations must be safe for use from concurrent invocations or
// document otherwise; the reference simplex engine is stateless.
type Backend interface {
	Solve(inst *model.Instance, cfg Config) (*Solution, error)
}

// SnapInt rounds an integer-constrained solver value to the nearest
// integer within DefaultIntTol. Values farther away return ErrIntegrality.
func SnapInt(v float64) (float64, error) {
	r := math.Round(v)
	if math.Abs(v-r) > DefaultIntTol {
		return 0, fmt.Errorf("%w: %v", ErrIntegrality, v)
	}

	return r, nil
}

// SnapBinary snaps a binary indicator to 0 or 1 within DefaultIntTol.
func SnapBinary(v float64) (int, error) {
	r, err := SnapInt(v)
	if err != nil {
		return 0, err
	}
	if r != 0 && r != 1 {
		return 0, fmt.Errorf("%w: %v is not a 0/1 indicator", ErrIntegrality, v)
	}

	return int(r), nil
}
