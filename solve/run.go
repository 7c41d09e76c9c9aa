// This file implements Run, the single solve attempt with status
// normalization and engine-fault wrapping.
package solve

import (
	"fmt"
	"time"

	"github.com/katalvlaran/optimods/model"
)

// Run validates the instance, picks the engine (cfg override first, the
// supplied default otherwise), performs exactly one solve attempt, and
// normalizes the outcome.
//
// Errors: instance validation errors as-is; every engine fault wrapped in
// ErrBackend. Non-optimal solve outcomes are NOT errors — they come back
// as the Solution's Status with primal values stripped for infeasible and
// unbounded outcomes.
func Run(def Backend, inst *model.Instance, opts ...Option) (*Solution, error) {
	cfg := NewConfig(opts...)
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	be := def
	if cfg.Backend != nil {
		be = cfg.Backend
	}
	if be == nil {
		return nil, ErrNilBackend
	}

	cfg.Log().Info("submitting instance",
		"variables", len(inst.Vars),
		"constraints", len(inst.Cons),
	)

	start := time.Now()
	sol, err := be.Solve(inst, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackend, err)
	}
	if sol == nil {
		return nil, fmt.Errorf("%w: engine returned no solution", ErrBackend)
	}
	sol.Runtime = time.Since(start)

	// Infeasible/unbounded outcomes carry no values; never fabricate them.
	if sol.Status == StatusInfeasible || sol.Status == StatusUnbounded {
		sol.Primal = nil
		sol.Dual = nil
	}

	cfg.Log().Info("solve finished",
		"status", sol.Status.String(),
		"objective", sol.Objective,
		"runtime", sol.Runtime,
	)

	return sol, nil
}
