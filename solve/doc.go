// Package solve is the narrow boundary between the data↔model bridge and
// the external solving engine.
//
// An engine is anything implementing Backend: build-model, solve, report.
// The adapter performs no domain translation — it validates the Instance,
// applies the configuration, triggers exactly one solve attempt, wraps
// engine faults in ErrBackend, and returns a Solution whose Status the
// caller must inspect. An infeasible, unbounded or time-limited outcome is
// data, never an error; only engine faults (the engine itself failing to
// run) are raised. Nothing is retried: a failed mathematical program has
// no meaningful automatic remediation, and transient engine trouble is the
// caller's concern.
//
// Configuration is a per-call value built from functional options —
// there is no process-wide engine handle, so concurrent invocations
// cannot interfere through shared solver state:
//
//	sol, err := solve.Run(simplex.New(), inst,
//	    solve.WithTimeLimit(30*time.Second), // caps wall-clock solve duration
//	    solve.WithMIPGap(0.01),              // relative optimality tolerance
//	    solve.WithVerbose(),                 // engine progress logging (slog)
//	    solve.WithThreads(4),                // engine-internal parallelism
//	    solve.WithParam("pivot_tolerance", 1e-10), // opaque passthrough
//	)
//
// WithBackend swaps in an alternative engine for one call, which is also
// how tests substitute a fake.
//
// # Integrality snapping
//
// Engines report integer-constrained variables as floats with residual
// numerical noise. SnapBinary and SnapInt round to the nearest integer
// within DefaultIntTol (1e-6); a value farther than the tolerance from an
// integer returns ErrIntegrality instead of being silently rounded.
package solve
