// This file implements the Engine: relaxation assembly, the gonum simplex
// call, and the branch-and-bound search.
package simplex

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/optimods/model"
	"github.com/katalvlaran/optimods/solve"
)

// branchTol is the fractionality threshold below which a relaxation value
// counts as integral during the search. It is intentionally tighter than
// solve.DefaultIntTol so reported values snap cleanly.
const branchTol = 1e-9

// Option configures an Engine.
type Option func(*Engine)

// WithPivotTolerance overrides the simplex pivot tolerance.
// Panics if tol <= 0 (programmer error).
func WithPivotTolerance(tol float64) Option {
	if tol <= 0 {
		panic("simplex: WithPivotTolerance requires tol > 0")
	}

	return func(e *Engine) { e.tol = tol }
}

// Engine is the reference solve.Backend. The zero value is usable; New
// applies options. Stateless and safe for concurrent use.
type Engine struct {
	tol float64 // 0 means gonum's default
}

// New returns an Engine with the given options applied.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Solve implements solve.Backend: one relaxation for pure LPs, a bound-
// branching search when integer variables are present.
//
// cfg.TimeLimit bounds only the branching search. A pure LP runs its
// single simplex call to completion regardless of the limit, since
// gonum's simplex cannot be interrupted mid-pivot.
func (e *Engine) Solve(inst *model.Instance, cfg solve.Config) (*solve.Solution, error) {
	tol := e.tol
	if v, ok := cfg.Param("pivot_tolerance"); ok {
		t, isFloat := v.(float64)
		if !isFloat || t <= 0 {
			return nil, fmt.Errorf("simplex: pivot_tolerance must be a positive float64, got %v", v)
		}
		tol = t
	}

	n := len(inst.Vars)
	lo := make([]float64, n)
	up := make([]float64, n)
	hasInt := false
	for i, v := range inst.Vars {
		lo[i], up[i] = v.Bounds()
		if math.IsInf(lo[i], -1) {
			return nil, fmt.Errorf("simplex: variable %q has no finite lower bound", v.Name)
		}
		if v.Integral() {
			hasInt = true
		}
	}

	if !hasInt {
		st, x, err := e.relax(inst, lo, up, tol)
		if err != nil {
			return nil, err
		}
		sol := &solve.Solution{Status: st}
		if st == solve.StatusOptimal {
			sol.Primal = x
			sol.Objective = objective(inst, x)
		}

		return sol, nil
	}

	return e.branchAndBound(inst, lo, up, tol, cfg)
}

// branchAndBound runs a depth-first search over bound splits of the
// integer variables, keeping the best incumbent. With cfg.MIPGap > 0
// subtrees that cannot beat the incumbent by more than the relative gap
// are pruned, so the final incumbent is optimal within that gap.
func (e *Engine) branchAndBound(inst *model.Instance, lo, up []float64, tol float64, cfg solve.Config) (*solve.Solution, error) {
	log := cfg.Log()
	if cfg.Threads > 1 {
		log.Info("thread count ignored; search is single-threaded", "threads", cfg.Threads)
	}

	var deadline time.Time
	if cfg.TimeLimit > 0 {
		deadline = time.Now().Add(cfg.TimeLimit)
	}

	type node struct{ lo, up []float64 }
	stack := []node{{lo: lo, up: up}}
	var best []float64
	var bestObj float64
	explored := 0

	for len(stack) > 0 {
		if !deadline.IsZero() && time.Now().After(deadline) {
			log.Info("time limit reached", "nodes", explored, "incumbent", best != nil)

			return &solve.Solution{Status: solve.StatusSuboptimal, Objective: bestObj, Primal: best}, nil
		}

		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		explored++

		st, x, err := e.relax(inst, nd.lo, nd.up, tol)
		if err != nil {
			return nil, err
		}
		if st == solve.StatusUnbounded {
			// A subtree relaxation is a restriction of the root's; if it
			// is unbounded, so is the whole program.
			return &solve.Solution{Status: solve.StatusUnbounded}, nil
		}
		if st == solve.StatusInfeasible {
			continue
		}

		obj := objective(inst, x)
		if best != nil && !beatsIncumbent(inst.Sense, obj, bestObj, cfg.MIPGap) {
			continue
		}

		i := mostFractional(inst, x)
		if i < 0 {
			if best == nil || better(inst.Sense, obj, bestObj) {
				best = append([]float64(nil), x...)
				bestObj = obj
				log.Info("incumbent updated", "objective", bestObj, "nodes", explored)
			}

			continue
		}

		// Split the fractional variable's bounds. A child whose bounds
		// cross is dropped here rather than round-tripped through relax.
		floorUp := append([]float64(nil), nd.up...)
		floorUp[i] = math.Floor(x[i])
		if nd.lo[i] <= floorUp[i] {
			stack = append(stack, node{lo: nd.lo, up: floorUp})
		}
		ceilLo := append([]float64(nil), nd.lo...)
		ceilLo[i] = math.Ceil(x[i])
		if ceilLo[i] <= nd.up[i] {
			stack = append(stack, node{lo: ceilLo, up: nd.up})
		}
	}

	if best == nil {
		return &solve.Solution{Status: solve.StatusInfeasible}, nil
	}
	log.Info("search finished", "objective", bestObj, "nodes", explored)

	return &solve.Solution{Status: solve.StatusOptimal, Objective: bestObj, Primal: best}, nil
}

// relax solves the continuous relaxation under the given bounds.
//
// Assembly: variables are shifted by their lower bounds so y = x - lo >= 0;
// every constraint becomes a ≤ row (equalities contribute a ≤/≥ pair, so
// the slack block is a full identity and the standard-form matrix always
// has full row rank); finite upper bounds contribute y_i ≤ up_i - lo_i.
func (e *Engine) relax(inst *model.Instance, lo, up []float64, tol float64) (solve.Status, []float64, error) {
	n := len(inst.Vars)

	sign := 1.0
	if inst.Sense == model.Maximize {
		sign = -1.0
	}

	type row struct {
		coef []float64
		rhs  float64
	}
	var rows []row
	addRow := func(coef []float64, rhs float64) {
		rows = append(rows, row{coef: coef, rhs: rhs})
	}

	for _, con := range inst.Cons {
		coef := make([]float64, n)
		shift := 0.0
		for k, col := range con.Cols {
			coef[col] += con.Coefs[k]
			shift += con.Coefs[k] * lo[col]
		}
		rhs := con.RHS - shift
		switch con.Sense {
		case model.LE:
			addRow(coef, rhs)
		case model.GE:
			addRow(negated(coef), -rhs)
		case model.EQ:
			addRow(coef, rhs)
			addRow(negated(coef), -rhs)
		}
	}
	for i := 0; i < n; i++ {
		if up[i] < lo[i] {
			return solve.StatusInfeasible, nil, nil
		}
		if math.IsInf(up[i], 1) {
			continue
		}
		coef := make([]float64, n)
		coef[i] = 1
		addRow(coef, up[i]-lo[i])
	}

	m := len(rows)
	if m == 0 {
		// No constraints at all: each shifted variable sits at zero
		// unless pushing it up improves the objective forever.
		x := make([]float64, n)
		for i, v := range inst.Vars {
			if sign*v.Cost < 0 {
				return solve.StatusUnbounded, nil, nil
			}
			x[i] = lo[i]
		}

		return solve.StatusOptimal, x, nil
	}

	// Standard form: min c'z s.t. Az = b, z >= 0 with z = [y; slacks].
	cols := n + m
	c := make([]float64, cols)
	for i, v := range inst.Vars {
		c[i] = sign * v.Cost
	}
	a := mat.NewDense(m, cols, nil)
	b := make([]float64, m)
	for k, r := range rows {
		for j, v := range r.coef {
			a.Set(k, j, v)
		}
		a.Set(k, n+k, 1)
		b[k] = r.rhs
	}

	_, z, err := lp.Simplex(c, a, b, tol, nil)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return solve.StatusInfeasible, nil, nil
	case errors.Is(err, lp.ErrUnbounded):
		return solve.StatusUnbounded, nil, nil
	case err != nil:
		return solve.StatusError, nil, fmt.Errorf("simplex: %w", err)
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = z[i] + lo[i]
	}

	return solve.StatusOptimal, x, nil
}

// objective evaluates the instance's objective at x.
func objective(inst *model.Instance, x []float64) float64 {
	total := inst.Offset
	for i, v := range inst.Vars {
		total += v.Cost * x[i]
	}

	return total
}

// mostFractional returns the integer variable farthest from integrality,
// or -1 when all integer variables are integral within branchTol.
func mostFractional(inst *model.Instance, x []float64) int {
	pick, worst := -1, branchTol
	for i, v := range inst.Vars {
		if !v.Integral() {
			continue
		}
		f := math.Abs(x[i] - math.Round(x[i]))
		if f > worst {
			pick, worst = i, f
		}
	}

	return pick
}

// better reports whether a beats b under the objective sense.
func better(sense model.Sense, a, b float64) bool {
	if sense == model.Maximize {
		return a > b
	}

	return a < b
}

// beatsIncumbent reports whether a subtree's relaxation bound can still
// improve the incumbent by more than the relative gap.
func beatsIncumbent(sense model.Sense, bound, incumbent, gap float64) bool {
	margin := gap * math.Abs(incumbent)
	if sense == model.Maximize {
		return bound > incumbent+margin
	}

	return bound < incumbent-margin
}

// negated returns -coef in a fresh slice.
func negated(coef []float64) []float64 {
	out := make([]float64, len(coef))
	for i, v := range coef {
		out[i] = -v
	}

	return out
}
