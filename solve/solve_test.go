package solve_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optimods/model"
	"github.com/katalvlaran/optimods/solve"
)

// stub is a scripted engine for exercising Run.
type stub struct {
	sol   *solve.Solution
	err   error
	calls int
	cfg   solve.Config
}

func (s *stub) Solve(_ *model.Instance, cfg solve.Config) (*solve.Solution, error) {
	s.calls++
	s.cfg = cfg
	return s.sol, s.err
}

func feasible() *model.Instance {
	inst := &model.Instance{Sense: model.Minimize}
	inst.AddVar(model.Variable{Name: "x", Upper: 1, Cost: 1})
	return inst
}

func TestRun_HappyPath(t *testing.T) {
	be := &stub{sol: &solve.Solution{Status: solve.StatusOptimal, Objective: 3, Primal: []float64{1}}}

	sol, err := solve.Run(be, feasible())
	require.NoError(t, err)
	require.Equal(t, 1, be.calls)
	require.True(t, sol.IsOptimal())
	require.True(t, sol.HasSolution())
	require.Equal(t, 3.0, sol.Objective)
	require.GreaterOrEqual(t, sol.Runtime, time.Duration(0))
}

func TestRun_ValidationSkipsEngine(t *testing.T) {
	be := &stub{}
	_, err := solve.Run(be, &model.Instance{})
	require.ErrorIs(t, err, model.ErrNoVariables)
	require.Zero(t, be.calls)
}

func TestRun_WrapsEngineFault(t *testing.T) {
	be := &stub{err: errors.New("out of memory")}
	_, err := solve.Run(be, feasible())
	require.ErrorIs(t, err, solve.ErrBackend)

	be = &stub{} // returns nil solution, nil error
	_, err = solve.Run(be, feasible())
	require.ErrorIs(t, err, solve.ErrBackend)
}

func TestRun_NilBackend(t *testing.T) {
	_, err := solve.Run(nil, feasible())
	require.ErrorIs(t, err, solve.ErrNilBackend)
}

func TestRun_BackendOverride(t *testing.T) {
	def := &stub{sol: &solve.Solution{Status: solve.StatusOptimal, Primal: []float64{0}}}
	spy := &stub{sol: &solve.Solution{Status: solve.StatusOptimal, Primal: []float64{1}}}

	sol, err := solve.Run(def, feasible(), solve.WithBackend(spy))
	require.NoError(t, err)
	require.Zero(t, def.calls)
	require.Equal(t, 1, spy.calls)
	require.Equal(t, 1.0, sol.Value(0))
}

func TestRun_StripsValuesOnNoSolution(t *testing.T) {
	be := &stub{sol: &solve.Solution{Status: solve.StatusInfeasible, Primal: []float64{9}, Dual: map[string]float64{"r": 1}}}

	sol, err := solve.Run(be, feasible())
	require.NoError(t, err)
	require.Equal(t, solve.StatusInfeasible, sol.Status)
	require.Empty(t, sol.Primal)
	require.Empty(t, sol.Dual)
	require.False(t, sol.HasSolution())
}

func TestRun_ConfigReachesEngine(t *testing.T) {
	be := &stub{sol: &solve.Solution{Status: solve.StatusOptimal, Primal: []float64{0}}}

	_, err := solve.Run(be, feasible(),
		solve.WithTimeLimit(time.Second),
		solve.WithMIPGap(0.01),
		solve.WithThreads(2),
		solve.WithParam("pivot_tolerance", 1e-8),
	)
	require.NoError(t, err)
	require.Equal(t, time.Second, be.cfg.TimeLimit)
	require.Equal(t, 0.01, be.cfg.MIPGap)
	require.Equal(t, 2, be.cfg.Threads)
	v, ok := be.cfg.Param("pivot_tolerance")
	require.True(t, ok)
	require.Equal(t, 1e-8, v)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { solve.WithTimeLimit(-time.Second) })
	require.Panics(t, func() { solve.WithMIPGap(-0.5) })
	require.Panics(t, func() { solve.WithThreads(0) })
}

func TestSnapInt(t *testing.T) {
	v, err := solve.SnapInt(0.999999998)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	v, err = solve.SnapInt(3.0000000001)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	_, err = solve.SnapInt(0.5)
	require.ErrorIs(t, err, solve.ErrIntegrality)
}

func TestSnapBinary(t *testing.T) {
	x, err := solve.SnapBinary(1.0000000004)
	require.NoError(t, err)
	require.Equal(t, 1, x)

	x, err = solve.SnapBinary(-0.0000000002)
	require.NoError(t, err)
	require.Equal(t, 0, x)

	_, err = solve.SnapBinary(2)
	require.ErrorIs(t, err, solve.ErrIntegrality)
	_, err = solve.SnapBinary(0.4)
	require.ErrorIs(t, err, solve.ErrIntegrality)
}

func TestSolution_Value(t *testing.T) {
	sol := &solve.Solution{Primal: []float64{7}}
	require.Equal(t, 7.0, sol.Value(0))
	require.Equal(t, 0.0, sol.Value(1))
	require.Equal(t, 0.0, sol.Value(-1))
}
