package shortestpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/optimods/canon"
	"github.com/katalvlaran/optimods/core"
	"github.com/katalvlaran/optimods/model"
	"github.com/katalvlaran/optimods/shortestpath"
	"github.com/katalvlaran/optimods/solve"
	"github.com/katalvlaran/optimods/table"
)

// diamond is a→b→d (cost 2) vs a→c→d (cost 5) with a direct a→d (cost 4).
func diamondTable(t *testing.T) *table.Table {
	t.Helper()
	tb := table.New()
	require.NoError(t, tb.AddStrings("src", []string{"a", "b", "a", "c", "a"}))
	require.NoError(t, tb.AddStrings("dst", []string{"b", "d", "c", "d", "d"}))
	require.NoError(t, tb.AddNumbers("cost", []float64{1, 1, 2, 3, 4}))
	return tb
}

func TestSolve_TableIdiom(t *testing.T) {
	in := canon.TableGraph(diamondTable(t), canon.TableSchema{From: "src", To: "dst", Cost: "cost"})

	res, err := shortestpath.Solve(in, "a", "d")
	require.NoError(t, err)
	require.Equal(t, solve.StatusOptimal, res.Status)
	require.InDelta(t, 2.0, res.Cost, 1e-6)
	require.Equal(t, []string{"a", "b", "d"}, res.Path)

	// the selection is the kept rows of the input table
	require.Equal(t, 2, res.Edges.Table.Len())
	src, err := res.Edges.Table.Strings("src")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, src)
}

func TestSolve_DenseIdiom(t *testing.T) {
	// 0→1→2 costs 1+1, direct 0→2 costs 5
	m := mat.NewDense(3, 3, []float64{
		0, 1, 5,
		0, 0, 1,
		0, 0, 0,
	})
	res, err := shortestpath.Solve(canon.DenseGraph(m, nil), "0", "2")
	require.NoError(t, err)
	require.Equal(t, solve.StatusOptimal, res.Status)
	require.InDelta(t, 2.0, res.Cost, 1e-6)
	require.Equal(t, []string{"0", "1", "2"}, res.Path)

	// selection preserves the 3x3 shape with only path arcs set
	require.Equal(t, 1.0, res.Edges.Dense.At(0, 1))
	require.Equal(t, 1.0, res.Edges.Dense.At(1, 2))
	require.Equal(t, 0.0, res.Edges.Dense.At(0, 2))
}

func TestSolve_GraphIdiom(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("s", "m", core.WithCost(2)))
	require.NoError(t, g.AddEdge("m", "t", core.WithCost(2)))
	require.NoError(t, g.AddEdge("s", "t", core.WithCost(7)))

	res, err := shortestpath.Solve(canon.GraphOf(g), "s", "t")
	require.NoError(t, err)
	require.Equal(t, []string{"s", "m", "t"}, res.Path)
	require.InDelta(t, 4.0, res.Cost, 1e-6)
	require.Equal(t, 2, res.Edges.Graph.EdgeCount())
}

func TestSolve_SourceEqualsTarget(t *testing.T) {
	in := canon.TableGraph(diamondTable(t), canon.TableSchema{From: "src", To: "dst", Cost: "cost"})

	res, err := shortestpath.Solve(in, "a", "a")
	require.NoError(t, err)
	require.Equal(t, solve.StatusOptimal, res.Status)
	require.Equal(t, []string{"a"}, res.Path)
	require.Equal(t, 0.0, res.Cost)
	require.Equal(t, 0, res.Edges.Table.Len())
}

func TestSolve_NoPathIsStatusNotError(t *testing.T) {
	// d has no outgoing arcs, so d→a cannot exist
	in := canon.TableGraph(diamondTable(t), canon.TableSchema{From: "src", To: "dst", Cost: "cost"})

	res, err := shortestpath.Solve(in, "d", "a")
	require.NoError(t, err)
	require.Equal(t, solve.StatusInfeasible, res.Status)
	require.Empty(t, res.Path)
}

func TestSolve_ValidationErrors(t *testing.T) {
	in := canon.TableGraph(diamondTable(t), canon.TableSchema{From: "src", To: "dst", Cost: "cost"})

	_, err := shortestpath.Solve(in, "", "d")
	require.ErrorIs(t, err, shortestpath.ErrEmptyEndpoint)

	_, err = shortestpath.Solve(in, "a", "ghost")
	require.ErrorIs(t, err, model.ErrInfeasibleStructure)

	neg := table.New()
	require.NoError(t, neg.AddStrings("u", []string{"a"}))
	require.NoError(t, neg.AddStrings("v", []string{"b"}))
	require.NoError(t, neg.AddNumbers("c", []float64{-1}))
	_, err = shortestpath.Solve(canon.TableGraph(neg, canon.TableSchema{From: "u", To: "v", Cost: "c"}), "a", "b")
	require.ErrorIs(t, err, shortestpath.ErrNegativeCost)
}

// countingBackend records calls without ever solving.
type countingBackend struct{ calls int }

func (c *countingBackend) Solve(_ *model.Instance, _ solve.Config) (*solve.Solution, error) {
	c.calls++
	return &solve.Solution{Status: solve.StatusInfeasible}, nil
}

func TestSolve_StructuralChecksSkipEngine(t *testing.T) {
	in := canon.TableGraph(diamondTable(t), canon.TableSchema{From: "src", To: "dst", Cost: "cost"})
	spy := &countingBackend{}

	// unknown endpoint: rejected before any engine call
	_, err := shortestpath.Solve(in, "a", "ghost", solve.WithBackend(spy))
	require.ErrorIs(t, err, model.ErrInfeasibleStructure)
	require.Zero(t, spy.calls)

	// isolated target: infeasible without an engine call
	res, err := shortestpath.Solve(in, "d", "a", solve.WithBackend(spy))
	require.NoError(t, err)
	require.Equal(t, solve.StatusInfeasible, res.Status)
	require.Zero(t, spy.calls)
}

func TestSolve_BackendOverrideIsUsed(t *testing.T) {
	in := canon.TableGraph(diamondTable(t), canon.TableSchema{From: "src", To: "dst", Cost: "cost"})
	spy := &countingBackend{}

	res, err := shortestpath.Solve(in, "a", "d", solve.WithBackend(spy))
	require.NoError(t, err)
	require.Equal(t, 1, spy.calls)
	require.Equal(t, solve.StatusInfeasible, res.Status)
}
