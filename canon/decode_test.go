package canon_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/optimods/canon"
	"github.com/katalvlaran/optimods/core"
	"github.com/katalvlaran/optimods/matrix"
)

func TestDecode_TableRowSubsetWithValues(t *testing.T) {
	in := canon.TableGraph(edgeTable(t), canon.TableSchema{From: "src", To: "dst", Cost: "cost"})
	el, err := in.Encode()
	require.NoError(t, err)

	sel, err := el.Decode([]bool{true, false, true}, []float64{0.5, 0, 1.5}, "flow")
	require.NoError(t, err)
	require.Equal(t, canon.KindTable, sel.Kind)

	require.Equal(t, 2, sel.Table.Len())
	src, err := sel.Table.Strings("src")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, src)

	// appended value column carries per-kept-row solver values
	flow, err := sel.Table.Numbers("flow")
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 1.5}, flow)
}

func TestDecode_DensePreservesShapeAndLabels(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		0, 1, 4,
		0, 0, 2,
		0, 0, 0,
	})
	el, err := canon.DenseGraph(m, []string{"a", "b", "c"}).Encode()
	require.NoError(t, err)

	// keep only a→b; without values the original cost survives
	sel, err := el.Decode([]bool{true, false, false}, nil, "")
	require.NoError(t, err)

	r, c := sel.Dense.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)
	require.Equal(t, 1.0, sel.Dense.At(0, 1))
	require.Equal(t, 0.0, sel.Dense.At(0, 2))
	require.Equal(t, []string{"a", "b", "c"}, sel.Labels)
}

func TestDecode_AllZeroSelectionKeepsIdentity(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{0, 3, 0, 0})
	el, err := canon.DenseGraph(m, []string{"x", "y"}).Encode()
	require.NoError(t, err)

	sel, err := el.Decode([]bool{false}, nil, "")
	require.NoError(t, err)

	// shape and labels survive even when nothing is selected
	r, c := sel.Dense.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, []string{"x", "y"}, sel.Labels)
}

func TestDecode_SparseSubsetInEntryOrder(t *testing.T) {
	m, err := matrix.NewCOO(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Append(2, 0, 5))
	require.NoError(t, m.Append(0, 1, 7))
	require.NoError(t, m.Append(1, 2, 9))

	el, err := canon.SparseGraph(m, nil).Encode()
	require.NoError(t, err)

	sel, err := el.Decode([]bool{true, false, true}, []float64{2, 0, 4}, "")
	require.NoError(t, err)

	es := sel.Sparse.Entries()
	require.Len(t, es, 2)
	require.Equal(t, matrix.Entry{Row: 2, Col: 0, Val: 2}, es[0])
	require.Equal(t, matrix.Entry{Row: 1, Col: 2, Val: 4}, es[1])
}

func TestDecode_GraphKeepsAllVerticesAndFlows(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("s", core.WithBalance(1)))
	require.NoError(t, g.AddVertex("lonely"))
	require.NoError(t, g.AddEdge("s", "t", core.WithCost(2), core.WithCapacity(10)))
	require.NoError(t, g.AddEdge("t", "u", core.WithCost(3)))

	el, err := canon.GraphOf(g).Encode()
	require.NoError(t, err)

	sel, err := el.Decode([]bool{true, false}, []float64{1, 0}, "flow")
	require.NoError(t, err)

	// every original vertex survives, balances intact
	require.True(t, sel.Graph.HasVertex("lonely"))
	v, err := sel.Graph.Vertex("s")
	require.NoError(t, err)
	require.Equal(t, 1.0, v.Balance)

	require.Equal(t, 1, sel.Graph.EdgeCount())
	e := sel.Graph.Edges()[0]
	require.Equal(t, "s", e.From)
	require.Equal(t, "t", e.To)
	require.Equal(t, 1.0, e.Flow)
	require.Equal(t, 10.0, e.Capacity)
}

func TestDecode_ValueColumnCollision(t *testing.T) {
	el, err := canon.TableGraph(edgeTable(t), canon.TableSchema{From: "src", To: "dst", Cost: "cost"}).Encode()
	require.NoError(t, err)

	// naming the value column after an existing input column is a key
	// collision, not a missing field
	_, err = el.Decode([]bool{true, false, false}, []float64{1, 0, 0}, "cost")
	require.ErrorIs(t, err, canon.ErrDuplicateKey)
}

func TestDecode_MaskShapeChecked(t *testing.T) {
	el, err := canon.TableGraph(edgeTable(t), canon.TableSchema{From: "src", To: "dst"}).Encode()
	require.NoError(t, err)

	_, err = el.Decode([]bool{true}, nil, "")
	require.ErrorIs(t, err, canon.ErrShape)
	_, err = el.Decode([]bool{true, false, true}, []float64{1}, "")
	require.ErrorIs(t, err, canon.ErrShape)
}
