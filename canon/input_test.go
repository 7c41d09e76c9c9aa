package canon_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/optimods/canon"
	"github.com/katalvlaran/optimods/core"
	"github.com/katalvlaran/optimods/matrix"
	"github.com/katalvlaran/optimods/table"
)

func edgeTable(t *testing.T) *table.Table {
	t.Helper()
	tb := table.New()
	require.NoError(t, tb.AddStrings("src", []string{"a", "a", "b"}))
	require.NoError(t, tb.AddStrings("dst", []string{"b", "c", "c"}))
	require.NoError(t, tb.AddNumbers("cost", []float64{1, 4, 2}))
	return tb
}

func TestEncodeTable_RowOrderAndFirstSeenNodes(t *testing.T) {
	in := canon.TableGraph(edgeTable(t), canon.TableSchema{From: "src", To: "dst", Cost: "cost"})
	el, err := in.Encode()
	require.NoError(t, err)

	// arcs in row order
	require.Equal(t, 3, el.Edges.Len())
	k, err := el.Edges.Key(0)
	require.NoError(t, err)
	require.Equal(t, canon.EdgeKey("a", "b"), k)

	// nodes in first-appearance order: a, b, c
	p, ok := el.Nodes.Pos(canon.NodeKey("c"))
	require.True(t, ok)
	require.Equal(t, 2, p)

	require.Equal(t, []float64{1, 4, 2}, el.Cost)
	require.True(t, el.HasCost())
	// no capacity column: uncapped arcs
	require.True(t, math.IsInf(el.Cap[0], 1))
}

func TestEncodeTable_Defaults(t *testing.T) {
	tb := table.New()
	require.NoError(t, tb.AddStrings("u", []string{"x"}))
	require.NoError(t, tb.AddStrings("v", []string{"y"}))

	el, err := canon.TableGraph(tb, canon.TableSchema{From: "u", To: "v"}).Encode()
	require.NoError(t, err)
	require.False(t, el.HasCost())
	require.Equal(t, []float64{0}, el.Cost)
}

func TestEncodeTable_Errors(t *testing.T) {
	tb := edgeTable(t)

	_, err := canon.TableGraph(tb, canon.TableSchema{From: "src"}).Encode()
	require.ErrorIs(t, err, canon.ErrSchema)

	_, err = canon.TableGraph(tb, canon.TableSchema{From: "src", To: "nope"}).Encode()
	require.ErrorIs(t, err, canon.ErrSchema)

	// duplicate arc in two rows
	dup := table.New()
	require.NoError(t, dup.AddStrings("u", []string{"a", "a"}))
	require.NoError(t, dup.AddStrings("v", []string{"b", "b"}))
	_, err = canon.TableGraph(dup, canon.TableSchema{From: "u", To: "v"}).Encode()
	require.ErrorIs(t, err, canon.ErrDuplicateKey)

	// NaN cost
	bad := table.New()
	require.NoError(t, bad.AddStrings("u", []string{"a"}))
	require.NoError(t, bad.AddStrings("v", []string{"b"}))
	require.NoError(t, bad.AddNumbers("c", []float64{math.NaN()}))
	_, err = canon.TableGraph(bad, canon.TableSchema{From: "u", To: "v", Cost: "c"}).Encode()
	require.ErrorIs(t, err, canon.ErrBadValue)
}

func TestEncodeDense_NonzeroArcsRowMajor(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		0, 1, 4,
		0, 0, 2,
		0, 0, 0,
	})
	el, err := canon.DenseGraph(m, []string{"a", "b", "c"}).Encode()
	require.NoError(t, err)

	require.Equal(t, canon.KindDense, el.Kind())
	// all nodes registered even if isolated as arc endpoints only
	require.Equal(t, 3, el.Nodes.Len())
	require.Equal(t, 3, el.Edges.Len())

	k, err := el.Edges.Key(1)
	require.NoError(t, err)
	require.Equal(t, canon.EdgeKey("a", "c"), k)
	require.Equal(t, []float64{1, 4, 2}, el.Cost)
}

func TestEncodeDense_GeneratedLabels(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{0, 7, 0, 0})
	el, err := canon.DenseGraph(m, nil).Encode()
	require.NoError(t, err)

	lb, err := el.NodeLabel(1)
	require.NoError(t, err)
	require.Equal(t, "1", lb)
}

func TestEncodeDense_Errors(t *testing.T) {
	_, err := canon.DenseGraph(mat.NewDense(2, 3, nil), nil).Encode()
	require.ErrorIs(t, err, canon.ErrShape)

	_, err = canon.DenseGraph(mat.NewDense(2, 2, nil), nil).Encode()
	require.ErrorIs(t, err, canon.ErrEmpty)

	_, err = canon.DenseGraph(mat.NewDense(2, 2, []float64{0, 1, 0, 0}), []string{"only"}).Encode()
	require.ErrorIs(t, err, canon.ErrShape)
}

func TestEncodeSparse_EntryOrderAndExplicitZeros(t *testing.T) {
	m, err := matrix.NewCOO(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Append(2, 0, 5))
	require.NoError(t, m.Append(0, 1, 0)) // explicit zero is still an arc

	el, err := canon.SparseGraph(m, nil).Encode()
	require.NoError(t, err)
	require.Equal(t, 2, el.Edges.Len())

	k, err := el.Edges.Key(0)
	require.NoError(t, err)
	require.Equal(t, canon.EdgeKey("2", "0"), k)
	require.Equal(t, []float64{5, 0}, el.Cost)
}

func TestEncodeSparse_DuplicateCoordinate(t *testing.T) {
	m, err := matrix.NewCOO(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Append(0, 1, 1))
	require.NoError(t, m.Append(0, 1, 2))

	_, err = canon.SparseGraph(m, nil).Encode()
	require.ErrorIs(t, err, canon.ErrDuplicateKey)
}

func TestEncodeGraph_SortedNodesInsertionArcs(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("z", core.WithBalance(-2)))
	require.NoError(t, g.AddEdge("z", "a", core.WithCost(3)))
	require.NoError(t, g.AddEdge("a", "m", core.WithCost(1), core.WithCapacity(9)))

	el, err := canon.GraphOf(g).Encode()
	require.NoError(t, err)

	// node positions follow sorted IDs: a, m, z
	p, ok := el.Nodes.Pos(canon.NodeKey("z"))
	require.True(t, ok)
	require.Equal(t, 2, p)
	require.Equal(t, -2.0, el.Balance[2])

	// arc positions follow insertion order
	k, err := el.Edges.Key(0)
	require.NoError(t, err)
	require.Equal(t, canon.EdgeKey("z", "a"), k)
	require.Equal(t, 9.0, el.Cap[1])
}

func TestEncode_EmptyInputs(t *testing.T) {
	_, err := canon.GraphOf(core.NewGraph()).Encode()
	require.ErrorIs(t, err, canon.ErrEmpty)

	var zero canon.GraphInput
	require.Equal(t, canon.KindNone, zero.Kind())
	_, err = zero.Encode()
	require.ErrorIs(t, err, canon.ErrEmpty)
}
