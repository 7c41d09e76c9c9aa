// This file implements the GraphInput tagged variant and the per-idiom
// entity encoders producing an EdgeList.
package canon

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/optimods/core"
	"github.com/katalvlaran/optimods/matrix"
	"github.com/katalvlaran/optimods/table"
)

// TableSchema declares which columns of an edge-list table are structural
// and which supply data. From and To are required; Cost and Capacity are
// optional column names — leave them empty to use the documented defaults
// (Cost 0, Capacity +Inf) for every arc.
type TableSchema struct {
	From     string
	To       string
	Cost     string
	Capacity string
}

// GraphInput is the closed tagged variant over the supported graph-shaped
// container idioms. Construct it with TableGraph, DenseGraph, SparseGraph
// or GraphOf; the zero value is no input at all.
type GraphInput struct {
	kind   Kind
	tbl    *table.Table
	schema TableSchema
	dense  *mat.Dense
	sparse *matrix.COO
	labels []string
	graph  *core.Graph
}

// TableGraph wraps an edge-list relation. Each row is one arc.
func TableGraph(t *table.Table, s TableSchema) GraphInput {
	return GraphInput{kind: KindTable, tbl: t, schema: s}
}

// DenseGraph wraps a square dense adjacency matrix: a nonzero entry (i,j)
// is an arc i→j with cost equal to the entry. labels may be nil, in which
// case node i is labeled strconv.Itoa(i).
func DenseGraph(m *mat.Dense, labels []string) GraphInput {
	return GraphInput{kind: KindDense, dense: m, labels: labels}
}

// SparseGraph wraps a square COO adjacency matrix: every stored entry —
// including explicit zeros — is an arc with cost equal to the entry value.
// Label rules are the same as DenseGraph's.
func SparseGraph(m *matrix.COO, labels []string) GraphInput {
	return GraphInput{kind: KindSparse, sparse: m, labels: labels}
}

// GraphOf wraps a core.Graph arc network.
func GraphOf(g *core.Graph) GraphInput {
	return GraphInput{kind: KindGraph, graph: g}
}

// Kind returns the input's idiom tag (KindNone for the zero value).
func (in GraphInput) Kind() Kind { return in.kind }

// EdgeList is the canonical encoded form of a graph-shaped input: the
// entity sets as Index values, and per-arc data addressed by canonical
// position. It also retains the side information needed to decode a
// Selection back into the original idiom.
type EdgeList struct {
	// Nodes indexes node keys; Edges indexes ordered arc keys.
	Nodes *Index
	Edges *Index

	// From and To hold, per arc position, the endpoint node positions.
	From []int
	To   []int

	// Cost and Cap hold, per arc position, the data-valued fields.
	// Defaults when absent from the input: Cost 0, Cap +Inf.
	Cost []float64
	Cap  []float64

	// Balance holds, per node position, the node's supply/demand.
	// Default 0; only the graph idiom can carry balances.
	Balance []float64

	kind    Kind
	hasCost bool

	// decode side-table
	tbl    *table.Table
	labels []string // node label per node position
	dim    int      // adjacency dimension for dense/sparse
}

// Kind returns the idiom the list was encoded from.
func (el *EdgeList) Kind() Kind { return el.kind }

// HasCost reports whether the input carried explicit cost data
// (a declared cost column, or matrix entry values).
func (el *EdgeList) HasCost() bool { return el.hasCost }

// HasColumn reports whether a table input already carries a column of
// the given name. Always false for the other idioms. Mods use it to
// reject inputs that collide with the value column Decode appends.
func (el *EdgeList) HasColumn(name string) bool {
	return el.tbl != nil && el.tbl.HasColumn(name)
}

// NodeLabel returns the original label behind a node position.
func (el *EdgeList) NodeLabel(pos int) (string, error) {
	k, err := el.Nodes.Key(pos)
	if err != nil {
		return "", err
	}

	return k.A, nil
}

// Encode maps the container into its canonical EdgeList.
// See the package documentation for position-assignment order per idiom.
func (in GraphInput) Encode() (*EdgeList, error) {
	switch in.kind {
	case KindTable:
		return encodeTable(in.tbl, in.schema)
	case KindDense:
		return encodeDense(in.dense, in.labels)
	case KindSparse:
		return encodeSparse(in.sparse, in.labels)
	case KindGraph:
		return encodeGraph(in.graph)
	default:
		return nil, fmt.Errorf("%w: no input container", ErrEmpty)
	}
}

// encodeTable builds an EdgeList from an edge-list relation.
// Arc positions follow row order; node positions follow first appearance.
func encodeTable(t *table.Table, s TableSchema) (*EdgeList, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil table", ErrEmpty)
	}
	if s.From == "" || s.To == "" {
		return nil, fmt.Errorf("%w: structural columns From/To not declared", ErrSchema)
	}
	from, err := t.Strings(s.From)
	if err != nil {
		return nil, fmt.Errorf("%w: structural column %q", ErrSchema, s.From)
	}
	to, err := t.Strings(s.To)
	if err != nil {
		return nil, fmt.Errorf("%w: structural column %q", ErrSchema, s.To)
	}
	if t.Len() == 0 {
		return nil, fmt.Errorf("%w: table has no rows", ErrEmpty)
	}

	n := t.Len()
	cost := make([]float64, n) // default 0
	hasCost := false
	if s.Cost != "" {
		if cost, err = t.Numbers(s.Cost); err != nil {
			return nil, fmt.Errorf("%w: cost column %q", ErrSchema, s.Cost)
		}
		hasCost = true
	}
	capacity := make([]float64, n)
	for i := range capacity {
		capacity[i] = math.Inf(1) // default +Inf
	}
	if s.Capacity != "" {
		if capacity, err = t.Numbers(s.Capacity); err != nil {
			return nil, fmt.Errorf("%w: capacity column %q", ErrSchema, s.Capacity)
		}
	}

	el := &EdgeList{
		Nodes:   NewIndex(),
		Edges:   NewIndex(),
		kind:    KindTable,
		hasCost: hasCost,
		tbl:     t,
	}
	for i := 0; i < n; i++ {
		if from[i] == "" || to[i] == "" {
			return nil, fmt.Errorf("%w: empty label in row %d", ErrSchema, i)
		}
		if err = checkCost(cost[i]); err != nil {
			return nil, fmt.Errorf("%w (row %d, column %q)", err, i, s.Cost)
		}
		if err = checkCapacity(capacity[i]); err != nil {
			return nil, fmt.Errorf("%w (row %d, column %q)", err, i, s.Capacity)
		}
		if _, err = el.Edges.Add(EdgeKey(from[i], to[i])); err != nil {
			return nil, fmt.Errorf("%w (row %d)", err, i)
		}
		el.From = append(el.From, el.Nodes.Ensure(NodeKey(from[i])))
		el.To = append(el.To, el.Nodes.Ensure(NodeKey(to[i])))
	}
	el.Cost = cost
	el.Cap = capacity
	el.Balance = make([]float64, el.Nodes.Len())

	return el, nil
}

// encodeDense builds an EdgeList from a square dense adjacency. Every node
// gets a position (isolated ones included, so labels round-trip); arcs are
// the nonzero entries in row-major order.
func encodeDense(m *mat.Dense, labels []string) (*EdgeList, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil dense matrix", ErrEmpty)
	}
	r, c := m.Dims()
	labels, el, err := adjacencyHeader(r, c, labels, KindDense)
	if err != nil {
		return nil, err
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if v == 0 {
				continue
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: entry (%d,%d)", ErrBadValue, i, j)
			}
			if err = el.appendArc(labels, i, j, v); err != nil {
				return nil, err
			}
		}
	}
	if el.Edges.Len() == 0 {
		return nil, fmt.Errorf("%w: adjacency has no nonzero entries", ErrEmpty)
	}

	return el, nil
}

// encodeSparse builds an EdgeList from a square COO adjacency. Arc
// positions follow entry insertion order; a repeated coordinate is an
// ambiguous structural duplicate.
func encodeSparse(m *matrix.COO, labels []string) (*EdgeList, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil sparse matrix", ErrEmpty)
	}
	r, c := m.Dims()
	labels, el, err := adjacencyHeader(r, c, labels, KindSparse)
	if err != nil {
		return nil, err
	}

	entries := m.Entries()
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: sparse adjacency has no entries", ErrEmpty)
	}
	for _, e := range entries {
		if err = el.appendArc(labels, e.Row, e.Col, e.Val); err != nil {
			return nil, err
		}
	}

	return el, nil
}

// adjacencyHeader validates shape and labels shared by the two adjacency
// idioms and pre-registers every node position.
func adjacencyHeader(r, c int, labels []string, kind Kind) ([]string, *EdgeList, error) {
	if r == 0 || c == 0 {
		return nil, nil, fmt.Errorf("%w: %dx%d adjacency", ErrEmpty, r, c)
	}
	if r != c {
		return nil, nil, fmt.Errorf("%w: adjacency must be square, got %dx%d", ErrShape, r, c)
	}
	if labels == nil {
		labels = make([]string, r)
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
	}
	if len(labels) != r {
		return nil, nil, fmt.Errorf("%w: %d labels for %d nodes", ErrShape, len(labels), r)
	}

	el := &EdgeList{
		Nodes:   NewIndex(),
		Edges:   NewIndex(),
		kind:    kind,
		hasCost: true,
		labels:  labels,
		dim:     r,
	}
	for i, lb := range labels {
		if lb == "" {
			return nil, nil, fmt.Errorf("%w: empty label at position %d", ErrSchema, i)
		}
		if _, err := el.Nodes.Add(NodeKey(lb)); err != nil {
			return nil, nil, err
		}
	}
	el.Balance = make([]float64, r)

	return labels, el, nil
}

// appendArc registers one adjacency entry as an arc.
func (el *EdgeList) appendArc(labels []string, i, j int, v float64) error {
	if _, err := el.Edges.Add(EdgeKey(labels[i], labels[j])); err != nil {
		return fmt.Errorf("%w (entry %d,%d)", err, i, j)
	}
	el.From = append(el.From, i)
	el.To = append(el.To, j)
	el.Cost = append(el.Cost, v)
	el.Cap = append(el.Cap, math.Inf(1))

	return nil
}

// encodeGraph builds an EdgeList from a core.Graph. Node positions follow
// sorted vertex IDs; arc positions follow insertion order.
func encodeGraph(g *core.Graph) (*EdgeList, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrEmpty)
	}
	if g.EdgeCount() == 0 {
		return nil, fmt.Errorf("%w: graph has no arcs", ErrEmpty)
	}

	el := &EdgeList{
		Nodes:   NewIndex(),
		Edges:   NewIndex(),
		kind:    KindGraph,
		hasCost: true,
	}
	for _, id := range g.Vertices() {
		if _, err := el.Nodes.Add(NodeKey(id)); err != nil {
			return nil, err
		}
		v, err := g.Vertex(id)
		if err != nil {
			return nil, err
		}
		el.Balance = append(el.Balance, v.Balance)
	}
	for _, e := range g.Edges() {
		if err := checkCost(e.Cost); err != nil {
			return nil, fmt.Errorf("%w (arc %s→%s)", err, e.From, e.To)
		}
		if err := checkCapacity(e.Capacity); err != nil {
			return nil, fmt.Errorf("%w (arc %s→%s)", err, e.From, e.To)
		}
		if _, err := el.Edges.Add(EdgeKey(e.From, e.To)); err != nil {
			return nil, err
		}
		fp, _ := el.Nodes.Pos(NodeKey(e.From))
		tp, _ := el.Nodes.Pos(NodeKey(e.To))
		el.From = append(el.From, fp)
		el.To = append(el.To, tp)
		el.Cost = append(el.Cost, e.Cost)
		el.Cap = append(el.Cap, e.Capacity)
	}

	return el, nil
}

// checkCost enforces the finite-cost policy: NaN and ±Inf are rejected.
func checkCost(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: cost %v", ErrBadValue, v)
	}

	return nil
}

// checkCapacity enforces the capacity policy: +Inf means uncapped and is
// legal; NaN and -Inf are not.
func checkCapacity(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, -1) {
		return fmt.Errorf("%w: capacity %v", ErrBadValue, v)
	}

	return nil
}
