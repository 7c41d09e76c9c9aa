// This file implements the canonical form of the bipartite family
// (assignment): PairList and its encoders/decoder. It differs from the
// adjacency encoders in one crucial way: in a cost matrix every entry,
// including zero, is a valid pair.
package canon

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/optimods/table"
)

// PairSchema declares the columns of a tabular pair list: Row and Col are
// the structural sides (e.g. worker and task); Cost is optional — leave it
// empty and every listed pair costs the documented default 0.
type PairSchema struct {
	Row  string
	Col  string
	Cost string
}

// PairList is the canonical encoded form of a bipartite input: an Index
// per side, an Index of (row, col) pair keys addressing the variables,
// and the per-pair cost.
type PairList struct {
	// Rows and Cols index the two structural sides.
	Rows *Index
	Cols *Index

	// Pairs indexes the ordered (row, col) keys; its positions are the
	// canonical variable positions.
	Pairs *Index

	// RowOf and ColOf hold, per pair position, the side positions.
	RowOf []int
	ColOf []int

	// Cost holds the per-pair cost (default 0 without a cost column).
	Cost []float64

	kind Kind

	// decode side-table
	tbl     *table.Table
	rLabels []string
	cLabels []string
}

// Kind returns the idiom the list was encoded from.
func (pl *PairList) Kind() Kind { return pl.kind }

// EncodeDensePairs builds a PairList from a rows×cols cost matrix: every
// entry is a pair. rows/cols label the sides; nil generates "0", "1", ...
// per side. Pair positions follow row-major scan order.
func EncodeDensePairs(cost *mat.Dense, rows, cols []string) (*PairList, error) {
	if cost == nil {
		return nil, fmt.Errorf("%w: nil cost matrix", ErrEmpty)
	}
	r, c := cost.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%w: %dx%d cost matrix", ErrEmpty, r, c)
	}
	var err error
	if rows, err = sideLabels(rows, r, "row"); err != nil {
		return nil, err
	}
	if cols, err = sideLabels(cols, c, "col"); err != nil {
		return nil, err
	}

	pl := &PairList{
		Rows:    NewIndex(),
		Cols:    NewIndex(),
		Pairs:   NewIndex(),
		kind:    KindDense,
		rLabels: rows,
		cLabels: cols,
	}
	for _, lb := range rows {
		if _, err = pl.Rows.Add(NodeKey(lb)); err != nil {
			return nil, err
		}
	}
	for _, lb := range cols {
		if _, err = pl.Cols.Add(NodeKey(lb)); err != nil {
			return nil, err
		}
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := cost.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: cost at (%d,%d)", ErrBadValue, i, j)
			}
			if _, err = pl.Pairs.Add(EdgeKey(rows[i], cols[j])); err != nil {
				return nil, err
			}
			pl.RowOf = append(pl.RowOf, i)
			pl.ColOf = append(pl.ColOf, j)
			pl.Cost = append(pl.Cost, v)
		}
	}

	return pl, nil
}

// EncodeTablePairs builds a PairList from a relation of candidate pairs:
// each row is one allowed (row, col) combination. Pairs absent from the
// table are disallowed. Pair positions follow row order; side positions
// follow first appearance.
func EncodeTablePairs(t *table.Table, s PairSchema) (*PairList, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil table", ErrEmpty)
	}
	if s.Row == "" || s.Col == "" {
		return nil, fmt.Errorf("%w: structural columns Row/Col not declared", ErrSchema)
	}
	rows, err := t.Strings(s.Row)
	if err != nil {
		return nil, fmt.Errorf("%w: structural column %q", ErrSchema, s.Row)
	}
	cols, err := t.Strings(s.Col)
	if err != nil {
		return nil, fmt.Errorf("%w: structural column %q", ErrSchema, s.Col)
	}
	if t.Len() == 0 {
		return nil, fmt.Errorf("%w: table has no rows", ErrEmpty)
	}

	cost := make([]float64, t.Len()) // default 0
	if s.Cost != "" {
		if cost, err = t.Numbers(s.Cost); err != nil {
			return nil, fmt.Errorf("%w: cost column %q", ErrSchema, s.Cost)
		}
	}

	pl := &PairList{
		Rows:  NewIndex(),
		Cols:  NewIndex(),
		Pairs: NewIndex(),
		kind:  KindTable,
		tbl:   t,
	}
	for i := 0; i < t.Len(); i++ {
		if rows[i] == "" || cols[i] == "" {
			return nil, fmt.Errorf("%w: empty label in row %d", ErrSchema, i)
		}
		if err = checkCost(cost[i]); err != nil {
			return nil, fmt.Errorf("%w (row %d, column %q)", err, i, s.Cost)
		}
		if _, err = pl.Pairs.Add(EdgeKey(rows[i], cols[i])); err != nil {
			return nil, fmt.Errorf("%w (row %d)", err, i)
		}
		pl.RowOf = append(pl.RowOf, pl.Rows.Ensure(NodeKey(rows[i])))
		pl.ColOf = append(pl.ColOf, pl.Cols.Ensure(NodeKey(cols[i])))
	}
	pl.Cost = cost

	return pl, nil
}

// Decode maps a per-pair keep mask back into the input idiom: a 0/1
// indicator matrix of the original shape for dense input, or the kept
// rows in original order for tabular input.
func (pl *PairList) Decode(keep []bool) (*Selection, error) {
	if len(keep) != pl.Pairs.Len() {
		return nil, fmt.Errorf("%w: keep mask has %d entries for %d pairs", ErrShape, len(keep), pl.Pairs.Len())
	}

	sel := &Selection{
		Kind:      pl.kind,
		RowLabels: sideKeys(pl.Rows),
		ColLabels: sideKeys(pl.Cols),
	}
	switch pl.kind {
	case KindDense:
		out := mat.NewDense(pl.Rows.Len(), pl.Cols.Len(), nil)
		for i, k := range keep {
			if k {
				out.Set(pl.RowOf[i], pl.ColOf[i], 1)
			}
		}
		sel.Dense = out
	case KindTable:
		sub, err := pl.tbl.Filter(keep)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrShape, err)
		}
		sel.Table = sub
	default:
		return nil, fmt.Errorf("%w: cannot decode kind %s", ErrShape, pl.kind)
	}

	return sel, nil
}

// sideLabels validates or generates labels for one side of a pair matrix.
func sideLabels(labels []string, n int, side string) ([]string, error) {
	if labels == nil {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
	}
	if len(labels) != n {
		return nil, fmt.Errorf("%w: %d %s labels for dimension %d", ErrShape, len(labels), side, n)
	}
	for i, lb := range labels {
		if lb == "" {
			return nil, fmt.Errorf("%w: empty %s label at position %d", ErrSchema, side, i)
		}
	}

	return labels, nil
}

// sideKeys flattens one side's index into its label list.
func sideKeys(ix *Index) []string {
	out := make([]string, ix.Len())
	for p, k := range ix.Keys() {
		out[p] = k.A
	}

	return out
}
