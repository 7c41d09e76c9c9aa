// This file implements the result decoder: Selection and the Decode
// methods that map solver output back into the original container idiom.
package canon

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/optimods/core"
	"github.com/katalvlaran/optimods/matrix"
	"github.com/katalvlaran/optimods/table"
)

// Selection is a solver result rendered in the idiom of the input it was
// encoded from. Exactly the field matching Kind is set.
type Selection struct {
	// Kind mirrors the input idiom.
	Kind Kind

	// Table holds the kept input rows in original order (KindTable).
	// When a value name was supplied to Decode, an extra numeric column
	// with the per-row solver values is appended.
	Table *table.Table

	// Dense is a matrix of the original shape with kept entries set and
	// everything else zero (KindDense).
	Dense *mat.Dense

	// Sparse holds the kept subset of the original entries in their
	// original order (KindSparse).
	Sparse *matrix.COO

	// Graph carries every original vertex (with its balance) and the kept
	// arcs; each kept arc's Flow field holds its solver value (KindGraph).
	Graph *core.Graph

	// Labels are the node labels in canonical position order.
	Labels []string

	// RowLabels and ColLabels are set only for selections decoded from a
	// PairList (bipartite family).
	RowLabels []string
	ColLabels []string
}

// Decode maps per-arc solver output back into the input idiom.
//
// keep must have one entry per arc position. values may be nil (pure
// selection: matrix idioms carry the original cost at kept positions) or
// one value per arc (flow-like results: kept positions carry the value).
// valueName, when non-empty, names the numeric column appended to a table
// selection; it must not collide with an input column.
//
// Label correspondence is exact: output row i / entry (u,v) corresponds to
// precisely the domain key that produced the arc's canonical position.
func (el *EdgeList) Decode(keep []bool, values []float64, valueName string) (*Selection, error) {
	nE := el.Edges.Len()
	if len(keep) != nE {
		return nil, fmt.Errorf("%w: keep mask has %d entries for %d arcs", ErrShape, len(keep), nE)
	}
	if values != nil && len(values) != nE {
		return nil, fmt.Errorf("%w: %d values for %d arcs", ErrShape, len(values), nE)
	}

	sel := &Selection{Kind: el.kind, Labels: el.nodeLabels()}
	// value at arc i when kept: explicit solver value, else the input cost
	at := func(i int) float64 {
		if values != nil {
			return values[i]
		}

		return el.Cost[i]
	}

	switch el.kind {
	case KindTable:
		sub, err := el.tbl.Filter(keep)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrShape, err)
		}
		if valueName != "" && values != nil {
			kept := make([]float64, 0, sub.Len())
			for i, k := range keep {
				if k {
					kept = append(kept, values[i])
				}
			}
			if err = sub.AddNumbers(valueName, kept); err != nil {
				return nil, fmt.Errorf("%w: value column %q collides with an input column", ErrDuplicateKey, valueName)
			}
		}
		sel.Table = sub
	case KindDense:
		out := mat.NewDense(el.dim, el.dim, nil)
		for i := range keep {
			if keep[i] {
				out.Set(el.From[i], el.To[i], at(i))
			}
		}
		sel.Dense = out
	case KindSparse:
		out, err := matrix.NewCOO(el.dim, el.dim)
		if err != nil {
			return nil, err
		}
		for i := range keep {
			if !keep[i] {
				continue
			}
			if err = out.Append(el.From[i], el.To[i], at(i)); err != nil {
				return nil, err
			}
		}
		sel.Sparse = out
	case KindGraph:
		out := core.NewGraph(core.WithLoops())
		for p, lb := range sel.Labels {
			if err := out.AddVertex(lb, core.WithBalance(el.Balance[p])); err != nil {
				return nil, err
			}
		}
		for i := range keep {
			if !keep[i] {
				continue
			}
			var flow float64
			if values != nil {
				flow = values[i]
			}
			fk, _ := el.Nodes.Key(el.From[i])
			tk, _ := el.Nodes.Key(el.To[i])
			if err := out.AddResultEdge(fk.A, tk.A, el.Cost[i], el.Cap[i], flow); err != nil {
				return nil, err
			}
		}
		sel.Graph = out
	default:
		return nil, fmt.Errorf("%w: cannot decode kind %s", ErrShape, el.kind)
	}

	return sel, nil
}

// nodeLabels returns the original label per node position.
func (el *EdgeList) nodeLabels() []string {
	out := make([]string, el.Nodes.Len())
	for p, k := range el.Nodes.Keys() {
		out[p] = k.A
	}

	return out
}
