// This file implements the mod facade: edge selection per idiom, model
// building, the solve call, and matched-pair extraction.
package matching

import (
	"fmt"

	"github.com/katalvlaran/optimods/canon"
	"github.com/katalvlaran/optimods/model"
	"github.com/katalvlaran/optimods/simplex"
	"github.com/katalvlaran/optimods/solve"
)

// Solve finds a maximum-weight matching of the input's edges.
//
// opts are solve options (time limit, verbosity, backend override, ...).
func Solve(in canon.GraphInput, opts ...solve.Option) (*Result, error) {
	el, err := in.Encode()
	if err != nil {
		return nil, err
	}

	use, err := usableEdges(el)
	if err != nil {
		return nil, err
	}
	if len(use) == 0 {
		// Nothing to match; the empty matching is optimal.
		sel, derr := el.Decode(make([]bool, el.Edges.Len()), nil, "")
		if derr != nil {
			return nil, derr
		}

		return &Result{Status: solve.StatusOptimal, Matching: sel}, nil
	}

	inst := buildInstance(el, use)
	sol, err := solve.Run(simplex.New(), inst, opts...)
	if err != nil {
		return nil, err
	}
	if !sol.HasSolution() {
		return &Result{Status: sol.Status, Runtime: sol.Runtime}, nil
	}

	keep := make([]bool, el.Edges.Len())
	var pairs [][2]string
	for v, pos := range use {
		x, serr := solve.SnapBinary(sol.Value(v))
		if serr != nil {
			return nil, serr
		}
		if x == 1 {
			keep[pos] = true
			fl, lerr := el.NodeLabel(el.From[pos])
			if lerr != nil {
				return nil, lerr
			}
			tl, lerr := el.NodeLabel(el.To[pos])
			if lerr != nil {
				return nil, lerr
			}
			pairs = append(pairs, [2]string{fl, tl})
		}
	}
	sel, err := el.Decode(keep, nil, "")
	if err != nil {
		return nil, err
	}

	return &Result{
		Status:   sol.Status,
		Weight:   sol.Objective,
		Pairs:    pairs,
		Matching: sel,
		Runtime:  sol.Runtime,
	}, nil
}

// usableEdges returns the edge positions that participate in the
// matching: all arcs for table and graph inputs, the strict upper
// triangle for the symmetric matrix idioms. Self-loops are errors.
func usableEdges(el *canon.EdgeList) ([]int, error) {
	symmetric := el.Kind() == canon.KindDense || el.Kind() == canon.KindSparse

	var use []int
	for i := range el.From {
		if el.From[i] == el.To[i] {
			k, _ := el.Edges.Key(i)
			return nil, fmt.Errorf("%w: %s", ErrSelfLoop, k)
		}
		if symmetric && el.From[i] > el.To[i] {
			continue
		}
		use = append(use, i)
	}

	return use, nil
}

// buildInstance formulates the MILP: maximize total weight over binary
// edge indicators, with one degree constraint per touched node (at most
// one incident edge), tagged by node label. A weight-less input is
// matched by cardinality: every edge weighs 1.
func buildInstance(el *canon.EdgeList, use []int) *model.Instance {
	unit := !el.HasCost()
	if !unit {
		unit = true
		for _, pos := range use {
			if el.Cost[pos] != 0 {
				unit = false
				break
			}
		}
	}

	inst := &model.Instance{Sense: model.Maximize}
	for _, pos := range use {
		w := 1.0
		if !unit {
			w = el.Cost[pos]
		}
		k, _ := el.Edges.Key(pos)
		inst.AddVar(model.Variable{
			Name:   fmt.Sprintf("match[%s]", k),
			Domain: model.Binary,
			Cost:   w,
		})
	}

	incident := make(map[int][]int) // node position → variable columns
	for v, pos := range use {
		incident[el.From[pos]] = append(incident[el.From[pos]], v)
		incident[el.To[pos]] = append(incident[el.To[pos]], v)
	}
	for p := 0; p < el.Nodes.Len(); p++ {
		cols := incident[p]
		if len(cols) == 0 {
			continue
		}
		coefs := make([]float64, len(cols))
		for i := range coefs {
			coefs[i] = 1
		}
		k, _ := el.Nodes.Key(p)
		inst.AddCon(model.Constraint{
			Tag:   k.A,
			Cols:  cols,
			Coefs: coefs,
			Sense: model.LE,
			RHS:   1,
		})
	}

	return inst
}
