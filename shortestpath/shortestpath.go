// This file implements the mod facade: validation, model building, the
// solve call, and path reconstruction.
package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/optimods/canon"
	"github.com/katalvlaran/optimods/model"
	"github.com/katalvlaran/optimods/simplex"
	"github.com/katalvlaran/optimods/solve"
)

// Solve finds the minimum-cost path from source to target.
//
// Validation (in order):
//  1. source and target must be non-empty (ErrEmptyEndpoint).
//  2. the input must encode (canon sentinel errors).
//  3. arc costs must be non-negative (ErrNegativeCost).
//  4. both endpoints must exist in the encoded node set
//     (model.ErrInfeasibleStructure) — checked before any engine call.
//
// opts are solve options (time limit, verbosity, backend override, ...).
func Solve(in canon.GraphInput, source, target string, opts ...solve.Option) (*Result, error) {
	if source == "" || target == "" {
		return nil, ErrEmptyEndpoint
	}

	el, err := in.Encode()
	if err != nil {
		return nil, err
	}
	for i, c := range el.Cost {
		if c < 0 {
			k, _ := el.Edges.Key(i)
			return nil, fmt.Errorf("%w: arc %s has cost %v", ErrNegativeCost, k, c)
		}
	}

	srcPos, ok := el.Nodes.Pos(canon.NodeKey(source))
	if !ok {
		return nil, fmt.Errorf("%w: source node %q not in input", model.ErrInfeasibleStructure, source)
	}
	dstPos, ok := el.Nodes.Pos(canon.NodeKey(target))
	if !ok {
		return nil, fmt.Errorf("%w: target node %q not in input", model.ErrInfeasibleStructure, target)
	}

	if source == target {
		// Trivial path; nothing to solve.
		sel, derr := el.Decode(make([]bool, el.Edges.Len()), nil, "")
		if derr != nil {
			return nil, derr
		}

		return &Result{Status: solve.StatusOptimal, Path: []string{source}, Edges: sel}, nil
	}

	// A source without outgoing arcs (or target without incoming) cannot
	// carry the unit, and its conservation row would be vacuous; report
	// the no-path outcome directly.
	hasOut, hasIn := false, false
	for i := range el.From {
		hasOut = hasOut || el.From[i] == srcPos
		hasIn = hasIn || el.To[i] == dstPos
	}
	if !hasOut || !hasIn {
		return &Result{Status: solve.StatusInfeasible}, nil
	}

	inst := buildInstance(el, srcPos, dstPos)
	sol, err := solve.Run(simplex.New(), inst, opts...)
	if err != nil {
		return nil, err
	}
	if !sol.HasSolution() {
		return &Result{Status: sol.Status, Runtime: sol.Runtime}, nil
	}

	path, keep, err := walkPath(el, sol, srcPos, dstPos)
	if err != nil {
		return nil, err
	}
	sel, err := el.Decode(keep, nil, "")
	if err != nil {
		return nil, err
	}

	return &Result{
		Status:  sol.Status,
		Cost:    sol.Objective,
		Path:    path,
		Edges:   sel,
		Runtime: sol.Runtime,
	}, nil
}

// buildInstance formulates the unit-flow LP: minimize cost over arc flow
// variables in [0,1], with conservation (out − in) fixed to +1 at the
// source, −1 at the target and 0 elsewhere, tagged by node label.
func buildInstance(el *canon.EdgeList, srcPos, dstPos int) *model.Instance {
	inst := &model.Instance{Sense: model.Minimize, FeasibilityOnly: true}

	nE := el.Edges.Len()
	for i := 0; i < nE; i++ {
		k, _ := el.Edges.Key(i)
		inst.AddVar(model.Variable{
			Name:   fmt.Sprintf("flow[%s]", k),
			Domain: model.Continuous,
			Lower:  0,
			Upper:  1,
			Cost:   el.Cost[i],
		})
	}

	nN := el.Nodes.Len()
	outArcs := make([][]int, nN)
	inArcs := make([][]int, nN)
	for i := 0; i < nE; i++ {
		outArcs[el.From[i]] = append(outArcs[el.From[i]], i)
		inArcs[el.To[i]] = append(inArcs[el.To[i]], i)
	}
	for p := 0; p < nN; p++ {
		cols := make([]int, 0, len(outArcs[p])+len(inArcs[p]))
		coefs := make([]float64, 0, cap(cols))
		for _, i := range outArcs[p] {
			cols = append(cols, i)
			coefs = append(coefs, 1)
		}
		for _, i := range inArcs[p] {
			cols = append(cols, i)
			coefs = append(coefs, -1)
		}
		if len(cols) == 0 {
			continue // isolated node, conservation is vacuous
		}
		rhs := 0.0
		if p == srcPos {
			rhs = 1
		} else if p == dstPos {
			rhs = -1
		}
		k, _ := el.Nodes.Key(p)
		inst.AddCon(model.Constraint{
			Tag:   k.A,
			Cols:  cols,
			Coefs: coefs,
			Sense: model.EQ,
			RHS:   rhs,
		})
	}

	return inst
}

// walkPath orders the engine's selected arcs into the source→target node
// sequence and builds the per-arc keep mask.
func walkPath(el *canon.EdgeList, sol *solve.Solution, srcPos, dstPos int) ([]string, []bool, error) {
	nE := el.Edges.Len()
	next := make(map[int]int) // node position → selected outgoing arc
	for i := 0; i < nE; i++ {
		if sol.Value(i) > 0.5 {
			next[el.From[i]] = i
		}
	}

	keep := make([]bool, nE)
	var path []string
	visited := make(map[int]bool)
	at := srcPos
	for {
		lb, err := el.NodeLabel(at)
		if err != nil {
			return nil, nil, err
		}
		path = append(path, lb)
		if at == dstPos {
			return path, keep, nil
		}
		if visited[at] {
			return nil, nil, fmt.Errorf("%w: cycle at node %q", ErrNotAPath, lb)
		}
		visited[at] = true
		arc, ok := next[at]
		if !ok {
			return nil, nil, fmt.Errorf("%w: dead end at node %q", ErrNotAPath, lb)
		}
		keep[arc] = true
		at = el.To[arc]
	}
}
