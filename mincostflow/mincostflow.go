// This file implements the mod facade: validation, balance resolution,
// model building, the solve call, and flow extraction.
package mincostflow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/optimods/canon"
	"github.com/katalvlaran/optimods/model"
	"github.com/katalvlaran/optimods/simplex"
	"github.com/katalvlaran/optimods/solve"
)

// balanceTol bounds the acceptable drift of the balance sum from zero.
const balanceTol = 1e-9

// flowTol separates arcs carrying flow from numerically-zero ones.
const flowTol = 1e-9

// Solve routes the node balances through the network at minimum cost.
//
// balances overrides (or, for non-graph idioms, supplies) per-node
// balances; every key must name a node of the input
// (model.ErrInfeasibleStructure otherwise). Nodes absent from both the
// input's own balances and the map are transshipment nodes. The
// effective balances must sum to zero (ErrUnbalanced).
//
// opts are solve options (time limit, verbosity, backend override, ...).
func Solve(in canon.GraphInput, balances map[string]float64, opts ...solve.Option) (*Result, error) {
	el, err := in.Encode()
	if err != nil {
		return nil, err
	}
	// The decoded table gets a "flow" column appended; an input that
	// already carries one must be rejected before solving, not after.
	if el.HasColumn("flow") {
		return nil, ErrReservedColumn
	}
	for i, cp := range el.Cap {
		if cp < 0 {
			k, _ := el.Edges.Key(i)
			return nil, fmt.Errorf("%w: arc %s has capacity %v", ErrNegativeCapacity, k, cp)
		}
	}

	b, err := effectiveBalances(el, balances)
	if err != nil {
		return nil, err
	}

	// A node with a balance to route but no arcs to route it through
	// cannot be satisfied; report infeasibility without an engine call.
	touched := make([]bool, el.Nodes.Len())
	for i := range el.From {
		touched[el.From[i]] = true
		touched[el.To[i]] = true
	}
	for p, bal := range b {
		if bal != 0 && !touched[p] {
			return &Result{Status: solve.StatusInfeasible}, nil
		}
	}

	inst := buildInstance(el, b)
	sol, err := solve.Run(simplex.New(), inst, opts...)
	if err != nil {
		return nil, err
	}
	if !sol.HasSolution() {
		return &Result{Status: sol.Status, Runtime: sol.Runtime}, nil
	}

	nE := el.Edges.Len()
	flows := make([]float64, nE)
	keep := make([]bool, nE)
	byArc := make(map[string]float64)
	for i := 0; i < nE; i++ {
		f := sol.Value(i)
		flows[i] = f
		if f > flowTol {
			keep[i] = true
			k, _ := el.Edges.Key(i)
			byArc[k.String()] = f
		}
	}
	sel, err := el.Decode(keep, flows, "flow")
	if err != nil {
		return nil, err
	}

	return &Result{
		Status:    sol.Status,
		Cost:      sol.Objective,
		Flows:     sel,
		FlowByArc: byArc,
		Duals:     sol.Dual,
		Runtime:   sol.Runtime,
	}, nil
}

// effectiveBalances merges the input's own balances with the override
// map and verifies the zero-sum invariant.
func effectiveBalances(el *canon.EdgeList, balances map[string]float64) ([]float64, error) {
	b := make([]float64, el.Nodes.Len())
	copy(b, el.Balance)
	for label, v := range balances {
		p, ok := el.Nodes.Pos(canon.NodeKey(label))
		if !ok {
			return nil, fmt.Errorf("%w: balance for unknown node %q", model.ErrInfeasibleStructure, label)
		}
		b[p] = v
	}

	sum := 0.0
	for _, v := range b {
		sum += v
	}
	if math.Abs(sum) > balanceTol {
		return nil, fmt.Errorf("%w: sum is %v", ErrUnbalanced, sum)
	}

	return b, nil
}

// buildInstance formulates the LP: minimize total cost over arc flow
// variables in [0, capacity], with conservation (out − in) fixed to the
// node balance, tagged by node label.
func buildInstance(el *canon.EdgeList, b []float64) *model.Instance {
	inst := &model.Instance{Sense: model.Minimize, FeasibilityOnly: true}

	nE := el.Edges.Len()
	for i := 0; i < nE; i++ {
		k, _ := el.Edges.Key(i)
		inst.AddVar(model.Variable{
			Name:   fmt.Sprintf("flow[%s]", k),
			Domain: model.Continuous,
			Lower:  0,
			Upper:  el.Cap[i],
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
			continue // isolated zero-balance node, conservation is vacuous
		}
		k, _ := el.Nodes.Key(p)
		inst.AddCon(model.Constraint{
			Tag:   k.A,
			Cols:  cols,
			Coefs: coefs,
			Sense: model.EQ,
			RHS:   b[p],
		})
	}

	return inst
}
