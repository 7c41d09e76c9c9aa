// This file implements the mod facade for both assignment idioms:
// structural validation, model building, the solve call, and pair
// extraction.
package assignment

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/optimods/canon"
	"github.com/katalvlaran/optimods/model"
	"github.com/katalvlaran/optimods/simplex"
	"github.com/katalvlaran/optimods/solve"
	"github.com/katalvlaran/optimods/table"
)

// Solve finds the minimum-cost assignment for a dense cost matrix. Every
// entry prices an allowed pairing; rows/cols label the sides (nil
// generates "0", "1", ... per side).
//
// opts are solve options (time limit, verbosity, backend override, ...).
func Solve(cost *mat.Dense, rows, cols []string, opts ...solve.Option) (*Result, error) {
	pl, err := canon.EncodeDensePairs(cost, rows, cols)
	if err != nil {
		return nil, err
	}

	return run(pl, opts)
}

// SolveTable finds the minimum-cost assignment over a relation of
// candidate pairs; combinations absent from the table are disallowed.
//
// opts are solve options (time limit, verbosity, backend override, ...).
func SolveTable(t *table.Table, s Schema, opts ...solve.Option) (*Result, error) {
	pl, err := canon.EncodeTablePairs(t, s.pairSchema())
	if err != nil {
		return nil, err
	}

	return run(pl, opts)
}

// run validates the encoded pair structure, solves, and decodes.
func run(pl *canon.PairList, opts []solve.Option) (*Result, error) {
	if err := checkStructure(pl); err != nil {
		return nil, err
	}

	inst := buildInstance(pl)
	sol, err := solve.Run(simplex.New(), inst, opts...)
	if err != nil {
		return nil, err
	}
	if !sol.HasSolution() {
		return &Result{Status: sol.Status, Runtime: sol.Runtime}, nil
	}

	nP := pl.Pairs.Len()
	keep := make([]bool, nP)
	var pairs [][2]string
	for i := 0; i < nP; i++ {
		x, serr := solve.SnapBinary(sol.Value(i))
		if serr != nil {
			return nil, serr
		}
		if x == 1 {
			keep[i] = true
			k, kerr := pl.Pairs.Key(i)
			if kerr != nil {
				return nil, kerr
			}
			pairs = append(pairs, [2]string{k.A, k.B})
		}
	}
	sel, err := pl.Decode(keep)
	if err != nil {
		return nil, err
	}

	return &Result{
		Status:    sol.Status,
		Cost:      sol.Objective,
		Pairs:     pairs,
		Selection: sel,
		Runtime:   sol.Runtime,
	}, nil
}

// checkStructure rejects inputs that cannot carry a perfect assignment.
// Every entity is named by at least one pair (that is how entities come
// to exist), so the only structural defect is unequal side cardinality.
// Checked before any engine call.
func checkStructure(pl *canon.PairList) error {
	if pl.Rows.Len() != pl.Cols.Len() {
		return fmt.Errorf("%w: %d row entities vs %d col entities",
			model.ErrInfeasibleStructure, pl.Rows.Len(), pl.Cols.Len())
	}

	return nil
}

// buildInstance formulates the MILP: minimize total cost over binary
// pair indicators, with one equality per side entity (exactly one
// selected pair), tagged by entity label.
func buildInstance(pl *canon.PairList) *model.Instance {
	inst := &model.Instance{Sense: model.Minimize, FeasibilityOnly: true}

	nP := pl.Pairs.Len()
	for i := 0; i < nP; i++ {
		k, _ := pl.Pairs.Key(i)
		inst.AddVar(model.Variable{
			Name:   fmt.Sprintf("assign[%s]", k),
			Domain: model.Binary,
			Cost:   pl.Cost[i],
		})
	}

	byRow := make([][]int, pl.Rows.Len())
	byCol := make([][]int, pl.Cols.Len())
	for i := 0; i < nP; i++ {
		byRow[pl.RowOf[i]] = append(byRow[pl.RowOf[i]], i)
		byCol[pl.ColOf[i]] = append(byCol[pl.ColOf[i]], i)
	}
	addRows := func(ix *canon.Index, groups [][]int) {
		for p, cols := range groups {
			coefs := make([]float64, len(cols))
			for i := range coefs {
				coefs[i] = 1
			}
			k, _ := ix.Key(p)
			inst.AddCon(model.Constraint{
				Tag:   k.A,
				Cols:  cols,
				Coefs: coefs,
				Sense: model.EQ,
				RHS:   1,
			})
		}
	}
	addRows(pl.Rows, byRow)
	addRows(pl.Cols, byCol)

	return inst
}
