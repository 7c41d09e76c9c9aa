// This file implements the mod facade: catalog validation, model
// building, the solve call, and selection extraction.
package allocation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/optimods/canon"
	"github.com/katalvlaran/optimods/model"
	"github.com/katalvlaran/optimods/simplex"
	"github.com/katalvlaran/optimods/solve"
	"github.com/katalvlaran/optimods/table"
)

// fracTol separates chosen fractions from numerically-zero ones.
const fracTol = 1e-9

// Solve chooses catalog items maximizing total value within the budget.
func Solve(items *table.Table, s Schema, capacity float64, opts ...Option) (*Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if math.IsNaN(capacity) || math.IsInf(capacity, 0) || capacity < 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadCapacity, capacity)
	}
	labels, values, weights, err := readCatalog(items, s)
	if err != nil {
		return nil, err
	}
	// Fractional results append a "fraction" column; a catalog that
	// already carries one must be rejected before solving, not after.
	if o.fractional && items.HasColumn("fraction") {
		return nil, ErrReservedColumn
	}

	inst := buildInstance(labels, values, weights, capacity, o.fractional)
	sol, err := solve.Run(simplex.New(), inst, o.solveOpts...)
	if err != nil {
		return nil, err
	}
	if !sol.HasSolution() {
		return &Result{Status: sol.Status, Runtime: sol.Runtime}, nil
	}

	n := len(labels)
	keep := make([]bool, n)
	fractions := make([]float64, 0, n)
	res := &Result{Status: sol.Status, Value: sol.Objective, Runtime: sol.Runtime}
	for i := 0; i < n; i++ {
		x := sol.Value(i)
		if !o.fractional {
			r, serr := solve.SnapInt(x)
			if serr != nil {
				return nil, serr
			}
			x = r
		}
		if x > fracTol {
			keep[i] = true
			fractions = append(fractions, x)
			res.Items = append(res.Items, labels[i])
			res.Used += x * weights[i]
		}
	}

	sub, err := items.Filter(keep)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", canon.ErrShape, err)
	}
	if o.fractional {
		if err = sub.AddNumbers("fraction", fractions); err != nil {
			return nil, fmt.Errorf("%w: fraction column: %v", canon.ErrSchema, err)
		}
	}
	res.Selected = sub

	return res, nil
}

// readCatalog validates the schema and pulls the three columns. Item
// labels must be unique and non-empty; values and weights finite;
// weights non-negative.
func readCatalog(t *table.Table, s Schema) ([]string, []float64, []float64, error) {
	if t == nil {
		return nil, nil, nil, fmt.Errorf("%w: nil catalog", canon.ErrEmpty)
	}
	if s.Item == "" || s.Value == "" || s.Weight == "" {
		return nil, nil, nil, fmt.Errorf("%w: columns Item/Value/Weight not declared", canon.ErrSchema)
	}
	labels, err := t.Strings(s.Item)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: item column %q", canon.ErrSchema, s.Item)
	}
	values, err := t.Numbers(s.Value)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: value column %q", canon.ErrSchema, s.Value)
	}
	weights, err := t.Numbers(s.Weight)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: weight column %q", canon.ErrSchema, s.Weight)
	}
	if t.Len() == 0 {
		return nil, nil, nil, fmt.Errorf("%w: catalog has no rows", canon.ErrEmpty)
	}

	seen := canon.NewIndex()
	for i, lb := range labels {
		if lb == "" {
			return nil, nil, nil, fmt.Errorf("%w: empty item label in row %d", canon.ErrSchema, i)
		}
		if _, err = seen.Add(canon.NodeKey(lb)); err != nil {
			return nil, nil, nil, fmt.Errorf("%w (row %d)", err, i)
		}
		if math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
			return nil, nil, nil, fmt.Errorf("%w: value in row %d", canon.ErrBadValue, i)
		}
		if math.IsNaN(weights[i]) || math.IsInf(weights[i], 0) {
			return nil, nil, nil, fmt.Errorf("%w: weight in row %d", canon.ErrBadValue, i)
		}
		if weights[i] < 0 {
			return nil, nil, nil, fmt.Errorf("%w: item %q weighs %v", ErrNegativeWeight, lb, weights[i])
		}
	}

	return labels, values, weights, nil
}

// buildInstance formulates the knapsack: maximize total value over item
// indicators (binary, or continuous in [0,1] when fractional) subject to
// the single budget row tagged "budget".
func buildInstance(labels []string, values, weights []float64, capacity float64, fractional bool) *model.Instance {
	inst := &model.Instance{Sense: model.Maximize}

	domain := model.Binary
	if fractional {
		domain = model.Continuous
	}
	cols := make([]int, len(labels))
	for i, lb := range labels {
		inst.AddVar(model.Variable{
			Name:   fmt.Sprintf("take[%s]", lb),
			Domain: domain,
			Lower:  0,
			Upper:  1,
			Cost:   values[i],
		})
		cols[i] = i
	}
	inst.AddCon(model.Constraint{
		Tag:   "budget",
		Cols:  cols,
		Coefs: append([]float64(nil), weights...),
		Sense: model.LE,
		RHS:   capacity,
	})

	return inst
}
