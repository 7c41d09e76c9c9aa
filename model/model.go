// This file declares the Instance types, sentinel errors, and validation.
package model

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for model construction and validation.
var (
	// ErrInfeasibleStructure indicates the supplied structural entities
	// cannot support the requested problem shape. Detected before solving.
	ErrInfeasibleStructure = errors.New("model: structure cannot support requested problem")

	// ErrNoVariables indicates an instance with an empty variable set.
	ErrNoVariables = errors.New("model: instance has no variables")

	// ErrEmptyObjective indicates an all-zero objective on an instance
	// that was not marked FeasibilityOnly.
	ErrEmptyObjective = errors.New("model: objective references no variables")

	// ErrBadConstraint indicates a constraint referencing an invalid
	// variable position or carrying mismatched column/coefficient slices.
	ErrBadConstraint = errors.New("model: malformed constraint")

	// ErrBadBound indicates a variable with inverted or NaN bounds.
	ErrBadBound = errors.New("model: malformed variable bound")
)

// Sense is the objective direction.
type Sense uint8

const (
	// Minimize seeks the smallest objective value.
	Minimize Sense = iota

	// Maximize seeks the largest objective value.
	Maximize
)

// Domain is a variable's value domain.
type Domain uint8

const (
	// Continuous variables take any value within their bounds.
	Continuous Domain = iota

	// Integer variables must take integral values.
	Integer

	// Binary variables must take values in {0, 1}.
	Binary
)

// ConstraintSense is the relation of a constraint row.
type ConstraintSense uint8

const (
	// LE is sum(coefs·x) ≤ RHS.
	LE ConstraintSense = iota

	// EQ is sum(coefs·x) = RHS.
	EQ

	// GE is sum(coefs·x) ≥ RHS.
	GE
)

// Variable is one decision variable. Its position in Instance.Vars is its
// canonical index.
type Variable struct {
	// Name is the human-readable role, e.g. "flow[A→B]".
	Name string

	// Domain bounds the variable's values to a domain class.
	Domain Domain

	// Lower and Upper bound the variable. Binary variables are always
	// bounded to [0, 1] regardless of these fields.
	Lower, Upper float64

	// Cost is the objective coefficient.
	Cost float64
}

// Constraint is a linear relation over a subset of variables, tagged with
// the domain key it represents.
type Constraint struct {
	// Tag is the domain key behind the row (node ID, "budget", ...).
	Tag string

	// Cols and Coefs are the sparse row: Coefs[i] multiplies the variable
	// at canonical position Cols[i].
	Cols  []int
	Coefs []float64

	// Sense relates the row to RHS.
	Sense ConstraintSense

	// RHS is the right-hand side.
	RHS float64
}

// Instance is the immutable problem bundle submitted to the engine.
type Instance struct {
	// Sense is the objective direction.
	Sense Sense

	// Vars are the decision variables, addressed by canonical position.
	Vars []Variable

	// Cons are the constraint rows.
	Cons []Constraint

	// Offset is a constant added to the objective value.
	Offset float64

	// FeasibilityOnly permits a trivial (all-zero) objective; only
	// feasibility-style problem families set it.
	FeasibilityOnly bool
}

// AddVar appends a variable and returns its canonical position.
func (in *Instance) AddVar(v Variable) int {
	in.Vars = append(in.Vars, v)

	return len(in.Vars) - 1
}

// AddCon appends a constraint row.
func (in *Instance) AddCon(c Constraint) {
	in.Cons = append(in.Cons, c)
}

// Validate checks the builder guarantees. It returns the first violation:
// ErrNoVariables, ErrBadBound (with the variable name), ErrBadConstraint
// (with the tag and position), or ErrEmptyObjective.
func (in *Instance) Validate() error {
	n := len(in.Vars)
	if n == 0 {
		return ErrNoVariables
	}

	objEmpty := true
	for _, v := range in.Vars {
		lo, up := v.Bounds()
		if math.IsNaN(lo) || math.IsNaN(up) || lo > up {
			return fmt.Errorf("%w: %q has bounds [%v, %v]", ErrBadBound, v.Name, lo, up)
		}
		if math.IsNaN(v.Cost) || math.IsInf(v.Cost, 0) {
			return fmt.Errorf("%w: %q has objective coefficient %v", ErrBadBound, v.Name, v.Cost)
		}
		if v.Cost != 0 {
			objEmpty = false
		}
	}
	if objEmpty && !in.FeasibilityOnly {
		return ErrEmptyObjective
	}

	for _, c := range in.Cons {
		if len(c.Cols) != len(c.Coefs) {
			return fmt.Errorf("%w: %q has %d columns and %d coefficients", ErrBadConstraint, c.Tag, len(c.Cols), len(c.Coefs))
		}
		if len(c.Cols) == 0 {
			return fmt.Errorf("%w: %q references no variables", ErrBadConstraint, c.Tag)
		}
		if math.IsNaN(c.RHS) {
			return fmt.Errorf("%w: %q has NaN right-hand side", ErrBadConstraint, c.Tag)
		}
		for i, col := range c.Cols {
			if col < 0 || col >= n {
				return fmt.Errorf("%w: %q references position %d of %d", ErrBadConstraint, c.Tag, col, n)
			}
			if math.IsNaN(c.Coefs[i]) || math.IsInf(c.Coefs[i], 0) {
				return fmt.Errorf("%w: %q has coefficient %v at position %d", ErrBadConstraint, c.Tag, c.Coefs[i], col)
			}
		}
	}

	return nil
}

// Bounds returns the variable's effective bounds: binary variables are
// clamped to [0, 1]; other domains default to [Lower, Upper] as given
// (an all-zero Variable is a fixed zero, which Validate accepts).
func (v Variable) Bounds() (lo, up float64) {
	if v.Domain == Binary {
		return 0, 1
	}

	return v.Lower, v.Upper
}

// Integral reports whether the variable's domain requires integrality.
func (v Variable) Integral() bool {
	return v.Domain == Integer || v.Domain == Binary
}
