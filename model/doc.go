// Package model defines the Problem Instance: the complete variable,
// constraint and objective specification handed to a solving engine.
//
// An Instance is built fresh by a mod's model builder from the canonical
// entities and never mutated after being handed to the solver adapter.
// A variable's slice position IS its canonical index, so a solver's primal
// vector aligns with the entity encoder's index space by construction.
// Every constraint carries a Tag — the domain key it represents (e.g.
// conservation at a node, a budget row) — so dual or slack values can be
// re-attached to that key after the solve.
//
// Numeric semantics: coefficients are carried exactly as provided, with no
// unit conversion or rounding. Integer and binary domains appear only
// where a problem family mathematically requires integrality (assignment
// and selection indicators); continuous is the default.
//
// Validate checks the guarantees every builder must uphold: each
// constraint references only valid variable positions, all coefficients
// and bounds are usable, and the objective touches at least one variable
// unless the instance is explicitly marked FeasibilityOnly.
//
// ErrInfeasibleStructure is the sentinel for a requested problem shape the
// supplied structure cannot support (an absent endpoint, unbalanced
// bipartition, a side with no candidates). Builders detect it and return
// it before any solver work happens.
package model
