// This file declares the domain Key, the container Kind tag, and the
// package's sentinel errors.
package canon

import "errors"

// Sentinel errors for encoding and decoding.
var (
	// ErrSchema indicates a required structural or data column/attribute
	// is absent from the input container.
	ErrSchema = errors.New("canon: required field missing")

	// ErrShape indicates container dimensions inconsistent with the
	// declared structural roles (non-square adjacency, label count
	// mismatch, wrong mask length).
	ErrShape = errors.New("canon: container shape mismatch")

	// ErrDuplicateKey indicates two structural entities map to the same
	// domain key, which would make the canonical index ambiguous.
	ErrDuplicateKey = errors.New("canon: duplicate structural key")

	// ErrEmpty indicates a required structural dimension is empty,
	// or the container itself is nil.
	ErrEmpty = errors.New("canon: empty structural input")

	// ErrBadValue indicates a non-finite coefficient where a finite one
	// is required (NaN anywhere; -Inf costs; NaN/-Inf capacities).
	ErrBadValue = errors.New("canon: non-finite numeric value")

	// ErrBadPosition indicates a canonical position outside the index.
	ErrBadPosition = errors.New("canon: canonical position out of range")
)

// Key is a domain key: the original label (or label pair) behind one
// canonical position. Unary keys (nodes, items) use A only; binary keys
// (arcs, assignment pairs) use A and B.
type Key struct {
	A string
	B string
}

// NodeKey builds a unary key from a single label.
func NodeKey(id string) Key { return Key{A: id} }

// EdgeKey builds a binary key from an ordered label pair.
func EdgeKey(from, to string) Key { return Key{A: from, B: to} }

// String renders "A" for unary keys and "A→B" for binary keys.
func (k Key) String() string {
	if k.B == "" {
		return k.A
	}

	return k.A + "→" + k.B
}

// Kind tags the container idiom of an input (and of its decoded result).
type Kind uint8

const (
	// KindNone is the zero Kind; it marks an unconstructed input.
	KindNone Kind = iota

	// KindTable is an edge-list relation with named columns.
	KindTable

	// KindDense is a square dense adjacency matrix.
	KindDense

	// KindSparse is a square sparse (COO) adjacency matrix.
	KindSparse

	// KindGraph is a core.Graph arc network.
	KindGraph
)

// String returns the idiom name.
func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindDense:
		return "dense"
	case KindSparse:
		return "sparse"
	case KindGraph:
		return "graph"
	default:
		return "none"
	}
}
