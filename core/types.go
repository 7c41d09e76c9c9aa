// This file declares Vertex, Edge, Graph, their options, sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second arc between the same ordered endpoints.
	ErrDuplicateEdge = errors.New("core: duplicate arc")
)

// Vertex represents a labeled node in the network.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Balance is the vertex's supply (> 0) or demand (< 0).
	// Zero for pure transshipment vertices. Default 0.
	Balance float64
}

// Edge represents a directed arc between two vertices.
type Edge struct {
	// From is the tail vertex ID.
	From string

	// To is the head vertex ID.
	To string

	// Cost is the per-unit cost of the arc. Default 0.
	Cost float64

	// Capacity is the upper bound on flow over the arc. Default +Inf.
	Capacity float64

	// Flow is zero on input graphs; decoded result graphs carry the
	// solver's per-arc value here.
	Flow float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (arcs from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// VertexOption configures properties of individual vertices when added.
type VertexOption func(*Vertex)

// WithBalance sets the vertex's supply (> 0) or demand (< 0).
func WithBalance(b float64) VertexOption {
	return func(v *Vertex) { v.Balance = b }
}

// EdgeOption configures properties of individual arcs when added.
type EdgeOption func(*Edge)

// WithCost sets the arc's per-unit cost.
func WithCost(c float64) EdgeOption {
	return func(e *Edge) { e.Cost = c }
}

// WithCapacity sets the arc's flow upper bound.
func WithCapacity(u float64) EdgeOption {
	return func(e *Edge) { e.Capacity = u }
}

// withFlow records a solver value on a decoded arc. Unexported: inputs
// never carry flows.
func withFlow(f float64) EdgeOption {
	return func(e *Edge) { e.Flow = f }
}

// Graph is the in-memory arc network.
//
// Vertices are stored by ID; arcs in insertion order with an endpoint-pair
// uniqueness guard. No internal locking: each invocation owns its graph.
type Graph struct {
	allowLoops bool

	vertices map[string]*Vertex
	edges    []*Edge
	seen     map[[2]string]struct{} // ordered endpoint pairs already present
}

// NewGraph creates an empty Graph. By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		seen:     make(map[[2]string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// inf is the documented default arc capacity.
func inf() float64 { return math.Inf(1) }
