// This file implements the mutating and querying methods of Graph.
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex, or updates its options if it already exists.
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1)
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	v, ok := g.vertices[id]
	if !ok {
		v = &Vertex{ID: id}
		g.vertices[id] = v
	}
	for _, opt := range opts {
		opt(v)
	}

	return nil
}

// AddEdge inserts a directed arc from→to, creating missing endpoints.
// Defaults: Cost 0, Capacity +Inf.
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, or ErrDuplicateEdge.
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	pair := [2]string{from, to}
	if _, dup := g.seen[pair]; dup {
		return fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, from, to)
	}
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	e := &Edge{From: from, To: to, Capacity: inf()}
	for _, opt := range opts {
		opt(e)
	}
	g.edges = append(g.edges, e)
	g.seen[pair] = struct{}{}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex with the given ID.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return v, nil
}

// Vertices returns all vertex IDs in ascending order.
// The order is deterministic so canonical indices derived from a graph
// are reproducible.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns the arcs in insertion order. The slice is a copy; the
// *Edge values are shared with the graph.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of arcs.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// AddResultEdge inserts an arc carrying a solver value in its Flow field.
// It is used by result decoding; inputs should use AddEdge.
func (g *Graph) AddResultEdge(from, to string, cost, capacity, flow float64) error {
	return g.AddEdge(from, to, WithCost(cost), WithCapacity(capacity), withFlow(flow))
}
