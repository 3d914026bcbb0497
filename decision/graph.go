// SPDX-License-Identifier: MIT

package decision

import (
	"slices"
)

// Graph is an arena-backed decision DAG.
type Graph struct {
	vertices []Vertex
	edges    []Edge
	out      [][]int // edge indices per source vertex, in insertion order
	in       [][]int // edge indices per target vertex, in insertion order
}

// New returns a graph holding only the synthetic start and end vertices.
func New() *Graph {
	return &Graph{
		vertices: []Vertex{{ID: StartID, Kind: KindStart}, {ID: EndID, Kind: KindEnd}},
		out:      make([][]int, 2),
		in:       make([][]int, 2),
	}
}

// Start returns the synthetic start vertex.
func (g *Graph) Start() VertexID { return StartID }

// End returns the synthetic end vertex.
func (g *Graph) End() VertexID { return EndID }

// AddCandidate appends a candidate for the match cell (row, column) whose
// row vertex has rank, and returns its handle.
func (g *Graph) AddCandidate(column, row, rank int) VertexID {
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{ID: id, Kind: KindCandidate, Column: column, Row: row, Rank: rank})
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)

	return id
}

// AddEdge connects from to to with weight.
//
// The target must lie in a strictly higher column than the source; start
// counts as column -1 and end as the highest column.
func (g *Graph) AddEdge(from, to VertexID, weight int) error {
	// 1. Validate endpoints and weight
	if !g.has(from) || !g.has(to) {
		return decisionErrorf("AddEdge", ErrVertexNotFound)
	}
	if weight != NoGap && weight != Gap {
		return decisionErrorf("AddEdge", ErrBadWeight)
	}
	if g.columnKey(to) <= g.columnKey(from) {
		return decisionErrorf("AddEdge", ErrBackwardEdge)
	}

	// 2. Record
	idx := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	g.out[from] = append(g.out[from], idx)
	g.in[to] = append(g.in[to], idx)

	return nil
}

// Vertex returns vertex id.
func (g *Graph) Vertex(id VertexID) (Vertex, bool) {
	if !g.has(id) {
		return Vertex{}, false
	}

	return g.vertices[id], true
}

// Vertices returns all vertices in handle order.
func (g *Graph) Vertices() []Vertex { return slices.Clone(g.vertices) }

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Candidates returns the number of candidate vertices.
func (g *Graph) Candidates() int { return len(g.vertices) - 2 }

// Outgoing returns id's outgoing edges in insertion order.
func (g *Graph) Outgoing(id VertexID) []Edge {
	if !g.has(id) {
		return nil
	}
	out := make([]Edge, len(g.out[id]))
	for i, ei := range g.out[id] {
		out[i] = g.edges[ei]
	}

	return out
}

func (g *Graph) has(id VertexID) bool { return id >= 0 && int(id) < len(g.vertices) }

// columnKey orders vertices along the witness.
func (g *Graph) columnKey(id VertexID) int {
	switch g.vertices[id].Kind {
	case KindStart:
		return startColumn
	case KindEnd:
		return endColumn
	default:
		return g.vertices[id].Column
	}
}
