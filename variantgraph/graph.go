// SPDX-License-Identifier: MIT

package variantgraph

import (
	"iter"
	"slices"

	"github.com/katalvlaran/lvcollate/token"
)

// vertex is the internal arena entry.
type vertex struct {
	kind   Kind
	tokens []token.Token
	out    []int // indices into Graph.edges
	in     []int
}

// edgeKey addresses an edge by its endpoints.
type edgeKey struct{ from, to VertexID }

// Graph is an arena-backed variant graph.
//
// Vertices are never removed, so a VertexID stays valid for the lifetime of
// the graph. Rank information is cached and invalidated by every mutation.
// A Graph is not safe for concurrent mutation.
type Graph struct {
	vertices []vertex
	edges    []Edge
	byEnds   map[edgeKey]int
	sigils   []string

	ranks  []int
	order  []VertexID // ranked order: (rank, id)
	ranked bool
}

// New returns a graph holding only the synthetic start and end vertices.
func New() *Graph {
	return &Graph{
		vertices: []vertex{{kind: KindStart}, {kind: KindEnd}},
		byEnds:   make(map[edgeKey]int),
	}
}

// Start returns the handle of the synthetic start vertex.
func (g *Graph) Start() VertexID { return StartID }

// End returns the handle of the synthetic end vertex.
func (g *Graph) End() VertexID { return EndID }

// VertexCount returns the number of vertices, synthetic ones included.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Sigils returns the merged witness sigils in merge order.
func (g *Graph) Sigils() []string { return slices.Clone(g.sigils) }

// AddVertex appends a token vertex holding t and returns its handle.
func (g *Graph) AddVertex(t token.Token) VertexID {
	g.vertices = append(g.vertices, vertex{kind: KindToken, tokens: []token.Token{t}})
	g.ranked = false

	return VertexID(len(g.vertices) - 1)
}

// Connect adds sigil to the edge from -> to, creating the edge if needed.
// Adding a sigil that is already on the edge is a no-op.
func (g *Graph) Connect(from, to VertexID, sigil string) error {
	// 1. Validate endpoints
	if !g.has(from) {
		return graphErrorf("Connect", from, ErrVertexNotFound)
	}
	if !g.has(to) {
		return graphErrorf("Connect", to, ErrVertexNotFound)
	}
	if from == to {
		return graphErrorf("Connect", from, ErrSelfLoop)
	}

	// 2. Extend an existing edge
	key := edgeKey{from, to}
	if idx, ok := g.byEnds[key]; ok {
		if !slices.Contains(g.edges[idx].Sigils, sigil) {
			g.edges[idx].Sigils = append(g.edges[idx].Sigils, sigil)
		}

		return nil
	}

	// 3. Create a new edge
	idx := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Sigils: []string{sigil}})
	g.byEnds[key] = idx
	g.vertices[from].out = append(g.vertices[from].out, idx)
	g.vertices[to].in = append(g.vertices[to].in, idx)
	g.ranked = false

	return nil
}

// Vertex returns a read-only view of vertex id.
func (g *Graph) Vertex(id VertexID) (Vertex, error) {
	if !g.has(id) {
		return Vertex{}, graphErrorf("Vertex", id, ErrVertexNotFound)
	}
	v := g.vertices[id]

	return Vertex{ID: id, Kind: v.kind, Tokens: slices.Clone(v.tokens)}, nil
}

// Vertices returns views of all vertices in handle order.
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = Vertex{ID: VertexID(i), Kind: v.kind, Tokens: slices.Clone(v.tokens)}
	}

	return out
}

// Edges returns copies of all edges in creation order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = Edge{From: e.From, To: e.To, Sigils: slices.Clone(e.Sigils)}
	}

	return out
}

// Successors returns the targets of id's outgoing edges in creation order.
func (g *Graph) Successors(id VertexID) ([]VertexID, error) {
	if !g.has(id) {
		return nil, graphErrorf("Successors", id, ErrVertexNotFound)
	}
	out := make([]VertexID, 0, len(g.vertices[id].out))
	for _, ei := range g.vertices[id].out {
		out = append(out, g.edges[ei].To)
	}

	return out, nil
}

// Predecessors returns the sources of id's incoming edges in creation order.
func (g *Graph) Predecessors(id VertexID) ([]VertexID, error) {
	if !g.has(id) {
		return nil, graphErrorf("Predecessors", id, ErrVertexNotFound)
	}
	out := make([]VertexID, 0, len(g.vertices[id].in))
	for _, ei := range g.vertices[id].in {
		out = append(out, g.edges[ei].From)
	}

	return out, nil
}

// WitnessPath lazily follows the edges labelled sigil from the start vertex
// and yields every token vertex on the way. The sequence is restartable.
func (g *Graph) WitnessPath(sigil string) iter.Seq[VertexID] {
	return func(yield func(VertexID) bool) {
		cur := StartID
		for {
			next, ok := g.nextOn(cur, sigil)
			if !ok || next == EndID {
				return
			}
			if !yield(next) {
				return
			}
			cur = next
		}
	}
}

// nextOn returns the target of id's outgoing edge carrying sigil.
func (g *Graph) nextOn(id VertexID, sigil string) (VertexID, bool) {
	for _, ei := range g.vertices[id].out {
		if slices.Contains(g.edges[ei].Sigils, sigil) {
			return g.edges[ei].To, true
		}
	}

	return 0, false
}

// has reports whether id addresses a vertex.
func (g *Graph) has(id VertexID) bool { return id >= 0 && int(id) < len(g.vertices) }

// ref snapshots vertex id; the graph must be ranked.
func (g *Graph) ref(id VertexID) VertexRef {
	v := g.vertices[id]
	r := VertexRef{ID: id, Kind: v.kind, Rank: g.ranks[id]}
	if len(v.tokens) > 0 {
		r.Token = v.tokens[0]
		sigils := make([]string, len(v.tokens))
		for i, t := range v.tokens {
			sigils[i] = t.Sigil
		}
		r.Sigils = joinSigils(sigils)
	}

	return r
}
