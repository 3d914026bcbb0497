// SPDX-License-Identifier: MIT

package variantgraph

import (
	"fmt"
	"slices"

	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Rank computes the rank of every vertex: the start vertex has rank 0 and
// every other vertex one more than the highest-ranked predecessor. The end
// vertex is always ranked strictly after every token vertex.
//
// The result is cached until the next mutation.
//
// Complexity: O(V log V + E).
func (g *Graph) Rank() error {
	if g.ranked {
		return nil
	}

	// 1. Mirror the arena into a gonum graph
	dg := simple.NewDirectedGraph()
	for i := range g.vertices {
		dg.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.edges {
		dg.SetEdge(simple.Edge{F: simple.Node(int64(e.From)), T: simple.Node(int64(e.To))})
	}

	// 2. Stabilized topological order; equal-depth ties keep handle order
	sorted, err := topo.SortStabilized(dg, func(nodes []gonumgraph.Node) {
		slices.SortFunc(nodes, func(a, b gonumgraph.Node) int {
			return int(a.ID() - b.ID())
		})
	})
	if err != nil {
		return fmt.Errorf("Graph.Rank: %w: %v", ErrCycle, err)
	}

	// 3. Longest-path layering over the order
	ranks := make([]int, len(g.vertices))
	maxContent := 0
	for _, n := range sorted {
		id := VertexID(n.ID())
		for _, ei := range g.vertices[id].out {
			to := g.edges[ei].To
			if r := ranks[id] + 1; r > ranks[to] {
				ranks[to] = r
			}
		}
		if g.vertices[id].kind == KindToken && ranks[id] > maxContent {
			maxContent = ranks[id]
		}
	}
	ranks[StartID] = 0
	if ranks[EndID] <= maxContent {
		ranks[EndID] = maxContent + 1
	}

	// 4. Ranked order: (rank, handle)
	order := make([]VertexID, len(g.vertices))
	for i := range order {
		order[i] = VertexID(i)
	}
	slices.SortStableFunc(order, func(a, b VertexID) int {
		if ranks[a] != ranks[b] {
			return ranks[a] - ranks[b]
		}

		return int(a - b)
	})

	g.ranks, g.order, g.ranked = ranks, order, true

	return nil
}

// RankOf returns the rank of vertex id, ranking the graph when needed.
func (g *Graph) RankOf(id VertexID) (int, error) {
	if !g.has(id) {
		return 0, graphErrorf("RankOf", id, ErrVertexNotFound)
	}
	if err := g.Rank(); err != nil {
		return 0, err
	}

	return g.ranks[id], nil
}

// Refs returns a snapshot of every vertex, synthetic ones included, in
// ranked order. Vertices of equal rank keep their handle order.
func (g *Graph) Refs() ([]VertexRef, error) {
	if err := g.Rank(); err != nil {
		return nil, err
	}
	out := make([]VertexRef, len(g.order))
	for i, id := range g.order {
		out[i] = g.ref(id)
	}

	return out, nil
}

// Superbase flattens the ranked token vertices into one sequence with
// consecutive ranks 1..n, framed by the synthetic start (rank 0) and end
// (rank n+1) references. Vertex handles are preserved, so an alignment
// against the superbase can be merged back into the graph.
func (g *Graph) Superbase() ([]VertexRef, error) {
	refs, err := g.Refs()
	if err != nil {
		return nil, err
	}
	out := make([]VertexRef, 0, len(refs))
	out = append(out, g.ref(StartID))
	for _, r := range refs {
		if r.Kind != KindToken {
			continue
		}
		r.Rank = len(out)
		out = append(out, r)
	}
	end := g.ref(EndID)
	end.Rank = len(out)

	return append(out, end), nil
}
