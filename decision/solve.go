// SPDX-License-Identifier: MIT

package decision

import (
	"github.com/katalvlaran/lvcollate/matrix"
)

// Unreachable marks vertices that cannot be reached from start.
const Unreachable = -1

// Solution is the outcome of Solve.
type Solution struct {
	// Gaps is the minimum number of gaps from start to end.
	Gaps int
	// MinWeights holds, per vertex handle, the minimum accumulated weight
	// from start or Unreachable.
	MinWeights []int
	// Path is one optimal path from start to end, both included.
	Path []VertexID

	graph *Graph
}

// Coordinates returns the match cells of the candidates on the path, in
// witness order.
func (s *Solution) Coordinates() []matrix.Coordinate {
	var out []matrix.Coordinate
	for _, id := range s.Path {
		v := s.graph.vertices[id]
		if v.Kind == KindCandidate {
			out = append(out, matrix.Coordinate{Row: v.Row, Column: v.Column, Rank: v.Rank})
		}
	}

	return out
}

// minWeights runs the forward relaxation over a topological order.
func minWeights(g *Graph) ([]int, error) {
	order, err := TopologicalOrder(g)
	if err != nil {
		return nil, err
	}
	dist := make([]int, len(g.vertices))
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[StartID] = 0
	for _, id := range order {
		if dist[id] == Unreachable {
			continue
		}
		for _, ei := range g.out[id] {
			e := g.edges[ei]
			if w := dist[id] + e.Weight; dist[e.To] == Unreachable || w < dist[e.To] {
				dist[e.To] = w
			}
		}
	}

	return dist, nil
}

// DetermineMinimumNumberOfGaps returns the minimum accumulated edge weight
// of any start-to-end path.
//
// Complexity: O(V + E).
func DetermineMinimumNumberOfGaps(g *Graph) (int, error) {
	dist, err := minWeights(g)
	if err != nil {
		return 0, err
	}
	if dist[EndID] == Unreachable {
		return 0, decisionErrorf("DetermineMinimumNumberOfGaps", ErrUnreachable)
	}

	return dist[EndID], nil
}

// Solve computes the minimum weights and one optimal path. Walking back
// from end, the first inserted incoming edge on an optimal path wins ties.
//
// Complexity: O(V + E).
func Solve(g *Graph) (*Solution, error) {
	// 1. Forward relaxation
	dist, err := minWeights(g)
	if err != nil {
		return nil, err
	}
	if dist[EndID] == Unreachable {
		return nil, decisionErrorf("Solve", ErrUnreachable)
	}

	// 2. Backtrack from end along tight edges
	path := []VertexID{EndID}
	for cur := EndID; cur != StartID; {
		next := VertexID(Unreachable)
		for _, ei := range g.in[cur] {
			e := g.edges[ei]
			if dist[e.From] != Unreachable && dist[e.From]+e.Weight == dist[cur] {
				next = e.From
				break
			}
		}
		cur = next
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &Solution{Gaps: dist[EndID], MinWeights: dist, Path: path, graph: g}, nil
}
