// SPDX-License-Identifier: MIT

package decision

// topoSorter holds the state of one DFS traversal.
type topoSorter struct {
	g     *Graph
	color []int
	order []VertexID // post-order
}

// TopologicalOrder returns the vertices of g such that every edge runs from
// an earlier to a later vertex. Roots are visited in handle order and
// successors in edge insertion order, so the result is deterministic.
//
// Complexity: O(V + E).
func TopologicalOrder(g *Graph) ([]VertexID, error) {
	// 1. Initialize all vertices as White
	s := &topoSorter{
		g:     g,
		color: make([]int, len(g.vertices)),
		order: make([]VertexID, 0, len(g.vertices)),
	}

	// 2. Drive DFS from every unvisited vertex
	for i := range g.vertices {
		if s.color[i] == White {
			if err := s.visit(VertexID(i)); err != nil {
				return nil, decisionErrorf("TopologicalOrder", err)
			}
		}
	}

	// 3. Reverse post-order
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

func (s *topoSorter) visit(id VertexID) error {
	// Gray again means a back edge
	if s.color[id] == Gray {
		return ErrCycleDetected
	}
	if s.color[id] == Black {
		return nil
	}
	s.color[id] = Gray
	for _, ei := range s.g.out[id] {
		if err := s.visit(s.g.edges[ei].To); err != nil {
			return err
		}
	}
	s.color[id] = Black
	s.order = append(s.order, id)

	return nil
}
