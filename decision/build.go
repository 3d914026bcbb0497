// SPDX-License-Identifier: MIT

package decision

import (
	"slices"

	"github.com/katalvlaran/lvcollate/matrix"
)

// Build derives the decision graph of m from its ranked matches.
//
// Stage 1 (Validate): m must be non-nil.
// Stage 2 (Prepare): one candidate per present cell, in witness order.
// Stage 3 (Execute): connect start, candidates and end.
func Build(m *matrix.MatchMatrix) (*Graph, error) {
	// 1. Validate
	if m == nil {
		return nil, decisionErrorf("Build", ErrNilMatrix)
	}

	// 2. Candidates in witness order
	coords := m.RankedMatches()
	slices.SortStableFunc(coords, matrix.Coordinate.Compare)
	g := New()
	if len(coords) == 0 {
		return g, g.AddEdge(StartID, EndID, NoGap)
	}
	matched := matchedColumns(coords)
	ids := make([]VertexID, len(coords))
	for i, c := range coords {
		ids[i] = g.AddCandidate(c.Column, c.Row, c.Rank)
	}

	// 3. Edges; insertion order fixes tie-breaking in Solve
	for i, c := range coords {
		if err := g.AddEdge(StartID, ids[i], entryWeight(c, matched)); err != nil {
			return nil, err
		}
		for j := i + 1; j < len(coords); j++ {
			d := coords[j]
			if d.Column <= c.Column || d.Rank <= c.Rank {
				continue
			}
			if err := g.AddEdge(ids[i], ids[j], transitionWeight(c, d, matched)); err != nil {
				return nil, err
			}
		}
		if err := g.AddEdge(ids[i], EndID, exitWeight(c, matched)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Gaps scores coords, a set of match cells of m, as the start-to-end path
// through them, with the weights Build uses. Coordinates are taken in
// witness order; a transition that does not advance the rank counts as a
// gap. An empty set costs one gap when m has any match.
func Gaps(m *matrix.MatchMatrix, coords []matrix.Coordinate) (int, error) {
	if m == nil {
		return 0, decisionErrorf("Gaps", ErrNilMatrix)
	}
	matched := matchedColumns(m.RankedMatches())
	if len(coords) == 0 {
		if len(matched) == 0 {
			return NoGap, nil
		}

		return Gap, nil
	}
	sorted := slices.Clone(coords)
	slices.SortFunc(sorted, matrix.Coordinate.Compare)
	gaps := entryWeight(sorted[0], matched) + exitWeight(sorted[len(sorted)-1], matched)
	for i := 1; i < len(sorted); i++ {
		gaps += transitionWeight(sorted[i-1], sorted[i], matched)
	}

	return gaps, nil
}

// matchedColumns returns the sorted, distinct columns of coords.
func matchedColumns(coords []matrix.Coordinate) []int {
	cols := make([]int, 0, len(coords))
	for _, c := range coords {
		cols = append(cols, c.Column)
	}
	slices.Sort(cols)

	return slices.Compact(cols)
}

// entryWeight is NoGap when c lies in the first matched column.
func entryWeight(c matrix.Coordinate, matched []int) int {
	if c.Column == matched[0] {
		return NoGap
	}

	return Gap
}

// exitWeight is NoGap when c lies in the last matched column.
func exitWeight(c matrix.Coordinate, matched []int) int {
	if c.Column == matched[len(matched)-1] {
		return NoGap
	}

	return Gap
}

// transitionWeight is NoGap when d directly continues c: next rank and no
// matched column skipped in between.
func transitionWeight(c, d matrix.Coordinate, matched []int) int {
	if d.Rank != c.Rank+1 {
		return Gap
	}
	lo, _ := slices.BinarySearch(matched, c.Column+1)
	if lo < len(matched) && matched[lo] < d.Column {
		return Gap
	}

	return NoGap
}
