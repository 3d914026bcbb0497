// SPDX-License-Identifier: MIT

package variantgraph

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/lvcollate/token"
)

// MergeReport summarizes one Merge.
type MergeReport struct {
	// Aligned counts tokens that joined an existing vertex.
	Aligned int
	// Added counts tokens that became new vertices.
	Added int
	// Transposed lists linked tokens whose link was dropped because it
	// contradicted the order of the other links.
	Transposed []token.Token
}

// link is one usable entry of an alignment, in witness order.
type link struct {
	pos  int // token position in the witness
	id   VertexID
	rank int
}

// Merge folds witness w into the graph following alignment, a mapping from
// witness tokens to token vertices.
//
// Links to synthetic or unknown vertices are ignored. Of the remaining
// links the longest subsequence with strictly increasing rank in witness
// order is kept; every other linked token is reported as transposed. Kept
// tokens join their vertex, all other tokens become new vertices, and the
// witness path start -> ... -> end is connected with sigil w.Sigil.
//
// Complexity: O(n log n + V + E) for n tokens.
func (g *Graph) Merge(w token.Witness, alignment map[token.Token]VertexRef) (MergeReport, error) {
	var report MergeReport

	// 1. Validate witness
	if w.Sigil == "" {
		return report, ErrEmptySigil
	}
	if slices.Contains(g.sigils, w.Sigil) {
		return report, fmt.Errorf("Graph.Merge(%q): %w", w.Sigil, ErrDuplicateWitness)
	}
	if err := g.Rank(); err != nil {
		return report, err
	}

	// 2. Collect usable links in witness order
	links := make([]link, 0, len(alignment))
	for i, t := range w.Tokens {
		ref, ok := alignment[t]
		if !ok || !g.has(ref.ID) || g.vertices[ref.ID].kind != KindToken {
			continue
		}
		links = append(links, link{pos: i, id: ref.ID, rank: g.ranks[ref.ID]})
	}

	// 3. Keep the order-consistent subset
	kept := make(map[int]VertexID, len(links))
	for _, l := range longestIncreasing(links) {
		kept[l.pos] = l.id
	}
	for _, l := range links {
		if _, ok := kept[l.pos]; !ok {
			report.Transposed = append(report.Transposed, w.Tokens[l.pos])
		}
	}

	// 4. Walk the witness and connect its path
	prev := StartID
	for i, t := range w.Tokens {
		id, ok := kept[i]
		if ok {
			g.vertices[id].tokens = append(g.vertices[id].tokens, t)
			report.Aligned++
		} else {
			id = g.AddVertex(t)
			report.Added++
		}
		if err := g.Connect(prev, id, w.Sigil); err != nil {
			return report, err
		}
		prev = id
	}
	if err := g.Connect(prev, EndID, w.Sigil); err != nil {
		return report, err
	}

	g.sigils = append(g.sigils, w.Sigil)
	g.ranked = false

	return report, nil
}

// longestIncreasing returns the longest subsequence of links with strictly
// increasing rank (patience sorting with back-links).
func longestIncreasing(links []link) []link {
	if len(links) == 0 {
		return nil
	}
	tails := make([]int, 0, len(links)) // tails[k]: index of the smallest tail of a run of length k+1
	prev := make([]int, len(links))
	for i, l := range links {
		k := sort.Search(len(tails), func(j int) bool { return links[tails[j]].rank >= l.rank })
		if k > 0 {
			prev[i] = tails[k-1]
		} else {
			prev[i] = -1
		}
		if k == len(tails) {
			tails = append(tails, i)
		} else {
			tails[k] = i
		}
	}

	out := make([]link, len(tails))
	for i, k := tails[len(tails)-1], len(tails)-1; k >= 0; i, k = prev[i], k-1 {
		out[k] = links[i]
	}

	return out
}
