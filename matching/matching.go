// SPDX-License-Identifier: MIT

// Package matching classifies the tokens of a witness by how many reference
// vertices a comparator matches them with: exactly one (unique), several
// (ambiguous) or none (unmatched).
//
// The matcher is pure and never fails; a nil comparator matches nothing.
package matching

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/katalvlaran/lvcollate/token"
	"github.com/katalvlaran/lvcollate/variantgraph"
)

// Matches indexes, per witness token, the ordered candidate references.
// Iteration order always follows witness order.
type Matches struct {
	index *linkedhashmap.Map // token.Token -> []variantgraph.VertexRef
}

// Between matches every token of witness against the token references in
// refs. Synthetic references never match. Candidates keep the order of refs.
//
// Complexity: O(|refs| * |witness|) comparator calls.
func Between(refs []variantgraph.VertexRef, witness []token.Token, cmp token.Comparator) *Matches {
	m := &Matches{index: linkedhashmap.New()}
	for _, t := range witness {
		var candidates []variantgraph.VertexRef
		if cmp != nil {
			for _, r := range refs {
				if r.Kind == variantgraph.KindToken && cmp(r.Token, t) {
					candidates = append(candidates, r)
				}
			}
		}
		m.index.Put(t, candidates)
	}

	return m
}

// Of returns the candidates of t in reference order.
func (m *Matches) Of(t token.Token) []variantgraph.VertexRef {
	v, ok := m.index.Get(t)
	if !ok {
		return nil
	}

	return v.([]variantgraph.VertexRef)
}

// IsUnique reports whether t has exactly one candidate.
func (m *Matches) IsUnique(t token.Token) bool { return len(m.Of(t)) == 1 }

// IsAmbiguous reports whether t has more than one candidate.
func (m *Matches) IsAmbiguous(t token.Token) bool { return len(m.Of(t)) > 1 }

// Unique returns the tokens with exactly one candidate, in witness order.
func (m *Matches) Unique() []token.Token { return m.filter(func(n int) bool { return n == 1 }) }

// Ambiguous returns the tokens with several candidates, in witness order.
func (m *Matches) Ambiguous() []token.Token { return m.filter(func(n int) bool { return n > 1 }) }

// Unmatched returns the tokens without candidates, in witness order.
func (m *Matches) Unmatched() []token.Token { return m.filter(func(n int) bool { return n == 0 }) }

// HasAmbiguity reports whether any token is ambiguous.
func (m *Matches) HasAmbiguity() bool {
	it := m.index.Iterator()
	for it.Next() {
		if len(it.Value().([]variantgraph.VertexRef)) > 1 {
			return true
		}
	}

	return false
}

// Len returns the number of indexed witness tokens.
func (m *Matches) Len() int { return m.index.Size() }

func (m *Matches) filter(keep func(candidates int) bool) []token.Token {
	var out []token.Token
	it := m.index.Iterator()
	for it.Next() {
		if keep(len(it.Value().([]variantgraph.VertexRef))) {
			out = append(out, it.Key().(token.Token))
		}
	}

	return out
}
