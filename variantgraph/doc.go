// SPDX-License-Identifier: MIT

// Package variantgraph provides the reference structure that witnesses are
// aligned against: a directed acyclic variant graph with one synthetic start
// and one synthetic end vertex.
//
// What:
//
//   - Graph: an arena of vertices addressed by stable integer handles
//     (VertexID). Edges are index-based and labelled with the sigils of the
//     witnesses that traverse them. No vertex owns a pointer to another.
//   - Rank: longest-path layering from the start vertex, computed over a
//     stabilized topological order (gonum graph/topo). Ties between vertices
//     of equal rank keep their original creation order.
//   - VertexRef: an immutable snapshot of one ranked vertex, the unit the
//     alignment core works with.
//   - Superbase: the ranked content vertices flattened into one sequence.
//   - Merge: the step that folds an aligned witness into the graph. Matched
//     tokens join their vertex, everything else becomes a new vertex.
//   - Table: the alignment table (witness × rank) of the current graph.
//
// Merge keeps only an order-consistent subset of the supplied links (the
// longest subsequence with strictly increasing rank in witness order); the
// remaining links are reported as transpositions and their tokens become
// new vertices. Every edge therefore runs from a lower to a higher rank and
// the graph stays acyclic.
//
// Errors:
//
//   - ErrVertexNotFound    a handle does not address a vertex.
//   - ErrSelfLoop          an edge from a vertex to itself was requested.
//   - ErrDuplicateWitness  a sigil was merged twice.
//   - ErrEmptySigil        a witness without sigil was merged.
//   - ErrCycle             ranking found a cycle (never expected).
//
// Complexity:
//
//   - Rank:  Time O(V log V + E), Memory O(V + E).
//   - Merge: Time O(n log n + V + E) for a witness of n tokens.
package variantgraph
