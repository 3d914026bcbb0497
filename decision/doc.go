// SPDX-License-Identifier: MIT

// Package decision implements the weighted decision graph used to choose,
// among several legal token-to-vertex assignments, the one with the fewest
// gaps.
//
// What:
//
//   - Graph: an arena DAG with a synthetic start and end vertex and one
//     candidate vertex per match cell. Edges carry weight 0 (no gap) or 1
//     (gap) and only run towards higher witness columns, so the graph is
//     acyclic by construction.
//   - TopologicalOrder: DFS with White/Gray/Black colouring.
//   - DetermineMinimumNumberOfGaps: one forward relaxation pass in
//     topological order; start weighs 0, every other vertex the minimum of
//     source weight + edge weight over its incoming edges.
//   - Solve: the minimum weights plus one optimal start-to-end path.
//   - Build: derives the graph from a match matrix.
//
// Build rules. Let (j, a) and (k, b) be the column and rank of two
// candidates with k > j and b > a. The edge between them weighs 0 when b is
// a+1 and no matched column lies strictly between j and k; otherwise it
// weighs 1. Start connects to every candidate and every candidate to end;
// such an edge weighs 0 only when it skips no matched column, i.e. the
// candidate lies in the first (respectively last) matched column. With no
// candidate at all, start connects straight to end.
//
// Errors:
//
//   - ErrVertexNotFound  an edge endpoint does not exist.
//   - ErrBadWeight       an edge weight other than 0 or 1.
//   - ErrBackwardEdge    an edge not running towards a higher column.
//   - ErrCycleDetected   topological sorting met a back edge (never expected).
//   - ErrUnreachable     end cannot be reached from start.
//   - ErrNilMatrix       Build or Gaps was given a nil matrix.
//
// Complexity:
//
//   - Build: O(n²) edges for n candidates.
//   - TopologicalOrder, DetermineMinimumNumberOfGaps, Solve: O(V + E).
package decision
