// SPDX-License-Identifier: MIT

// Package island detects islands in a match matrix.
//
// An island is a run of matched cells on one diagonal of the matrix: every
// member borders another (adjacent row and adjacent rank), no two members
// share a row or a column, and all members lie in the same direction from
// the first one. Direction is +1 when rows grow with columns, -1 when they
// shrink, and 0 only for a single-cell island.
//
// Detection is a greedy single pass over coordinates in enumeration order:
// a coordinate joins the first island that accepts it, otherwise it starts
// a new one. Islands are never merged afterwards.
//
// The value of an island favours long straight runs: size for islands
// below two cells, direction + size² otherwise.
//
// Complexity:
//
//   - Add:    O(k) for an island of k cells.
//   - Detect: O(n * n) in the worst case for n coordinates.
package island
