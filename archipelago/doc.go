// SPDX-License-Identifier: MIT

// Package archipelago resolves competing islands into one conflict-free
// version.
//
// Two islands compete when a horizontal or vertical line runs through both,
// i.e. they share a row or a column of the match matrix. A version is a
// competitor-free subset of the archipelago.
//
// CreateFirstVersion builds the version greedily. Islands wait in a B-tree
// ordered by value (highest first; detection order breaks ties). The best
// island is popped and kept when it competes with no kept island. Otherwise
// it is pruned against every kept island with RemovePoints, the surviving
// coordinates are re-detected into islands and those go back into the tree.
// The loop ends when the tree is empty. Every prune removes at least one
// coordinate, so the loop terminates, and the outcome is deterministic.
//
// Complexity:
//
//   - CreateFirstVersion: O(n² * k) for n coordinates spread over the
//     islands and k kept islands, plus O(log m) per tree operation.
package archipelago
