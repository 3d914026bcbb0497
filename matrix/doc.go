// SPDX-License-Identifier: MIT

// Package matrix provides the match matrix: a row-major boolean grid whose
// rows are ranked reference vertices and whose columns are the tokens of
// the witness being aligned.
//
// What:
//
//   - Build: ranks the reference order, runs the token matcher and marks one
//     cell per unique match and one cell per candidate of an ambiguous
//     token. Every marked cell carries the rank of its row vertex.
//   - Coordinate: (Row, Column, Rank); Row and Column index the content rows
//     and witness columns, Rank is the rank of the row vertex.
//   - AllMatches / RankedMatches: the present cells in row-major order.
//     AllMatches reports Rank 0 for every coordinate; RankedMatches keeps the
//     build-time rank and is the input island detection relies on.
//
// Rows and columns are labelled. Labels lacking token.LabelDelimiter belong
// to synthetic vertices and are filtered out of RowLabels, RowVertices and
// RowCount. The raw grid still spans every reference: content rows come
// first, the trailing rows stand for the synthetic references and stay empty.
//
// Errors:
//
//   - ErrOutOfRange     At was called outside the raw grid.
//   - ErrNilComparator  Build was called without comparator.
//
// Complexity:
//
//   - Build: Time O(R log R + R*C), Memory O(R*C).
//   - AllMatches / RankedMatches: Time O(R*C).
package matrix
