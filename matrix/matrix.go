// SPDX-License-Identifier: MIT

package matrix

import (
	"slices"
	"strings"

	"github.com/katalvlaran/lvcollate/matching"
	"github.com/katalvlaran/lvcollate/token"
	"github.com/katalvlaran/lvcollate/variantgraph"
)

// MatchMatrix is a row-major grid of match cells.
// rows and cols hold the raw keys; data has len(rows)*len(cols) entries.
type MatchMatrix struct {
	rows    []variantgraph.VertexRef
	cols    []token.Token
	data    []Cell
	content []int // raw index of every content row, in row order
	matches *matching.Matches
}

// Build creates the match matrix of witness against refs.
//
// Stage 1 (Validate): comparator must be non-nil.
// Stage 2 (Prepare): stable-sort refs by rank and index the content rows.
// Stage 3 (Execute): mark the cells of unique and ambiguous matches.
//
// Empty refs or an empty witness yield an empty, valid matrix.
func Build(refs []variantgraph.VertexRef, witness []token.Token, cmp token.Comparator) (*MatchMatrix, error) {
	// 1. Validate
	if cmp == nil {
		return nil, ErrNilComparator
	}

	// 2. Prepare row order and content index
	rows := slices.Clone(refs)
	slices.SortStableFunc(rows, func(a, b variantgraph.VertexRef) int { return a.Rank - b.Rank })
	m := &MatchMatrix{
		rows: rows,
		cols: slices.Clone(witness),
		data: make([]Cell, len(rows)*len(witness)),
	}
	contentRow := make(map[variantgraph.VertexID]int, len(rows))
	for i, r := range rows {
		if isContentLabel(r.Label()) {
			contentRow[r.ID] = len(m.content)
			m.content = append(m.content, i)
		}
	}

	// 3. Mark cells; unmatched tokens mark nothing
	m.matches = matching.Between(rows, witness, cmp)
	for col, t := range witness {
		if !m.matches.IsUnique(t) && !m.matches.IsAmbiguous(t) {
			continue
		}
		for _, r := range m.matches.Of(t) {
			row, ok := contentRow[r.ID]
			if !ok {
				continue
			}
			m.data[row*len(m.cols)+col] = Cell{Present: true, Rank: r.Rank}
		}
	}

	return m, nil
}

// isContentLabel reports whether a row or column label belongs to content.
func isContentLabel(label string) bool { return strings.Contains(label, token.LabelDelimiter) }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *MatchMatrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= len(m.cols) {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}

	return row*len(m.cols) + col, nil
}

// At returns the cell at (row, col) of the raw grid.
// Complexity: O(1).
func (m *MatchMatrix) At(row, col int) (Cell, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return Cell{}, err
	}

	return m.data[idx], nil
}

// Matches returns the matcher result the matrix was built from.
func (m *MatchMatrix) Matches() *matching.Matches { return m.matches }

// AllMatches returns every present cell in row-major order with Rank 0.
func (m *MatchMatrix) AllMatches() []Coordinate {
	out := m.RankedMatches()
	for i := range out {
		out[i].Rank = 0
	}

	return out
}

// RankedMatches returns every present cell in row-major order carrying the
// rank of its row vertex.
func (m *MatchMatrix) RankedMatches() []Coordinate {
	var out []Coordinate
	rows, cols := m.RowCount(), m.ColumnCount()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if c := m.data[i*len(m.cols)+j]; c.Present {
				out = append(out, Coordinate{Row: i, Column: j, Rank: c.Rank})
			}
		}
	}

	return out
}

// RowCount returns the number of content rows.
func (m *MatchMatrix) RowCount() int { return len(m.RowLabels()) }

// ColumnCount returns the number of content columns.
func (m *MatchMatrix) ColumnCount() int { return len(m.ColumnLabels()) }

// RawRows returns the number of rows of the raw grid.
func (m *MatchMatrix) RawRows() int { return len(m.rows) }

// RawColumns returns the number of columns of the raw grid.
func (m *MatchMatrix) RawColumns() int { return len(m.cols) }

// RowLabels returns the normalized readings of the content rows.
func (m *MatchMatrix) RowLabels() []string {
	out := make([]string, 0, len(m.content))
	for _, r := range m.rows {
		if isContentLabel(r.Label()) {
			out = append(out, r.Token.Normalized)
		}
	}

	return out
}

// ColumnLabels returns the raw contents of the content columns.
func (m *MatchMatrix) ColumnLabels() []string {
	out := make([]string, 0, len(m.cols))
	for _, t := range m.cols {
		if isContentLabel(t.Label()) {
			out = append(out, t.Content)
		}
	}

	return out
}

// RowVertices returns the content row references, index-aligned with rows.
func (m *MatchMatrix) RowVertices() []variantgraph.VertexRef {
	out := make([]variantgraph.VertexRef, len(m.content))
	for i, raw := range m.content {
		out[i] = m.rows[raw]
	}

	return out
}

// ColumnTokens returns the content column tokens, index-aligned with columns.
func (m *MatchMatrix) ColumnTokens() []token.Token {
	out := make([]token.Token, 0, len(m.cols))
	for _, t := range m.cols {
		if isContentLabel(t.Label()) {
			out = append(out, t)
		}
	}

	return out
}

// String renders the content grid; present cells print as M, others as a dot.
func (m *MatchMatrix) String() string {
	var sb strings.Builder
	labels := m.RowLabels()
	width := 0
	for _, l := range labels {
		width = max(width, len(l))
	}
	sb.WriteString(strings.Repeat(" ", width))
	for _, l := range m.ColumnLabels() {
		sb.WriteByte(' ')
		sb.WriteString(l)
	}
	sb.WriteByte('\n')
	cols := m.ColumnCount()
	for i, l := range labels {
		sb.WriteString(l)
		sb.WriteString(strings.Repeat(" ", width-len(l)))
		for j := 0; j < cols; j++ {
			mark := "."
			if m.data[i*len(m.cols)+j].Present {
				mark = "M"
			}
			sb.WriteByte(' ')
			sb.WriteString(mark)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
