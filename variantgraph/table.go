// SPDX-License-Identifier: MIT

package variantgraph

import (
	"strings"
)

// Table is the alignment table of a graph: one row per witness, one column
// per token rank. Empty cells mark an omission.
type Table struct {
	Sigils []string   `json:"sigils"`
	Rows   [][]string `json:"rows"`
}

// Table builds the alignment table of the current graph.
func (g *Graph) Table() (Table, error) {
	if err := g.Rank(); err != nil {
		return Table{}, err
	}
	columns := g.ranks[EndID] - 1
	t := Table{Sigils: g.Sigils(), Rows: make([][]string, len(g.sigils))}
	for i, sigil := range g.sigils {
		row := make([]string, columns)
		for id := range g.WitnessPath(sigil) {
			for _, tk := range g.vertices[id].tokens {
				if tk.Sigil == sigil {
					row[g.ranks[id]-1] = tk.Content
					break
				}
			}
		}
		t.Rows[i] = row
	}

	return t, nil
}

// Columns returns the number of table columns.
func (t Table) Columns() int {
	if len(t.Rows) == 0 {
		return 0
	}

	return len(t.Rows[0])
}

// Variant reports whether the witnesses disagree in column col.
// An omission against a reading counts as disagreement.
func (t Table) Variant(col int) bool {
	for i := 1; i < len(t.Rows); i++ {
		if t.Rows[i][col] != t.Rows[0][col] {
			return true
		}
	}

	return false
}

// String renders the table as one "sigil: a | b | -" line per witness.
func (t Table) String() string {
	var sb strings.Builder
	for i, sigil := range t.Sigils {
		sb.WriteString(sigil)
		sb.WriteString(": ")
		for c, cell := range t.Rows[i] {
			if c > 0 {
				sb.WriteString(" | ")
			}
			if cell == "" {
				cell = "-"
			}
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
