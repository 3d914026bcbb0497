// SPDX-License-Identifier: MIT

package linker

import (
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/lvcollate/archipelago"
	"github.com/katalvlaran/lvcollate/decision"
	"github.com/katalvlaran/lvcollate/island"
	"github.com/katalvlaran/lvcollate/matrix"
	"github.com/katalvlaran/lvcollate/metrics"
	"github.com/katalvlaran/lvcollate/token"
	"github.com/katalvlaran/lvcollate/variantgraph"
)

// Alignment maps witness tokens to the reference vertices they align with.
type Alignment map[token.Token]variantgraph.VertexRef

// Result is the full outcome of one pass.
type Result struct {
	Alignment   Alignment
	Matrix      *matrix.MatchMatrix
	Islands     []*island.Island
	Archipelago *archipelago.Archipelago
	// Coordinates are the linked cells in witness order.
	Coordinates []matrix.Coordinate
	// Gaps counts the gaps of the chosen coordinates.
	Gaps int
	// Solved reports that a decision graph was built and solved; Decided
	// that its path was chosen over the archipelago version.
	Solved  bool
	Decided bool

	Unique    int
	Ambiguous int
	Unmatched int
}

// Linker runs alignment passes.
type Linker struct {
	opts options
}

// New returns a Linker configured by opts.
func New(opts ...Option) *Linker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Linker{opts: o}
}

// Align links witness to refs with a default Linker configured by opts.
func Align(refs []variantgraph.VertexRef, witness []token.Token, cmp token.Comparator, opts ...Option) (Alignment, error) {
	res, err := New(opts...).Link(refs, witness, cmp)
	if err != nil {
		return nil, err
	}

	return res.Alignment, nil
}

// Link runs one alignment pass of witness against refs.
// Empty refs or an empty witness yield an empty alignment.
func (l *Linker) Link(refs []variantgraph.VertexRef, witness []token.Token, cmp token.Comparator) (*Result, error) {
	began := time.Now()

	// 1. Match matrix
	m, err := matrix.Build(refs, witness, cmp)
	if err != nil {
		return nil, fmt.Errorf("linker.Link: %w", err)
	}
	matches := m.Matches()
	res := &Result{
		Matrix:    m,
		Unique:    len(matches.Unique()),
		Ambiguous: len(matches.Ambiguous()),
		Unmatched: len(matches.Unmatched()),
	}

	// 2. Islands and 3. first version
	res.Islands = island.Detect(m.RankedMatches())
	res.Archipelago = archipelago.New(res.Islands...)
	chosen := res.Archipelago.CreateFirstVersion().Coordinates()
	if res.Gaps, err = decision.Gaps(m, chosen); err != nil {
		return nil, fmt.Errorf("linker.Link: %w", err)
	}

	// 4. Decision graph for ambiguous passes
	if matches.HasAmbiguity() && l.opts.decisionGraph {
		g, err := decision.Build(m)
		if err != nil {
			return nil, fmt.Errorf("linker.Link: %w", err)
		}
		sol, err := decision.Solve(g)
		if err != nil {
			return nil, fmt.Errorf("linker.Link: %w", err)
		}
		res.Solved = true
		path := sol.Coordinates()
		if prefer(res.Gaps, len(chosen), sol.Gaps, len(path)) {
			chosen, res.Gaps, res.Decided = path, sol.Gaps, true
		}
		l.opts.logger.Debug("decision graph solved",
			"candidates", g.Candidates(), "gaps", sol.Gaps, "chosen", res.Decided)
	}

	// 5. Injective linking map
	res.Alignment, res.Coordinates = link(m, chosen)

	l.opts.metrics.ObserveAlignment(metrics.Alignment{
		Islands:   len(res.Islands),
		Gaps:      res.Gaps,
		Ambiguous: res.Ambiguous,
		Solved:    res.Solved,
		Decided:   res.Decided,
		Duration:  time.Since(began),
	})
	l.opts.logger.Debug("witness aligned",
		"tokens", len(witness), "refs", len(refs), "islands", len(res.Islands),
		"linked", len(res.Alignment), "gaps", res.Gaps)

	return res, nil
}

// prefer reports whether a decision path beats the archipelago version.
func prefer(versionGaps, versionLen, pathGaps, pathLen int) bool {
	if pathGaps != versionGaps {
		return pathGaps < versionGaps
	}

	return pathLen > versionLen
}

// link turns coordinates into an alignment, skipping any coordinate whose
// row or column is already claimed.
func link(m *matrix.MatchMatrix, coords []matrix.Coordinate) (Alignment, []matrix.Coordinate) {
	rows, cols := m.RowVertices(), m.ColumnTokens()
	sorted := slices.Clone(coords)
	slices.SortFunc(sorted, matrix.Coordinate.Compare)

	out := make(Alignment, len(sorted))
	kept := make([]matrix.Coordinate, 0, len(sorted))
	rowTaken := make(map[int]bool, len(sorted))
	colTaken := make(map[int]bool, len(sorted))
	for _, c := range sorted {
		if rowTaken[c.Row] || colTaken[c.Column] {
			continue
		}
		rowTaken[c.Row], colTaken[c.Column] = true, true
		out[cols[c.Column]] = rows[c.Row]
		kept = append(kept, c)
	}

	return out, kept
}
