package decision_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcollate/decision"
	"github.com/katalvlaran/lvcollate/matrix"
	"github.com/katalvlaran/lvcollate/token"
	"github.com/katalvlaran/lvcollate/variantgraph"
)

// buildMatrix matches the first n tokens of witness against a graph made
// of base.
func buildMatrix(t testing.TB, base, witness string, n int) *matrix.MatchMatrix {
	t.Helper()
	a, err := token.Tokenize("A", base)
	require.NoError(t, err)
	g := variantgraph.New()
	_, err = g.Merge(a, nil)
	require.NoError(t, err)
	refs, err := g.Refs()
	require.NoError(t, err)

	b, err := token.Tokenize("B", witness)
	require.NoError(t, err)
	if n < 0 || n > b.Len() {
		n = b.Len()
	}
	m, err := matrix.Build(refs, b.Tokens[:n], token.Equality)
	require.NoError(t, err)

	return m
}

// TestManualGraph solves a hand-built graph for "the black cat" against
// "The red cat and the black cat" where every choice costs one gap.
func TestManualGraph(t *testing.T) {
	g := decision.New()
	the1 := g.AddCandidate(0, 0, 1)
	the2 := g.AddCandidate(0, 4, 5)
	black := g.AddCandidate(1, 5, 6)
	cat1 := g.AddCandidate(2, 2, 3)
	cat2 := g.AddCandidate(2, 6, 7)

	edges := []struct {
		from, to decision.VertexID
		w        int
	}{
		{g.Start(), the1, 0}, {g.Start(), the2, 1},
		{the1, black, 1}, {the2, black, 0},
		{black, cat1, 1}, {black, cat2, 0},
		{cat1, g.End(), 1}, {cat2, g.End(), 0},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, e.w))
	}
	assert.Equal(t, 5, g.Candidates())

	gaps, err := decision.DetermineMinimumNumberOfGaps(g)
	require.NoError(t, err)
	assert.Equal(t, 1, gaps)

	sol, err := decision.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, 1, sol.Gaps)
	assert.Equal(t, []decision.VertexID{g.Start(), the1, black, cat2, g.End()}, sol.Path)
	assert.Equal(t, 2, sol.MinWeights[cat1])
	assert.Equal(t, []matrix.Coordinate{
		{Row: 0, Column: 0, Rank: 1}, {Row: 5, Column: 1, Rank: 6}, {Row: 6, Column: 2, Rank: 7},
	}, sol.Coordinates())
}

// TestAddEdge_Errors covers every edge contract violation.
func TestAddEdge_Errors(t *testing.T) {
	g := decision.New()
	a := g.AddCandidate(1, 0, 1)
	b := g.AddCandidate(1, 1, 2)

	assert.ErrorIs(t, g.AddEdge(a, 99, 0), decision.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(-1, a, 0), decision.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(g.Start(), a, 2), decision.ErrBadWeight)
	assert.ErrorIs(t, g.AddEdge(a, b, 0), decision.ErrBackwardEdge, "same column")
	assert.ErrorIs(t, g.AddEdge(g.End(), a, 0), decision.ErrBackwardEdge)
	assert.ErrorIs(t, g.AddEdge(a, g.Start(), 0), decision.ErrBackwardEdge)
	assert.NoError(t, g.AddEdge(g.Start(), g.End(), 0))
	assert.Len(t, g.Edges(), 1)
}

// TestUnreachable reports a disconnected end vertex.
func TestUnreachable(t *testing.T) {
	g := decision.New()
	v := g.AddCandidate(0, 0, 1)
	require.NoError(t, g.AddEdge(g.Start(), v, 0))

	_, err := decision.DetermineMinimumNumberOfGaps(g)
	assert.ErrorIs(t, err, decision.ErrUnreachable)
	_, err = decision.Solve(g)
	assert.ErrorIs(t, err, decision.ErrUnreachable)
}

// TestTopologicalOrder places every edge source before its target.
func TestTopologicalOrder(t *testing.T) {
	g, err := decision.Build(buildMatrix(t, "The red cat and the black cat", "the black cat", -1))
	require.NoError(t, err)

	order, err := decision.TopologicalOrder(g)
	require.NoError(t, err)
	require.Len(t, order, len(g.Vertices()))
	pos := make(map[decision.VertexID]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To])
	}
	assert.Equal(t, g.Start(), order[0])
}

// TestBuild_RedCat resolves the ambiguous "the" without gaps.
func TestBuild_RedCat(t *testing.T) {
	m := buildMatrix(t, "The red cat and the black cat", "the black cat", -1)
	g, err := decision.Build(m)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Candidates())

	sol, err := decision.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, 0, sol.Gaps)
	assert.Equal(t, []matrix.Coordinate{
		{Row: 4, Column: 0, Rank: 5}, {Row: 5, Column: 1, Rank: 6}, {Row: 6, Column: 2, Rank: 7},
	}, sol.Coordinates())

	gaps, err := decision.Gaps(m, sol.Coordinates())
	require.NoError(t, err)
	assert.Equal(t, sol.Gaps, gaps)

	gaps, err = decision.Gaps(m, []matrix.Coordinate{{Row: 0, Column: 0, Rank: 1}})
	require.NoError(t, err)
	assert.Equal(t, 1, gaps, "stopping early skips matched columns")
}

// TestBuild_IdenticalWitness needs no gap.
func TestBuild_IdenticalWitness(t *testing.T) {
	text := "The red cat and the black cat"
	g, err := decision.Build(buildMatrix(t, text, text, -1))
	require.NoError(t, err)

	gaps, err := decision.DetermineMinimumNumberOfGaps(g)
	require.NoError(t, err)
	assert.Equal(t, 0, gaps)
}

// TestBuild_NoMatches connects start straight to end.
func TestBuild_NoMatches(t *testing.T) {
	m := buildMatrix(t, "a b", "c d", -1)
	g, err := decision.Build(m)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Candidates())

	sol, err := decision.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, 0, sol.Gaps)
	assert.Equal(t, []decision.VertexID{g.Start(), g.End()}, sol.Path)
	assert.Empty(t, sol.Coordinates())

	gaps, err := decision.Gaps(m, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, gaps)
}

// TestBuild_MonotonicMinimum grows the witness one token at a time; the
// minimum never decreases while candidate layers are added.
func TestBuild_MonotonicMinimum(t *testing.T) {
	const base, witness = "the black cat", "the black saw the black cat"
	prev := 0
	for n := 0; n <= 6; n++ {
		g, err := decision.Build(buildMatrix(t, base, witness, n))
		require.NoError(t, err)
		gaps, err := decision.DetermineMinimumNumberOfGaps(g)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, gaps, prev, "prefix %d", n)
		prev = gaps
	}
	assert.Equal(t, 1, prev)
}

// TestNilMatrix rejects a nil matrix.
func TestNilMatrix(t *testing.T) {
	_, err := decision.Build(nil)
	assert.ErrorIs(t, err, decision.ErrNilMatrix)
	_, err = decision.Gaps(nil, nil)
	assert.ErrorIs(t, err, decision.ErrNilMatrix)
}

// TestKindString covers the tagged variant names.
func TestKindString(t *testing.T) {
	g := decision.New()
	v, ok := g.Vertex(g.AddCandidate(0, 0, 1))
	require.True(t, ok)
	assert.Equal(t, "candidate", v.Kind.String())
	assert.Equal(t, "start", decision.KindStart.String())
	assert.Equal(t, "end", decision.KindEnd.String())
	_, ok = g.Vertex(42)
	assert.False(t, ok)
	assert.Len(t, g.Outgoing(g.Start()), 0)
}

func BenchmarkBuildAndSolve(b *testing.B) {
	m := buildMatrix(b, "the cat and the dog and the bird and the fish", "the dog and the cat and the fish and the bird", -1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := decision.Build(m)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := decision.Solve(g); err != nil {
			b.Fatal(err)
		}
	}
}
