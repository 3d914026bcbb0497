package variantgraph_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcollate/token"
	"github.com/katalvlaran/lvcollate/variantgraph"
)

func mustWitness(t *testing.T, sigil, text string) token.Witness {
	t.Helper()
	w, err := token.Tokenize(sigil, text)
	require.NoError(t, err)

	return w
}

// TestNew_SyntheticVertices verifies an empty graph has only start and end.
func TestNew_SyntheticVertices(t *testing.T) {
	g := variantgraph.New()
	assert.Equal(t, 2, g.VertexCount())

	refs, err := g.Refs()
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "#start", refs[0].Label())
	assert.Equal(t, 0, refs[0].Rank)
	assert.Equal(t, "#end", refs[1].Label())
	assert.Equal(t, 1, refs[1].Rank)
}

// TestConnect_Errors covers unknown handles and self-loops.
func TestConnect_Errors(t *testing.T) {
	g := variantgraph.New()
	assert.ErrorIs(t, g.Connect(g.Start(), 42, "A"), variantgraph.ErrVertexNotFound)
	assert.ErrorIs(t, g.Connect(-1, g.End(), "A"), variantgraph.ErrVertexNotFound)
	assert.ErrorIs(t, g.Connect(g.Start(), g.Start(), "A"), variantgraph.ErrSelfLoop)

	_, err := g.Vertex(7)
	assert.ErrorIs(t, err, variantgraph.ErrVertexNotFound)
}

// TestConnect_SharedEdge checks that a second witness extends an edge.
func TestConnect_SharedEdge(t *testing.T) {
	g := variantgraph.New()
	require.NoError(t, g.Connect(g.Start(), g.End(), "A"))
	require.NoError(t, g.Connect(g.Start(), g.End(), "B"))
	require.NoError(t, g.Connect(g.Start(), g.End(), "B"))

	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, []string{"A", "B"}, edges[0].Sigils)
}

// TestMerge_FirstWitness builds a chain from the first witness.
func TestMerge_FirstWitness(t *testing.T) {
	g := variantgraph.New()
	rep, err := g.Merge(mustWitness(t, "A", "the black cat"), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Aligned)
	assert.Equal(t, 3, rep.Added)

	refs, err := g.Refs()
	require.NoError(t, err)
	require.Len(t, refs, 5)
	for i, r := range refs {
		assert.Equal(t, i, r.Rank)
	}
	assert.Equal(t, "[A:'black']", refs[2].Label())
	assert.Equal(t, []string{"A"}, g.Sigils())
}

// TestMerge_DuplicateWitness rejects a sigil merged twice.
func TestMerge_DuplicateWitness(t *testing.T) {
	g := variantgraph.New()
	_, err := g.Merge(mustWitness(t, "A", "x"), nil)
	require.NoError(t, err)
	_, err = g.Merge(mustWitness(t, "A", "y"), nil)
	assert.ErrorIs(t, err, variantgraph.ErrDuplicateWitness)

	_, err = g.Merge(token.Witness{}, nil)
	assert.ErrorIs(t, err, variantgraph.ErrEmptySigil)
}

// alignByContent links every token of w to the first unused token vertex
// with equal normalized content.
func alignByContent(t *testing.T, g *variantgraph.Graph, w token.Witness) map[token.Token]variantgraph.VertexRef {
	t.Helper()
	refs, err := g.Refs()
	require.NoError(t, err)
	used := map[variantgraph.VertexID]bool{}
	out := map[token.Token]variantgraph.VertexRef{}
	for _, tk := range w.Tokens {
		for _, r := range refs {
			if r.IsToken() && !used[r.ID] && r.Token.Normalized == tk.Normalized {
				out[tk] = r
				used[r.ID] = true
				break
			}
		}
	}

	return out
}

// TestMerge_VariantAndTable merges a variant reading and an omission.
func TestMerge_VariantAndTable(t *testing.T) {
	g := variantgraph.New()
	_, err := g.Merge(mustWitness(t, "A", "the black cat"), nil)
	require.NoError(t, err)

	b := mustWitness(t, "B", "the white cat")
	rep, err := g.Merge(b, alignByContent(t, g, b))
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Aligned)
	assert.Equal(t, 1, rep.Added)
	assert.Empty(t, rep.Transposed)

	c := mustWitness(t, "C", "the cat")
	_, err = g.Merge(c, alignByContent(t, g, c))
	require.NoError(t, err)

	table, err := g.Table()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, table.Sigils)
	assert.Equal(t, 3, table.Columns())
	assert.Equal(t, []string{"the", "black", "cat"}, table.Rows[0])
	assert.Equal(t, []string{"the", "white", "cat"}, table.Rows[1])
	assert.Equal(t, []string{"the", "", "cat"}, table.Rows[2])
	assert.False(t, table.Variant(0))
	assert.True(t, table.Variant(1))
	assert.Equal(t, "A: the | black | cat\nB: the | white | cat\nC: the | - | cat\n", table.String())

	// "black" and "white" share a rank; ties keep creation order.
	refs, err := g.Refs()
	require.NoError(t, err)
	assert.Equal(t, refs[2].Rank, refs[3].Rank)
	assert.Equal(t, "black", refs[2].Token.Content)
	assert.Equal(t, "white", refs[3].Token.Content)
	assert.Equal(t, "[A,B,C:'the']", refs[1].Label())
}

// TestMerge_Transposition drops the link that contradicts the others.
func TestMerge_Transposition(t *testing.T) {
	g := variantgraph.New()
	_, err := g.Merge(mustWitness(t, "A", "a b c"), nil)
	require.NoError(t, err)

	b := mustWitness(t, "B", "c a b")
	rep, err := g.Merge(b, alignByContent(t, g, b))
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Aligned)
	assert.Equal(t, 1, rep.Added)
	require.Len(t, rep.Transposed, 1)
	assert.Equal(t, "c", rep.Transposed[0].Content)

	// Still acyclic and rankable.
	refs, err := g.Refs()
	require.NoError(t, err)
	assert.Len(t, refs, 6)
}

// TestWitnessPath_Restartable iterates the same path twice.
func TestWitnessPath_Restartable(t *testing.T) {
	g := variantgraph.New()
	_, err := g.Merge(mustWitness(t, "A", "one two three"), nil)
	require.NoError(t, err)

	first := slices.Collect(g.WitnessPath("A"))
	second := slices.Collect(g.WitnessPath("A"))
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
	assert.Empty(t, slices.Collect(g.WitnessPath("Z")))
}

// TestSuperbase_ConsecutiveRanks flattens parallel variants.
func TestSuperbase_ConsecutiveRanks(t *testing.T) {
	g := variantgraph.New()
	_, err := g.Merge(mustWitness(t, "A", "the black cat"), nil)
	require.NoError(t, err)
	b := mustWitness(t, "B", "the white cat")
	_, err = g.Merge(b, alignByContent(t, g, b))
	require.NoError(t, err)

	sb, err := g.Superbase()
	require.NoError(t, err)
	require.Len(t, sb, 6)
	for i, r := range sb {
		assert.Equal(t, i, r.Rank)
	}
	assert.Equal(t, variantgraph.KindStart, sb[0].Kind)
	assert.Equal(t, variantgraph.KindEnd, sb[5].Kind)
	assert.Equal(t, []string{"the", "black", "white", "cat"}, []string{
		sb[1].Token.Content, sb[2].Token.Content, sb[3].Token.Content, sb[4].Token.Content,
	})
}

// TestRankOf returns ranks and rejects unknown handles.
func TestRankOf(t *testing.T) {
	g := variantgraph.New()
	_, err := g.Merge(mustWitness(t, "A", "x y"), nil)
	require.NoError(t, err)

	r, err := g.RankOf(g.End())
	require.NoError(t, err)
	assert.Equal(t, 3, r)

	_, err = g.RankOf(99)
	assert.ErrorIs(t, err, variantgraph.ErrVertexNotFound)
}
