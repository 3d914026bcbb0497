package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcollate/matching"
	"github.com/katalvlaran/lvcollate/token"
	"github.com/katalvlaran/lvcollate/variantgraph"
)

func refsOf(t *testing.T, text string) []variantgraph.VertexRef {
	t.Helper()
	w, err := token.Tokenize("A", text)
	require.NoError(t, err)
	g := variantgraph.New()
	_, err = g.Merge(w, nil)
	require.NoError(t, err)
	refs, err := g.Refs()
	require.NoError(t, err)

	return refs
}

// TestBetween_Classification covers unique, ambiguous and unmatched tokens.
func TestBetween_Classification(t *testing.T) {
	refs := refsOf(t, "The red cat and the black cat")
	w, err := token.Tokenize("B", "the black dog")
	require.NoError(t, err)

	m := matching.Between(refs, w.Tokens, token.Equality)
	assert.Equal(t, 3, m.Len())
	assert.True(t, m.HasAmbiguity())

	the, black, dog := w.Tokens[0], w.Tokens[1], w.Tokens[2]
	assert.Equal(t, []token.Token{the}, m.Ambiguous())
	assert.Equal(t, []token.Token{black}, m.Unique())
	assert.Equal(t, []token.Token{dog}, m.Unmatched())

	assert.True(t, m.IsAmbiguous(the))
	assert.True(t, m.IsUnique(black))
	require.Len(t, m.Of(the), 2)
	assert.Less(t, m.Of(the)[0].Rank, m.Of(the)[1].Rank, "candidates keep reference order")
}

// TestBetween_SyntheticNeverMatch ensures start/end refs are skipped.
func TestBetween_SyntheticNeverMatch(t *testing.T) {
	refs := refsOf(t, "x")
	w, err := token.Tokenize("B", "x")
	require.NoError(t, err)

	always := func(a, b token.Token) bool { return true }
	m := matching.Between(refs, w.Tokens, always)
	assert.Len(t, m.Of(w.Tokens[0]), 1)
}

// TestBetween_Empty handles empty inputs and a nil comparator.
func TestBetween_Empty(t *testing.T) {
	w, err := token.Tokenize("B", "a b")
	require.NoError(t, err)

	m := matching.Between(nil, w.Tokens, token.Equality)
	assert.Len(t, m.Unmatched(), 2)
	assert.False(t, m.HasAmbiguity())

	m = matching.Between(refsOf(t, "a b"), w.Tokens, nil)
	assert.Len(t, m.Unmatched(), 2)

	m = matching.Between(refsOf(t, "a"), nil, token.Equality)
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Of(token.Token{Content: "a"}))
}
