// SPDX-License-Identifier: MIT

package variantgraph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcollate/token"
)

// Sentinel errors for variant graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("variantgraph: vertex not found")

	// ErrSelfLoop indicates an edge from a vertex to itself was requested.
	ErrSelfLoop = errors.New("variantgraph: self-loop not allowed")

	// ErrDuplicateWitness indicates a witness sigil was merged more than once.
	ErrDuplicateWitness = errors.New("variantgraph: witness already merged")

	// ErrEmptySigil indicates a witness without sigil.
	ErrEmptySigil = errors.New("variantgraph: witness sigil is empty")

	// ErrCycle indicates that ranking encountered a cycle.
	ErrCycle = errors.New("variantgraph: cycle detected")
)

// graphErrorf wraps err with the method tag and the offending vertex.
func graphErrorf(method string, id VertexID, err error) error {
	return fmt.Errorf("Graph.%s(%d): %w", method, id, err)
}

// VertexID is a stable handle into the vertex arena.
type VertexID int

// Handles of the synthetic vertices; they exist in every graph.
const (
	StartID VertexID = 0
	EndID   VertexID = 1
)

// Kind tags the closed set of vertex variants.
type Kind uint8

const (
	// KindStart marks the synthetic start vertex.
	KindStart Kind = iota
	// KindToken marks a vertex holding witness tokens.
	KindToken
	// KindEnd marks the synthetic end vertex.
	KindEnd
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindToken:
		return "token"
	case KindEnd:
		return "end"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Vertex is a read-only view of one arena entry.
// Tokens holds at most one token per witness, in merge order.
type Vertex struct {
	ID     VertexID
	Kind   Kind
	Tokens []token.Token
}

// Sigils returns the sigils of the witnesses passing through v.
func (v Vertex) Sigils() []string {
	out := make([]string, len(v.Tokens))
	for i, t := range v.Tokens {
		out[i] = t.Sigil
	}

	return out
}

// Edge connects two vertices and records the witnesses traversing it.
type Edge struct {
	From   VertexID
	To     VertexID
	Sigils []string
}

// VertexRef is an immutable snapshot of one ranked vertex.
//
// Token is the representative (first merged) token of a KindToken vertex and
// the zero Token for synthetic vertices. Sigils is the comma-joined list of
// witnesses through the vertex at snapshot time.
type VertexRef struct {
	ID     VertexID
	Kind   Kind
	Rank   int
	Token  token.Token
	Sigils string
}

// Label renders the reference. Synthetic vertices render without the
// token.LabelDelimiter so label-filtering consumers can drop them.
func (r VertexRef) Label() string {
	switch r.Kind {
	case KindStart:
		return "#start"
	case KindEnd:
		return "#end"
	case KindToken:
		return fmt.Sprintf("[%s%s%s']", r.Sigils, token.LabelDelimiter, r.Token.Normalized)
	default:
		return fmt.Sprintf("#%s", r.Kind)
	}
}

// String implements fmt.Stringer.
func (r VertexRef) String() string { return r.Label() }

// IsToken reports whether r addresses a token vertex.
func (r VertexRef) IsToken() bool { return r.Kind == KindToken }

// joinSigils renders sigils the way VertexRef stores them.
func joinSigils(sigils []string) string { return strings.Join(sigils, ",") }
