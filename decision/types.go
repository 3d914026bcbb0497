// SPDX-License-Identifier: MIT

package decision

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for decision graph operations.
var (
	// ErrVertexNotFound indicates an edge endpoint that does not exist.
	ErrVertexNotFound = errors.New("decision: vertex not found")

	// ErrBadWeight indicates an edge weight outside {0, 1}.
	ErrBadWeight = errors.New("decision: edge weight must be 0 or 1")

	// ErrBackwardEdge indicates an edge that does not run towards a higher column.
	ErrBackwardEdge = errors.New("decision: edge must run towards a higher column")

	// ErrCycleDetected indicates a back edge during topological sorting.
	ErrCycleDetected = errors.New("decision: cycle detected")

	// ErrUnreachable indicates that the end vertex cannot be reached.
	ErrUnreachable = errors.New("decision: end vertex unreachable")

	// ErrNilMatrix indicates a nil match matrix.
	ErrNilMatrix = errors.New("decision: match matrix is nil")
)

// decisionErrorf wraps err with the method tag.
func decisionErrorf(method string, err error) error {
	return fmt.Errorf("decision.%s: %w", method, err)
}

// VertexID is a stable handle into the vertex arena.
type VertexID int

// Handles of the synthetic vertices.
const (
	StartID VertexID = 0
	EndID   VertexID = 1
)

// Edge weights.
const (
	NoGap = 0
	Gap   = 1
)

// Column keys of the synthetic vertices.
const (
	startColumn = -1
	endColumn   = math.MaxInt
)

// Kind tags the closed set of vertex variants.
type Kind uint8

const (
	// KindStart marks the synthetic start vertex.
	KindStart Kind = iota
	// KindCandidate marks a match candidate.
	KindCandidate
	// KindEnd marks the synthetic end vertex.
	KindEnd
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindCandidate:
		return "candidate"
	case KindEnd:
		return "end"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Vertex is one alignment state. Column, Row and Rank describe the match
// cell of a candidate and are zero for synthetic vertices.
type Vertex struct {
	ID     VertexID
	Kind   Kind
	Column int
	Row    int
	Rank   int
}

// Edge is a weighted transition between two states.
type Edge struct {
	From   VertexID
	To     VertexID
	Weight int
}

// Color constants used by TopologicalOrder.
const (
	White = iota // unvisited
	Gray         // on the DFS stack
	Black        // finished
)
