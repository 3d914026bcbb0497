// SPDX-License-Identifier: MIT

package witness

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/lvcollate/token"
)

var (
	// ErrEmptySigil indicates a witness without sigil.
	ErrEmptySigil = errors.New("witness: sigil is empty")

	// ErrMalformed indicates that the XML could not be decoded.
	ErrMalformed = errors.New("witness: malformed XML")

	// ErrNoRoot indicates a document without element.
	ErrNoRoot = errors.New("witness: document has no root element")

	// ErrNodeNotFound indicates an unknown NodeID.
	ErrNodeNotFound = errors.New("witness: node not found")

	// ErrNoChildren indicates that a node has no children.
	ErrNoChildren = errors.New("witness: node has no children")
)

// NodeID is a stable handle into the node arena.
type NodeID int

// NoNode is the parent of the root.
const NoNode NodeID = -1

// Kind tags the closed set of node variants.
type Kind uint8

const (
	// KindElement marks an element node.
	KindElement Kind = iota
	// KindText marks a text node holding one token.
	KindText
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Node is a read-only view of one arena entry. Data is the element name or
// the token content.
type Node struct {
	ID         NodeID
	Kind       Kind
	Data       string
	Attributes map[string]string
	Parent     NodeID
	Token      token.Token
}

// String implements fmt.Stringer.
func (n Node) String() string { return n.Data }

type node struct {
	kind     Kind
	data     string
	attrs    map[string]string
	tok      token.Token
	parent   NodeID
	children []NodeID
}

// Tree is the arena tree of one witness.
type Tree struct {
	sigil string
	nodes []node
	root  NodeID
}

// Sigil returns the witness sigil.
func (t *Tree) Sigil() string { return t.sigil }

// Root returns the handle of the root element.
func (t *Tree) Root() NodeID { return t.root }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns a view of node id.
func (t *Tree) Node(id NodeID) (Node, error) {
	if !t.has(id) {
		return Node{}, fmt.Errorf("Tree.Node(%d): %w", id, ErrNodeNotFound)
	}
	n := t.nodes[id]

	return Node{ID: id, Kind: n.kind, Data: n.data, Attributes: n.attrs, Parent: n.parent, Token: n.tok}, nil
}

// Children returns the children of id in document order.
func (t *Tree) Children(id NodeID) ([]NodeID, error) {
	if !t.has(id) {
		return nil, fmt.Errorf("Tree.Children(%d): %w", id, ErrNodeNotFound)
	}

	return slices.Clone(t.nodes[id].children), nil
}

// LastChild returns the last child of id.
func (t *Tree) LastChild(id NodeID) (NodeID, error) {
	if !t.has(id) {
		return NoNode, fmt.Errorf("Tree.LastChild(%d): %w", id, ErrNodeNotFound)
	}
	ch := t.nodes[id].children
	if len(ch) == 0 {
		return NoNode, fmt.Errorf("Tree.LastChild(%d): %w", id, ErrNoChildren)
	}

	return ch[len(ch)-1], nil
}

// Parents yields the ancestors of id, nearest first. Unknown handles yield
// nothing.
func (t *Tree) Parents(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		if !t.has(id) {
			return
		}
		for p := t.nodes[id].parent; p != NoNode; p = t.nodes[p].parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Nodes yields every node depth-first, pre-order, starting at the root.
func (t *Tree) Nodes() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		t.preOrder(t.root, yield)
	}
}

func (t *Tree) preOrder(id NodeID, yield func(NodeID) bool) bool {
	if !yield(id) {
		return false
	}
	for _, c := range t.nodes[id].children {
		if !t.preOrder(c, yield) {
			return false
		}
	}

	return true
}

// EventType tags depth-first events.
type EventType uint8

const (
	// EventStart opens an inner node.
	EventStart EventType = iota
	// EventEnd closes an inner node.
	EventEnd
	// EventText visits a leaf.
	EventText
)

// String implements fmt.Stringer.
func (e EventType) String() string {
	switch e {
	case EventStart:
		return "START"
	case EventEnd:
		return "END"
	case EventText:
		return "TEXT"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(e))
	}
}

// Event is one step of DepthFirst.
type Event struct {
	Type EventType
	Node NodeID
}

// DepthFirst yields Start and End events around every node with children
// and a single Text event for every leaf, an empty element included.
func (t *Tree) DepthFirst() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		t.events(t.root, yield)
	}
}

func (t *Tree) events(id NodeID, yield func(Event) bool) bool {
	ch := t.nodes[id].children
	if len(ch) == 0 {
		return yield(Event{Type: EventText, Node: id})
	}
	if !yield(Event{Type: EventStart, Node: id}) {
		return false
	}
	for _, c := range ch {
		if !t.events(c, yield) {
			return false
		}
	}

	return yield(Event{Type: EventEnd, Node: id})
}

// Tokens returns the tokens of all text nodes in document order.
func (t *Tree) Tokens() token.Witness {
	w := token.Witness{Sigil: t.sigil}
	for id := range t.Nodes() {
		if n := t.nodes[id]; n.kind == KindText {
			w.Tokens = append(w.Tokens, n.tok)
		}
	}

	return w
}

func (t *Tree) has(id NodeID) bool { return id >= 0 && int(id) < len(t.nodes) }

// add appends a node under parent and returns its handle.
func (t *Tree) add(parent NodeID, n node) NodeID {
	id := NodeID(len(t.nodes))
	n.parent = parent
	t.nodes = append(t.nodes, n)
	if parent != NoNode {
		t.nodes[parent].children = append(t.nodes[parent].children, id)
	}

	return id
}
