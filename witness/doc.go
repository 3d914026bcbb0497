// SPDX-License-Identifier: MIT

// Package witness reads marked-up witnesses into an arena tree.
//
// Every node lives in one slice and is addressed by a stable NodeID; parent
// and child relations are indices, not pointers. A node is either an
// element (name plus attributes) or a text node holding one token.
// Character data is split into tokens with package token, so the tokens of
// a witness can be read straight off the tree in document order.
//
// Traversals are lazy, restartable sequences:
//
//   - Parents walks from a node up to the root.
//   - Nodes walks the tree depth-first, pre-order.
//   - DepthFirst emits Start/End events around inner nodes and one Text
//     event per leaf.
//
// Errors:
//
//   - ErrEmptySigil    Parse without sigil.
//   - ErrMalformed     the XML could not be decoded.
//   - ErrNoRoot        the document holds no element.
//   - ErrNodeNotFound  a NodeID does not address a node.
//   - ErrNoChildren    LastChild on a leaf.
package witness
