// SPDX-License-Identifier: MIT

package witness

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvcollate/token"
)

// Parse reads the XML serialization of witness sigil into a tree. Character
// data is tokenized with opts; whitespace between tokens is dropped.
// Content outside the first root element is ignored.
func Parse(sigil, doc string, opts ...token.Option) (*Tree, error) {
	// 1. Validate
	if sigil == "" {
		return nil, ErrEmptySigil
	}

	// 2. Stream XML tokens into the arena
	t := &Tree{sigil: sigil, root: NoNode}
	dec := xml.NewDecoder(strings.NewReader(doc))
	cur := NoNode
	closed := false
	index := 0
	for !closed {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			n := node{kind: KindElement, data: el.Name.Local, attrs: make(map[string]string, len(el.Attr))}
			for _, a := range el.Attr {
				n.attrs[a.Name.Local] = a.Value
			}
			cur = t.add(cur, n)
			if t.root == NoNode {
				t.root = cur
			}
		case xml.CharData:
			if cur == NoNode {
				continue
			}
			w, err := token.Tokenize(sigil, string(el), opts...)
			if err != nil {
				return nil, err
			}
			for _, tk := range w.Tokens {
				tk.Index = index
				index++
				t.add(cur, node{kind: KindText, data: tk.Content, tok: tk})
			}
		case xml.EndElement:
			if cur == NoNode {
				continue
			}
			cur = t.nodes[cur].parent
			closed = cur == NoNode
		}
	}

	// 3. Finalize
	if t.root == NoNode {
		return nil, ErrNoRoot
	}

	return t, nil
}
