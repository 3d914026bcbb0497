// SPDX-License-Identifier: MIT

package token

import (
	"errors"
	"fmt"
)

// LabelDelimiter separates the sigil part of a label from the quoted content.
// Labels lacking it belong to synthetic (bookkeeping) entries.
const LabelDelimiter = ":'"

var (
	// ErrEmptySigil indicates that a witness was created without a sigil.
	ErrEmptySigil = errors.New("token: witness sigil is empty")

	// ErrLex indicates that the witness text could not be lexed.
	ErrLex = errors.New("token: lexing failed")
)

// Token is one atomic segment of witness text.
//
// Sigil identifies the witness, Index is the zero-based position of the
// token inside its witness, Content is the raw text and Normalized the form
// used by normalizing comparators.
type Token struct {
	Sigil      string
	Index      int
	Content    string
	Normalized string
}

// Label renders the token as <sigil>:'<content>'.
func (t Token) Label() string {
	return fmt.Sprintf("%s%s%s'", t.Sigil, LabelDelimiter, t.Content)
}

// String implements fmt.Stringer.
func (t Token) String() string { return t.Label() }

// Witness is the ordered token sequence of one version of the text.
type Witness struct {
	Sigil  string
	Tokens []Token
}

// Len returns the number of tokens in w.
func (w Witness) Len() int { return len(w.Tokens) }

// Contents returns the raw contents of all tokens in witness order.
func (w Witness) Contents() []string {
	out := make([]string, len(w.Tokens))
	for i, t := range w.Tokens {
		out[i] = t.Content
	}

	return out
}

// FromStrings builds a witness from pre-split contents, normalizing each one
// with n (Lower when n is nil).
func FromStrings(sigil string, contents []string, n Normalizer) (Witness, error) {
	if sigil == "" {
		return Witness{}, ErrEmptySigil
	}
	if n == nil {
		n = Lower
	}
	tokens := make([]Token, len(contents))
	for i, c := range contents {
		tokens[i] = Token{Sigil: sigil, Index: i, Content: c, Normalized: n(c)}
	}

	return Witness{Sigil: sigil, Tokens: tokens}, nil
}
