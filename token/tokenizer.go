// SPDX-License-Identifier: MIT

package token

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer symbol names.
const (
	symWord       = "Word"
	symPunct      = "Punct"
	symWhitespace = "Whitespace"
)

// witnessLexer splits text into words, single punctuation marks and
// whitespace runs. Rule order matters: words win over punctuation so that
// inner apostrophes and hyphens stay inside a word.
var witnessLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: symWord, Pattern: `[\p{L}\p{N}]+(?:['’\-][\p{L}\p{N}]+)*`},
	{Name: symPunct, Pattern: `[^\p{L}\p{N}\s]`},
	{Name: symWhitespace, Pattern: `\s+`},
})

// Option configures Tokenize.
type Option func(*options)

type options struct {
	normalizer  Normalizer
	punctuation bool
}

func defaultOptions() options {
	return options{normalizer: Lower, punctuation: true}
}

// WithNormalizer sets the normalizer applied to every token.
// Passing nil has no effect.
func WithNormalizer(n Normalizer) Option {
	return func(o *options) {
		if n != nil {
			o.normalizer = n
		}
	}
}

// WithPunctuation controls whether punctuation marks become tokens.
// Default: true.
func WithPunctuation(keep bool) Option {
	return func(o *options) { o.punctuation = keep }
}

// Tokenize splits text into the token sequence of witness sigil.
// Whitespace separates tokens and is never a token itself.
func Tokenize(sigil, text string, opts ...Option) (Witness, error) {
	// 1. Validate sigil
	if sigil == "" {
		return Witness{}, ErrEmptySigil
	}
	// 2. Apply options
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// 3. Lex the whole text
	lex, err := witnessLexer.LexString(sigil, text)
	if err != nil {
		return Witness{}, fmt.Errorf("%w: %v", ErrLex, err)
	}
	lexemes, err := lexer.ConsumeAll(lex)
	if err != nil {
		return Witness{}, fmt.Errorf("%w: %v", ErrLex, err)
	}
	// 4. Keep words (and punctuation if requested) in order
	symbols := witnessLexer.Symbols()
	word, punct := symbols[symWord], symbols[symPunct]
	tokens := make([]Token, 0, len(lexemes)/2+1)
	for _, lx := range lexemes {
		if lx.EOF() {
			break
		}
		switch lx.Type {
		case word:
		case punct:
			if !o.punctuation {
				continue
			}
		default:
			continue
		}
		tokens = append(tokens, Token{
			Sigil:      sigil,
			Index:      len(tokens),
			Content:    lx.Value,
			Normalized: o.normalizer(lx.Value),
		})
	}

	return Witness{Sigil: sigil, Tokens: tokens}, nil
}
