// SPDX-License-Identifier: MIT

// Package token defines the atomic unit of witness text and the equality
// predicates used to compare tokens of different witnesses.
//
// What:
//
//   - Token: one word or punctuation segment of a witness, carrying the
//     witness sigil, its position, the raw content and a normalized form.
//   - Comparator: an injected equality predicate over two tokens. Strict
//     compares raw content, Equality compares normalized forms and
//     CaseInsensitive folds case on the raw content.
//   - Tokenize: a small lexer-backed splitter (words, punctuation,
//     whitespace) that turns plain text into a Witness.
//
// Tokens are immutable values and comparable, so they can be used as map
// keys by the alignment core.
//
// Errors:
//
//   - ErrEmptySigil  a witness was requested without a sigil.
//   - ErrLex         the lexer rejected the input text.
//
// Complexity:
//
//   - Tokenize: Time O(n) in the text length, Memory O(t) in the token count.
package token
