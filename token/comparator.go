// SPDX-License-Identifier: MIT

package token

import (
	"strings"
	"unicode"
)

// Comparator reports whether two tokens should be treated as the same
// reading. Implementations must be pure and symmetric.
type Comparator func(a, b Token) bool

// Strict compares raw contents byte for byte.
func Strict(a, b Token) bool { return a.Content == b.Content }

// Equality compares normalized forms.
func Equality(a, b Token) bool { return a.Normalized == b.Normalized }

// CaseInsensitive compares raw contents under Unicode case folding.
func CaseInsensitive(a, b Token) bool { return strings.EqualFold(a.Content, b.Content) }

// ComparatorByName resolves a configured comparator name.
// Known names: "strict", "equality", "case-insensitive".
func ComparatorByName(name string) (Comparator, bool) {
	switch name {
	case "strict":
		return Strict, true
	case "equality", "":
		return Equality, true
	case "case-insensitive":
		return CaseInsensitive, true
	default:
		return nil, false
	}
}

// Normalizer maps raw token content to its normalized form.
type Normalizer func(content string) string

// Identity leaves content unchanged.
func Identity(content string) string { return content }

// Lower trims surrounding whitespace and lowercases content.
func Lower(content string) string { return strings.ToLower(strings.TrimSpace(content)) }

// StripPunctuation lowercases content and removes every punctuation rune.
// A token made only of punctuation keeps its lowercased form so that it
// still matches itself.
func StripPunctuation(content string) string {
	lowered := Lower(content)
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}

		return r
	}, lowered)
	if stripped == "" {
		return lowered
	}

	return stripped
}
