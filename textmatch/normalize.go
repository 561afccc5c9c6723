// Package textmatch implements the shallow free-text matching used to grade
// short text answers: normalization, important-word extraction and a
// word-overlap ratio check.
package textmatch

import (
	"strings"
	"unicode"
)

// Normalize lower-cases s, replaces every rune outside [a-z0-9] with a space,
// collapses runs of spaces and trims the result. Whitespace falls into the
// replaced class, so the output is a single-space separated list of tokens.
//
// U+0130 (dotted capital I) lower-cases to "i" followed by a combining dot, so
// it ends the current token: "İstanbul" becomes "i stanbul".
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pending := false
	emit := func(r rune) {
		if pending && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pending = false
		b.WriteRune(r)
	}

	for _, r := range s {
		if r == '\u0130' {
			emit('i')
			pending = true
			continue
		}
		r = unicode.ToLower(r)
		if !isTokenRune(r) {
			pending = true
			continue
		}
		emit(r)
	}
	return b.String()
}

func isTokenRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
