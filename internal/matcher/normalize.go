package matcher

import (
	"strings"
	"unicode"
)

// Normalize case-folds text, strips apostrophes, and turns hyphens into
// spaces so that "I'll train at-home" and "ill train at home" compare equal.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch r {
		case '\'', '’':
			// dropped
		case '-', '–', '—':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Tokenize splits normalized text into lowercase word tokens, discarding
// punctuation and whitespace.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// isWordRune reports whether r is part of a word for boundary checks.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
