package textmatch

import (
	"strings"
	"unicode"
)

// Tokenize lower-cases text and splits it into maximal runs of letters and
// digits. Empty or punctuation-only input yields an empty sequence.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
