package text

import (
	"strings"
	"unicode"
)

// Slug converts text to a URL-friendly slug.
// The normalization pipeline:
// 1. Case-fold to lower.
// 2. Drop apostrophes, so "Jeremy's" becomes "jeremys".
// 3. Treat every other run of non-alphanumeric runes as one word break.
// 4. Join the words with single hyphens.
func Slug(s string) string {
	return strings.Join(slugWords(strings.ToLower(s)), "-")
}

// slugWords splits s into alphanumeric words.
func slugWords(s string) []string {
	var words []string

	var current strings.Builder

	for _, r := range s {
		switch {
		case isApostrophe(r):
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			current.WriteRune(r)
		case current.Len() > 0:
			words = append(words, current.String())
			current.Reset()
		}
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '\u2019'
}
