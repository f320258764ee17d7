package text

import (
	"strconv"
	"strings"

	"gluekit/internal/common"
)

// Pluralize returns singular or plural form based on count.
// Words ending in "s" get "es", every other word gets "s". Zero and negative
// counts are plural.
//
// Example: Pluralize("cat", 1) returns "cat", Pluralize("bus", 2) returns "buses".
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}

	if strings.HasSuffix(word, "s") {
		return word + "es"
	}

	return word + "s"
}

// OrdinalSuffix returns the English ordinal suffix for n.
// 11, 12 and 13 (and 111, 212, ...) take "th".
func OrdinalSuffix(n int) string {
	n = common.Abs(n)

	if common.IsInRange(11, n%100, 13) {
		return "th"
	}

	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// Ordinal renders n followed by its suffix, e.g. "22nd".
func Ordinal(n int) string {
	return strconv.Itoa(n) + OrdinalSuffix(n)
}
