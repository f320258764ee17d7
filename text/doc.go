// Package text provides small English text helpers: pluralization, ordinal
// suffixes, URL slugs, CSV rendering and edit-distance suggestions.
//
// Key functions:
//   - Pluralize: appends "s" or "es" unless the count is exactly one
//   - OrdinalSuffix, Ordinal: "st", "nd", "rd", "th" suffixes
//   - Slug: lowercase, hyphen-joined words
//   - CSV: RFC 4180 rendering of rows of arbitrary values
//   - Levenshtein, Closest: edit distance and "did you mean" lookups
package text
