// Package bibmatch decides whether bibliographic records from different
// sources describe the same work.
//
// Matching runs in stages: ISBNs first, then titles, then authors. Every
// function in this package is pure and safe for concurrent use.
package bibmatch

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nonWordRegex matches runs of anything that is not a letter, digit or underscore.
var nonWordRegex = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// NormalizeText lowercases s, strips diacritics, replaces punctuation with
// spaces and collapses whitespace. It is idempotent.
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = removeAccents(s)
	s = nonWordRegex.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// NormalizeISBN removes hyphens and spaces. Case and digits are untouched,
// so a trailing ISBN-10 check character "X" survives as written.
func NormalizeISBN(s string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(s)
}

// NormalizeAuthor normalizes a personal name, reordering "Last, First" into
// "first last". Only the first comma splits:
//
//	NormalizeAuthor("Tolkien, J.R.R.") == "j r r tolkien"
func NormalizeAuthor(s string) string {
	last, first, ok := strings.Cut(s, ",")
	if !ok {
		return NormalizeText(s)
	}
	return strings.TrimSpace(NormalizeText(first) + " " + NormalizeText(last))
}
