package bibmatch

import (
	"strings"
	"unicode/utf8"
)

// TitleTokens splits a title into normalized tokens with stopwords removed.
func TitleTokens(title string) []string {
	return titleTokens(DefaultVocabulary(), title)
}

func titleTokens(v *Vocabulary, title string) []string {
	fields := strings.Fields(NormalizeText(title))
	tokens := fields[:0]
	for _, f := range fields {
		if !v.IsStopword(f) {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// AuthorTokens splits an author name into normalized tokens.
// Single-letter tokens (initials) are kept as they are; longer tokens lose
// any trailing periods.
func AuthorTokens(author string) []string {
	fields := strings.Fields(NormalizeAuthor(author))
	for i, f := range fields {
		if utf8.RuneCountInString(f) > 1 {
			fields[i] = strings.TrimRight(f, ".")
		}
	}
	return fields
}
