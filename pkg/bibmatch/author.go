package bibmatch

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// MatchAuthors compares a free-text author string against the names of the
// target's authors. A missing author on either side is neutral: it matches
// with NeutralAuthorScore, so absence never blocks a match but never
// confirms one either.
func MatchAuthors(result string, targets []string) (bool, float64) {
	targets = presentAuthors(targets)
	if strings.TrimSpace(result) == "" || len(targets) == 0 {
		return true, NeutralAuthorScore
	}

	normResult := NormalizeAuthor(result)
	resultTokens := significantTokens(AuthorTokens(result))

	best := 0.0
	for _, target := range targets {
		best = max(best, scoreAuthor(normResult, resultTokens, target))
	}
	return best >= AuthorMatchThreshold, best
}

func scoreAuthor(normResult string, resultTokens []string, target string) float64 {
	normTarget := NormalizeAuthor(target)
	if normTarget == "" {
		return 0
	}
	if normResult != "" && (strings.Contains(normResult, normTarget) || strings.Contains(normTarget, normResult)) {
		return AuthorSubstringScore
	}

	score := 0.0

	// Initials carry too little signal to count as evidence on either side.
	significant := significantTokens(AuthorTokens(target))
	if len(significant) > 0 {
		matched := 0
		for _, t := range significant {
			if containsMutual(resultTokens, t) {
				matched++
			}
		}
		switch {
		case matched == len(significant):
			score = AuthorAllTokensScore
		case matched > 0:
			score = float64(matched) / float64(len(significant)) * AuthorPartialWeight
		}
	}

	return max(score, LevenshteinSimilarity(normResult, normTarget)*AuthorEditWeight)
}

// containsMutual reports whether tok is a substring of any token or any
// token is a substring of tok.
func containsMutual(tokens []string, tok string) bool {
	for _, t := range tokens {
		if strings.Contains(t, tok) || strings.Contains(tok, t) {
			return true
		}
	}
	return false
}

// significantTokens drops single-rune tokens (initials).
func significantTokens(tokens []string) []string {
	return slices.DeleteFunc(tokens, func(t string) bool {
		return utf8.RuneCountInString(t) <= 1
	})
}

// presentAuthors returns the target authors that are not blank. The input
// slice is left untouched.
func presentAuthors(authors []string) []string {
	return slices.DeleteFunc(slices.Clone(authors), func(a string) bool {
		return strings.TrimSpace(a) == ""
	})
}
