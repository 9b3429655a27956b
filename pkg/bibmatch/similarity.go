package bibmatch

import (
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// LevenshteinSimilarity returns 1 - distance/maxLen over the normalized
// forms of a and b, where distance is the unit-cost edit distance.
// Identical normalized strings score 1; a non-empty string against an empty
// one scores 0. The result is symmetric.
func LevenshteinSimilarity(a, b string) float64 {
	na, nb := NormalizeText(a), NormalizeText(b)
	if na == nb {
		return 1
	}
	if na == "" || nb == "" {
		return 0
	}

	maxLen := max(utf8.RuneCountInString(na), utf8.RuneCountInString(nb))
	distance := edlib.LevenshteinDistance(na, nb)
	return 1 - float64(distance)/float64(maxLen)
}

// Jaccard returns |A ∩ B| / |A ∪ B| over the token sets of a and b.
// Two empty inputs score 0.
func Jaccard(a, b []string) float64 {
	setA, setB := tokenSet(a), tokenSet(b)

	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Containment returns the fraction of tokens in a that also occur in b.
// An empty a scores 0.
func Containment(a, b []string) float64 {
	if len(a) == 0 {
		return 0
	}
	setB := tokenSet(b)
	found := 0
	for _, t := range a {
		if _, ok := setB[t]; ok {
			found++
		}
	}
	return float64(found) / float64(len(a))
}

// BidirectionalContainment returns the smaller of Containment(a, b) and
// Containment(b, a).
func BidirectionalContainment(a, b []string) float64 {
	return min(Containment(a, b), Containment(b, a))
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
