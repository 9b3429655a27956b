package bibmatch

import "strings"

// MatchISBN reports whether any ISBN on the candidate agrees with any ISBN
// on the target. Two ISBNs agree when they are equal after normalization or
// one contains the other, which tolerates ISBN-10/13 prefix variants.
func MatchISBN(c Candidate, t Target) bool {
	candidateISBNs := collectISBNs(c.ISBN, c.ISBN10, c.ISBN13)
	targetISBNs := collectISBNs(t.ISBN10, t.ISBN13)

	for _, ci := range candidateISBNs {
		for _, ti := range targetISBNs {
			if ci == ti || strings.Contains(ci, ti) || strings.Contains(ti, ci) {
				return true
			}
		}
	}
	return false
}

func collectISBNs(values ...string) []string {
	var out []string
	for _, v := range values {
		if n := NormalizeISBN(v); n != "" {
			out = append(out, n)
		}
	}
	return out
}
