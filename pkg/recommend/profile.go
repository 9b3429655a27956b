// Package recommend ranks external book recommendations against a profile
// inferred from the user's own library.
//
// The pipeline is AnalyzeLibrary, then Rank, Diversify and Annotate. All
// functions are pure; values are recomputed per request.
package recommend

import (
	"regexp"
	"slices"
	"strings"
)

// Profile limits.
const (
	MinFavoriteAuthorCount = 2
	MaxFavoriteAuthors     = 5
	MaxTopTags             = 5
	MaxPreferredSeries     = 3
)

// authorSeparatorRegex splits multi-author strings such as "Pratchett & Gaiman".
var authorSeparatorRegex = regexp.MustCompile(`[,;&]`)

// Owned is a book or audiobook already in the user's library.
type Owned struct {
	Title  string
	Author string
	ISBN   string
	Tags   []string
	Series string

	// OtherISBNs lists further identifiers of the same edition, such as the
	// ISBN-10 of a book whose ISBN is its ISBN-13.
	OtherISBNs []string
}

// Profile summarises what a user reads. Every list is ordered most frequent
// first; ties keep the order in which values were first seen.
type Profile struct {
	FavoriteAuthors []string
	TopGenres       []string
	TopTags         []string
	PreferredSeries []string
}

// AnalyzeLibrary derives a Profile from the owned books and audiobooks.
// Only authors that appear at least twice count as favorites.
func AnalyzeLibrary(books, audiobooks []Owned) Profile {
	authors := newCounter()
	tags := newCounter()
	series := newCounter()

	for _, items := range [][]Owned{books, audiobooks} {
		for _, it := range items {
			for _, a := range SplitAuthors(it.Author) {
				authors.add(a)
			}
			for _, tag := range it.Tags {
				tags.add(strings.TrimSpace(tag))
			}
			series.add(strings.TrimSpace(it.Series))
		}
	}

	topTags := tags.top(MaxTopTags, 1)
	return Profile{
		FavoriteAuthors: authors.top(MaxFavoriteAuthors, MinFavoriteAuthorCount),
		TopGenres:       topTags,
		TopTags:         slices.Clone(topTags),
		PreferredSeries: series.top(MaxPreferredSeries, 1),
	}
}

// SplitAuthors splits a multi-author string on ",", ";" and "&", dropping
// blank parts.
func SplitAuthors(s string) []string {
	var out []string
	for _, part := range authorSeparatorRegex.Split(s, -1) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// counter counts values while remembering first-encounter order.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(v string) {
	if v == "" {
		return
	}
	if _, ok := c.counts[v]; !ok {
		c.order = append(c.order, v)
	}
	c.counts[v]++
}

// top returns up to n values seen at least minCount times, most frequent first.
func (c *counter) top(n, minCount int) []string {
	var keys []string
	for _, k := range c.order {
		if c.counts[k] >= minCount {
			keys = append(keys, k)
		}
	}
	slices.SortStableFunc(keys, func(a, b string) int {
		return c.counts[b] - c.counts[a]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}
