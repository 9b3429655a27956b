package recommend

import (
	"slices"
	"strings"

	"github.com/vmunix/shelfmatch/pkg/bibmatch"
)

// Score contributions.
const (
	BonusFavoriteAuthor = 10
	BonusGenre          = 5

	// ScoreExcluded marks a candidate the user already owns.
	ScoreExcluded = -1
)

// Item is an external recommendation candidate.
type Item struct {
	ID            string
	Title         string
	Author        string
	Description   string
	Cover         string
	ISBN          string
	Publisher     string
	Categories    []string
	AverageRating *float64
	PageCount     int

	// Reason is attached by Annotate.
	Reason string
}

// Scored pairs an item with its score.
type Scored struct {
	Item  Item
	Score float64
}

// ownedIndex answers "does the user already have this?" lookups.
type ownedIndex struct {
	isbns  map[string]struct{}
	titles map[string]struct{}
}

func newOwnedIndex(owned []Owned) ownedIndex {
	idx := ownedIndex{
		isbns:  make(map[string]struct{}, len(owned)),
		titles: make(map[string]struct{}, len(owned)),
	}
	for _, o := range owned {
		for _, raw := range append([]string{o.ISBN}, o.OtherISBNs...) {
			if isbn := bibmatch.NormalizeISBN(raw); isbn != "" {
				idx.isbns[isbn] = struct{}{}
			}
		}
		if title := lowerTitle(o.Title); title != "" {
			idx.titles[title] = struct{}{}
		}
	}
	return idx
}

func (idx ownedIndex) contains(it Item) bool {
	if isbn := bibmatch.NormalizeISBN(it.ISBN); isbn != "" {
		if _, ok := idx.isbns[isbn]; ok {
			return true
		}
	}
	if title := lowerTitle(it.Title); title != "" {
		if _, ok := idx.titles[title]; ok {
			return true
		}
	}
	return false
}

func lowerTitle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ScoreItem scores a single candidate. Items already owned (same ISBN or
// same title, ignoring case) get ScoreExcluded.
func ScoreItem(it Item, p Profile, owned []Owned) float64 {
	return scoreItem(it, p, newOwnedIndex(owned))
}

func scoreItem(it Item, p Profile, idx ownedIndex) float64 {
	if idx.contains(it) {
		return ScoreExcluded
	}

	score := 0.0
	if _, ok := favoriteAuthorOf(it, p); ok {
		score += BonusFavoriteAuthor
	}
	for _, c := range it.Categories {
		if _, ok := genreOf(c, p); ok {
			score += BonusGenre
		}
	}
	if it.AverageRating != nil {
		score += *it.AverageRating
	}
	return score
}

// Rank scores candidates, drops anything scoring zero or less and orders the
// rest best first. Equal scores keep their input order.
func Rank(candidates []Item, p Profile, owned []Owned) []Scored {
	idx := newOwnedIndex(owned)

	var out []Scored
	for _, it := range candidates {
		if s := scoreItem(it, p, idx); s > 0 {
			out = append(out, Scored{Item: it, Score: s})
		}
	}
	slices.SortStableFunc(out, func(a, b Scored) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	return out
}

// favoriteAuthorOf returns the favorite author the item's author contains.
func favoriteAuthorOf(it Item, p Profile) (string, bool) {
	author := strings.ToLower(it.Author)
	if author == "" {
		return "", false
	}
	for _, fav := range p.FavoriteAuthors {
		if f := strings.ToLower(fav); f != "" && strings.Contains(author, f) {
			return fav, true
		}
	}
	return "", false
}

// genreOf returns the top genre a category contains.
func genreOf(category string, p Profile) (string, bool) {
	c := strings.ToLower(category)
	if c == "" {
		return "", false
	}
	for _, g := range p.TopGenres {
		if lg := strings.ToLower(g); lg != "" && strings.Contains(c, lg) {
			return g, true
		}
	}
	return "", false
}
