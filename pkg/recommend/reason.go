package recommend

import "fmt"

// HighRatingThreshold is the average rating at which an item counts as
// highly rated.
const HighRatingThreshold = 4.0

const defaultReason = "Based on your reading preferences"

// Reason explains why an item was recommended. The first applicable rule
// wins: favorite author, then matching genre, then high rating.
func Reason(it Item, p Profile) string {
	if _, ok := favoriteAuthorOf(it, p); ok {
		return fmt.Sprintf("By %s, one of your favorite authors", it.Author)
	}
	for _, c := range it.Categories {
		if g, ok := genreOf(c, p); ok {
			return fmt.Sprintf("Matches your interest in %s", g)
		}
	}
	if it.AverageRating != nil && *it.AverageRating >= HighRatingThreshold {
		return "Highly rated by readers"
	}
	return defaultReason
}

// Annotate sets Reason on every item in place and returns the slice.
func Annotate(items []Item, p Profile) []Item {
	for i := range items {
		items[i].Reason = Reason(items[i], p)
	}
	return items
}
