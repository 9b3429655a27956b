package recommend

// Options tunes Recommend.
type Options struct {
	MaxPerAuthor int // <= 0 means DefaultMaxPerAuthor
	Limit        int // <= 0 means no limit
}

// Recommend runs the full pipeline over a candidate pool: rank against the
// profile (dropping owned and unscored items), diversify by author, annotate
// with reasons and apply the limit.
func Recommend(candidates []Item, p Profile, owned []Owned, opts Options) []Item {
	ranked := Rank(candidates, p, owned)

	items := make([]Item, len(ranked))
	for i, s := range ranked {
		items[i] = s.Item
	}

	items = Annotate(Diversify(items, opts.MaxPerAuthor), p)
	if opts.Limit > 0 && len(items) > opts.Limit {
		items = items[:opts.Limit]
	}
	return items
}
