package recommend

import "strings"

// DefaultMaxPerAuthor is the per-author cap used when none is given.
const DefaultMaxPerAuthor = 3

const unknownAuthor = "unknown"

// Diversify reorders items so that no author contributes more than
// maxPerAuthor of the leading items. Authors take turns in the order they
// first appear, each yielding its items in their original order. Items over
// the cap are appended afterwards in the same author order: nothing is
// dropped, so the output is always a permutation of the input.
//
// A maxPerAuthor of zero or less means DefaultMaxPerAuthor.
func Diversify(items []Item, maxPerAuthor int) []Item {
	if maxPerAuthor <= 0 {
		maxPerAuthor = DefaultMaxPerAuthor
	}

	type group struct {
		items []Item
		taken int
	}
	var (
		order  []string
		groups = make(map[string]*group)
	)
	for _, it := range items {
		key := authorKey(it.Author)
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		g.items = append(g.items, it)
	}

	out := make([]Item, 0, len(items))
	for {
		yielded := false
		for _, key := range order {
			g := groups[key]
			if g.taken >= maxPerAuthor || g.taken >= len(g.items) {
				continue
			}
			out = append(out, g.items[g.taken])
			g.taken++
			yielded = true
		}
		if !yielded {
			break
		}
	}

	for _, key := range order {
		g := groups[key]
		out = append(out, g.items[g.taken:]...)
	}
	return out
}

func authorKey(author string) string {
	key := strings.ToLower(strings.TrimSpace(author))
	if key == "" {
		return unknownAuthor
	}
	return key
}
