package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeLibrary(t *testing.T) {
	books := []Owned{
		{Title: "Guards! Guards!", Author: "Terry Pratchett", Tags: []string{"Fantasy", "Humor"}, Series: "Discworld"},
		{Title: "Mort", Author: "Terry Pratchett", Tags: []string{"Fantasy"}, Series: "Discworld"},
		{Title: "Good Omens", Author: "Terry Pratchett & Neil Gaiman", Tags: []string{"Fantasy", "Humor"}},
		{Title: "Dune", Author: "Frank Herbert", Tags: []string{"Science Fiction"}, Series: "Dune"},
	}
	audiobooks := []Owned{
		{Title: "American Gods", Author: "Neil Gaiman", Tags: []string{"Fantasy", "Mythology"}},
		{Title: "Project Hail Mary", Author: "Andy Weir", Tags: []string{"Science Fiction"}},
	}

	p := AnalyzeLibrary(books, audiobooks)

	assert.Equal(t, []string{"Terry Pratchett", "Neil Gaiman"}, p.FavoriteAuthors)
	assert.Equal(t, []string{"Fantasy", "Humor", "Science Fiction", "Mythology"}, p.TopGenres)
	assert.Equal(t, p.TopGenres, p.TopTags)
	assert.Equal(t, []string{"Discworld", "Dune"}, p.PreferredSeries)
}

func TestAnalyzeLibrary_SingleAppearanceIsNotFavorite(t *testing.T) {
	books := []Owned{
		{Title: "One", Author: "Author X"},
		{Title: "Two", Author: "Author Y"},
		{Title: "Three", Author: "Author Y"},
	}

	p := AnalyzeLibrary(books, nil)

	assert.NotContains(t, p.FavoriteAuthors, "Author X")
	assert.Equal(t, []string{"Author Y"}, p.FavoriteAuthors)
}

func TestAnalyzeLibrary_Limits(t *testing.T) {
	var books []Owned
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		for range 2 {
			books = append(books, Owned{
				Author: name,
				Tags:   []string{"tag" + name},
				Series: "series" + name,
			})
		}
	}

	p := AnalyzeLibrary(books, nil)

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, p.FavoriteAuthors, "ties keep encounter order")
	assert.Len(t, p.TopTags, MaxTopTags)
	assert.Equal(t, []string{"seriesA", "seriesB", "seriesC"}, p.PreferredSeries)
}

func TestAnalyzeLibrary_Empty(t *testing.T) {
	p := AnalyzeLibrary(nil, nil)
	assert.Empty(t, p.FavoriteAuthors)
	assert.Empty(t, p.TopGenres)
	assert.Empty(t, p.PreferredSeries)
}

func TestSplitAuthors(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Terry Pratchett & Neil Gaiman", []string{"Terry Pratchett", "Neil Gaiman"}},
		{"A; B, C", []string{"A", "B", "C"}},
		{" , ;", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitAuthors(tt.input))
		})
	}
}
