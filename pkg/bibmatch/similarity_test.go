package bibmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"classic example", "kitten", "sitting", 1 - 3.0/7.0},
		{"identical after normalization", "Dune", "DUNE!", 1},
		{"both empty", "", "", 1},
		{"one empty", "", "dune", 0},
		{"punctuation only vs word", "...", "dune", 0},
		{"single substitution", "neil stephenson", "neal stephenson", 1 - 1.0/15.0},
		{"runes not bytes", "émile", "emile", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, LevenshteinSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestLevenshteinSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"The Hobbit", "The Silmarillion"},
		{"Dune", "Dune Messiah"},
		{"", "x"},
	}
	for _, p := range pairs {
		assert.Equal(t, LevenshteinSimilarity(p[0], p[1]), LevenshteinSimilarity(p[1], p[0]), "%q vs %q", p[0], p[1])
	}
}

func TestJaccard(t *testing.T) {
	assert.InDelta(t, 1.0/3.0, Jaccard([]string{"a", "b"}, []string{"b", "c"}), 1e-9)
	assert.InDelta(t, 0.5, Jaccard([]string{"a", "a", "b"}, []string{"a"}), 1e-9, "duplicates do not inflate")
	assert.InDelta(t, 1.0, Jaccard([]string{"a"}, []string{"a", "a"}), 1e-9)
	assert.Zero(t, Jaccard(nil, nil))
	assert.Zero(t, Jaccard([]string{"a"}, nil))
}

func TestContainment(t *testing.T) {
	assert.InDelta(t, 0.5, Containment([]string{"a", "b"}, []string{"a"}), 1e-9)
	assert.InDelta(t, 1.0, Containment([]string{"a"}, []string{"a", "b"}), 1e-9)
	assert.Zero(t, Containment(nil, []string{"a"}))
}

func TestBidirectionalContainment(t *testing.T) {
	a := []string{"a", "b"}
	b := []string{"a"}
	assert.InDelta(t, 0.5, BidirectionalContainment(a, b), 1e-9)
	assert.Equal(t, BidirectionalContainment(a, b), BidirectionalContainment(b, a))
	assert.Zero(t, BidirectionalContainment(nil, b))
}
