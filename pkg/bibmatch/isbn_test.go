package bibmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchISBN(t *testing.T) {
	tests := []struct {
		name      string
		candidate Candidate
		target    Target
		want      bool
	}{
		{
			name:      "hyphen insensitive",
			candidate: Candidate{ISBN13: "978-0-14-143951-8"},
			target:    Target{ISBN13: "9780141439518"},
			want:      true,
		},
		{
			name:      "generic isbn field against isbn10",
			candidate: Candidate{ISBN: "0 441 17271 7"},
			target:    Target{ISBN10: "0441172717"},
			want:      true,
		},
		{
			name:      "prefix variant is contained",
			candidate: Candidate{ISBN: "978014143951"},
			target:    Target{ISBN13: "9780141439518"},
			want:      true,
		},
		{
			name:      "different books",
			candidate: Candidate{ISBN13: "9780441172719"},
			target:    Target{ISBN13: "9780141439518"},
			want:      false,
		},
		{
			name:      "no isbns",
			candidate: Candidate{Title: "Dune"},
			target:    Target{Title: "Dune"},
			want:      false,
		},
		{
			name:      "candidate isbns but target has none",
			candidate: Candidate{ISBN13: "9780441172719"},
			target:    Target{},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchISBN(tt.candidate, tt.target))
		})
	}
}
