package bibmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchMetadata(t *testing.T) {
	hobbit := Target{Title: "The Hobbit", Authors: []string{"Tolkien, J.R.R."}}

	tests := []struct {
		name           string
		candidate      Candidate
		target         Target
		wantMatch      bool
		wantType       MatchType
		wantConfidence float64 // checked when >= 0
	}{
		{
			name:           "isbn is authoritative over a mismatched title",
			candidate:      Candidate{Title: "Completely Different", ISBN13: "978-0-14-143951-8"},
			target:         Target{Title: "Pride and Prejudice", ISBN13: "9780141439518"},
			wantMatch:      true,
			wantType:       MatchTypeISBN,
			wantConfidence: 1,
		},
		{
			name:           "title and author",
			candidate:      Candidate{Title: "The Hobbit", Author: "J.R.R. Tolkien"},
			target:         hobbit,
			wantMatch:      true,
			wantType:       MatchTypeTitleAuthor,
			wantConfidence: 1*TitleWeight + AuthorSubstringScore*AuthorWeight,
		},
		{
			name:           "candidate without author is neutral",
			candidate:      Candidate{Title: "The Hobbit"},
			target:         hobbit,
			wantMatch:      true,
			wantType:       MatchTypeTitleAuthor,
			wantConfidence: 1*TitleWeight + NeutralAuthorScore*AuthorWeight,
		},
		{
			name:           "target without authors",
			candidate:      Candidate{Title: "The Hobbit", Author: "Somebody Else"},
			target:         Target{Title: "The Hobbit"},
			wantMatch:      true,
			wantType:       MatchTypeTitleOnly,
			wantConfidence: 1*TitleWeight + NeutralAuthorScore*AuthorWeight,
		},
		{
			name:           "title alone is not enough once authors are known",
			candidate:      Candidate{Title: "The Hobbit", Author: "Stephen King"},
			target:         hobbit,
			wantMatch:      false,
			wantType:       MatchTypeNone,
			wantConfidence: -1,
		},
		{
			name:           "title mismatch reports the title score",
			candidate:      Candidate{Title: "Pride and Prejudice: A Study Guide", Author: "Jane Austen"},
			target:         Target{Title: "Pride and Prejudice", Authors: []string{"Jane Austen"}},
			wantMatch:      false,
			wantType:       MatchTypeNone,
			wantConfidence: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchMetadata(tt.candidate, tt.target)
			assert.Equal(t, tt.wantMatch, got.IsMatch)
			assert.Equal(t, tt.wantType, got.Type)
			assert.GreaterOrEqual(t, got.Confidence, 0.0)
			assert.LessOrEqual(t, got.Confidence, 1.0)
			if tt.wantConfidence >= 0 {
				assert.InDelta(t, tt.wantConfidence, got.Confidence, 1e-9)
			}
			if got.Type == MatchTypeNone {
				assert.False(t, got.IsMatch)
			}
		})
	}
}

func TestMatchMetadata_TitleMismatchDetails(t *testing.T) {
	got := MatchMetadata(
		Candidate{Title: "The Silmarillion", Author: "J.R.R. Tolkien"},
		Target{Title: "The Hobbit", Authors: []string{"J.R.R. Tolkien"}},
	)

	assert.False(t, got.IsMatch)
	assert.Equal(t, got.Details.TitleScore, got.Confidence)
	assert.Zero(t, got.Details.AuthorScore, "author stage never runs")
	assert.False(t, got.Details.ISBNMatch)
}

func TestFindBestMatch_FirstOfTiedMaximum(t *testing.T) {
	target := Target{Title: "The Hobbit", Authors: []string{"J.R.R. Tolkien"}}
	candidates := []Candidate{
		{Title: "The Hobbit", Extra: map[string]string{"id": "a"}},                           // 0.80
		{Title: "The Hobbit", Author: "Tolkien", Extra: map[string]string{"id": "b"}},        // 0.98
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", Extra: map[string]string{"id": "c"}}, // 0.98
		{Title: "The Hobbit", Author: "Stephen King", Extra: map[string]string{"id": "d"}},   // no match
	}

	best, res := FindBestMatch(candidates, target)
	require.NotNil(t, best)
	require.NotNil(t, res)

	assert.Same(t, &candidates[1], best)
	assert.Equal(t, "b", best.Extra["id"])
	assert.Equal(t, MatchTypeTitleAuthor, res.Type)
	assert.InDelta(t, 0.98, res.Confidence, 1e-9)
}

func TestFindBestMatch_ISBNBeatsText(t *testing.T) {
	target := Target{Title: "Dune", Authors: []string{"Frank Herbert"}, ISBN13: "9780441172719"}
	candidates := []Candidate{
		{Title: "Dune", Author: "Frank Herbert"},
		{Title: "Dune (40th Anniversary)", ISBN: "978-0-441-17271-9"},
	}

	best, res := FindBestMatch(candidates, target)
	require.NotNil(t, best)
	assert.Same(t, &candidates[1], best)
	assert.Equal(t, MatchTypeISBN, res.Type)
}

func TestFindBestMatch_NoMatch(t *testing.T) {
	target := Target{Title: "Pride and Prejudice", Authors: []string{"Jane Austen"}}
	candidates := []Candidate{
		{Title: "Pride and Prejudice: A Study Guide", Author: "SparkNotes"},
		{Title: "Emma", Author: "Jane Austen"},
	}

	best, res := FindBestMatch(candidates, target)
	assert.Nil(t, best)
	assert.Nil(t, res)

	best, res = FindBestMatch(nil, target)
	assert.Nil(t, best)
	assert.Nil(t, res)
}

func TestMatchMetadata_InitialsDoNotConfirmWrongAuthor(t *testing.T) {
	got := MatchMetadata(
		Candidate{Title: "Pride and Prejudice", Author: "E. L. James"},
		Target{Title: "Pride and Prejudice", Authors: []string{"Jane Austen"}},
	)
	assert.False(t, got.IsMatch)
	assert.Equal(t, MatchTypeNone, got.Type)
	assert.Less(t, got.Details.AuthorScore, AuthorMatchThreshold)
}

func TestMatchMetadata_BlankTargetAuthors(t *testing.T) {
	got := MatchMetadata(
		Candidate{Title: "Dune", Author: "Frank Herbert"},
		Target{Title: "Dune", Authors: []string{"", "   "}},
	)
	assert.True(t, got.IsMatch)
	assert.Equal(t, MatchTypeTitleOnly, got.Type)
	assert.InDelta(t, TitleWeight+NeutralAuthorScore*AuthorWeight, got.Confidence, 1e-9)
}
