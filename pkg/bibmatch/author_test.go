package bibmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchAuthors(t *testing.T) {
	tests := []struct {
		name      string
		result    string
		targets   []string
		wantMatch bool
		wantScore float64 // checked when >= 0
	}{
		{"missing result author is neutral", "", []string{"Frank Herbert"}, true, NeutralAuthorScore},
		{"blank result author is neutral", "   ", []string{"Frank Herbert"}, true, NeutralAuthorScore},
		{"missing targets is neutral", "Frank Herbert", nil, true, NeutralAuthorScore},
		{"reordered name", "J.R.R. Tolkien", []string{"Tolkien, J.R.R."}, true, AuthorSubstringScore},
		{"surname only", "Brandon Sanderson", []string{"Sanderson"}, true, AuthorSubstringScore},
		{"dropped middle initial", "Ursula Le Guin", []string{"Ursula K. Le Guin"}, true, AuthorAllTokensScore},
		{"typo falls back to edit distance", "Neil Stephenson", []string{"Neal Stephenson"}, true, (1 - 1.0/15.0) * AuthorEditWeight},
		{"best of several targets", "Neil Gaiman", []string{"Terry Pratchett", "Neil Gaiman"}, true, AuthorSubstringScore},
		{"different author", "Stephen King", []string{"Neil Gaiman"}, false, -1},
		{"punctuation-only result never substring-matches", "...", []string{"Neil Gaiman"}, false, -1},
		{"initials plus unrelated surname", "A. N. Other", []string{"Stephen King"}, false, -1},
		{"initials do not match inside target names", "E. L. James", []string{"Jane Austen"}, false, -1},
		{"blank target names are ignored", "Frank Herbert", []string{"", "  "}, true, NeutralAuthorScore},
		{"blank target next to a real one", "Frank Herbert", []string{" ", "Herbert, Frank"}, true, AuthorSubstringScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, score := MatchAuthors(tt.result, tt.targets)
			assert.Equal(t, tt.wantMatch, match, "score %.3f", score)
			if tt.wantScore >= 0 {
				assert.InDelta(t, tt.wantScore, score, 1e-9)
			}
		})
	}
}

func TestMatchAuthors_PartialTokens(t *testing.T) {
	// One of two significant tokens present scores at least 0.5 * 0.8,
	// which is not enough on its own.
	match, score := MatchAuthors("Brian Smith", []string{"Brian Herbert"})
	assert.False(t, match)
	assert.GreaterOrEqual(t, score, 0.5*AuthorPartialWeight)
	assert.Less(t, score, AuthorMatchThreshold)
}

func TestMatchAuthors_InitialsDoNotCount(t *testing.T) {
	// "u" and "k" are initials; only "le" and "guin" must be present.
	match, score := MatchAuthors("Ursula Le Guin", []string{"U. K. Le Guin"})
	assert.True(t, match)
	assert.InDelta(t, AuthorAllTokensScore, score, 1e-9)
}

func TestMatchAuthors_DoesNotMutateTargets(t *testing.T) {
	targets := []string{"", "Frank Herbert"}
	MatchAuthors("Frank Herbert", targets)
	assert.Equal(t, []string{"", "Frank Herbert"}, targets)
}
