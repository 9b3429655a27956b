package metadata

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vmunix/shelfmatch/pkg/bibmatch"
	"github.com/vmunix/shelfmatch/pkg/openlibrary"
)

// ErrSeriesLookupDisabled is returned when no Open Library client is configured.
var ErrSeriesLookupDisabled = errors.New("series lookup not configured")

// SeriesMatch is the series a title was found to belong to.
type SeriesMatch struct {
	Series     string
	Index      *float64 // position in the series, if known
	Confidence float64  // how sure the work match is
	WorkKey    string
}

// LookupSeries finds the series a book belongs to. Only works that list a
// series are considered, and the work must match title and author.
// Returns nil, nil when no such work exists.
func (s *BookService) LookupSeries(ctx context.Context, title, author string) (*SeriesMatch, error) {
	if s.works == nil {
		return nil, ErrSeriesLookupDisabled
	}
	docs, err := s.searchWorks(ctx, title, author)
	if err != nil {
		return nil, fmt.Errorf("lookup series for %q: %w", title, err)
	}

	var withSeries []openlibrary.Doc
	var candidates []bibmatch.Candidate
	for _, d := range docs {
		if len(d.SeriesNames()) == 0 {
			continue
		}
		withSeries = append(withSeries, d)
		candidates = append(candidates, docToCandidate(d))
	}

	target := bibmatch.Target{Title: title}
	if author = strings.TrimSpace(author); author != "" {
		target.Authors = []string{author}
	}
	best, result := bibmatch.FindBestMatch(candidates, target)
	if best == nil {
		s.log.Debug("no series found", "title", title, "author", author, "works", len(docs))
		return nil, nil
	}

	for i := range candidates {
		if &candidates[i] != best {
			continue
		}
		name, index := openlibrary.ParseSeries(withSeries[i].SeriesNames()[0])
		return &SeriesMatch{
			Series:     name,
			Index:      index,
			Confidence: result.Confidence,
			WorkKey:    withSeries[i].Key,
		}, nil
	}
	return nil, nil
}
