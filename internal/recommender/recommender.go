// Package recommender serves ranked recommendations for the library.
package recommender

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/shelfmatch/internal/library"
	"github.com/vmunix/shelfmatch/pkg/recommend"
)

// ItemLister reads the library.
type ItemLister interface {
	ListItems(f library.ItemFilter) ([]*library.Item, int, error)
}

// CandidateSource fetches the candidate pool for a profile.
type CandidateSource interface {
	Candidates(ctx context.Context, p recommend.Profile) ([]recommend.Item, []error)
}

// Response is a served recommendation list.
type Response struct {
	Profile    recommend.Profile
	Items      []recommend.Item
	Candidates int     // pool size before ranking
	Errors     []error // failed pool queries
}

// Service builds recommendations from the library and the catalog.
type Service struct {
	items ItemLister
	pool  CandidateSource
	opts  recommend.Options
	log   *slog.Logger
}

// New creates a recommendation service.
func New(items ItemLister, pool CandidateSource, opts recommend.Options, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{items: items, pool: pool, opts: opts, log: log.With("component", "recommender")}
}

// Recommend analyzes owned items, fetches candidates and returns them
// ranked, diversified and annotated. Wanted items shape nothing in the
// profile but are never recommended again.
func (s *Service) Recommend(ctx context.Context) (*Response, error) {
	start := time.Now()

	all, _, err := s.items.ListItems(library.ItemFilter{})
	if err != nil {
		return nil, fmt.Errorf("load library: %w", err)
	}

	books, audiobooks := library.SplitOwned(all)
	profile := recommend.AnalyzeLibrary(books, audiobooks)

	exclude := make([]recommend.Owned, 0, len(all))
	for _, it := range all {
		exclude = append(exclude, it.Owned())
	}

	candidates, errs := s.pool.Candidates(ctx, profile)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items := recommend.Recommend(candidates, profile, exclude, s.opts)
	s.log.Info("recommendations ready",
		"owned", len(books)+len(audiobooks),
		"favorite_authors", len(profile.FavoriteAuthors),
		"candidates", len(candidates),
		"returned", len(items),
		"errors", len(errs),
		"duration_ms", time.Since(start).Milliseconds())

	return &Response{Profile: profile, Items: items, Candidates: len(candidates), Errors: errs}, nil
}
