// Package autoadd adds a recommended book to the library once the catalog
// yields a confident match for it.
package autoadd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vmunix/shelfmatch/internal/library"
	"github.com/vmunix/shelfmatch/internal/metadata"
	"github.com/vmunix/shelfmatch/pkg/bibmatch"
	"github.com/vmunix/shelfmatch/pkg/googlebooks"
	"github.com/vmunix/shelfmatch/pkg/recommend"
)

// SourceGoogleBooks is recorded as the source of added items.
const SourceGoogleBooks = "google_books"

const searchLimit = 10

//go:generate mockgen -destination=mocks/catalog.go -package=mocks github.com/vmunix/shelfmatch/internal/autoadd Catalog

// Catalog searches for candidate volumes.
type Catalog interface {
	Search(ctx context.Context, query string, limit int) ([]googlebooks.Volume, error)
}

// Library is where matched books are added.
type Library interface {
	AddIfAbsent(it *library.Item) (*library.Item, error)
}

// Request describes the book to add.
type Request struct {
	Title  string
	Author string
	ISBN   string
	Kind   library.Kind
}

// RequestFromItem builds a request from a recommendation.
func RequestFromItem(it recommend.Item) Request {
	return Request{Title: it.Title, Author: it.Author, ISBN: it.ISBN, Kind: library.KindBook}
}

// Outcome describes an added book and the match that justified it.
type Outcome struct {
	Item      *library.Item
	Candidate bibmatch.Candidate
	Match     bibmatch.Result
}

// Service runs the auto-add flow.
type Service struct {
	catalog Catalog
	lib     Library
	log     *slog.Logger
}

// New creates an auto-add service.
func New(catalog Catalog, lib Library, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{catalog: catalog, lib: lib, log: log.With("component", "autoadd")}
}

// Add searches the catalog for req, picks the best match and adds it to the
// library as wanted. Returns ErrNoSuitableMatch when nothing matches and
// ErrAlreadyInLibrary when the match is already tracked.
func (s *Service) Add(ctx context.Context, req Request) (*Outcome, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrMissingTitle
	}

	query := strings.TrimSpace(req.Title + " " + req.Author)
	vols, err := s.catalog.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search catalog for %q: %w", req.Title, err)
	}

	candidates := metadata.VolumesToCandidates(vols)
	best, result := bibmatch.FindBestMatch(candidates, target(req))
	if best == nil {
		s.log.Info("no suitable match", "title", req.Title, "author", req.Author, "candidates", len(candidates))
		return nil, fmt.Errorf("%q: %w", req.Title, ErrNoSuitableMatch)
	}

	var vol googlebooks.Volume
	for i := range candidates {
		if &candidates[i] == best {
			vol = vols[i]
			break
		}
	}
	s.log.Debug("best match", "title", req.Title, "match", best.Title, "confidence", result.Confidence, "type", result.Type)

	kind := req.Kind
	if kind == "" {
		kind = library.KindBook
	}
	it := &library.Item{
		Kind:     kind,
		Title:    vol.VolumeInfo.FullTitle(),
		Author:   vol.VolumeInfo.Author(),
		ISBN10:   vol.VolumeInfo.ISBN10(),
		ISBN13:   vol.VolumeInfo.ISBN13(),
		Tags:     vol.VolumeInfo.Categories,
		Status:   library.StatusWanted,
		Source:   SourceGoogleBooks,
		SourceID: vol.ID,
	}
	existing, err := s.lib.AddIfAbsent(it)
	if err != nil {
		return nil, fmt.Errorf("add %q: %w", it.Title, err)
	}
	if existing != nil {
		return &Outcome{Item: existing, Candidate: *best, Match: *result},
			fmt.Errorf("%q (item %d): %w", existing.Title, existing.ID, ErrAlreadyInLibrary)
	}

	s.log.Info("added to library", "item_id", it.ID, "title", it.Title, "confidence", result.Confidence, "match_type", result.Type)
	return &Outcome{Item: it, Candidate: *best, Match: *result}, nil
}

func target(req Request) bibmatch.Target {
	t := bibmatch.Target{Title: req.Title}
	if strings.TrimSpace(req.Author) != "" {
		t.Authors = []string{req.Author}
	}
	switch isbn := bibmatch.NormalizeISBN(req.ISBN); len(isbn) {
	case 0:
	case 10:
		t.ISBN10 = isbn
	default:
		t.ISBN13 = isbn
	}
	return t
}
