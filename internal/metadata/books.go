package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vmunix/shelfmatch/pkg/googlebooks"
	"github.com/vmunix/shelfmatch/pkg/openlibrary"
)

const (
	// DefaultTTL is used when the service is built with a zero TTL.
	DefaultTTL = 24 * time.Hour

	worksLimit = 5
)

// Cache key prefixes
const (
	keyPrefixSearch  = "googlebooks:search:"
	keyPrefixAuthor  = "googlebooks:author:"
	keyPrefixSubject = "googlebooks:subject:"
	keyPrefixWorks   = "openlibrary:works:"
)

//go:generate mockgen -destination=mocks/catalogs.go -package=mocks github.com/vmunix/shelfmatch/internal/metadata VolumeSearcher,WorkSearcher

// VolumeSearcher is the part of the Google Books client the service uses.
type VolumeSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]googlebooks.Volume, error)
	SearchByAuthor(ctx context.Context, author string, limit int) ([]googlebooks.Volume, error)
	SearchBySubject(ctx context.Context, subject string, limit int) ([]googlebooks.Volume, error)
}

// WorkSearcher is the part of the Open Library client the service uses.
type WorkSearcher interface {
	Search(ctx context.Context, title, author string, limit int) ([]openlibrary.Doc, error)
}

// BookService provides cached access to the book catalogs.
type BookService struct {
	volumes VolumeSearcher
	works   WorkSearcher // nil disables series lookup
	cache   *Cache       // nil disables caching
	ttl     time.Duration
	log     *slog.Logger
}

// NewBookService creates a new book service.
func NewBookService(volumes VolumeSearcher, works WorkSearcher, cache *Cache, ttl time.Duration, log *slog.Logger) *BookService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = slog.Default()
	}
	return &BookService{
		volumes: volumes,
		works:   works,
		cache:   cache,
		ttl:     ttl,
		log:     log.With("component", "metadata"),
	}
}

// Search runs a free-text volume search (cached).
func (s *BookService) Search(ctx context.Context, query string, limit int) ([]googlebooks.Volume, error) {
	return cached(ctx, s, cacheKey(keyPrefixSearch, query, limit), func() ([]googlebooks.Volume, error) {
		return s.volumes.Search(ctx, query, limit)
	})
}

// SearchByAuthor returns volumes by author (cached).
func (s *BookService) SearchByAuthor(ctx context.Context, author string, limit int) ([]googlebooks.Volume, error) {
	return cached(ctx, s, cacheKey(keyPrefixAuthor, author, limit), func() ([]googlebooks.Volume, error) {
		return s.volumes.SearchByAuthor(ctx, author, limit)
	})
}

// SearchBySubject returns volumes filed under subject (cached).
func (s *BookService) SearchBySubject(ctx context.Context, subject string, limit int) ([]googlebooks.Volume, error) {
	return cached(ctx, s, cacheKey(keyPrefixSubject, subject, limit), func() ([]googlebooks.Volume, error) {
		return s.volumes.SearchBySubject(ctx, subject, limit)
	})
}

func (s *BookService) searchWorks(ctx context.Context, title, author string) ([]openlibrary.Doc, error) {
	return cached(ctx, s, cacheKey(keyPrefixWorks, title+"|"+author, worksLimit), func() ([]openlibrary.Doc, error) {
		return s.works.Search(ctx, title, author, worksLimit)
	})
}

// InvalidateSearches drops all cached catalog searches.
func (s *BookService) InvalidateSearches(ctx context.Context) (int64, error) {
	if s.cache == nil {
		return 0, nil
	}
	var total int64
	for _, prefix := range []string{keyPrefixSearch, keyPrefixAuthor, keyPrefixSubject, keyPrefixWorks} {
		n, err := s.cache.DeletePrefix(ctx, prefix)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func cacheKey(prefix, query string, limit int) string {
	return fmt.Sprintf("%s%s:%d", prefix, strings.ToLower(strings.TrimSpace(query)), limit)
}

// cached serves key from the cache or calls fetch and stores its result.
// Cache failures are logged and never fail the lookup.
func cached[T any](ctx context.Context, s *BookService, key string, fetch func() (T, error)) (T, error) {
	if s.cache != nil {
		if data, ok := s.cache.Get(ctx, key); ok {
			var v T
			if err := json.Unmarshal(data, &v); err == nil {
				s.log.Debug("cache hit", "key", key)
				return v, nil
			}
			// If unmarshal fails, treat as cache miss and fetch fresh data
			s.log.Warn("failed to unmarshal cached value", "key", key)
		}
	}

	s.log.Debug("cache miss, calling API", "key", key)
	v, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}
	if s.cache == nil {
		return v, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("failed to marshal value for cache", "key", key, "error", err)
		return v, nil
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.log.Warn("failed to cache value", "key", key, "error", err)
	}
	return v, nil
}
