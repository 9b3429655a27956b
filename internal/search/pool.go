package search

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/vmunix/shelfmatch/internal/metadata"
	"github.com/vmunix/shelfmatch/pkg/googlebooks"
	"github.com/vmunix/shelfmatch/pkg/recommend"
)

// DefaultPerQuery is how many volumes each query asks for.
const DefaultPerQuery = 10

// Pool fans catalog queries out in parallel and merges their results.
type Pool struct {
	catalog  CatalogAPI
	perQuery int
	log      *slog.Logger
}

// NewPool creates a candidate pool. perQuery <= 0 uses DefaultPerQuery.
func NewPool(catalog CatalogAPI, perQuery int, log *slog.Logger) *Pool {
	if perQuery <= 0 {
		perQuery = DefaultPerQuery
	}
	if log == nil {
		log = slog.Default()
	}
	return &Pool{catalog: catalog, perQuery: perQuery, log: log.With("component", "search")}
}

// Queries lists the lookups for a profile: one per favorite author, then
// one per top genre. An empty profile falls back to DefaultSubject.
func Queries(p recommend.Profile) []Query {
	var qs []Query
	for _, a := range p.FavoriteAuthors {
		qs = append(qs, Query{Kind: QueryAuthor, Text: a})
	}
	for _, g := range p.TopGenres {
		qs = append(qs, Query{Kind: QuerySubject, Text: g})
	}
	if len(qs) == 0 {
		qs = append(qs, Query{Kind: QuerySubject, Text: DefaultSubject})
	}
	return qs
}

// Candidates runs every query for the profile and returns the merged,
// de-duplicated candidates in query order. A failed query only drops its
// own results; its error is returned alongside the rest.
func (p *Pool) Candidates(ctx context.Context, profile recommend.Profile) ([]recommend.Item, []error) {
	queries := Queries(profile)
	p.log.Debug("pool started", "queries", len(queries))
	start := time.Now()

	type result struct {
		volumes []googlebooks.Volume
		err     error
	}
	results := make([]result, len(queries))

	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			queryStart := time.Now()
			vols, err := p.run(ctx, q)
			if err != nil {
				p.log.Warn("query failed", "query", q.String(), "error", err, "duration_ms", time.Since(queryStart).Milliseconds())
			} else {
				p.log.Debug("query returned", "query", q.String(), "results", len(vols), "duration_ms", time.Since(queryStart).Milliseconds())
			}
			results[i] = result{volumes: vols, err: err}
		}()
	}
	wg.Wait()

	var items []recommend.Item
	var errs []error
	seen := make(map[string]bool)
	for i, r := range results {
		if r.err != nil {
			errs = append(errs, &QueryError{Query: queries[i], Err: r.err})
			continue
		}
		for _, it := range metadata.VolumesToItems(r.volumes) {
			key := dedupKey(it)
			if seen[key] {
				continue
			}
			seen[key] = true
			items = append(items, it)
		}
	}

	p.log.Info("pool complete", "candidates", len(items), "errors", len(errs), "duration_ms", time.Since(start).Milliseconds())
	return items, errs
}

func (p *Pool) run(ctx context.Context, q Query) ([]googlebooks.Volume, error) {
	switch q.Kind {
	case QueryAuthor:
		return p.catalog.SearchByAuthor(ctx, q.Text, p.perQuery)
	default:
		return p.catalog.SearchBySubject(ctx, q.Text, p.perQuery)
	}
}

// dedupKey identifies a candidate by catalog ID, or by title and author
// when the catalog gave none.
func dedupKey(it recommend.Item) string {
	if it.ID != "" {
		return "id:" + it.ID
	}
	return "ta:" + strings.ToLower(strings.TrimSpace(it.Title)) + "|" + strings.ToLower(strings.TrimSpace(it.Author))
}
