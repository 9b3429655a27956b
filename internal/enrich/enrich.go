// Package enrich fills in series metadata for library items.
package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/shelfmatch/internal/library"
	"github.com/vmunix/shelfmatch/internal/metadata"
)

const (
	DefaultBatchSize     = 5
	DefaultBatchDelay    = time.Second
	DefaultMinConfidence = 0.5

	// UnknownConfidence is reported for items whose series could not be determined.
	UnknownConfidence = 0.1
)

// Sources reported on a Result.
const (
	SourceOpenLibrary = "open_library"
	SourceUnknown     = "unknown"
)

//go:generate mockgen -destination=mocks/enrich.go -package=mocks github.com/vmunix/shelfmatch/internal/enrich SeriesLookup,SeriesWriter

// SeriesLookup finds the series a title belongs to.
type SeriesLookup interface {
	LookupSeries(ctx context.Context, title, author string) (*metadata.SeriesMatch, error)
}

// SeriesWriter records series membership for a library item.
type SeriesWriter interface {
	SetSeries(id int64, series string, index *float64) error
}

// Result is the outcome for one item.
type Result struct {
	ItemID     int64
	Title      string
	Series     string
	Index      *float64
	Confidence float64
	Source     string
	Written    bool  // series was saved to the library
	Err        error // lookup or write failure
}

// Enricher looks up series metadata in fixed-size batches.
type Enricher struct {
	lookup        SeriesLookup
	writer        SeriesWriter // nil = dry run
	batchSize     int
	batchDelay    time.Duration
	minConfidence float64
	wait          func(ctx context.Context, d time.Duration) error
	log           *slog.Logger
}

// Option configures an Enricher.
type Option func(*Enricher)

// WithWriter saves confident results through w.
func WithWriter(w SeriesWriter) Option {
	return func(e *Enricher) {
		e.writer = w
	}
}

// WithBatchSize sets how many lookups run at once.
func WithBatchSize(n int) Option {
	return func(e *Enricher) {
		if n > 0 {
			e.batchSize = n
		}
	}
}

// WithBatchDelay sets the pause between batches.
func WithBatchDelay(d time.Duration) Option {
	return func(e *Enricher) {
		if d >= 0 {
			e.batchDelay = d
		}
	}
}

// WithMinConfidence sets the confidence a result needs before it is saved.
func WithMinConfidence(c float64) Option {
	return func(e *Enricher) {
		e.minConfidence = c
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Enricher) {
		e.log = log
	}
}

// New creates an Enricher.
func New(lookup SeriesLookup, opts ...Option) *Enricher {
	e := &Enricher{
		lookup:        lookup,
		batchSize:     DefaultBatchSize,
		batchDelay:    DefaultBatchDelay,
		minConfidence: DefaultMinConfidence,
		wait:          sleep,
		log:           slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With("component", "enrich")
	return e
}

// Enrich looks up every item and returns one result per item, in input
// order. Lookups within a batch run concurrently and a failed lookup only
// affects its own item. The context is checked between batches; a batch
// that has started always finishes. On cancellation the results gathered
// so far are returned with the context error.
func (e *Enricher) Enrich(ctx context.Context, items []*library.Item) ([]Result, error) {
	results := make([]Result, 0, len(items))

	for start := 0; start < len(items); start += e.batchSize {
		if start > 0 && e.batchDelay > 0 {
			if err := e.wait(ctx, e.batchDelay); err != nil {
				return results, err
			}
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}

		end := min(start+e.batchSize, len(items))
		batch := items[start:end]
		out := make([]Result, len(batch))

		// Plain Group: a failed item must not cancel its siblings.
		var g errgroup.Group
		for i, it := range batch {
			g.Go(func() error {
				out[i] = e.enrichOne(ctx, it)
				if out[i].Err != nil {
					return fmt.Errorf("item %d: %w", it.ID, out[i].Err)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			e.log.Warn("batch finished with failures", "from", start, "to", end, "failed", countFailed(out), "first_error", err)
		} else {
			e.log.Debug("batch complete", "from", start, "to", end, "total", len(items))
		}
		results = append(results, out...)
	}

	return results, nil
}

func (e *Enricher) enrichOne(ctx context.Context, it *library.Item) Result {
	r := Result{ItemID: it.ID, Title: it.Title, Source: SourceUnknown, Confidence: UnknownConfidence}

	m, err := e.lookup.LookupSeries(ctx, it.Title, it.Author)
	if err != nil {
		e.log.Warn("series lookup failed", "item_id", it.ID, "title", it.Title, "error", err)
		r.Err = err
		return r
	}
	if m == nil || m.Series == "" {
		return r
	}

	r.Series = m.Series
	r.Index = m.Index
	r.Confidence = m.Confidence
	r.Source = SourceOpenLibrary

	if e.writer == nil || r.Confidence < e.minConfidence || it.Series == m.Series {
		return r
	}
	if err := e.writer.SetSeries(it.ID, m.Series, m.Index); err != nil {
		e.log.Warn("save series failed", "item_id", it.ID, "series", m.Series, "error", err)
		r.Err = err
		return r
	}
	r.Written = true
	e.log.Info("series saved", "item_id", it.ID, "title", it.Title, "series", m.Series, "confidence", r.Confidence)
	return r
}

func countFailed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
