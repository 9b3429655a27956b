// Package search builds recommendation candidate pools from catalog queries.
package search

import (
	"context"
	"fmt"

	"github.com/vmunix/shelfmatch/pkg/googlebooks"
)

// QueryKind says which catalog index a query runs against.
type QueryKind string

const (
	QueryAuthor  QueryKind = "author"
	QuerySubject QueryKind = "subject"
)

// DefaultSubject is queried when the profile has no authors or genres yet.
const DefaultSubject = "fiction"

// Query is one catalog lookup feeding the pool.
type Query struct {
	Kind QueryKind
	Text string
}

func (q Query) String() string {
	return fmt.Sprintf("%s:%s", q.Kind, q.Text)
}

//go:generate mockgen -destination=mocks/catalog.go -package=mocks github.com/vmunix/shelfmatch/internal/search CatalogAPI

// CatalogAPI is the catalog the pool queries.
type CatalogAPI interface {
	SearchByAuthor(ctx context.Context, author string, limit int) ([]googlebooks.Volume, error)
	SearchBySubject(ctx context.Context, subject string, limit int) ([]googlebooks.Volume, error)
}
