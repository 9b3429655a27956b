// Package library tracks the books and audiobooks a user owns or wants.
package library

import (
	"time"

	"github.com/vmunix/shelfmatch/pkg/recommend"
)

// Kind distinguishes books from audiobooks.
type Kind string

const (
	KindBook      Kind = "book"
	KindAudiobook Kind = "audiobook"
)

// Status tracks whether an item is on the shelf yet.
type Status string

const (
	StatusOwned  Status = "owned"
	StatusWanted Status = "wanted"
)

// Item is a book or audiobook in the library.
type Item struct {
	ID          int64
	Kind        Kind
	Title       string
	Author      string // free text, may name several authors
	ISBN10      string // stored normalized
	ISBN13      string // stored normalized
	Series      string
	SeriesIndex *float64
	Tags        []string
	Status      Status
	Source      string // catalog the item came from, e.g. "google_books"
	SourceID    string // id within Source
	AddedAt     time.Time
	UpdatedAt   time.Time
}

// ISBN returns the ISBN-13 if known, else the ISBN-10.
func (i *Item) ISBN() string {
	if i.ISBN13 != "" {
		return i.ISBN13
	}
	return i.ISBN10
}

// Owned converts the item to the form the recommendation pipeline reads.
// Both ISBNs are carried so either one excludes the book from
// recommendations.
func (i *Item) Owned() recommend.Owned {
	o := recommend.Owned{
		Title:  i.Title,
		Author: i.Author,
		ISBN:   i.ISBN(),
		Tags:   i.Tags,
		Series: i.Series,
	}
	if i.ISBN13 != "" && i.ISBN10 != "" {
		o.OtherISBNs = []string{i.ISBN10}
	}
	return o
}

// SplitOwned converts items into owned books and owned audiobooks.
// Wanted items are skipped.
func SplitOwned(items []*Item) (books, audiobooks []recommend.Owned) {
	for _, it := range items {
		if it.Status != StatusOwned {
			continue
		}
		switch it.Kind {
		case KindAudiobook:
			audiobooks = append(audiobooks, it.Owned())
		default:
			books = append(books, it.Owned())
		}
	}
	return books, audiobooks
}
