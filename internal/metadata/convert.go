package metadata

import (
	"strconv"

	"github.com/vmunix/shelfmatch/pkg/bibmatch"
	"github.com/vmunix/shelfmatch/pkg/googlebooks"
	"github.com/vmunix/shelfmatch/pkg/openlibrary"
	"github.com/vmunix/shelfmatch/pkg/recommend"
)

// Extra keys set on candidates built from catalog records.
const (
	ExtraVolumeID  = "volume_id"
	ExtraPublisher = "publisher"
	ExtraYear      = "year"
	ExtraWorkKey   = "work_key"
)

// VolumeToItem converts a volume to a recommendation candidate.
func VolumeToItem(v googlebooks.Volume) recommend.Item {
	info := v.VolumeInfo
	isbn := info.ISBN13()
	if isbn == "" {
		isbn = info.ISBN10()
	}
	return recommend.Item{
		ID:            v.ID,
		Title:         info.FullTitle(),
		Author:        info.Author(),
		Description:   info.Description,
		Cover:         info.CoverURL(),
		ISBN:          isbn,
		Publisher:     info.Publisher,
		Categories:    info.Categories,
		AverageRating: info.AverageRating,
		PageCount:     info.PageCount,
	}
}

// VolumesToItems converts volumes to recommendation candidates, skipping
// volumes without a title.
func VolumesToItems(vols []googlebooks.Volume) []recommend.Item {
	items := make([]recommend.Item, 0, len(vols))
	for _, v := range vols {
		if v.VolumeInfo.Title == "" {
			continue
		}
		items = append(items, VolumeToItem(v))
	}
	return items
}

// VolumeToCandidate converts a volume to a match candidate.
func VolumeToCandidate(v googlebooks.Volume) bibmatch.Candidate {
	info := v.VolumeInfo
	c := bibmatch.Candidate{
		Title:  info.FullTitle(),
		Author: info.Author(),
		ISBN10: info.ISBN10(),
		ISBN13: info.ISBN13(),
		Extra:  map[string]string{ExtraVolumeID: v.ID},
	}
	if info.Publisher != "" {
		c.Extra[ExtraPublisher] = info.Publisher
	}
	if y := info.Year(); y > 0 {
		c.Extra[ExtraYear] = strconv.Itoa(y)
	}
	return c
}

// VolumesToCandidates converts volumes to match candidates.
func VolumesToCandidates(vols []googlebooks.Volume) []bibmatch.Candidate {
	out := make([]bibmatch.Candidate, 0, len(vols))
	for _, v := range vols {
		out = append(out, VolumeToCandidate(v))
	}
	return out
}

// docToCandidate converts an Open Library work to a match candidate.
// Open Library lists every edition's ISBN; only the first is kept.
func docToCandidate(d openlibrary.Doc) bibmatch.Candidate {
	title := d.Title
	if d.Subtitle != "" {
		title += ": " + d.Subtitle
	}
	c := bibmatch.Candidate{
		Title: title,
		Extra: map[string]string{ExtraWorkKey: d.Key},
	}
	if len(d.AuthorName) > 0 {
		c.Author = d.AuthorName[0]
	}
	if len(d.ISBN) > 0 {
		c.ISBN = d.ISBN[0]
	}
	if d.FirstPublishYear > 0 {
		c.Extra[ExtraYear] = strconv.Itoa(d.FirstPublishYear)
	}
	return c
}
