// Package googlebooks provides a client for the Google Books volumes API.
package googlebooks

import (
	"strconv"
	"strings"
)

// Identifier types used in IndustryIdentifiers.
const (
	IdentifierISBN10 = "ISBN_10"
	IdentifierISBN13 = "ISBN_13"
)

// Volume is a single Google Books volume.
type Volume struct {
	ID         string     `json:"id"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

// VolumeInfo holds the bibliographic part of a volume.
type VolumeInfo struct {
	Title               string               `json:"title"`
	Subtitle            string               `json:"subtitle,omitempty"`
	Authors             []string             `json:"authors,omitempty"`
	Publisher           string               `json:"publisher,omitempty"`
	PublishedDate       string               `json:"publishedDate,omitempty"` // "2010", "2010-08" or "2010-08-31"
	Description         string               `json:"description,omitempty"`
	IndustryIdentifiers []IndustryIdentifier `json:"industryIdentifiers,omitempty"`
	PageCount           int                  `json:"pageCount,omitempty"`
	Categories          []string             `json:"categories,omitempty"`
	AverageRating       *float64             `json:"averageRating,omitempty"`
	RatingsCount        int                  `json:"ratingsCount,omitempty"`
	Language            string               `json:"language,omitempty"`
	ImageLinks          *ImageLinks          `json:"imageLinks,omitempty"`
}

// IndustryIdentifier is an ISBN or other identifier.
type IndustryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

// ImageLinks holds cover URLs.
type ImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail,omitempty"`
	Thumbnail      string `json:"thumbnail,omitempty"`
}

type volumesResponse struct {
	Kind       string   `json:"kind"`
	TotalItems int      `json:"totalItems"`
	Items      []Volume `json:"items"`
}

func (v *VolumeInfo) identifier(kind string) string {
	for _, id := range v.IndustryIdentifiers {
		if id.Type == kind {
			return id.Identifier
		}
	}
	return ""
}

// ISBN10 returns the volume's ISBN-10, if any.
func (v *VolumeInfo) ISBN10() string { return v.identifier(IdentifierISBN10) }

// ISBN13 returns the volume's ISBN-13, if any.
func (v *VolumeInfo) ISBN13() string { return v.identifier(IdentifierISBN13) }

// FullTitle joins title and subtitle the way most catalogs print them.
func (v *VolumeInfo) FullTitle() string {
	if v.Subtitle == "" {
		return v.Title
	}
	return v.Title + ": " + v.Subtitle
}

// Author returns all authors joined by ", ".
func (v *VolumeInfo) Author() string {
	return strings.Join(v.Authors, ", ")
}

// Year extracts the year from PublishedDate.
func (v *VolumeInfo) Year() int {
	if len(v.PublishedDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(v.PublishedDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// CoverURL returns the largest available cover over https.
func (v *VolumeInfo) CoverURL() string {
	if v.ImageLinks == nil {
		return ""
	}
	u := v.ImageLinks.Thumbnail
	if u == "" {
		u = v.ImageLinks.SmallThumbnail
	}
	return strings.Replace(u, "http://", "https://", 1)
}
