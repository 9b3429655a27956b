// Package openlibrary provides a client for the Open Library search API.
package openlibrary

import (
	"regexp"
	"strconv"
	"strings"
)

// Doc is a work returned by search.json.
type Doc struct {
	Key              string   `json:"key"` // "/works/OL45804W"
	Title            string   `json:"title"`
	Subtitle         string   `json:"subtitle,omitempty"`
	AuthorName       []string `json:"author_name,omitempty"`
	ISBN             []string `json:"isbn,omitempty"`
	FirstPublishYear int      `json:"first_publish_year,omitempty"`
	Series           []string `json:"series,omitempty"`
	Subject          []string `json:"subject,omitempty"`
}

type searchResponse struct {
	NumFound int   `json:"numFound"`
	Docs     []Doc `json:"docs"`
}

// SeriesNames returns the series a work is listed under, from the series
// field first and then from "series:" subjects.
func (d *Doc) SeriesNames() []string {
	var names []string
	seen := make(map[string]bool)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" || seen[strings.ToLower(s)] {
			return
		}
		seen[strings.ToLower(s)] = true
		names = append(names, s)
	}
	for _, s := range d.Series {
		add(s)
	}
	for _, s := range d.Subject {
		if len(s) > len("series:") && strings.EqualFold(s[:len("series:")], "series:") {
			add(strings.ReplaceAll(s[len("series:"):], "_", " "))
		}
	}
	return names
}

var seriesIndexRe = regexp.MustCompile(`(?i)^(.+?)\s*(?:[,;]\s*(?:book\s+|vol(?:ume)?\.?\s*|no\.?\s*|#)?|#|\bbook\s+|\bvol(?:ume)?\.?\s*|\bno\.?\s*)(\d+(?:\.\d+)?)$`)

// ParseSeries splits a series label such as "Mistborn #1" or
// "The Lord of the Rings, Book 2" into name and position.
// index is nil when the label carries no position.
func ParseSeries(label string) (name string, index *float64) {
	label = strings.TrimSpace(label)
	if strings.HasPrefix(label, "(") && strings.HasSuffix(label, ")") {
		label = strings.TrimSpace(label[1 : len(label)-1])
	}
	m := seriesIndexRe.FindStringSubmatch(label)
	if m == nil {
		return label, nil
	}
	n, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return label, nil
	}
	return strings.TrimSpace(m[1]), &n
}
