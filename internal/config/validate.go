// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if gb := c.Catalog.GoogleBooks; gb != nil {
		if err := validateURL(gb.URL); err != "" {
			errs = append(errs, "catalog.google_books.url: "+err)
		}
		if gb.RequestsPerSecond < 0 {
			errs = append(errs, fmt.Sprintf("catalog.google_books.requests_per_second: must not be negative, got %v", gb.RequestsPerSecond))
		}
		if gb.CacheTTL < 0 {
			errs = append(errs, fmt.Sprintf("catalog.google_books.cache_ttl: must not be negative, got %s", gb.CacheTTL))
		}
	}
	if ol := c.Catalog.OpenLibrary; ol != nil {
		if err := validateURL(ol.URL); err != "" {
			errs = append(errs, "catalog.open_library.url: "+err)
		}
	}

	if c.Recommend.MaxPerAuthor < 0 {
		errs = append(errs, fmt.Sprintf("recommend.max_per_author: must not be negative, got %d", c.Recommend.MaxPerAuthor))
	}
	if c.Recommend.Limit < 0 {
		errs = append(errs, fmt.Sprintf("recommend.limit: must not be negative, got %d", c.Recommend.Limit))
	}
	if c.Recommend.ResultsPerQuery < 0 || c.Recommend.ResultsPerQuery > 40 {
		errs = append(errs, fmt.Sprintf("recommend.results_per_query: must be between 0 and 40, got %d", c.Recommend.ResultsPerQuery))
	}

	if c.Enrich.BatchSize < 0 {
		errs = append(errs, fmt.Sprintf("enrich.batch_size: must not be negative, got %d", c.Enrich.BatchSize))
	}
	if c.Enrich.BatchDelay < 0 {
		errs = append(errs, fmt.Sprintf("enrich.batch_delay: must not be negative, got %s", c.Enrich.BatchDelay))
	}
	if c.Enrich.MinConfidence < 0 || c.Enrich.MinConfidence > 1 {
		errs = append(errs, fmt.Sprintf("enrich.min_confidence: must be between 0 and 1, got %v", c.Enrich.MinConfidence))
	}

	return errs
}

func validateURL(raw string) string {
	if raw == "" {
		return "required"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Sprintf("invalid url %q", raw)
	}
	return ""
}
