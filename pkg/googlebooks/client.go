package googlebooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL  = "https://www.googleapis.com/books/v1"
	defaultCacheTTL = 24 * time.Hour

	// MaxResults is the largest page the volumes endpoint returns.
	MaxResults = 40
)

// Sentinel errors for Google Books API responses.
var (
	ErrNotFound     = errors.New("volume not found")
	ErrUnauthorized = errors.New("unauthorized: invalid API key")
	ErrRateLimited  = errors.New("rate limited: too many requests")
)

// Client is a Google Books API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter // nil = unlimited
	cache      *cache
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "googlebooks")
	}
}

// WithCacheTTL sets how long volumes fetched by ID are kept in memory.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = newCache(ttl)
	}
}

// WithRateLimit caps outgoing requests per second. Zero disables the limit.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// New creates a new Google Books client. The API key may be empty.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		cache: newCache(defaultCacheTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs a free-text volumes query. limit is clamped to 1..MaxResults.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Volume, error) {
	if limit <= 0 || limit > MaxResults {
		limit = MaxResults
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(limit))
	params.Set("printType", "books")

	var resp volumesResponse
	if err := c.get(ctx, "/volumes", params, &resp); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	if c.log != nil {
		c.log.Debug("search complete", "query", query, "total", resp.TotalItems, "returned", len(resp.Items))
	}
	return resp.Items, nil
}

// SearchByAuthor returns volumes written by author.
func (c *Client) SearchByAuthor(ctx context.Context, author string, limit int) ([]Volume, error) {
	return c.Search(ctx, fmt.Sprintf("inauthor:%q", author), limit)
}

// SearchBySubject returns volumes filed under subject.
func (c *Client) SearchBySubject(ctx context.Context, subject string, limit int) ([]Volume, error) {
	return c.Search(ctx, fmt.Sprintf("subject:%q", subject), limit)
}

// GetVolume fetches a single volume by ID.
func (c *Client) GetVolume(ctx context.Context, id string) (*Volume, error) {
	if v, ok := c.cache.get(id); ok {
		return v, nil
	}

	var v Volume
	if err := c.get(ctx, "/volumes/"+url.PathEscape(id), url.Values{}, &v); err != nil {
		return nil, fmt.Errorf("get volume %s: %w", id, err)
	}

	c.cache.set(id, &v)
	return &v, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("wait for rate limiter: %w", err)
		}
	}
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("google books API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
