// Package fetch implements the Fetcher interface for genius.com.
// It searches for a song, fetches the matched lyrics page, and extracts the
// lyrics text. Search and extraction each try a ranked list of strategies
// until one yields a result.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/pkamau/versedeck/core"
)

const (
	defaultBaseURL = "https://genius.com"
	defaultTimeout = 30 * time.Second

	// Browser-like identifier; the lyrics pages reject obvious bots.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Client fetches lyrics documents from genius.com.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	log       zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the provider base URL (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger injects a logger. The default discards everything, keeping the
// client silent unless the caller opts in.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client with sensible defaults.
func New(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: defaultTimeout},
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch resolves a free-text song query to a Document. A page that is found
// but yields no lyrics returns a partial Document (title and URL set,
// Lyrics empty) with no error, so callers can still report provenance.
func (c *Client) Fetch(ctx context.Context, query string) (*core.Document, error) {
	h, err := c.search(ctx, query)
	if err != nil {
		return nil, err
	}
	c.log.Debug().Str("url", h.URL).Str("title", h.Title).Msg("matched song")

	html, err := c.get(ctx, h.URL)
	if err != nil {
		return nil, fmt.Errorf("fetching lyrics page: %w", err)
	}

	lyrics, title := extractLyrics(html)
	if h.Title != "" {
		title = h.Title
	}
	if title == "" {
		title = query
	}
	if lyrics == "" {
		c.log.Warn().Str("url", h.URL).Msg("no lyric container found on page")
	}

	return &core.Document{
		Title:     title,
		URL:       h.URL,
		Lyrics:    lyrics,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// get retrieves the body of the given URL with browser-like headers.
func (c *Client) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	return string(body), nil
}
