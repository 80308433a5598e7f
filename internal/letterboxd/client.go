package letterboxd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const DefaultBaseURL = "https://letterboxd.com"

// Client acquires complete watchlists.
type Client struct {
	baseURL        string
	fetcher        PageFetcher
	maxConcurrency int
	log            *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom site URL (for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithFetcher replaces the default Fetcher.
func WithFetcher(f PageFetcher) Option {
	return func(c *Client) {
		c.fetcher = f
	}
}

// WithMaxConcurrency caps the number of pages fetched at once.
// n <= 0 means every remaining page is requested immediately.
func WithMaxConcurrency(n int) Option {
	return func(c *Client) {
		c.maxConcurrency = n
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient creates a watchlist client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fetcher == nil {
		c.fetcher = NewFetcher(FetcherConfig{})
	}
	return c
}

// BaseURL returns the site URL the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// WatchlistURL returns the page-1 URL of username's watchlist.
func (c *Client) WatchlistURL(username string) string {
	return c.baseURL + "/" + url.PathEscape(strings.TrimSpace(username)) + "/watchlist/"
}

func pageURL(watchlistURL string, page int) string {
	return watchlistURL + "page/" + strconv.Itoa(page) + "/"
}

// Watchlist fetches every page of username's public watchlist and returns the
// films in page order. Failures are *WatchlistError values.
func (c *Client) Watchlist(ctx context.Context, username string) ([]Film, error) {
	user := strings.TrimSpace(username)
	if user == "" {
		return nil, newWatchlistError(KindInvalidInput, user, nil)
	}

	start := time.Now()
	base := c.WatchlistURL(user)
	c.log.Debug("watchlist fetch started", "username", user, "url", base)

	first, err := c.fetcher.Fetch(ctx, base)
	if err != nil {
		c.log.Warn("watchlist page failed", "username", user, "page", 1, "error", err)
		if errors.Is(err, ErrNotFound) {
			return nil, newWatchlistError(KindUserNotFound, user, err)
		}
		return nil, newWatchlistError(KindFetchFailed, user, err)
	}

	listing := ParseListing(first)
	films := listing.Films
	incomplete := listing.Incomplete

	if listing.LastPage > 1 {
		rest, err := c.fetchPages(ctx, user, base, listing.LastPage)
		if err != nil {
			return nil, newWatchlistError(KindFetchFailed, user, err)
		}
		for _, l := range rest {
			films = append(films, l.Films...)
			incomplete += l.Incomplete
		}
	}

	if incomplete > 0 {
		c.log.Debug("poster entries missing attributes", "username", user, "count", incomplete)
	}

	if len(films) == 0 {
		return nil, newWatchlistError(KindEmptyOrPrivate, user, nil)
	}

	c.log.Info("watchlist fetched",
		"username", user,
		"pages", listing.LastPage,
		"films", len(films),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return films, nil
}

// fetchPages fetches pages 2..lastPage concurrently. Results are indexed by
// page, so completion order does not matter. The first error wins; siblings
// are not cancelled and their results are discarded.
func (c *Client) fetchPages(ctx context.Context, user, base string, lastPage int) ([]Listing, error) {
	listings := make([]Listing, lastPage-1)

	var g errgroup.Group
	if c.maxConcurrency > 0 {
		g.SetLimit(c.maxConcurrency)
	}

	for page := 2; page <= lastPage; page++ {
		g.Go(func() error {
			pageStart := time.Now()
			html, err := c.fetcher.Fetch(ctx, pageURL(base, page))
			if err != nil {
				c.log.Warn("watchlist page failed", "username", user, "page", page, "error", err)
				return fmt.Errorf("page %d: %w", page, err)
			}
			listings[page-2] = ParseListing(html)
			c.log.Debug("watchlist page fetched",
				"username", user,
				"page", page,
				"films", len(listings[page-2].Films),
				"duration_ms", time.Since(pageStart).Milliseconds(),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return listings, nil
}
