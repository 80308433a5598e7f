package letterboxd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultUserAgent is sent when no other agent is configured. The site
	// rejects requests without one.
	DefaultUserAgent = "Mozilla/5.0"
	DefaultTimeout   = 10 * time.Second
)

// PageFetcher retrieves the raw markup behind a URL.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherConfig configures a Fetcher. Zero values select defaults.
type FetcherConfig struct {
	UserAgent string
	Timeout   time.Duration
	// Retries is the number of extra attempts after a transport error.
	// HTTP status responses are never retried.
	Retries int
	// Transport is the underlying round tripper (http.DefaultTransport if nil).
	Transport http.RoundTripper
}

// Fetcher issues single GET requests for listing pages.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a Fetcher.
func NewFetcher(cfg FetcherConfig) *Fetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Transport == nil {
		cfg.Transport = http.DefaultTransport
	}
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &agentTransport{
				base:      cfg.Transport,
				userAgent: cfg.UserAgent,
				retries:   cfg.Retries,
			},
		},
	}
}

// Fetch GETs url and returns the body of a 2xx response. A 404 yields an
// error matching ErrNotFound; anything else that goes wrong matches ErrFetch.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrFetch, err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, &StatusError{URL: url, StatusCode: resp.StatusCode})
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %w", ErrFetch, &StatusError{URL: url, StatusCode: resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetch, err)
	}
	return body, nil
}

// agentTransport sets the User-Agent on outgoing requests that lack one and
// retries replayable requests on transport errors.
type agentTransport struct {
	base      http.RoundTripper
	userAgent string
	retries   int
}

func (t *agentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}

	maxRetries := t.retries
	if maxRetries < 0 || req.Body != nil || (req.Method != http.MethodGet && req.Method != http.MethodHead) {
		maxRetries = 0
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		// Clone so the caller's request is left untouched.
		r := req.Clone(req.Context())
		if r.Header.Get("User-Agent") == "" {
			r.Header.Set("User-Agent", t.userAgent)
		}

		resp, err := t.base.RoundTrip(r)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if req.Context().Err() != nil {
			return nil, lastErr
		}
	}
	return nil, lastErr
}
