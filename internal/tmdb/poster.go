package tmdb

import (
	"context"
	"log/slog"
	"strings"
)

const (
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"
	DefaultPosterSize   = "w500"
)

// PosterFinder resolves poster image URLs. It never returns an error: every
// failure is reported as "no poster".
type PosterFinder struct {
	client       *Client // nil when no API key is configured
	imageBaseURL string
	size         string
	log          *slog.Logger
}

// PosterConfig configures a PosterFinder.
type PosterConfig struct {
	// APIKey is the TMDB credential. Empty means posters are never looked up.
	APIKey       string
	ImageBaseURL string
	Size         string
}

// NewPosterFinder creates a PosterFinder. Client options are passed through
// to NewClient.
func NewPosterFinder(cfg PosterConfig, log *slog.Logger, opts ...Option) *PosterFinder {
	if log == nil {
		log = slog.Default()
	}
	p := &PosterFinder{
		imageBaseURL: strings.TrimRight(cfg.ImageBaseURL, "/"),
		size:         cfg.Size,
		log:          log,
	}
	if p.imageBaseURL == "" {
		p.imageBaseURL = DefaultImageBaseURL
	}
	if p.size == "" {
		p.size = DefaultPosterSize
	}
	if cfg.APIKey != "" {
		p.client = NewClient(cfg.APIKey, opts...)
	}
	return p
}

// Enabled reports whether an API key was configured.
func (p *PosterFinder) Enabled() bool { return p.client != nil }

// PosterURL returns the poster of the first search result for title/year.
func (p *PosterFinder) PosterURL(ctx context.Context, title, year string) (string, bool) {
	if p.client == nil {
		return "", false
	}

	results, err := p.client.SearchMovie(ctx, title, year)
	if err != nil {
		p.log.Debug("poster lookup failed", "title", title, "year", year, "error", err)
		return "", false
	}
	if len(results) == 0 || results[0].PosterPath == "" {
		p.log.Debug("no poster found", "title", title, "year", year, "results", len(results))
		return "", false
	}
	p.log.Debug("poster found", "title", title, "tmdb_id", results[0].ID, "tmdb_year", results[0].Year())
	return p.imageBaseURL + "/" + p.size + results[0].PosterPath, true
}
