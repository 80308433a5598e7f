// Package picker chooses a random film from a watchlist.
package picker

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/vmunix/reelroll/internal/letterboxd"
	"github.com/vmunix/reelroll/pkg/title"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/vmunix/reelroll/internal/picker WatchlistSource,PosterSource

// ErrNoMatch is returned when filtering leaves no candidates.
var ErrNoMatch = errors.New("no films match the filter")

// WatchlistSource acquires a complete watchlist.
type WatchlistSource interface {
	Watchlist(ctx context.Context, username string) ([]letterboxd.Film, error)
}

// PosterSource looks up poster artwork. Lookups never fail; a missing poster
// is reported with false.
type PosterSource interface {
	PosterURL(ctx context.Context, title, year string) (string, bool)
}

// Filter narrows a watchlist before picking. Zero value keeps everything.
type Filter struct {
	Match string // fuzzy title query
	Year  string // exact four-digit year
}

// Options controls a single pick.
type Options struct {
	Filter
	Poster bool // look up poster artwork for the chosen film
}

// Pick is the chosen film.
type Pick struct {
	Film      letterboxd.Film `json:"film"`
	PosterURL string          `json:"poster_url,omitempty"`
	PoolSize  int             `json:"pool_size"` // candidates after filtering
}

// Service picks films.
type Service struct {
	source  WatchlistSource
	posters PosterSource
	intn    func(n int) int
	log     *slog.Logger
}

// New creates a Service. posters may be nil.
func New(source WatchlistSource, posters PosterSource, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		source:  source,
		posters: posters,
		intn:    rand.IntN,
		log:     log,
	}
}

// SetRand replaces the random source. intn must return a value in [0, n).
func (s *Service) SetRand(intn func(n int) int) {
	s.intn = intn
}

// Watchlist returns username's watchlist narrowed by f.
func (s *Service) Watchlist(ctx context.Context, username string, f Filter) ([]letterboxd.Film, error) {
	films, err := s.source.Watchlist(ctx, username)
	if err != nil {
		return nil, err
	}
	matched := Apply(films, f)
	if len(matched) == 0 {
		return nil, ErrNoMatch
	}
	return matched, nil
}

// Pick acquires username's watchlist and returns one film chosen uniformly
// at random among those passing opts.Filter.
func (s *Service) Pick(ctx context.Context, username string, opts Options) (*Pick, error) {
	pool, err := s.Watchlist(ctx, username, opts.Filter)
	if err != nil {
		return nil, err
	}

	film := pool[s.intn(len(pool))]
	p := &Pick{Film: film, PoolSize: len(pool)}

	if opts.Poster && s.posters != nil {
		if u, ok := s.posters.PosterURL(ctx, film.Title, film.Year); ok {
			p.PosterURL = u
		}
	}

	s.log.Info("film picked",
		"username", strings.TrimSpace(username),
		"title", film.Title,
		"year", film.Year,
		"pool", len(pool),
		"poster", p.PosterURL != "",
	)
	return p, nil
}

// Apply returns the films passing f, preserving order.
func Apply(films []letterboxd.Film, f Filter) []letterboxd.Film {
	query := strings.TrimSpace(f.Match)
	year := strings.TrimSpace(f.Year)
	if query == "" && year == "" {
		return films
	}

	var out []letterboxd.Film
	for _, film := range films {
		if year != "" && film.Year != year {
			continue
		}
		if query != "" && title.Match(query, film.Title).Confidence < title.ConfidenceMedium {
			continue
		}
		out = append(out, film)
	}
	return out
}
