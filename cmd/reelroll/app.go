package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vmunix/reelroll/internal/config"
	"github.com/vmunix/reelroll/internal/letterboxd"
	"github.com/vmunix/reelroll/internal/picker"
	"github.com/vmunix/reelroll/internal/tmdb"
)

// app holds the components a command runs against.
type app struct {
	cfg        *config.Config
	configPath string // empty when running on defaults
	log        *slog.Logger
	watchlists *letterboxd.Client
	posters    *tmdb.PosterFinder
	picker     *picker.Service
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadApp resolves configuration and builds the app. Logs go to stderr so
// stdout stays clean for command output.
func loadApp() (*app, error) {
	cfg, path, err := config.Resolve(configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Server.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))

	a := newApp(cfg, logger)
	a.configPath = path
	return a, nil
}

func newApp(cfg *config.Config, logger *slog.Logger) *app {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	fetcher := letterboxd.NewFetcher(letterboxd.FetcherConfig{
		UserAgent: cfg.Letterboxd.UserAgent,
		Timeout:   cfg.Letterboxd.Timeout.Duration,
		Retries:   cfg.Letterboxd.Retries,
	})
	watchlists := letterboxd.NewClient(
		letterboxd.WithBaseURL(cfg.Letterboxd.BaseURL),
		letterboxd.WithFetcher(fetcher),
		letterboxd.WithMaxConcurrency(cfg.Letterboxd.MaxConcurrency),
		letterboxd.WithLogger(logger.With("component", "letterboxd")),
	)

	posters := tmdb.NewPosterFinder(tmdb.PosterConfig{
		APIKey:       cfg.TMDB.APIKey,
		ImageBaseURL: cfg.TMDB.ImageBaseURL,
		Size:         cfg.TMDB.PosterSize,
	}, logger.With("component", "tmdb"),
		tmdb.WithBaseURL(cfg.TMDB.BaseURL),
		tmdb.WithTimeout(cfg.TMDB.Timeout.Duration),
		tmdb.WithCacheTTL(cfg.TMDB.CacheTTL.Duration),
	)

	// A disabled finder is left out entirely so the picker skips lookups.
	var posterSource picker.PosterSource
	if posters.Enabled() {
		posterSource = posters
	}

	return &app{
		cfg:        cfg,
		log:        logger,
		watchlists: watchlists,
		posters:    posters,
		picker:     picker.New(watchlists, posterSource, logger.With("component", "picker")),
	}
}
