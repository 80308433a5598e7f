// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validPosterSizes = map[string]bool{
	"w92": true, "w154": true, "w185": true, "w342": true,
	"w500": true, "w780": true, "original": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// Letterboxd validation
	if err := checkURL(c.Letterboxd.BaseURL); err != "" {
		errs = append(errs, "letterboxd.base_url: "+err)
	}
	if c.Letterboxd.Timeout.Duration < 0 {
		errs = append(errs, fmt.Sprintf("letterboxd.timeout: must be positive, got %s", c.Letterboxd.Timeout))
	}
	if c.Letterboxd.MaxConcurrency < 0 {
		errs = append(errs, fmt.Sprintf("letterboxd.max_concurrency: must be >= 0, got %d", c.Letterboxd.MaxConcurrency))
	}
	if c.Letterboxd.Retries < 0 || c.Letterboxd.Retries > 5 {
		errs = append(errs, fmt.Sprintf("letterboxd.retries: must be between 0 and 5, got %d", c.Letterboxd.Retries))
	}

	// TMDB validation
	if err := checkURL(c.TMDB.BaseURL); err != "" {
		errs = append(errs, "tmdb.base_url: "+err)
	}
	if err := checkURL(c.TMDB.ImageBaseURL); err != "" {
		errs = append(errs, "tmdb.image_base_url: "+err)
	}
	if !validPosterSizes[c.TMDB.PosterSize] {
		errs = append(errs, fmt.Sprintf("tmdb.poster_size: must be one of w92, w154, w185, w342, w500, w780, original; got %q", c.TMDB.PosterSize))
	}
	if c.TMDB.Timeout.Duration < 0 {
		errs = append(errs, fmt.Sprintf("tmdb.timeout: must be positive, got %s", c.TMDB.Timeout))
	}

	return errs
}

func checkURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return err.Error()
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Sprintf("must be an http(s) URL, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Sprintf("missing host in %q", raw)
	}
	return ""
}
