package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate_Defaults(t *testing.T) {
	if errs := Default().Validate(); len(errs) != 0 {
		t.Errorf("defaults should validate, got %v", errs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"bad log level", func(c *Config) { c.Server.LogLevel = "loud" }, "server.log_level"},
		{"relative base url", func(c *Config) { c.Letterboxd.BaseURL = "letterboxd.com" }, "letterboxd.base_url"},
		{"ftp base url", func(c *Config) { c.Letterboxd.BaseURL = "ftp://letterboxd.com" }, "letterboxd.base_url"},
		{"negative timeout", func(c *Config) { c.Letterboxd.Timeout.Duration = -time.Second }, "letterboxd.timeout"},
		{"negative concurrency", func(c *Config) { c.Letterboxd.MaxConcurrency = -1 }, "letterboxd.max_concurrency"},
		{"too many retries", func(c *Config) { c.Letterboxd.Retries = 10 }, "letterboxd.retries"},
		{"tmdb url", func(c *Config) { c.TMDB.BaseURL = "::" }, "tmdb.base_url"},
		{"image url", func(c *Config) { c.TMDB.ImageBaseURL = "https://" }, "tmdb.image_base_url"},
		{"poster size", func(c *Config) { c.TMDB.PosterSize = "w9000" }, "tmdb.poster_size"},
		{"tmdb timeout", func(c *Config) { c.TMDB.Timeout.Duration = -1 }, "tmdb.timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %v", errs)
			}
			if !strings.HasPrefix(errs[0], tt.field) {
				t.Errorf("expected error for %s, got %q", tt.field, errs[0])
			}
		})
	}
}
