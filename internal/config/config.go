// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Letterboxd LetterboxdConfig `toml:"letterboxd"`
	TMDB       TMDBConfig       `toml:"tmdb"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type LetterboxdConfig struct {
	BaseURL   string   `toml:"base_url"`
	UserAgent string   `toml:"user_agent"`
	Timeout   Duration `toml:"timeout"`
	// MaxConcurrency caps concurrent page fetches; 0 means unbounded.
	MaxConcurrency int `toml:"max_concurrency"`
	Retries        int `toml:"retries"`
}

type TMDBConfig struct {
	// APIKey may be empty, in which case posters are disabled.
	APIKey       string   `toml:"api_key"`
	BaseURL      string   `toml:"base_url"`
	ImageBaseURL string   `toml:"image_base_url"`
	PosterSize   string   `toml:"poster_size"`
	Timeout      Duration `toml:"timeout"`
	CacheTTL     Duration `toml:"cache_ttl"`
}

// Duration is a time.Duration written as a string ("10s") in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads, substitutes, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation loads the config without running Validate.
func LoadWithoutValidation(path string) (*Config, error) {
	return load(path)
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	md, err := toml.Decode(content, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cacheTTL := cfg.TMDB.CacheTTL
	cfg.applyDefaults()

	// An explicit cache_ttl = "0s" turns the poster cache off.
	if md.IsDefined("tmdb", "cache_ttl") {
		cfg.TMDB.CacheTTL = cacheTTL
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8585
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}

	if c.Letterboxd.BaseURL == "" {
		c.Letterboxd.BaseURL = "https://letterboxd.com"
	}
	if c.Letterboxd.UserAgent == "" {
		c.Letterboxd.UserAgent = "Mozilla/5.0"
	}
	if c.Letterboxd.Timeout.Duration == 0 {
		c.Letterboxd.Timeout.Duration = 10 * time.Second
	}

	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = "https://api.themoviedb.org"
	}
	if c.TMDB.ImageBaseURL == "" {
		c.TMDB.ImageBaseURL = "https://image.tmdb.org/t/p"
	}
	if c.TMDB.PosterSize == "" {
		c.TMDB.PosterSize = "w500"
	}
	if c.TMDB.Timeout.Duration == 0 {
		c.TMDB.Timeout.Duration = 5 * time.Second
	}
	if c.TMDB.CacheTTL.Duration == 0 {
		c.TMDB.CacheTTL.Duration = time.Hour
	}
}

// ${VAR}, ${VAR:-default}, ${VAR:?message}
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars expands environment references in content. References
// that cannot be resolved are left in place and reported in missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string

	lines := strings.SplitAfter(content, "\n")
	for i, line := range lines {
		code, comment := splitComment(line)
		lines[i] = substituteLine(code, &missing) + comment
	}
	return strings.Join(lines, ""), missing
}

// splitComment splits line at the first '#' outside a quoted string.
// References inside comments are never expanded.
func splitComment(line string) (code, comment string) {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == '\\' && quote == '"' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '#':
			return line[:i], line[i:]
		}
	}
	return line, ""
}

func substituteLine(content string, missing *[]string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[2], m[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				*missing = append(*missing, name+": "+arg)
				return match
			}
			return value
		default:
			if !ok {
				*missing = append(*missing, name)
				return match
			}
			return value
		}
	})
}
