// internal/config/discover.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Discover when no config file exists in any of
// the searched locations.
var ErrNotFound = errors.New("config not found")

// EnvPath names the environment variable that points at a config file.
const EnvPath = "REELROLL_CONFIG"

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./config.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "reelroll", "config.toml")
}

// Discover finds the config file using the standard search order:
//  1. REELROLL_CONFIG environment variable
//  2. ./config.toml
//  3. $XDG_CONFIG_HOME/reelroll/config.toml
//  4. /etc/reelroll/config.toml
func Discover() (string, error) {
	if envPath := os.Getenv(EnvPath); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvPath, envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./config.toml",
		DefaultPath(),
		"/etc/reelroll/config.toml",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}

// Resolve loads the configuration the CLI should run with. An explicit path
// must exist. Otherwise the discovered file is used, and when there is none
// the defaults are returned with an empty path.
func Resolve(explicit string) (*Config, string, error) {
	path := explicit
	if path == "" {
		p, err := Discover()
		switch {
		case errors.Is(err, ErrNotFound):
			return Default(), "", nil
		case err != nil:
			return nil, "", err
		}
		path = p
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}
