package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/reelroll/internal/letterboxd"
	"github.com/vmunix/reelroll/internal/picker"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "reelroll",
	Short: "Pick a random film from a Letterboxd watchlist",
	Long: `reelroll - pick something to watch

Fetches a public Letterboxd watchlist and rolls one film from it,
optionally with TMDB poster artwork.

Run 'reelroll serve' to expose the same features as a JSON API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: discovered)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("reelroll {{.Version}}\n")
}

// userMessage renders err the way it is shown on the terminal.
func userMessage(err error) string {
	var we *letterboxd.WatchlistError
	switch {
	case errors.As(err, &we):
		return we.Message()
	case errors.Is(err, picker.ErrNoMatch):
		return "No films in the watchlist match the filter."
	default:
		return "error: " + err.Error()
	}
}
