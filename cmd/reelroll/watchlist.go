package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/reelroll/internal/picker"
)

var watchlistCmd = &cobra.Command{
	Use:   "watchlist <username>",
	Short: "List a user's watchlist",
	Long: `List every film on a public Letterboxd watchlist, in site order.

Examples:
  reelroll watchlist floxd
  reelroll watchlist floxd --match godfather
  reelroll watchlist floxd --year 1995 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runWatchlistCmd,
}

func init() {
	rootCmd.AddCommand(watchlistCmd)
	watchlistCmd.Flags().String("match", "", "Only films whose title matches")
	watchlistCmd.Flags().String("year", "", "Only films from this year")
}

func runWatchlistCmd(cmd *cobra.Command, args []string) error {
	match, _ := cmd.Flags().GetString("match")
	year, _ := cmd.Flags().GetString("year")

	a, err := loadApp()
	if err != nil {
		return err
	}

	films, err := a.picker.Watchlist(cmd.Context(), args[0], picker.Filter{Match: match, Year: year})
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), films)
	}
	printWatchlist(cmd.OutOrStdout(), strings.TrimSpace(args[0]), films)
	return nil
}
