package main

import (
	"github.com/spf13/cobra"

	"github.com/vmunix/reelroll/internal/picker"
)

var pickCmd = &cobra.Command{
	Use:   "pick <username>",
	Short: "Roll a random film from a watchlist",
	Long: `Pick one film uniformly at random from a public Letterboxd watchlist.

A poster is looked up on TMDB when tmdb.api_key is configured.

Examples:
  reelroll pick floxd
  reelroll pick floxd --match "star wars"
  reelroll pick floxd --year 1979 --no-poster`,
	Args: cobra.ExactArgs(1),
	RunE: runPickCmd,
}

func init() {
	rootCmd.AddCommand(pickCmd)
	pickCmd.Flags().String("match", "", "Only pick films whose title matches")
	pickCmd.Flags().String("year", "", "Only pick films from this year")
	pickCmd.Flags().Bool("no-poster", false, "Skip the poster lookup")
}

func runPickCmd(cmd *cobra.Command, args []string) error {
	match, _ := cmd.Flags().GetString("match")
	year, _ := cmd.Flags().GetString("year")
	noPoster, _ := cmd.Flags().GetBool("no-poster")

	a, err := loadApp()
	if err != nil {
		return err
	}

	p, err := a.picker.Pick(cmd.Context(), args[0], picker.Options{
		Filter: picker.Filter{Match: match, Year: year},
		Poster: !noPoster,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), p)
	}
	printPick(cmd.OutOrStdout(), p, a.watchlists.BaseURL())
	return nil
}
