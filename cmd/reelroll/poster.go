package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var errPostersDisabled = errors.New("poster lookup disabled: set tmdb.api_key")

var posterCmd = &cobra.Command{
	Use:   "poster <title>...",
	Short: "Look up a film's poster on TMDB",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPosterCmd,
}

func init() {
	rootCmd.AddCommand(posterCmd)
	posterCmd.Flags().String("year", "", "Release year")
}

func runPosterCmd(cmd *cobra.Command, args []string) error {
	year, _ := cmd.Flags().GetString("year")
	title := strings.Join(args, " ")

	a, err := loadApp()
	if err != nil {
		return err
	}
	if !a.posters.Enabled() {
		return errPostersDisabled
	}

	u, ok := a.posters.PosterURL(cmd.Context(), title, year)
	if !ok {
		return fmt.Errorf("no poster found for %q", title)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), map[string]string{"title": title, "year": year, "poster_url": u})
	}
	fmt.Fprintln(cmd.OutOrStdout(), u)
	return nil
}
