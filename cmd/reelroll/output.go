package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/vmunix/reelroll/internal/letterboxd"
	"github.com/vmunix/reelroll/internal/picker"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

func printWatchlist(w io.Writer, username string, films []letterboxd.Film) {
	fmt.Fprintf(w, "Watchlist for %s (%d %s)\n", username, len(films), plural(len(films), "film", "films"))

	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Title", "Year", "Slug"})
	for i, f := range films {
		t.AppendRow(table.Row{i + 1, f.Title, f.Year, f.Slug})
	}
	t.Render()
}

func printPick(w io.Writer, p *picker.Pick, siteURL string) {
	fmt.Fprintf(w, "%s\n", p.Film.DisplayTitle())
	if u := p.Film.DetailURL(siteURL); u != "" {
		fmt.Fprintf(w, "  %s\n", u)
	}
	if p.PosterURL != "" {
		fmt.Fprintf(w, "  Poster: %s\n", p.PosterURL)
	}
	fmt.Fprintf(w, "\nRolled from %d %s.\n", p.PoolSize, plural(p.PoolSize, "film", "films"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
