// Package letterboxd acquires public watchlists from letterboxd.com.
//
// A watchlist is spread across listing pages. Page 1 tells us how many pages
// exist; the remaining pages are fetched concurrently and concatenated in page
// order. Any failed page fails the whole call.
package letterboxd

import "strings"

// Film is one watchlist entry.
type Film struct {
	Title string `json:"title"`
	Year  string `json:"year"` // four digits or ""
	Slug  string `json:"slug"`
	Link  string `json:"link"` // site-relative, e.g. "/film/heat-1995/"
}

// DisplayTitle returns "Title (Year)", or just the title when the year is unknown.
func (f Film) DisplayTitle() string {
	if f.Year == "" {
		return f.Title
	}
	return f.Title + " (" + f.Year + ")"
}

// DetailURL resolves Link against baseURL.
func (f Film) DetailURL(baseURL string) string {
	if f.Link == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(f.Link, "/")
}
