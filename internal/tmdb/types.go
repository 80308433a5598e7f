// Package tmdb provides a client for The Movie Database search API and the
// poster lookup built on it.
package tmdb

import "strconv"

// SearchResult is one movie returned by /3/search/movie.
type SearchResult struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	ReleaseDate   string  `json:"release_date"` // "1995-12-15", may be empty
	PosterPath    string  `json:"poster_path"`  // "/abc123.jpg", may be empty
	Popularity    float64 `json:"popularity"`
}

// Year extracts the year from ReleaseDate.
func (r *SearchResult) Year() int {
	if len(r.ReleaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(r.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

type searchResponse struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalResults int            `json:"total_results"`
}
