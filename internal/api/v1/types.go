// internal/api/v1/types.go
package v1

// filmResponse is the API representation of a watchlist entry.
type filmResponse struct {
	Title string `json:"title"`
	Year  string `json:"year"`
	Slug  string `json:"slug"`
	Link  string `json:"link"`
	URL   string `json:"url,omitempty"`
}

// watchlistResponse is the response for GET /watchlist/{username}.
type watchlistResponse struct {
	Username string         `json:"username"`
	Items    []filmResponse `json:"items"`
	Total    int            `json:"total"`
}

// pickResponse is the response for GET /pick/{username}.
type pickResponse struct {
	Film      filmResponse `json:"film"`
	PosterURL string       `json:"poster_url,omitempty"`
	PoolSize  int          `json:"pool_size"`
}

// posterResponse is the response for GET /poster.
type posterResponse struct {
	Title     string `json:"title"`
	Year      string `json:"year,omitempty"`
	PosterURL string `json:"poster_url"`
}

// statusResponse is the response for GET /status.
type statusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Posters bool   `json:"posters"`
}
