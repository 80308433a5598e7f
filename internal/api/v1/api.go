// Package v1 implements the JSON API.
package v1

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/vmunix/reelroll/internal/letterboxd"
	"github.com/vmunix/reelroll/internal/picker"
)

// Config holds API server configuration.
type Config struct {
	Version string
	// SiteURL is used to turn film links into absolute URLs.
	SiteURL string
}

// Server is the v1 API server.
type Server struct {
	deps ServerDeps
	cfg  Config
	log  *slog.Logger
}

// NewWithDeps creates a v1 API server.
func NewWithDeps(deps ServerDeps, cfg Config, log *slog.Logger) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{deps: deps, cfg: cfg, log: log}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/watchlist/{username}", s.getWatchlist)
	mux.HandleFunc("GET /api/v1/pick/{username}", s.pick)
	mux.HandleFunc("GET /api/v1/poster", s.requirePosters(s.getPoster))
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// writeFailure maps watchlist and picker errors onto HTTP responses. The
// code field carries the stable failure discriminant.
func (s *Server) writeFailure(w http.ResponseWriter, err error) {
	if errors.Is(err, picker.ErrNoMatch) {
		writeError(w, http.StatusNotFound, "no_match", "No films in the watchlist match the filter.")
		return
	}

	var we *letterboxd.WatchlistError
	if !errors.As(err, &we) {
		s.log.Error("unexpected error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "Internal error")
		return
	}

	status := http.StatusBadGateway
	switch we.Kind {
	case letterboxd.KindInvalidInput:
		status = http.StatusBadRequest
	case letterboxd.KindUserNotFound, letterboxd.KindEmptyOrPrivate:
		status = http.StatusNotFound
	}
	writeError(w, status, string(we.Kind), we.Message())
}

func (s *Server) toFilmResponse(f letterboxd.Film) filmResponse {
	resp := filmResponse{Title: f.Title, Year: f.Year, Slug: f.Slug, Link: f.Link}
	if s.cfg.SiteURL != "" {
		resp.URL = f.DetailURL(s.cfg.SiteURL)
	}
	return resp
}

func filterFromQuery(r *http.Request) picker.Filter {
	return picker.Filter{
		Match: r.URL.Query().Get("match"),
		Year:  r.URL.Query().Get("year"),
	}
}

// queryBool extracts an optional boolean from the query string.
func queryBool(r *http.Request, name string, defaultVal bool) bool {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func (s *Server) getWatchlist(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	films, err := s.deps.Picker.Watchlist(r.Context(), username, filterFromQuery(r))
	if err != nil {
		s.writeFailure(w, err)
		return
	}

	resp := watchlistResponse{
		Username: strings.TrimSpace(username),
		Items:    make([]filmResponse, 0, len(films)),
		Total:    len(films),
	}
	for _, f := range films {
		resp.Items = append(resp.Items, s.toFilmResponse(f))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) pick(w http.ResponseWriter, r *http.Request) {
	opts := picker.Options{
		Filter: filterFromQuery(r),
		Poster: queryBool(r, "poster", true),
	}

	p, err := s.deps.Picker.Pick(r.Context(), r.PathValue("username"), opts)
	if err != nil {
		s.writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pickResponse{
		Film:      s.toFilmResponse(p.Film),
		PosterURL: p.PosterURL,
		PoolSize:  p.PoolSize,
	})
}

func (s *Server) getPoster(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.URL.Query().Get("title"))
	year := strings.TrimSpace(r.URL.Query().Get("year"))
	if title == "" {
		writeError(w, http.StatusBadRequest, "invalid_input", "title is required")
		return
	}

	u, ok := s.deps.Posters.PosterURL(r.Context(), title, year)
	if !ok {
		writeError(w, http.StatusNotFound, "no_poster", "No poster available.")
		return
	}
	writeJSON(w, http.StatusOK, posterResponse{Title: title, Year: year, PosterURL: u})
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "ok",
		Version: s.cfg.Version,
		Posters: s.deps.Posters != nil,
	})
}
