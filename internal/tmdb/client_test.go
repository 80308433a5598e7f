package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SearchMovie(t *testing.T) {
	// Mock TMDB API
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/search/movie", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "Heat", r.URL.Query().Get("query"))
		assert.Equal(t, "1995", r.URL.Query().Get("year"))

		resp := searchResponse{
			Page: 1,
			Results: []SearchResult{
				{ID: 949, Title: "Heat", ReleaseDate: "1995-12-15", PosterPath: "/heat.jpg"},
			},
			TotalResults: 1,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	results, err := client.SearchMovie(context.Background(), "Heat", "1995")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(949), results[0].ID)
	assert.Equal(t, 1995, results[0].Year())
}

func TestClient_SearchMovie_OmitsEmptyYear(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("year"))
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	results, err := NewClient("k", WithBaseURL(server.URL)).SearchMovie(context.Background(), "Stalker", "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestClient_SearchMovie_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status_code":7,"status_message":"Invalid API key"}`))
	}))
	defer server.Close()

	results, err := NewClient("bad", WithBaseURL(server.URL)).SearchMovie(context.Background(), "Heat", "")
	assert.Nil(t, results)
	assert.ErrorContains(t, err, "401")
}

func TestClient_SearchMovie_NoKey(t *testing.T) {
	_, err := NewClient("").SearchMovie(context.Background(), "Heat", "")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestClient_SearchMovie_Cached(t *testing.T) {
	callCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount++
		_ = json.NewEncoder(w).Encode(searchResponse{Results: []SearchResult{{ID: 949, Title: "Heat"}}})
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL), WithCacheTTL(time.Hour))

	// First call hits API
	_, err := client.SearchMovie(context.Background(), "Heat", "1995")
	require.NoError(t, err)
	assert.Equal(t, 1, callCount)

	// Second call uses cache
	_, err = client.SearchMovie(context.Background(), "Heat", "1995")
	require.NoError(t, err)
	assert.Equal(t, 1, callCount, "should use cache, not call API again")

	// Different year is a different query
	_, err = client.SearchMovie(context.Background(), "Heat", "1986")
	require.NoError(t, err)
	assert.Equal(t, 2, callCount)
}

func TestClient_SearchMovie_CacheDisabled(t *testing.T) {
	callCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount++
		_ = json.NewEncoder(w).Encode(searchResponse{Results: []SearchResult{{ID: 949, Title: "Heat"}}})
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL), WithCacheTTL(0))

	for range 2 {
		_, err := client.SearchMovie(context.Background(), "Heat", "1995")
		require.NoError(t, err)
	}
	assert.Equal(t, 2, callCount, "zero TTL must not cache")
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient("k", WithBaseURL(server.URL), WithTimeout(50*time.Millisecond))
	_, err := client.SearchMovie(context.Background(), "Heat", "")
	assert.Error(t, err)
}
