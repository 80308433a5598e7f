package letterboxd

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer server.Close()

	body, err := NewFetcher(FetcherConfig{}).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "<html>ok</html>", string(body))
}

func TestFetcher_CustomUserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "reelroll-test/1.0", r.Header.Get("User-Agent"))
	}))
	defer server.Close()

	_, err := NewFetcher(FetcherConfig{UserAgent: "reelroll-test/1.0"}).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
}

func TestFetcher_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewFetcher(FetcherConfig{}).Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrFetch)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
}

func TestFetcher_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewFetcher(FetcherConfig{}).Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrFetch)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFetcher_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := NewFetcher(FetcherConfig{Timeout: 50 * time.Millisecond}).Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestFetcher_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	_, err := NewFetcher(FetcherConfig{}).Fetch(context.Background(), addr)
	assert.ErrorIs(t, err, ErrFetch)
}

type flakyTransport struct {
	failures int32
	calls    atomic.Int32
}

func (f *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	n := f.calls.Add(1)
	if n <= f.failures {
		return nil, errors.New("connection reset")
	}
	return http.DefaultTransport.RoundTrip(req)
}

func TestFetcher_Retries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	t.Run("no retries by default", func(t *testing.T) {
		tr := &flakyTransport{failures: 1}
		_, err := NewFetcher(FetcherConfig{Transport: tr}).Fetch(context.Background(), server.URL)
		assert.ErrorIs(t, err, ErrFetch)
		assert.Equal(t, int32(1), tr.calls.Load())
	})

	t.Run("bounded retry recovers", func(t *testing.T) {
		tr := &flakyTransport{failures: 2}
		body, err := NewFetcher(FetcherConfig{Transport: tr, Retries: 2}).Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "ok", string(body))
		assert.Equal(t, int32(3), tr.calls.Load())
	})

	t.Run("retry budget exhausted", func(t *testing.T) {
		tr := &flakyTransport{failures: 5}
		_, err := NewFetcher(FetcherConfig{Transport: tr, Retries: 1}).Fetch(context.Background(), server.URL)
		assert.ErrorIs(t, err, ErrFetch)
		assert.Equal(t, int32(2), tr.calls.Load())
	})
}

func TestFetcher_StatusNotRetried(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewFetcher(FetcherConfig{Retries: 3}).Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrFetch)
	assert.Equal(t, int32(1), hits.Load())
}
