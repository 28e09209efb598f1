package fetch

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(postingHTML))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCachedFetcher_Fetch(t *testing.T) {
	var hits atomic.Int32
	server := countingServer(t, &hits)
	f := NewCachedFetcher(cache.NewMemoryCache(10), nil, 0)

	first, err := f.Fetch(t.Context(), server.URL+"/job")
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := f.Fetch(t.Context(), server.URL+"/job")
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, int32(1), hits.Load())

	require.NoError(t, f.Invalidate(t.Context(), server.URL+"/job"))
	third, err := f.Fetch(t.Context(), server.URL+"/job")
	require.NoError(t, err)
	assert.False(t, third.FromCache)
	assert.Equal(t, int32(2), hits.Load())
}

func TestCachedFetcher_NilCache(t *testing.T) {
	var hits atomic.Int32
	server := countingServer(t, &hits)
	f := NewCachedFetcher(nil, nil, 0)

	for range 2 {
		page, err := f.Fetch(t.Context(), server.URL)
		require.NoError(t, err)
		assert.False(t, page.FromCache)
	}
	assert.Equal(t, int32(2), hits.Load())
	assert.NoError(t, f.Invalidate(t.Context(), server.URL))
}

func TestCachedFetcher_FetchMultiple(t *testing.T) {
	var hits atomic.Int32
	server := countingServer(t, &hits)
	f := NewCachedFetcher(cache.NewMemoryCache(10), nil, 0)

	urls := []string{server.URL + "/a", server.URL + "/missing", server.URL + "/b"}
	pages, errs := f.FetchMultiple(t.Context(), urls)

	require.Len(t, pages, 3)
	require.Len(t, errs, 3)
	assert.NoError(t, errs[0])
	assert.NotNil(t, pages[0])
	assert.Error(t, errs[1])
	assert.Nil(t, pages[1])
	assert.NoError(t, errs[2])
	assert.Equal(t, urls[2], pages[2].URL)
}
