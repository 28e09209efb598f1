package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/resume-analyzer/internal/cache"
	"golang.org/x/sync/errgroup"
)

// DefaultCacheTTL bounds how long a fetched posting is reused.
const DefaultCacheTTL = 6 * time.Hour

// maxConcurrentFetches limits FetchMultiple
const maxConcurrentFetches = 4

// CachedFetcher wraps job posting retrieval with a result cache.
type CachedFetcher struct {
	cache    cache.Cache
	options  *Options
	cacheTTL time.Duration
}

// NewCachedFetcher creates a fetcher backed by c. A nil cache disables caching.
func NewCachedFetcher(c cache.Cache, opts *Options, ttl time.Duration) *CachedFetcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedFetcher{cache: c, options: opts, cacheTTL: ttl}
}

// CachedPage is a JobPage with cache provenance.
type CachedPage struct {
	*JobPage
	FromCache bool `json:"from_cache"`
}

// Fetch returns the posting at urlStr, from cache when a fresh copy exists.
// Cache failures fall through to a live fetch.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedPage, error) {
	key := cache.Key("fetch", urlStr)

	if f.cache != nil {
		var page JobPage
		if ok, err := f.cache.GetJSON(ctx, key, &page); err == nil && ok {
			return &CachedPage{JobPage: &page, FromCache: true}, nil
		}
	}

	page, err := JobPosting(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	if f.cache != nil {
		_ = f.cache.SetJSON(ctx, key, page, f.cacheTTL)
	}
	return &CachedPage{JobPage: page}, nil
}

// Invalidate drops the cached copy of urlStr.
func (f *CachedFetcher) Invalidate(ctx context.Context, urlStr string) error {
	if f.cache == nil {
		return nil
	}
	if err := f.cache.Del(ctx, cache.Key("fetch", urlStr)); err != nil {
		return fmt.Errorf("failed to invalidate %s: %w", urlStr, err)
	}
	return nil
}

// FetchMultiple fetches urls concurrently. Results and errors are index-aligned
// with urls; a failed fetch leaves a nil page and its error.
func (f *CachedFetcher) FetchMultiple(ctx context.Context, urls []string) ([]*CachedPage, []error) {
	pages := make([]*CachedPage, len(urls))
	errs := make([]error, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, u := range urls {
		g.Go(func() error {
			pages[i], errs[i] = f.Fetch(gctx, u)
			return nil
		})
	}
	_ = g.Wait()

	return pages, errs
}
