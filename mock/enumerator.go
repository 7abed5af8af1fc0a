package mock

import (
	"context"

	"github.com/fwojciec/panshare"
)

var _ panshare.ListingEnumerator = (*ListingEnumerator)(nil)

// ListingEnumerator is a mock implementation of panshare.ListingEnumerator.
type ListingEnumerator struct {
	EnumerateFn func(html, listingURL string, limit int) ([]string, error)
}

func (e *ListingEnumerator) Enumerate(html, listingURL string, limit int) ([]string, error) {
	return e.EnumerateFn(html, listingURL, limit)
}

var _ panshare.ArticleSource = (*ArticleSource)(nil)

// ArticleSource is a mock implementation of panshare.ArticleSource.
type ArticleSource struct {
	DiscoverFn func(ctx context.Context, baseURL string, limit int) ([]string, error)
}

func (s *ArticleSource) Discover(ctx context.Context, baseURL string, limit int) ([]string, error) {
	return s.DiscoverFn(ctx, baseURL, limit)
}
