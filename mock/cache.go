package mock

import (
	"context"

	"github.com/fwojciec/panshare"
)

var _ panshare.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of panshare.PageCache.
type PageCache struct {
	GetFn func(ctx context.Context, url string) (string, bool, error)
	PutFn func(ctx context.Context, url, html string) error
}

func (c *PageCache) Get(ctx context.Context, url string) (string, bool, error) {
	return c.GetFn(ctx, url)
}

func (c *PageCache) Put(ctx context.Context, url, html string) error {
	return c.PutFn(ctx, url, html)
}
