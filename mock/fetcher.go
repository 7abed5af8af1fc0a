// Package mock provides function-field mock implementations of panshare
// interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/panshare"
)

var _ panshare.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of panshare.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
