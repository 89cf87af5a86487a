package mock

import (
	"context"

	"github.com/fwojciec/scraped"
)

var _ scraped.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of scraped.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*scraped.Response, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*scraped.Response, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
