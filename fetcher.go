package scraped

import (
	"context"
	"errors"
	"net/url"
	"strings"
)

// Response is a fetched document.
type Response struct {
	// URL is the address the document was requested from.
	URL string
	// Headers holds the response headers, if the transport has any.
	Headers map[string][]string
	// Body is the document decoded to UTF-8.
	Body string
}

// Fetcher retrieves documents from URLs.
type Fetcher interface {
	// Fetch retrieves the document at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Response, error)

	// Close releases any resources held by the fetcher.
	Close() error
}

var _ Fetcher = (SchemeFetcher)(nil)

// SchemeFetcher routes each request to the fetcher registered for the URL's
// scheme.
type SchemeFetcher map[string]Fetcher

// Fetch delegates to the fetcher registered for url's scheme.
// Returns EFETCH if the scheme has no fetcher.
func (m SchemeFetcher) Fetch(ctx context.Context, rawURL string) (*Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, Errorf(EURL, "invalid URL %q: %v", rawURL, err)
	}
	f, ok := m[strings.ToLower(u.Scheme)]
	if !ok {
		return nil, Errorf(EFETCH, "no fetcher for scheme %q", u.Scheme)
	}
	return f.Fetch(ctx, rawURL)
}

// Close closes every registered fetcher. A fetcher registered for several
// schemes is closed once per scheme, so Close must be idempotent.
func (m SchemeFetcher) Close() error {
	var errs []error
	for _, f := range m {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
