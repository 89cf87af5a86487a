// Package http provides an HTTP implementation of scraped.Fetcher for
// static pages that do not require JavaScript rendering.
package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/scraped"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "scraped/1.0 (+https://github.com/fwojciec/scraped)"

// sniffLen is how much of the body is inspected to detect its charset.
const sniffLen = 1024

var _ scraped.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents over HTTP and decodes them to UTF-8.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	headers   http.Header
	token     string
	scoped    map[string]string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(f *Fetcher) {
		f.headers.Add(key, value)
	}
}

// WithBearerToken adds a bearer token. A value of the form "host|token" is
// only sent to host and its subdomains; any other value is sent to every
// host without a scoped token.
func WithBearerToken(spec string) Option {
	return func(f *Fetcher) {
		if spec == "" {
			return
		}
		host, token, ok := strings.Cut(spec, "|")
		if !ok {
			f.token = spec
			return
		}
		f.scoped[strings.ToLower(host)] = token
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		headers:   make(http.Header),
		scoped:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the document at rawURL. Returns EFETCH for transport
// failures and non-200 responses.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*scraped.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, scraped.Errorf(scraped.EURL, "invalid URL %q: %v", rawURL, err)
	}
	for k, vs := range f.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("User-Agent", f.userAgent)
	if token := f.tokenFor(req.URL); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, scraped.Errorf(scraped.EFETCH, "fetch %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, scraped.Errorf(scraped.EFETCH, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := decode(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, scraped.Errorf(scraped.EFETCH, "read %s: %v", rawURL, err)
	}

	return &scraped.Response{
		URL:     rawURL,
		Headers: map[string][]string(resp.Header.Clone()),
		Body:    body,
	}, nil
}

// tokenFor returns the most specific bearer token for u's host.
func (f *Fetcher) tokenFor(u *url.URL) string {
	host := strings.ToLower(u.Hostname())
	for host != "" {
		if token, ok := f.scoped[host]; ok {
			return token
		}
		_, parent, ok := strings.Cut(host, ".")
		if !ok {
			break
		}
		host = parent
	}
	return f.token
}

// decode converts body to UTF-8 using the declared content type and a
// sniff of the first bytes.
func decode(body io.Reader, contentType string) (string, error) {
	br := bufio.NewReaderSize(body, sniffLen)
	peek, _ := br.Peek(sniffLen)
	enc, _, _ := charset.DetermineEncoding(peek, contentType)

	b, err := io.ReadAll(transform.NewReader(br, enc.NewDecoder()))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
