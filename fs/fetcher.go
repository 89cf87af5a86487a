// Package fs provides local file access: a fetcher for file:// URLs and an
// atomic writer for result files.
package fs

import (
	"context"
	"errors"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/scraped"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// IndexFile is served when a file:// URL names a directory.
const IndexFile = "index.html"

var _ scraped.Fetcher = (*Fetcher)(nil)

// Fetcher reads documents from file:// URLs and decodes them to UTF-8.
type Fetcher struct{}

// NewFetcher creates a new Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch reads the file named by rawURL. Returns EURL for URLs that are not
// file:// URLs and EFETCH when the file cannot be read.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*scraped.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := PathFromURL(rawURL)
	if err != nil {
		return nil, err
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, IndexFile)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, scraped.Errorf(scraped.EFETCH, "file not found: %s", path)
		}
		return nil, scraped.Errorf(scraped.EFETCH, "read %s: %v", path, err)
	}

	// The extension only tells the media type; the charset comes from the
	// document itself.
	contentType, _, _ := mime.ParseMediaType(mime.TypeByExtension(filepath.Ext(path)))
	enc, _, _ := charset.DetermineEncoding(b, contentType)
	body, _, err := transform.Bytes(enc.NewDecoder(), b)
	if err != nil {
		return nil, scraped.Errorf(scraped.EFETCH, "decode %s: %v", path, err)
	}

	resp := &scraped.Response{URL: rawURL, Body: string(body)}
	if contentType != "" {
		resp.Headers = map[string][]string{"Content-Type": {contentType}}
	}
	return resp, nil
}

// PathFromURL returns the local path named by a file:// URL.
func PathFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || !strings.EqualFold(u.Scheme, "file") {
		return "", scraped.Errorf(scraped.EURL, "not a file URL: %q", rawURL)
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", scraped.Errorf(scraped.EURL, "remote file URLs are not supported: %q", rawURL)
	}
	if u.Path == "" {
		return "", scraped.Errorf(scraped.EURL, "file URL has no path: %q", rawURL)
	}
	return filepath.FromSlash(u.Path), nil
}

// URLFromPath returns the file:// URL for a local path.
func URLFromPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
