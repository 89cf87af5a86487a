// Package slog provides logging decorators for scraped services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/scraped"
)

var _ scraped.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   scraped.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next scraped.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (resp *scraped.Response, err error) {
	defer func(begin time.Time) {
		var size int
		var contentType string
		if resp != nil {
			size = len(resp.Body)
			if v := resp.Headers["Content-Type"]; len(v) > 0 {
				contentType = v[0]
			}
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", size,
			"contentType", contentType,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
