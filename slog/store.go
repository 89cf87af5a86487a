package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/scraped"
)

var _ scraped.ResultStore = (*LoggingResultStore)(nil)

// LoggingResultStore wraps a ResultStore with logging.
type LoggingResultStore struct {
	next   scraped.ResultStore
	logger *slog.Logger
}

// NewLoggingResultStore creates a new LoggingResultStore.
func NewLoggingResultStore(next scraped.ResultStore, logger *slog.Logger) *LoggingResultStore {
	return &LoggingResultStore{next: next, logger: logger}
}

// SaveResults delegates to the wrapped store and logs the operation.
func (s *LoggingResultStore) SaveResults(ctx context.Context, node *scraped.ResultNode) (id string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("save results",
			"url", node.URL,
			"pages", len(scraped.Flatten(node)),
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveResults(ctx, node)
}

// FindPages delegates to the wrapped store and logs the operation.
func (s *LoggingResultStore) FindPages(ctx context.Context, filter scraped.PageFilter) (pages []*scraped.Page, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find pages",
			"count", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindPages(ctx, filter)
}
