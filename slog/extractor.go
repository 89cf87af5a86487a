package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/scraped"
)

var _ scraped.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging. Child URL candidates
// dropped during extraction are logged at debug level.
type LoggingExtractor struct {
	next   scraped.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next scraped.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(pageURL string, html string) (node *scraped.ResultNode, err error) {
	defer func(begin time.Time) {
		var selections, properties, children int
		if node != nil {
			selections = len(node.Selections)
			properties = len(node.Properties)
			children = len(node.ChildURLs)
			for _, dropped := range node.DroppedURLs {
				e.logger.Debug("child url dropped", "url", pageURL, "err", dropped)
			}
		}
		e.logger.Info("extract",
			"url", pageURL,
			"selections", selections,
			"properties", properties,
			"childUrls", children,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(pageURL, html)
}
