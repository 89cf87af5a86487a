package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/scraped"
)

var _ scraped.FrameworkDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps a FrameworkDetector with logging.
type LoggingDetector struct {
	next   scraped.FrameworkDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next scraped.FrameworkDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// Detect delegates to the wrapped detector and logs the detected framework.
func (d *LoggingDetector) Detect(html string) scraped.Framework {
	begin := time.Now()
	framework := d.next.Detect(html)
	name := string(framework)
	if framework == scraped.FrameworkUnknown {
		name = "(unknown)"
	}
	d.logger.Info("framework detection",
		"framework", name,
		"duration", time.Since(begin),
	)
	return framework
}
