package mock

import "github.com/fwojciec/scraped"

var _ scraped.FrameworkDetector = (*FrameworkDetector)(nil)

// FrameworkDetector is a mock implementation of scraped.FrameworkDetector.
type FrameworkDetector struct {
	DetectFn func(html string) scraped.Framework
}

func (d *FrameworkDetector) Detect(html string) scraped.Framework {
	return d.DetectFn(html)
}
