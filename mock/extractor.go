package mock

import "github.com/fwojciec/scraped"

var _ scraped.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of scraped.Extractor.
type Extractor struct {
	ExtractFn func(pageURL, html string) (*scraped.ResultNode, error)
}

func (e *Extractor) Extract(pageURL, html string) (*scraped.ResultNode, error) {
	return e.ExtractFn(pageURL, html)
}
