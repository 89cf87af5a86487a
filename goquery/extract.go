package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scraped"
)

var _ scraped.Extractor = (*Extractor)(nil)

// Extractor applies a frozen registry to HTML documents.
type Extractor struct {
	reg *Registry
}

// NewExtractor returns an extractor for a copy of reg. Later changes to reg
// do not affect the extractor.
func NewExtractor(reg *Registry) *Extractor {
	return &Extractor{reg: reg.Clone()}
}

// Extract parses html, applies every selector and property, and discovers
// child URLs. Every call recomputes the result from scratch.
// Returns EINVALID if pageURL is not an absolute URL or html cannot be
// parsed.
func (e *Extractor) Extract(pageURL string, html string) (*scraped.ResultNode, error) {
	page, err := url.Parse(pageURL)
	if err != nil || !page.IsAbs() {
		return nil, scraped.Errorf(scraped.EINVALID, "invalid page URL %q", pageURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, scraped.Errorf(scraped.EINVALID, "failed to parse HTML: %v", err)
	}

	selections := make(map[string]scraped.SelectionResult, len(e.reg.selectors))
	for _, sel := range e.reg.selectors {
		selections[sel.spec.Name] = e.apply(doc, sel, page)
	}

	properties := make(map[string]any, len(e.reg.properties))
	for _, p := range e.reg.properties {
		properties[p.name] = p.fn(selections)
	}

	childURLs, dropped := scraped.ChildURLs(pageURL, selections, e.reg.children)
	if childURLs == nil {
		childURLs = []string{}
	}

	return &scraped.ResultNode{
		URL:         pageURL,
		Selections:  selections,
		Properties:  properties,
		ChildURLs:   childURLs,
		Children:    []*scraped.ResultNode{},
		DroppedURLs: dropped,
	}, nil
}

func (e *Extractor) apply(doc *goquery.Document, sel compiledSelector, page *url.URL) scraped.SelectionResult {
	matches := doc.FindMatcher(sel.matcher)
	if sel.spec.Kind == scraped.SelectorItem {
		if matches.Length() == 0 {
			return scraped.None()
		}
		return scraped.ItemSelection(newElement(matches.First(), page))
	}

	els := make([]*scraped.Element, 0, matches.Length())
	matches.Each(func(_ int, s *goquery.Selection) {
		els = append(els, newElement(s, page))
	})
	return scraped.ListSelection(els)
}
