package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scraped"
	"golang.org/x/net/html"
)

// newElement builds the element record for a single matched node.
func newElement(s *goquery.Selection, page *url.URL) *scraped.Element {
	el := &scraped.Element{
		TagName: goquery.NodeName(s),
		Text:    strings.TrimSpace(s.Text()),
	}
	if inner, err := s.Html(); err == nil {
		el.HTML = strings.TrimSpace(inner)
	}

	if n := s.Get(0); n != nil && n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Val == "" {
				continue
			}
			if el.Attributes == nil {
				el.Attributes = make(map[string]any, len(n.Attr))
			}
			el.Attributes[a.Key] = a.Val
		}
	}

	el.Src, _ = s.Attr("src")
	classify(el, s, page)
	return el
}

// findHref returns the href of the element itself or, failing that, of its
// only child node.
func findHref(s *goquery.Selection) (string, scraped.HrefSource, bool) {
	if href, ok := s.Attr("href"); ok {
		return href, scraped.HrefSourceElement, true
	}
	children := s.Contents()
	if children.Length() != 1 || children.Get(0).Type != html.ElementNode {
		return "", "", false
	}
	if href, ok := children.Attr("href"); ok {
		return href, scraped.HrefSourceOnlyChild, true
	}
	return "", "", false
}

func classify(el *scraped.Element, s *goquery.Selection, page *url.URL) {
	href, source, ok := findHref(s)
	if ok {
		el.Href = href
		el.HrefSource = source
		el.HrefType, el.FullHref = scraped.ClassifyHref(href, page)
	}

	if ok || el.Src != "" || el.TagName == "img" {
		el.TargetType = scraped.InferTargetType(el.TagName, el.Href, el.Src, el.FullHref, el.HrefType, page)
	}
	if it, ok := scraped.InferImageType(el.TagName, el.Src); ok {
		el.ImageType = it
	}
}
