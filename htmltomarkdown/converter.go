package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/scraped"
)

var _ scraped.Converter = (*Converter)(nil)

// Converter turns selected HTML fragments into Markdown for markdown
// properties.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// Option configures a Converter.
type Option func(*Converter)

// WithDomain resolves relative links and image sources in the output
// against domain.
func WithDomain(domain string) Option {
	return func(c *Converter) {
		c.domain = domain
	}
}

// NewConverter creates a Converter with CommonMark and table support.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms an HTML fragment into Markdown.
// Returns EINVALID for blank input.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", scraped.Errorf(scraped.EINVALID, "empty HTML input")
	}

	var md string
	var err error
	if c.domain != "" {
		md, err = c.conv.ConvertString(html, converter.WithDomain(c.domain))
	} else {
		md, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}
