package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/scraped"
	"github.com/fwojciec/scraped/fs"
	"github.com/fwojciec/scraped/goquery"
	scrapedslog "github.com/fwojciec/scraped/slog"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	resp, err := c.root(deps)
	if err != nil {
		return err
	}

	reg, err := c.registry(deps, resp.Body)
	if err != nil {
		return err
	}
	extractor := scrapedslog.NewLoggingExtractor(goquery.NewExtractor(reg), deps.Logger)

	node, err := extractor.Extract(c.URL, resp.Body)
	if err != nil {
		return err
	}

	if c.Follow {
		t := *deps.Traverser
		t.Extractor = extractor
		if node, err = t.Graph(deps.Ctx, node); err != nil {
			return err
		}
	}

	if deps.Store != nil {
		id, err := deps.Store.SaveResults(deps.Ctx, node)
		if err != nil {
			return err
		}
		pages, err := deps.Store.FindPages(deps.Ctx, scraped.PageFilter{ID: &id})
		if err != nil {
			return err
		}
		if len(pages) != 1 {
			return scraped.Errorf(scraped.EINTERNAL, "saved page %s not found", id)
		}
		fmt.Fprintf(deps.Stderr, "Saved %d pages (%s, hash %s)\n", len(scraped.Flatten(node)), id, pages[0].ContentHash)
	}

	return c.write(deps, node)
}

// root returns the response for the scraped URL, read from the input file
// when one is given.
func (c *ScrapeCmd) root(deps *Dependencies) (*scraped.Response, error) {
	if c.Input == "" {
		return deps.Traverser.Fetch(deps.Ctx, c.URL)
	}

	inputURL, err := fs.URLFromPath(c.Input)
	if err != nil {
		return nil, err
	}
	resp, err := deps.Fetcher.Fetch(deps.Ctx, inputURL)
	if err != nil {
		return nil, err
	}
	resp.URL = c.URL
	return resp, nil
}

// registry builds the selector registry from the preset and the user
// configuration. html is only inspected for automatic preset detection.
func (c *ScrapeCmd) registry(deps *Dependencies, html string) (*goquery.Registry, error) {
	reg := goquery.NewRegistry()

	var preset goquery.PresetFunc
	switch c.Preset {
	case PresetNone:
	case PresetAuto:
		framework := deps.Detector.Detect(html)
		if framework != scraped.FrameworkUnknown {
			fmt.Fprintf(deps.Stderr, "Detected %s\n", framework)
		}
		preset = goquery.PresetForFramework(framework)
	default:
		var err error
		if preset, err = goquery.Preset(c.Preset); err != nil {
			return nil, err
		}
	}

	if preset != nil {
		if err := preset(reg, deps.Converter); err != nil {
			return nil, err
		}
	}

	if deps.Config != nil {
		if err := reg.ApplyConfig(deps.Config, deps.Converter); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// write prints the requested lookups or the JSON result.
func (c *ScrapeCmd) write(deps *Dependencies, node *scraped.ResultNode) error {
	var result any = node
	if c.Flatten {
		result = scraped.Flatten(node)
	}

	if c.Output != "" {
		if err := fs.WriteJSON(c.Output, result); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stderr, "Wrote %s\n", c.Output)
	}

	if len(c.Show) > 0 {
		for _, n := range scraped.Flatten(node) {
			if c.Follow {
				fmt.Fprintf(deps.Stdout, "%s\n", n.URL)
			}
			fmt.Fprintln(deps.Stdout, scraped.FormatLookups(n, c.Show))
		}
		return nil
	}

	if c.Output != "" {
		return nil
	}

	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(deps.Stdout, "%s\n", b)
	return err
}
