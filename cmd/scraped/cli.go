package main

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/scraped"
	"github.com/fwojciec/scraped/crawl"
	"github.com/fwojciec/scraped/goquery"
	scrapedhttp "github.com/fwojciec/scraped/http"
)

// PresetAuto selects a preset from the framework detected on the root page.
const PresetAuto = "auto"

// PresetNone registers no preset selectors.
const PresetNone = "none"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL string `arg:"" required:"" help:"URL of the page to scrape (http, https or file)"`

	Output  string   `short:"o" type:"path" help:"Write the JSON result to this file instead of stdout"`
	Follow  bool     `short:"f" help:"Also load and parse the child pages found on the page"`
	Flatten bool     `help:"Output a flat list of pages instead of a tree"`
	Show    []string `short:"s" sep:"," help:"Print selected properties or selectors as '- key: value' lines ('all' for everything, 'props' for properties)"`
	Config  string   `short:"c" type:"existingfile" help:"JSON file with selectors, properties and child rules"`
	Preset  string   `short:"p" default:"generic" help:"Selector preset: a preset name, 'auto' to detect the documentation framework, or 'none'"`
	Input   string   `short:"i" type:"existingfile" help:"Parse this local HTML file as the response for URL instead of fetching it"`

	UserAgent    string        `name:"user-agent" env:"SCRAPED_USER_AGENT" help:"User agent sent with HTTP requests"`
	Headers      []string      `name:"header" short:"H" sep:"none" help:"Extra HTTP request header as 'Key: Value' (repeatable)"`
	BearerTokens []string      `name:"bearer-token" env:"SCRAPED_BEARER_TOKEN" sep:"," help:"Bearer token for HTTP requests, optionally scoped as 'host|token'"`
	Timeout      time.Duration `short:"t" env:"SCRAPED_TIMEOUT" default:"10s" help:"Fetch timeout per page"`
	Concurrency  int           `default:"1" help:"Child pages fetched at once"`
	Rate         float64       `default:"0" help:"Requests per second per host, 0 for unlimited"`
	DB           string        `env:"SCRAPED_DB" help:"Also store the result pages in this SQLite database"`
	Debug        bool          `help:"Log every fetch and extraction to stderr"`
}

// Validate checks flag combinations that kong cannot express.
func (c *CLI) Validate() error {
	if c.Preset == "" {
		c.Preset = goquery.PresetGeneric
	}
	if c.Preset != PresetAuto && c.Preset != PresetNone {
		if _, err := goquery.Preset(c.Preset); err != nil {
			return scraped.Errorf(scraped.EINVALID, "unknown preset %q (want auto, none or one of %s)",
				c.Preset, strings.Join(goquery.PresetNames(), ", "))
		}
	}
	u, err := url.Parse(c.URL)
	if err != nil || !u.IsAbs() {
		return scraped.Errorf(scraped.EURL, "URL must be absolute: %q", c.URL)
	}
	for _, h := range c.Headers {
		if _, _, ok := parseHeader(h); !ok {
			return scraped.Errorf(scraped.EINVALID, "header must be 'Key: Value': %q", h)
		}
	}
	if c.Concurrency < 0 {
		return scraped.Errorf(scraped.EINVALID, "concurrency must not be negative")
	}
	if c.Rate < 0 {
		return scraped.Errorf(scraped.EINVALID, "rate must not be negative")
	}
	if c.Timeout <= 0 {
		c.Timeout = scrapedhttp.DefaultFetchTimeout
	}
	return nil
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher   scraped.Fetcher
	Converter scraped.Converter
	Detector  scraped.FrameworkDetector
	Traverser *crawl.Traverser

	// Config is the user selector configuration. Optional.
	Config *scraped.Config

	// Store persists results. Optional.
	Store scraped.ResultStore
}

// ScrapeCmd handles the main scrape operation.
type ScrapeCmd struct {
	URL     string
	Input   string
	Output  string
	Preset  string
	Follow  bool
	Flatten bool
	Show    []string
}


// parseHeader splits a "Key: Value" flag value.
func parseHeader(h string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(h, ":")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(value), true
}
