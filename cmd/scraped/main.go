package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/scraped"
	"github.com/fwojciec/scraped/crawl"
	"github.com/fwojciec/scraped/fs"
	"github.com/fwojciec/scraped/goquery"
	"github.com/fwojciec/scraped/htmltomarkdown"
	scrapedhttp "github.com/fwojciec/scraped/http"
	scrapedslog "github.com/fwojciec/scraped/slog"
	"github.com/fwojciec/scraped/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scraped"),
		kong.Description("Extract structured data from web pages with CSS selectors"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if err := cli.Validate(); err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
		Detector: scrapedslog.NewLoggingDetector(goquery.NewDetector(), logger),
	}

	httpOpts := []scrapedhttp.Option{
		scrapedhttp.WithTimeout(cli.Timeout),
		scrapedhttp.WithUserAgent(cli.UserAgent),
	}
	for _, h := range cli.Headers {
		key, value, _ := parseHeader(h)
		httpOpts = append(httpOpts, scrapedhttp.WithHeader(key, value))
	}
	for _, token := range cli.BearerTokens {
		httpOpts = append(httpOpts, scrapedhttp.WithBearerToken(token))
	}
	httpFetcher := scrapedhttp.NewFetcher(httpOpts...)
	fetcher := scrapedslog.NewLoggingFetcher(scraped.SchemeFetcher{
		"http":  httpFetcher,
		"https": httpFetcher,
		"file":  fs.NewFetcher(),
	}, logger)
	defer fetcher.Close()
	deps.Fetcher = fetcher

	var convOpts []htmltomarkdown.Option
	if u, err := url.Parse(cli.URL); err == nil && u.Host != "" {
		convOpts = append(convOpts, htmltomarkdown.WithDomain(u.Scheme+"://"+u.Host))
	}
	deps.Converter = htmltomarkdown.NewConverter(convOpts...)

	if cli.Config != "" {
		f, err := os.Open(cli.Config)
		if err != nil {
			return fmt.Errorf("failed to open config: %w", err)
		}
		deps.Config, err = scraped.LoadConfig(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	if cli.DB != "" {
		db := sqlite.NewDB(cli.DB)
		if err := db.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SCRAPED_DB to use a different database path\n")
			return err
		}
		defer db.Close()
		deps.Store = scrapedslog.NewLoggingResultStore(sqlite.NewResultStore(db), logger)
	}

	deps.Traverser = &crawl.Traverser{
		Fetcher:     fetcher,
		Limiter:     crawl.NewHostLimiter(cli.Rate),
		Concurrency: cli.Concurrency,
		Progress: func(e crawl.ProgressEvent) {
			if line := crawl.FormatProgress(e); line != "" {
				fmt.Fprintln(stderr, line)
			}
		},
	}

	cmd := &ScrapeCmd{
		URL:     cli.URL,
		Input:   cli.Input,
		Output:  cli.Output,
		Preset:  cli.Preset,
		Follow:  cli.Follow,
		Flatten: cli.Flatten,
		Show:    cli.Show,
	}

	return cmd.Run(deps)
}
