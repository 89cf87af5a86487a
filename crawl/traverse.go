// Package crawl fetches pages and their child pages and assembles result
// trees one level deep.
package crawl

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/scraped"
	"golang.org/x/sync/errgroup"
)

// Traverser fetches a page, extracts it, and optionally fetches and
// extracts each of its child URLs with the same extractor. Children are
// never expanded further.
type Traverser struct {
	Fetcher   scraped.Fetcher
	Extractor scraped.Extractor

	// Limiter paces requests per host. Optional.
	Limiter scraped.HostLimiter

	// Concurrency is the number of children fetched at once. Values below
	// two fetch children sequentially. Results keep document order either
	// way.
	Concurrency int

	// Progress receives child traversal events. Optional. Calls are
	// serialized.
	Progress ProgressFunc
}

// ProgressEvent reports progress during child traversal.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Bytes     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressChildCompleted
	ProgressChildFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting traversal progress.
type ProgressFunc func(event ProgressEvent)

// Results fetches and extracts the page at rawURL. The returned node has
// no children. A fetch failure is returned as EFETCH.
func (t *Traverser) Results(ctx context.Context, rawURL string) (*scraped.ResultNode, error) {
	node, _, err := t.visit(ctx, rawURL)
	return node, err
}

// ResultsGraph fetches and extracts the page at rawURL and then each of
// its child URLs.
func (t *Traverser) ResultsGraph(ctx context.Context, rawURL string) (*scraped.ResultNode, error) {
	node, err := t.Results(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return t.Graph(ctx, node)
}

// Graph sets node.Children to the results of its child URLs and returns
// node.
func (t *Traverser) Graph(ctx context.Context, node *scraped.ResultNode) (*scraped.ResultNode, error) {
	children, err := t.Children(ctx, node)
	if err != nil {
		return nil, err
	}
	node.Children = children
	return node, nil
}

// Children fetches and extracts every child URL of node in document order.
// The same URL is fetched once per occurrence. A child that fails to fetch
// or extract is reported as ProgressChildFailed and left out of the
// result; only context cancellation aborts the traversal.
func (t *Traverser) Children(ctx context.Context, node *scraped.ResultNode) ([]*scraped.ResultNode, error) {
	urls := node.ChildURLs
	slots := make([]*scraped.ResultNode, len(urls))
	p := &progress{fn: t.Progress, total: len(urls)}

	p.report(ProgressEvent{Type: ProgressStarted})

	visit := func(ctx context.Context, i int) error {
		child, size, err := t.visit(ctx, urls[i])
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.done(ProgressEvent{Type: ProgressChildFailed, URL: urls[i], Error: err})
			return nil
		}
		child.Children = []*scraped.ResultNode{}
		slots[i] = child
		p.done(ProgressEvent{Type: ProgressChildCompleted, URL: urls[i], Bytes: size})
		return nil
	}

	if t.Concurrency < 2 {
		for i := range urls {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := visit(ctx, i); err != nil {
				return nil, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(t.Concurrency)
		for i := range urls {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return visit(gctx, i)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	children := make([]*scraped.ResultNode, 0, len(slots))
	for _, c := range slots {
		if c != nil {
			children = append(children, c)
		}
	}

	p.report(ProgressEvent{Type: ProgressFinished, Completed: p.total})
	return children, nil
}

// Fetch waits for the host's turn and fetches rawURL. Failures other than
// context cancellation are returned as EFETCH.
func (t *Traverser) Fetch(ctx context.Context, rawURL string) (*scraped.Response, error) {
	if t.Limiter != nil {
		if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
			if err := t.Limiter.Wait(ctx, u.Host); err != nil {
				return nil, err
			}
		}
	}
	resp, err := t.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if scraped.ErrorCode(err) != scraped.EFETCH {
			err = scraped.Errorf(scraped.EFETCH, "fetch %s: %v", rawURL, err)
		}
		return nil, err
	}
	return resp, nil
}

// visit fetches and extracts a single page, returning the body size.
func (t *Traverser) visit(ctx context.Context, rawURL string) (*scraped.ResultNode, int, error) {
	resp, err := t.Fetch(ctx, rawURL)
	if err != nil {
		return nil, 0, err
	}

	node, err := t.Extractor.Extract(rawURL, resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return node, len(resp.Body), nil
}

// progress serializes progress callbacks and counts finished children.
type progress struct {
	mu        sync.Mutex
	fn        ProgressFunc
	total     int
	completed int
}

func (p *progress) report(e ProgressEvent) {
	if p.fn == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	e.Total = p.total
	p.fn(e)
}

func (p *progress) done(e ProgressEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.completed++
	if p.fn == nil {
		return
	}
	e.Completed = p.completed
	e.Total = p.total
	p.fn(e)
}
