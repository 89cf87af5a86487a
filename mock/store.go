package mock

import (
	"context"

	"github.com/fwojciec/scraped"
)

var _ scraped.ResultStore = (*ResultStore)(nil)

// ResultStore is a mock implementation of scraped.ResultStore.
type ResultStore struct {
	SaveResultsFn func(ctx context.Context, node *scraped.ResultNode) (string, error)
	FindPagesFn   func(ctx context.Context, filter scraped.PageFilter) ([]*scraped.Page, error)
}

func (s *ResultStore) SaveResults(ctx context.Context, node *scraped.ResultNode) (string, error) {
	return s.SaveResultsFn(ctx, node)
}

func (s *ResultStore) FindPages(ctx context.Context, filter scraped.PageFilter) ([]*scraped.Page, error) {
	return s.FindPagesFn(ctx, filter)
}
