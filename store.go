package scraped

import (
	"context"
	"time"
)

// Page is a persisted extraction result for a single URL.
type Page struct {
	ID          string    `json:"id"`
	ParentID    string    `json:"parentId,omitempty"`
	URL         string    `json:"url"`
	Depth       int       `json:"depth"`
	Position    int       `json:"position"`
	Payload     string    `json:"payload"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	ID       *string `json:"id"`
	ParentID *string `json:"parentId"`
	URL      *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ResultStore persists result trees.
type ResultStore interface {
	// SaveResults stores node and each of its children as pages and
	// returns the ID of the page created for node.
	SaveResults(ctx context.Context, node *ResultNode) (string, error)

	// FindPages retrieves pages matching the filter, ordered by depth and
	// position.
	FindPages(ctx context.Context, filter PageFilter) ([]*Page, error)
}
