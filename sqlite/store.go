package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/scraped"
	"github.com/google/uuid"
)

var _ scraped.ResultStore = (*ResultStore)(nil)

// ResultStore implements scraped.ResultStore using SQLite. Every node of a
// result tree is stored as one page row linked to its parent.
type ResultStore struct {
	db  *DB
	now func() time.Time
}

// NewResultStore creates a new ResultStore.
func NewResultStore(db *DB) *ResultStore {
	return &ResultStore{db: db, now: time.Now}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// SaveResults stores node and its descendants in a single transaction and
// returns the ID of the root page.
func (s *ResultStore) SaveResults(ctx context.Context, node *scraped.ResultNode) (string, error) {
	if node == nil || node.URL == "" {
		return "", scraped.Errorf(scraped.EINVALID, "result node with a URL required")
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	createdAt := s.now().UTC().Format(time.RFC3339)
	id, err := insertPage(ctx, tx, node, "", 0, 0, createdAt)
	if err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

func insertPage(ctx context.Context, tx *sql.Tx, node *scraped.ResultNode, parentID string, depth, position int, createdAt string) (string, error) {
	flat := *node
	flat.Children = []*scraped.ResultNode{}
	payload, err := json.Marshal(&flat)
	if err != nil {
		return "", scraped.Errorf(scraped.EINTERNAL, "failed to encode result for %s: %v", node.URL, err)
	}

	id := uuid.New().String()
	var parent any
	if parentID != "" {
		parent = parentID
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO pages (id, parent_id, url, depth, position, payload, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, parent, node.URL, depth, position, string(payload), hashContent(string(payload)), createdAt); err != nil {
		return "", fmt.Errorf("failed to insert page %s: %w", node.URL, err)
	}

	for i, child := range node.Children {
		if _, err := insertPage(ctx, tx, child, id, depth+1, i, createdAt); err != nil {
			return "", err
		}
	}
	return id, nil
}

// FindPages retrieves pages matching the filter, ordered by depth and
// position within a save.
func (s *ResultStore) FindPages(ctx context.Context, filter scraped.PageFilter) ([]*scraped.Page, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, COALESCE(parent_id, ''), url, depth, position, payload, content_hash, created_at FROM pages WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.ParentID != nil {
		query.WriteString(" AND parent_id = ?")
		args = append(args, *filter.ParentID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY depth ASC, position ASC, rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*scraped.Page
	for rows.Next() {
		var page scraped.Page
		var createdAt string

		if err := rows.Scan(&page.ID, &page.ParentID, &page.URL, &page.Depth, &page.Position,
			&page.Payload, &page.ContentHash, &createdAt); err != nil {
			return nil, err
		}

		page.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		pages = append(pages, &page)
	}

	return pages, rows.Err()
}
