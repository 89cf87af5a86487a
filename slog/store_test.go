package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/scraped"
	"github.com/fwojciec/scraped/mock"
	scrapedslog "github.com/fwojciec/scraped/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingResultStore_SaveResults(t *testing.T) {
	t.Parallel()

	t.Run("logs page count and id", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ResultStore{
			SaveResultsFn: func(ctx context.Context, node *scraped.ResultNode) (string, error) {
				return "root-id", nil
			},
		}
		node := &scraped.ResultNode{
			URL: "https://example.com/",
			Children: []*scraped.ResultNode{
				{URL: "https://example.com/a"},
				{URL: "https://example.com/b"},
			},
		}

		store := scrapedslog.NewLoggingResultStore(inner, logger)
		id, err := store.SaveResults(context.Background(), node)

		require.NoError(t, err)
		assert.Equal(t, "root-id", id)
		output := buf.String()
		assert.Contains(t, output, "save results")
		assert.Contains(t, output, "pages=3")
		assert.Contains(t, output, "id=root-id")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ResultStore{
			SaveResultsFn: func(ctx context.Context, node *scraped.ResultNode) (string, error) {
				return "", errors.New("disk full")
			},
		}

		store := scrapedslog.NewLoggingResultStore(inner, logger)
		_, err := store.SaveResults(context.Background(), &scraped.ResultNode{URL: "https://example.com/"})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}

func TestLoggingResultStore_FindPages(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	inner := &mock.ResultStore{
		FindPagesFn: func(ctx context.Context, filter scraped.PageFilter) ([]*scraped.Page, error) {
			return []*scraped.Page{{ID: "a"}, {ID: "b"}}, nil
		},
	}

	store := scrapedslog.NewLoggingResultStore(inner, logger)
	pages, err := store.FindPages(context.Background(), scraped.PageFilter{})

	require.NoError(t, err)
	assert.Len(t, pages, 2)
	assert.Contains(t, buf.String(), "find pages")
	assert.Contains(t, buf.String(), "count=2")
}
