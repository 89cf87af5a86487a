package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/scraped"
	"github.com/fwojciec/scraped/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("reads file url", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "page.html")
		require.NoError(t, os.WriteFile(path, []byte("<h1>My Title</h1>"), 0644))
		u, err := fs.URLFromPath(path)
		require.NoError(t, err)

		resp, err := fs.NewFetcher().Fetch(context.Background(), u)

		require.NoError(t, err)
		assert.Equal(t, u, resp.URL)
		assert.Equal(t, "<h1>My Title</h1>", resp.Body)
		assert.Equal(t, []string{"text/html"}, resp.Headers["Content-Type"])
	})

	t.Run("serves index for directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, fs.IndexFile), []byte("index"), 0644))
		u, err := fs.URLFromPath(dir)
		require.NoError(t, err)

		resp, err := fs.NewFetcher().Fetch(context.Background(), u)

		require.NoError(t, err)
		assert.Equal(t, "index", resp.Body)
	})

	t.Run("decodes declared meta charset", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "latin1.html")
		html := "<html><head><meta charset=\"iso-8859-1\"></head><body>caf\xe9</body></html>"
		require.NoError(t, os.WriteFile(path, []byte(html), 0644))
		u, err := fs.URLFromPath(path)
		require.NoError(t, err)

		resp, err := fs.NewFetcher().Fetch(context.Background(), u)

		require.NoError(t, err)
		assert.Contains(t, resp.Body, "café")
	})

	t.Run("returns fetch error for missing file", func(t *testing.T) {
		t.Parallel()

		u, err := fs.URLFromPath(filepath.Join(t.TempDir(), "missing.html"))
		require.NoError(t, err)

		_, err = fs.NewFetcher().Fetch(context.Background(), u)

		assert.Equal(t, scraped.EFETCH, scraped.ErrorCode(err))
	})

	t.Run("rejects non-file urls", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewFetcher().Fetch(context.Background(), "https://dev.null/page")

		assert.Equal(t, scraped.EURL, scraped.ErrorCode(err))
	})

	t.Run("rejects remote hosts", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewFetcher().Fetch(context.Background(), "file://server/share/page.html")

		assert.Equal(t, scraped.EURL, scraped.ErrorCode(err))
	})
}

func TestPathFromURL(t *testing.T) {
	t.Parallel()

	path, err := fs.PathFromURL("file:///tmp/docs/index.html")

	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/tmp/docs/index.html"), path)
}
