package crawl_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/scraped/crawl"
	"github.com/stretchr/testify/assert"
)

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	url := "https://example.com/very/long/path/to/documentation"

	assert.Equal(t, "https://x.com", crawl.TruncateURL("https://x.com", 50))
	assert.Equal(t, ".../to/documentation", crawl.TruncateURL(url, 20))
	assert.Equal(t, "htt", crawl.TruncateURL(url, 3))
	assert.Equal(t, "ab", crawl.TruncateURL("ab", 3))
	assert.Empty(t, crawl.TruncateURL(url, 0))
	assert.Empty(t, crawl.TruncateURL(url, -1))
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", crawl.FormatBytes(512))
	assert.Equal(t, "1.5 KB", crawl.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", crawl.FormatBytes(2*1024*1024))
}

func TestFormatProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		event crawl.ProgressEvent
		want  string
	}{
		{
			name:  "started",
			event: crawl.ProgressEvent{Type: crawl.ProgressStarted, Total: 3},
			want:  "- Loading and parsing 3 child pages",
		},
		{
			name:  "started without children",
			event: crawl.ProgressEvent{Type: crawl.ProgressStarted},
			want:  "- No child pages to load",
		},
		{
			name:  "completed",
			event: crawl.ProgressEvent{Type: crawl.ProgressChildCompleted, Completed: 1, Total: 3, URL: "https://dev.null/a", Bytes: 2048},
			want:  "  [1/3] https://dev.null/a (2.0 KB)",
		},
		{
			name:  "failed",
			event: crawl.ProgressEvent{Type: crawl.ProgressChildFailed, Completed: 2, Total: 3, URL: "https://dev.null/b", Error: errors.New("HTTP 404")},
			want:  "  [2/3] skipped https://dev.null/b: HTTP 404",
		},
		{
			name:  "finished",
			event: crawl.ProgressEvent{Type: crawl.ProgressFinished, Completed: 3, Total: 3},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, crawl.FormatProgress(tt.event))
		})
	}
}
