package crawl

import "fmt"

// TruncateURL shortens a URL for display, keeping the end which is more
// informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatProgress renders a progress event as a single console line.
// Returns "" for events that have nothing to show.
func FormatProgress(e ProgressEvent) string {
	switch e.Type {
	case ProgressStarted:
		if e.Total == 0 {
			return "- No child pages to load"
		}
		return fmt.Sprintf("- Loading and parsing %d child pages", e.Total)
	case ProgressChildCompleted:
		return fmt.Sprintf("  [%d/%d] %s (%s)", e.Completed, e.Total, TruncateURL(e.URL, 60), FormatBytes(e.Bytes))
	case ProgressChildFailed:
		return fmt.Sprintf("  [%d/%d] skipped %s: %v", e.Completed, e.Total, TruncateURL(e.URL, 60), e.Error)
	}
	return ""
}
