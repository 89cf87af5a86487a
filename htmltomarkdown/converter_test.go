package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/scraped"
	"github.com/fwojciec/scraped/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want []string
	}{
		{"paragraph", `<p>Hello, world!</p>`, []string{"Hello, world!"}},
		{"headings", `<h1>Title</h1><h2>Subtitle</h2>`, []string{"# Title", "## Subtitle"}},
		{"links", `<p>See <a href="https://example.com">Example</a>.</p>`, []string{"[Example](https://example.com)"}},
		{"lists", `<ul><li>First</li><li>Second</li></ul>`, []string{"- First", "- Second"}},
		{"inline code", `<p>Run <code>go build</code>.</p>`, []string{"`go build`"}},
		{"code block", `<pre><code class="language-go">package main</code></pre>`, []string{"```go", "package main"}},
		{"emphasis", `<p><strong>Bold</strong> and <em>italic</em></p>`, []string{"**Bold**", "*italic*"}},
		{"table", `<table><thead><tr><th>Option</th></tr></thead><tbody><tr><td>timeout</td></tr></tbody></table>`, []string{"Option", "timeout"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			md, err := htmltomarkdown.NewConverter().Convert(tt.html)

			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, md, want)
			}
		})
	}

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("\n<p>Hi</p>\n")

		require.NoError(t, err)
		assert.Equal(t, "Hi", md)
	})

	t.Run("resolves relative links against domain", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain("https://dev.null"))
		md, err := conv.Convert(`<a href="/docs">Docs</a>`)

		require.NoError(t, err)
		assert.Contains(t, md, "(https://dev.null/docs)")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  ")

		assert.Equal(t, scraped.EINVALID, scraped.ErrorCode(err))
	})
}
