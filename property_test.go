package scraped_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/scraped"
	"github.com/fwojciec/scraped/mock"
	"github.com/stretchr/testify/assert"
)

func TestProperties(t *testing.T) {
	t.Parallel()

	selections := map[string]scraped.SelectionResult{
		"title": scraped.ItemSelection(&scraped.Element{TagName: "h1", Text: "My Title", HTML: "My <em>Title</em>"}),
		"links": scraped.ListSelection([]*scraped.Element{
			{TagName: "a", Text: "One", FullHref: "https://dev.null/one", Attributes: map[string]any{"rel": "next"}},
			{TagName: "a", FullHref: ""},
			{TagName: "a", Text: "Three", FullHref: "https://dev.null/three"},
		}),
		"empty": scraped.None(),
	}

	t.Run("const ignores selections", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "world", scraped.ConstProperty("world")(selections))
	})

	t.Run("text of an item is a string", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "My Title", scraped.TextProperty("title")(selections))
	})

	t.Run("text of a list skips empty values", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"One", "Three"}, scraped.TextProperty("links")(selections))
	})

	t.Run("text of nothing is nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, scraped.TextProperty("empty")(selections))
		assert.Nil(t, scraped.TextProperty("unregistered")(selections))
	})

	t.Run("attr reads attribute values", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"next"}, scraped.AttrProperty("links", "rel")(selections))
	})

	t.Run("count", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 3, scraped.CountProperty("links")(selections))
		assert.Equal(t, 0, scraped.CountProperty("empty")(selections))
	})

	t.Run("hrefs skip elements without full href", func(t *testing.T) {
		t.Parallel()

		got := scraped.HrefsProperty("links")(selections)

		assert.Equal(t, []string{"https://dev.null/one", "https://dev.null/three"}, got)
	})

	t.Run("markdown converts inner html", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "My *Title*\n", nil
			},
		}

		assert.Equal(t, "My *Title*", scraped.MarkdownProperty(conv, "title")(selections))
	})

	t.Run("markdown skips list elements that fail to convert", func(t *testing.T) {
		t.Parallel()

		list := map[string]scraped.SelectionResult{
			"sections": scraped.ListSelection([]*scraped.Element{
				{TagName: "p", HTML: "first"},
				{TagName: "p", HTML: "broken"},
				{TagName: "p", HTML: "third"},
			}),
		}
		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				if html == "broken" {
					return "", errors.New("boom")
				}
				return html + "\n", nil
			},
		}

		assert.Equal(t, "first\n\nthird", scraped.MarkdownProperty(conv, "sections")(list))
	})

	t.Run("markdown is nil when every element fails", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(string) (string, error) {
				return "", errors.New("boom")
			},
		}

		assert.Nil(t, scraped.MarkdownProperty(conv, "title")(selections))
	})

	t.Run("markdown is nil when nothing selected", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(string) (string, error) {
				t.Fatal("unexpected call")
				return "", nil
			},
		}

		assert.Nil(t, scraped.MarkdownProperty(conv, "empty")(selections))
	})
}
