package goquery_test

import (
	"testing"

	"github.com/fwojciec/scraped"
	"github.com/fwojciec/scraped/goquery"
	"github.com/fwojciec/scraped/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddSelector(t *testing.T) {
	t.Parallel()

	t.Run("keeps registration order", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegistry()
		require.NoError(t, r.AddSelector("title", "title"))
		require.NoError(t, r.AddListSelector("links", "a[href]"))

		assert.Equal(t, []scraped.SelectorSpec{
			{Name: "title", Kind: scraped.SelectorItem, Pattern: "title"},
			{Name: "links", Kind: scraped.SelectorList, Pattern: "a[href]"},
		}, r.Selectors())
	})

	t.Run("replaces existing name in place", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegistry()
		require.NoError(t, r.AddSelector("a", "h1"))
		require.NoError(t, r.AddSelector("b", "h2"))
		require.NoError(t, r.AddListSelector("a", "h3"))

		specs := r.Selectors()
		require.Len(t, specs, 2)
		assert.Equal(t, scraped.SelectorSpec{Name: "a", Kind: scraped.SelectorList, Pattern: "h3"}, specs[0])
	})

	t.Run("rejects invalid patterns", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegistry()

		err := r.AddSelector("broken", "div[")
		assert.Equal(t, scraped.EINVALID, scraped.ErrorCode(err))

		err = r.AddListSelector("broken", ":::")
		assert.Equal(t, scraped.EINVALID, scraped.ErrorCode(err))

		assert.Empty(t, r.Selectors())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()

		err := goquery.NewRegistry().AddSelector("", "h1")

		assert.Equal(t, scraped.EINVALID, scraped.ErrorCode(err))
	})
}

func TestRegistry_AddProperty(t *testing.T) {
	t.Parallel()

	r := goquery.NewRegistry()
	r.AddProperty("b", scraped.ConstProperty(1))
	r.AddProperty("a", scraped.ConstProperty(2))
	r.AddProperty("b", scraped.ConstProperty(3))

	assert.Equal(t, []string{"b", "a"}, r.Properties())
}

func TestRegistry_MarkChildSelectors(t *testing.T) {
	t.Parallel()

	t.Run("marks registered selectors", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegistry()
		require.NoError(t, r.AddListSelector("modules", "a.mod"))
		require.NoError(t, r.AddListSelector("structs", "a.struct"))

		require.NoError(t, r.MarkChildSelectors([]string{"structs", "modules"}, scraped.ScopeRelative))
		require.NoError(t, r.MarkChildSelectors([]string{"structs"}, scraped.ScopeHTTP))

		assert.Equal(t, []scraped.ChildSelector{
			{Name: "structs", Scope: scraped.ScopeHTTP},
			{Name: "modules", Scope: scraped.ScopeRelative},
		}, r.ChildSelectors())
	})

	t.Run("reports every unknown name", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegistry()
		require.NoError(t, r.AddListSelector("modules", "a.mod"))

		err := r.MarkChildSelectors([]string{"modules", "types_defs", "other"}, scraped.ScopeAll)

		assert.Equal(t, scraped.EREFERENCE, scraped.ErrorCode(err))
		assert.Contains(t, scraped.ErrorMessage(err), "types_defs")
		assert.Contains(t, scraped.ErrorMessage(err), "other")
		assert.Empty(t, r.ChildSelectors())
	})
}

func TestRegistry_Clone(t *testing.T) {
	t.Parallel()

	r := goquery.NewRegistry()
	require.NoError(t, r.AddSelector("h1", "h1"))
	c := r.Clone()

	require.NoError(t, r.AddSelector("h2", "h2"))
	r.AddProperty("p", scraped.ConstProperty(1))

	assert.Len(t, c.Selectors(), 1)
	assert.Empty(t, c.Properties())
	assert.False(t, c.HasSelector("h2"))
}

func TestRegistry_ApplyConfig(t *testing.T) {
	t.Parallel()

	conv := &mock.Converter{ConvertFn: func(html string) (string, error) { return html, nil }}

	t.Run("registers every section", func(t *testing.T) {
		t.Parallel()

		cfg := &scraped.Config{
			Selectors:     map[string]string{"title": "h1", "body": "main"},
			ListSelectors: map[string]string{"links": "a[href]"},
			Properties: map[string]scraped.PropertyConfig{
				"linkCount": {Kind: scraped.PropertyCount, Selector: "links"},
				"content":   {Kind: scraped.PropertyMarkdown, Selector: "body"},
			},
			Children: []scraped.ChildConfig{{Scope: scraped.ScopeHTTP, Selectors: []string{"links"}}},
		}

		r := goquery.NewRegistry()
		require.NoError(t, r.ApplyConfig(cfg, conv))

		assert.Equal(t, []scraped.SelectorSpec{
			{Name: "body", Kind: scraped.SelectorItem, Pattern: "main"},
			{Name: "title", Kind: scraped.SelectorItem, Pattern: "h1"},
			{Name: "links", Kind: scraped.SelectorList, Pattern: "a[href]"},
		}, r.Selectors())
		assert.Equal(t, []string{"content", "linkCount"}, r.Properties())
		assert.Equal(t, []scraped.ChildSelector{{Name: "links", Scope: scraped.ScopeHTTP}}, r.ChildSelectors())
	})

	t.Run("rejects unknown child selector", func(t *testing.T) {
		t.Parallel()

		cfg := &scraped.Config{
			Children: []scraped.ChildConfig{{Scope: scraped.ScopeAll, Selectors: []string{"missing"}}},
		}

		err := goquery.NewRegistry().ApplyConfig(cfg, conv)

		assert.Equal(t, scraped.EREFERENCE, scraped.ErrorCode(err))
	})

	t.Run("rejects property referencing unknown selector", func(t *testing.T) {
		t.Parallel()

		cfg := &scraped.Config{
			Properties: map[string]scraped.PropertyConfig{"t": {Kind: scraped.PropertyText, Selector: "missing"}},
		}

		err := goquery.NewRegistry().ApplyConfig(cfg, conv)

		assert.Equal(t, scraped.EREFERENCE, scraped.ErrorCode(err))
	})

	t.Run("rejects name declared twice", func(t *testing.T) {
		t.Parallel()

		cfg := &scraped.Config{
			Selectors:     map[string]string{"a": "a"},
			ListSelectors: map[string]string{"a": "a"},
		}

		err := goquery.NewRegistry().ApplyConfig(cfg, conv)

		assert.Equal(t, scraped.EINVALID, scraped.ErrorCode(err))
	})

	t.Run("rejects invalid pattern", func(t *testing.T) {
		t.Parallel()

		cfg := &scraped.Config{Selectors: map[string]string{"a": "div["}}

		err := goquery.NewRegistry().ApplyConfig(cfg, conv)

		assert.Equal(t, scraped.EINVALID, scraped.ErrorCode(err))
	})
}
