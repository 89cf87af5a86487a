package goquery

import "github.com/fwojciec/scraped"

// site describes where a documentation framework puts its content and
// navigation.
type site struct {
	content string
	toc     string
	nav     string
}

var sites = map[scraped.Framework]site{
	// Docusaurus v2.x and v3.x.
	scraped.FrameworkDocusaurus: {
		content: "article, main",
		toc:     ".table-of-contents a[href]",
		nav:     ".theme-doc-sidebar-container a[href], nav.navbar a[href]",
	},
	// MkDocs Material.
	scraped.FrameworkMkDocs: {
		content: ".md-content article, .md-content",
		toc:     ".md-sidebar--secondary a[href], [data-md-component='toc'] a[href]",
		nav:     ".md-nav--primary a[href], [data-md-component='navigation'] a[href]",
	},
	// Sphinx, classic and ReadTheDocs themes.
	scraped.FrameworkSphinx: {
		content: "[role='main'], .body, .document, article",
		toc:     ".toctree-wrapper a[href], #localtoc a[href]",
		nav:     ".wy-nav-side a[href], .wy-menu-vertical a[href], .sphinxsidebar a[href]",
	},
	scraped.FrameworkVuePress: {
		content: ".theme-default-content, main",
		toc:     ".table-of-contents a[href]",
		nav:     ".sidebar-links a[href], .sidebar a[href]",
	},
	scraped.FrameworkVitePress: {
		content: ".VPDoc, main",
		toc:     ".VPDocAsideOutline a[href]",
		nav:     ".VPSidebar a[href], .VPNav a[href]",
	},
	scraped.FrameworkGitBook: {
		content: "[data-testid='page.contentEditor'], main, article",
		toc:     "[data-testid='page.desktopTableOfContents'] a[href]",
		nav:     "[data-testid='space.sidebar'] a[href], [data-testid='space.header'] a[href]",
	},
	scraped.FrameworkNextra: {
		content: "main, article",
		toc:     ".nextra-toc a[href]",
		nav:     ".nextra-sidebar a[href], .nextra-navbar a[href]",
	},
}

// preset returns a preset registering the site's selectors along with
// properties listing the resolved navigation and table of contents links.
func (s site) preset(f scraped.Framework) PresetFunc {
	return func(r *Registry, conv scraped.Converter) error {
		return s.apply(r, conv, f)
	}
}

func (s site) apply(r *Registry, conv scraped.Converter, f scraped.Framework) error {
	err := addAll(r, []selectorDef{
		{name: "title", pattern: "title"},
		{name: "h1", pattern: "h1"},
		{name: "content", pattern: s.content},
		{name: "toc", pattern: s.toc, list: true},
		{name: "nav", pattern: s.nav, list: true},
		{name: "footer", pattern: "footer a[href]", list: true},
	})
	if err != nil {
		return err
	}

	r.AddProperty("framework", scraped.ConstProperty(string(f)))
	r.AddProperty("navLinks", scraped.HrefsProperty("nav"))
	r.AddProperty("tocLinks", scraped.HrefsProperty("toc"))
	if conv != nil {
		r.AddProperty("markdown", scraped.MarkdownProperty(conv, "content"))
	}
	return nil
}
