package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scraped"
)

var _ scraped.FrameworkDetector = (*Detector)(nil)

// Detector identifies documentation frameworks from HTML content using
// meta generator tags and framework-specific markup.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// generators maps substrings of the meta generator content to frameworks.
// VitePress is listed before VuePress.
var generators = []struct {
	substr    string
	framework scraped.Framework
}{
	{"sphinx", scraped.FrameworkSphinx},
	{"gitbook", scraped.FrameworkGitBook},
	{"docusaurus", scraped.FrameworkDocusaurus},
	{"mkdocs", scraped.FrameworkMkDocs},
	{"vitepress", scraped.FrameworkVitePress},
	{"vuepress", scraped.FrameworkVuePress},
	{"nextra", scraped.FrameworkNextra},
	{"rustdoc", scraped.FrameworkDocsRs},
}

// markers lists selectors unique to each framework, tested in order.
var markers = []struct {
	framework scraped.Framework
	selectors []string
}{
	{scraped.FrameworkDocusaurus, []string{"#__docusaurus_skipToContent_fallback", ".theme-doc-sidebar-container"}},
	{scraped.FrameworkMkDocs, []string{"[data-md-color-scheme]", "[data-md-component]", ".md-nav--primary"}},
	{scraped.FrameworkSphinx, []string{".toctree-wrapper", ".wy-nav-side", ".wy-menu-vertical", ".sphinxsidebar"}},
	{scraped.FrameworkVitePress, []string{"#VPContent", ".VPDoc", ".VPDocAsideOutline"}},
	{scraped.FrameworkVuePress, []string{".theme-default-content", ".sidebar-links", ".vuepress-navbar"}},
	{scraped.FrameworkGitBook, []string{"[data-testid='space.sidebar']", "[data-testid='page.desktopTableOfContents']"}},
	{scraped.FrameworkNextra, []string{".nextra-navbar", ".nextra-sidebar", ".nextra-toc"}},
	{scraped.FrameworkDocsRs, []string{"body.rustdoc", "#rustdoc-vars", ".rustdoc .module-item"}},
}

// Detect analyzes HTML and returns the identified framework.
// Returns FrameworkUnknown if the framework cannot be determined.
func (d *Detector) Detect(html string) scraped.Framework {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return scraped.FrameworkUnknown
	}

	// Generator tags are the most reliable signal when present.
	if f := detectFromMetaGenerator(doc); f != scraped.FrameworkUnknown {
		return f
	}

	if hasAll(doc, "[data-rh]", "[data-theme]") {
		return scraped.FrameworkDocusaurus
	}
	for _, m := range markers {
		if hasAny(doc, m.selectors...) {
			return m.framework
		}
	}
	if hasGitBookClasses(doc) {
		return scraped.FrameworkGitBook
	}
	return scraped.FrameworkUnknown
}

func detectFromMetaGenerator(doc *goquery.Document) scraped.Framework {
	generator := strings.ToLower(doc.Find("meta[name='generator']").Last().AttrOr("content", ""))
	if generator == "" {
		return scraped.FrameworkUnknown
	}
	for _, g := range generators {
		if strings.Contains(generator, g.substr) {
			return g.framework
		}
	}
	return scraped.FrameworkUnknown
}

func hasAny(doc *goquery.Document, selectors ...string) bool {
	for _, s := range selectors {
		if doc.Find(s).Length() > 0 {
			return true
		}
	}
	return false
}

func hasAll(doc *goquery.Document, selectors ...string) bool {
	for _, s := range selectors {
		if doc.Find(s).Length() == 0 {
			return false
		}
	}
	return true
}

// hasGitBookClasses requires at least two of the classes GitBook puts on
// the html element.
func hasGitBookClasses(doc *goquery.Document) bool {
	class := doc.Find("html").AttrOr("class", "")
	count := 0
	for _, c := range []string{"circular-corners", "theme-clean", "tint"} {
		if strings.Contains(class, c) {
			count++
		}
	}
	return count >= 2
}
