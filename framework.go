package scraped

// Framework identifies a documentation framework.
type Framework string

// Supported documentation frameworks.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkMkDocs     Framework = "mkdocs"
	FrameworkSphinx     Framework = "sphinx"
	FrameworkVuePress   Framework = "vuepress"
	FrameworkVitePress  Framework = "vitepress"
	FrameworkGitBook    Framework = "gitbook"
	FrameworkNextra     Framework = "nextra"
	FrameworkDocsRs     Framework = "docsrs"
)

// FrameworkDetector identifies documentation frameworks from HTML.
type FrameworkDetector interface {
	// Detect analyzes HTML and returns the identified framework.
	// Returns FrameworkUnknown if the framework cannot be determined.
	Detect(html string) Framework
}
