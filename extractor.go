package scraped

// Extractor applies a frozen selector configuration to documents.
type Extractor interface {
	// Extract parses html, applies every selector and property, and
	// discovers child URLs. pageURL is used to resolve relative hrefs.
	// The returned node has no children.
	Extract(pageURL string, html string) (*ResultNode, error)
}
