package scraped

// ChildURLs collects the in-scope hrefs of every child selector, in the
// order the child selectors were marked and then in document order. The
// same URL may appear more than once. Candidates that fail to resolve are
// dropped and returned as errors.
func ChildURLs(pageURL string, selections map[string]SelectionResult, children []ChildSelector) ([]string, []error) {
	var urls []string
	var errs []error
	for _, child := range children {
		for _, el := range selections[child.Name].Elements() {
			if el.Href == "" {
				continue
			}
			u, err := child.Scope.Resolve(el.Href, pageURL)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if u != "" {
				urls = append(urls, u)
			}
		}
	}
	return urls, errs
}
