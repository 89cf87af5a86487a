package scraped

import "sort"

// ResultNode is the aggregated extraction result for one page. Children
// holds the results of the page's child URLs and is never more than one
// level deep.
type ResultNode struct {
	URL        string                     `json:"url"`
	Selections map[string]SelectionResult `json:"selections"`
	Properties map[string]any             `json:"properties"`
	ChildURLs  []string                   `json:"childUrls"`
	Children   []*ResultNode              `json:"children"`

	// DroppedURLs holds child URL candidates that failed to resolve.
	DroppedURLs []error `json:"-"`
}

// Get returns the property named key, or the selection named key when no
// such property exists. A property always masks a selection of the same
// name, even when its value is nil. Returns ENOTFOUND when neither exists.
func (n *ResultNode) Get(key string) (any, error) {
	if v, ok := n.Properties[key]; ok {
		return v, nil
	}
	if v, ok := n.Selections[key]; ok {
		return v, nil
	}
	return nil, Errorf(ENOTFOUND, "no property or selector named %q", key)
}

// Keys returns the sorted names of all properties and selections.
func (n *ResultNode) Keys() []string {
	seen := make(map[string]bool, len(n.Properties)+len(n.Selections))
	keys := make([]string, 0, len(n.Properties)+len(n.Selections))
	for k := range n.Properties {
		seen[k] = true
		keys = append(keys, k)
	}
	for k := range n.Selections {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Flatten returns node followed by its descendants in depth-first
// pre-order. The returned nodes are shallow copies without children.
func Flatten(node *ResultNode) []*ResultNode {
	if node == nil {
		return nil
	}
	flat := *node
	flat.Children = []*ResultNode{}
	nodes := []*ResultNode{&flat}
	for _, child := range node.Children {
		nodes = append(nodes, Flatten(child)...)
	}
	return nodes
}
