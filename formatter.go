package scraped

import (
	"encoding/json"
	"sort"
	"strings"
)

// Special keys accepted by FormatLookups.
const (
	ShowAll        = "all"
	ShowProperties = "props"
)

// FormatLookups renders one "- key: value" line per key for console output.
// Values are encoded as JSON. Unmatched selectors render as "undefined"
// and unknown keys as "not found!". The key "all" expands to every
// property and selector, "props" to every property.
func FormatLookups(node *ResultNode, keys []string) string {
	if node == nil || len(keys) == 0 {
		return ""
	}

	lines := make([]string, 0, len(keys))
	for _, key := range expandKeys(node, keys) {
		lines = append(lines, "- "+key+": "+formatLookup(node, key))
	}

	return strings.Join(lines, "\n")
}

func expandKeys(node *ResultNode, keys []string) []string {
	var expanded []string
	for _, key := range keys {
		key = strings.TrimSpace(key)
		switch key {
		case "":
		case ShowAll:
			expanded = append(expanded, node.Keys()...)
		case ShowProperties:
			props := make([]string, 0, len(node.Properties))
			for k := range node.Properties {
				props = append(props, k)
			}
			sort.Strings(props)
			expanded = append(expanded, props...)
		default:
			expanded = append(expanded, key)
		}
	}
	return expanded
}

func formatLookup(node *ResultNode, key string) string {
	v, err := node.Get(key)
	if err != nil {
		return "not found!"
	}
	if sel, ok := v.(SelectionResult); ok && sel.IsNone() {
		return "undefined"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "unprintable (" + err.Error() + ")"
	}
	return string(b)
}
