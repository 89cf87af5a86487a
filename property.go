package scraped

import "strings"

// PropertyFunc derives a JSON value from the selections of one page.
// It must be a pure function of its input: properties never see each
// other's output and may be evaluated in any order.
type PropertyFunc func(selections map[string]SelectionResult) any

// ConstProperty returns a property that always yields v.
func ConstProperty(v any) PropertyFunc {
	return func(map[string]SelectionResult) any { return v }
}

// TextProperty returns the text of the named selection: a string for an
// item, a []string for a list, nil when nothing was selected.
func TextProperty(selector string) PropertyFunc {
	return elementProperty(selector, func(el *Element) (string, bool) {
		return el.Text, el.Text != ""
	})
}

// AttrProperty returns the attribute value of the named selection, shaped
// like TextProperty.
func AttrProperty(selector, attr string) PropertyFunc {
	return elementProperty(selector, func(el *Element) (string, bool) {
		v := el.Attr(attr)
		return v, v != ""
	})
}

// CountProperty returns the number of elements in the named selection.
func CountProperty(selector string) PropertyFunc {
	return func(sel map[string]SelectionResult) any {
		return len(sel[selector].Elements())
	}
}

// HrefsProperty returns the resolved hrefs of the named selection in
// document order. Elements without a full href are skipped.
func HrefsProperty(selector string) PropertyFunc {
	return func(sel map[string]SelectionResult) any {
		hrefs := []string{}
		for _, el := range sel[selector].Elements() {
			if el.FullHref != "" {
				hrefs = append(hrefs, el.FullHref)
			}
		}
		return hrefs
	}
}

// MarkdownProperty converts the inner HTML of the named selection to
// Markdown. List elements are separated by blank lines. Elements that fail
// to convert are skipped. Returns nil when nothing was converted.
func MarkdownProperty(conv Converter, selector string) PropertyFunc {
	return func(sel map[string]SelectionResult) any {
		var parts []string
		for _, el := range sel[selector].Elements() {
			if el.HTML == "" {
				continue
			}
			md, err := conv.Convert(el.HTML)
			if err != nil {
				continue
			}
			parts = append(parts, strings.TrimSpace(md))
		}
		if len(parts) == 0 {
			return nil
		}
		return strings.Join(parts, "\n\n")
	}
}

func elementProperty(selector string, value func(*Element) (string, bool)) PropertyFunc {
	return func(sel map[string]SelectionResult) any {
		result := sel[selector]
		switch result.Kind {
		case SelectionItem:
			if v, ok := value(result.Item); ok {
				return v
			}
			return nil
		case SelectionList:
			values := []string{}
			for _, el := range result.List {
				if v, ok := value(el); ok {
					values = append(values, v)
				}
			}
			return values
		}
		return nil
	}
}
