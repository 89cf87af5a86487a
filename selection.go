package scraped

import "encoding/json"

// SelectorKind determines how many matches a selector keeps.
type SelectorKind int

const (
	// SelectorItem keeps the first match only.
	SelectorItem SelectorKind = iota
	// SelectorList keeps every match in document order.
	SelectorList
)

// String returns the kind's name.
func (k SelectorKind) String() string {
	if k == SelectorList {
		return "list"
	}
	return "item"
}

// SelectorSpec is a named CSS pattern.
type SelectorSpec struct {
	Name    string       `json:"name"`
	Kind    SelectorKind `json:"kind"`
	Pattern string       `json:"pattern"`
}

// ChildSelector designates a selector whose hrefs point at child pages.
type ChildSelector struct {
	Name  string     `json:"name"`
	Scope ChildScope `json:"scope"`
}

// SelectionKind tags the variant held by a SelectionResult.
type SelectionKind int

// Selection variants.
const (
	SelectionNone SelectionKind = iota
	SelectionItem
	SelectionList
)

// SelectionResult is the outcome of applying one selector to a document:
// nothing, a single element, or a non-empty list of elements.
//
// A list selector that matches nothing yields None, the same value as an
// item selector that matches nothing.
type SelectionResult struct {
	Kind SelectionKind
	Item *Element
	List []*Element
}

// None returns the empty selection.
func None() SelectionResult {
	return SelectionResult{Kind: SelectionNone}
}

// ItemSelection returns a selection holding a single element.
// A nil element yields None.
func ItemSelection(el *Element) SelectionResult {
	if el == nil {
		return None()
	}
	return SelectionResult{Kind: SelectionItem, Item: el}
}

// ListSelection returns a selection holding elements in document order.
// An empty slice yields None.
func ListSelection(els []*Element) SelectionResult {
	if len(els) == 0 {
		return None()
	}
	return SelectionResult{Kind: SelectionList, List: els}
}

// IsNone reports whether nothing was selected.
func (r SelectionResult) IsNone() bool {
	return r.Kind == SelectionNone
}

// Elements returns the selected elements regardless of variant.
func (r SelectionResult) Elements() []*Element {
	switch r.Kind {
	case SelectionItem:
		return []*Element{r.Item}
	case SelectionList:
		return r.List
	}
	return nil
}

// First returns the first selected element, or nil.
func (r SelectionResult) First() *Element {
	if els := r.Elements(); len(els) > 0 {
		return els[0]
	}
	return nil
}

// MarshalJSON encodes None as null, an item as an object and a list as an
// array.
func (r SelectionResult) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case SelectionItem:
		return json.Marshal(r.Item)
	case SelectionList:
		return json.Marshal(r.List)
	}
	return []byte("null"), nil
}

// UnmarshalJSON decodes the encoding produced by MarshalJSON.
func (r *SelectionResult) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.(type) {
	case nil:
		*r = None()
		return nil
	case []any:
		var els []*Element
		if err := json.Unmarshal(data, &els); err != nil {
			return err
		}
		*r = ListSelection(els)
		return nil
	}
	var el Element
	if err := json.Unmarshal(data, &el); err != nil {
		return err
	}
	*r = ItemSelection(&el)
	return nil
}
