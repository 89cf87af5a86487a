package goquery

import (
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/scraped"
)

// Registry holds the selectors, properties and child selectors applied to
// every document an Extractor processes. A Registry is not safe for
// concurrent use; NewExtractor takes a frozen copy.
type Registry struct {
	selectors  []compiledSelector
	byName     map[string]int
	properties []namedProperty
	propIndex  map[string]int
	children   []scraped.ChildSelector
}

type compiledSelector struct {
	spec    scraped.SelectorSpec
	matcher cascadia.Selector
}

type namedProperty struct {
	name string
	fn   scraped.PropertyFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:    make(map[string]int),
		propIndex: make(map[string]int),
	}
}

// AddSelector registers an item selector that keeps the first match.
// Returns EINVALID if the pattern is not a valid CSS selector.
func (r *Registry) AddSelector(name, pattern string) error {
	return r.add(name, pattern, scraped.SelectorItem)
}

// AddListSelector registers a selector that keeps every match.
// Returns EINVALID if the pattern is not a valid CSS selector.
func (r *Registry) AddListSelector(name, pattern string) error {
	return r.add(name, pattern, scraped.SelectorList)
}

func (r *Registry) add(name, pattern string, kind scraped.SelectorKind) error {
	if name == "" {
		return scraped.Errorf(scraped.EINVALID, "selector name required")
	}
	m, err := cascadia.Compile(pattern)
	if err != nil {
		return scraped.Errorf(scraped.EINVALID, "invalid selector pattern %q for %q: %v", pattern, name, err)
	}

	sel := compiledSelector{
		spec:    scraped.SelectorSpec{Name: name, Kind: kind, Pattern: pattern},
		matcher: m,
	}
	if i, ok := r.byName[name]; ok {
		r.selectors[i] = sel
		return nil
	}
	r.byName[name] = len(r.selectors)
	r.selectors = append(r.selectors, sel)
	return nil
}

// AddProperty registers a property computed from each page's selections.
// An existing property with the same name is replaced.
func (r *Registry) AddProperty(name string, fn scraped.PropertyFunc) {
	p := namedProperty{name: name, fn: fn}
	if i, ok := r.propIndex[name]; ok {
		r.properties[i] = p
		return
	}
	r.propIndex[name] = len(r.properties)
	r.properties = append(r.properties, p)
}

// MarkChildSelectors marks registered selectors as sources of child URLs.
// Marking a selector again changes its scope but not its position.
// Returns EREFERENCE naming every unregistered selector; nothing is marked
// in that case.
func (r *Registry) MarkChildSelectors(names []string, scope scraped.ChildScope) error {
	var unknown []string
	for _, name := range names {
		if !r.HasSelector(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return scraped.Errorf(scraped.EREFERENCE, "unknown child selectors: %s", strings.Join(unknown, ", "))
	}

	for _, name := range names {
		r.markChild(name, scope)
	}
	return nil
}

func (r *Registry) markChild(name string, scope scraped.ChildScope) {
	for i := range r.children {
		if r.children[i].Name == name {
			r.children[i].Scope = scope
			return
		}
	}
	r.children = append(r.children, scraped.ChildSelector{Name: name, Scope: scope})
}

// HasSelector reports whether a selector with the given name is registered.
func (r *Registry) HasSelector(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Selectors returns the registered selectors in registration order.
func (r *Registry) Selectors() []scraped.SelectorSpec {
	specs := make([]scraped.SelectorSpec, len(r.selectors))
	for i, s := range r.selectors {
		specs[i] = s.spec
	}
	return specs
}

// Properties returns the registered property names in registration order.
func (r *Registry) Properties() []string {
	names := make([]string, len(r.properties))
	for i, p := range r.properties {
		names[i] = p.name
	}
	return names
}

// ChildSelectors returns the child selectors in marking order.
func (r *Registry) ChildSelectors() []scraped.ChildSelector {
	return append([]scraped.ChildSelector(nil), r.children...)
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	c := &Registry{
		selectors:  append([]compiledSelector(nil), r.selectors...),
		byName:     make(map[string]int, len(r.byName)),
		properties: append([]namedProperty(nil), r.properties...),
		propIndex:  make(map[string]int, len(r.propIndex)),
		children:   append([]scraped.ChildSelector(nil), r.children...),
	}
	for k, v := range r.byName {
		c.byName[k] = v
	}
	for k, v := range r.propIndex {
		c.propIndex[k] = v
	}
	return c
}

// ApplyConfig registers everything described by cfg. Selectors are added
// in name order, item selectors before list selectors. conv is required
// only when cfg declares markdown properties.
func (r *Registry) ApplyConfig(cfg *scraped.Config, conv scraped.Converter) error {
	for _, name := range sortedKeys(cfg.Selectors) {
		if _, ok := cfg.ListSelectors[name]; ok {
			return scraped.Errorf(scraped.EINVALID, "selector %q declared as both item and list", name)
		}
		if err := r.AddSelector(name, cfg.Selectors[name]); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(cfg.ListSelectors) {
		if err := r.AddListSelector(name, cfg.ListSelectors[name]); err != nil {
			return err
		}
	}

	for _, name := range cfg.PropertyNames() {
		p := cfg.Properties[name]
		if p.Selector != "" && !r.HasSelector(p.Selector) {
			return scraped.Errorf(scraped.EREFERENCE, "property %q references unknown selector %q", name, p.Selector)
		}
		fn, err := p.Func(conv)
		if err != nil {
			return err
		}
		r.AddProperty(name, fn)
	}

	for _, child := range cfg.Children {
		if err := r.MarkChildSelectors(child.Selectors, child.Scope); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
