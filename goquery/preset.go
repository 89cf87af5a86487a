package goquery

import (
	"sort"

	"github.com/fwojciec/scraped"
)

// PresetFunc registers a bundle of selectors and properties. conv may be
// nil, in which case presets skip their markdown properties.
type PresetFunc func(r *Registry, conv scraped.Converter) error

// Preset names that are not documentation frameworks.
const (
	PresetGeneric = "generic"
	PresetDocsRs  = "docsrs"
)

var presets = map[string]PresetFunc{
	PresetGeneric: AddGenericSelectors,
	PresetDocsRs:  AddDocsRsSelectors,
}

func init() {
	for f, site := range sites {
		presets[string(f)] = site.preset(f)
	}
}

// Preset returns the preset with the given name.
// Returns EINVALID for an unknown name.
func Preset(name string) (PresetFunc, error) {
	if p, ok := presets[name]; ok {
		return p, nil
	}
	return nil, scraped.Errorf(scraped.EINVALID, "unknown preset %q", name)
}

// PresetNames returns the names of all presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetForFramework returns the preset for a detected framework, falling
// back to the generic preset.
func PresetForFramework(f scraped.Framework) PresetFunc {
	if f == scraped.FrameworkDocsRs {
		return AddDocsRsSelectors
	}
	if site, ok := sites[f]; ok {
		return site.preset(f)
	}
	return AddGenericSelectors
}

type selectorDef struct {
	name    string
	pattern string
	list    bool
}

func addAll(r *Registry, defs []selectorDef) error {
	for _, d := range defs {
		add := r.AddSelector
		if d.list {
			add = r.AddListSelector
		}
		if err := add(d.name, d.pattern); err != nil {
			return err
		}
	}
	return nil
}

// AddGenericSelectors registers selectors useful on any page: h1, title,
// h2, h3, links, images, scripts, styles and meta.
func AddGenericSelectors(r *Registry, _ scraped.Converter) error {
	return addAll(r, []selectorDef{
		{name: "h1", pattern: "h1"},
		{name: "title", pattern: "title"},
		{name: "h2", pattern: "h2", list: true},
		{name: "h3", pattern: "h3", list: true},
		{name: "links", pattern: "[href]", list: true},
		{name: "images", pattern: "img", list: true},
		{name: "scripts", pattern: "script", list: true},
		{name: "styles", pattern: "[rel='stylesheet']", list: true},
		{name: "meta", pattern: "meta", list: true},
	})
}

// AddDocsRsSelectors registers selectors for docs.rs crate pages. Module
// item links are marked as relative child selectors.
func AddDocsRsSelectors(r *Registry, _ scraped.Converter) error {
	err := addAll(r, []selectorDef{
		{name: "h1", pattern: "h1 .in-band a"},
		{name: "description", pattern: ".docblock"},
		{name: "h2", pattern: "h2", list: true},
		{name: "modules", pattern: ".module-item a.mod", list: true},
		{name: "structs", pattern: ".module-item a.struct", list: true},
		{name: "functions", pattern: ".module-item a.fn", list: true},
		{name: "traits", pattern: ".module-item a.trait", list: true},
		{name: "enums", pattern: ".module-item a.enum", list: true},
		{name: "macros", pattern: ".module-item a.macro", list: true},
		{name: "type_defs", pattern: ".module-item a.type", list: true},
		{name: "attr_macros", pattern: ".module-item a.attr", list: true},
		{name: "desc", pattern: "section .docblock"},
	})
	if err != nil {
		return err
	}
	return r.MarkChildSelectors([]string{
		"modules", "structs", "functions", "traits", "type_defs", "enums", "macros",
	}, scraped.ScopeRelative)
}
