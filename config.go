package scraped

import (
	"encoding/json"
	"io"
	"sort"
)

// Config is the JSON selector configuration accepted by the CLI.
//
//	{
//	  "selectors":     {"title": "h1"},
//	  "listSelectors": {"links": "nav a[href]"},
//	  "properties":    {"linkCount": {"kind": "count", "selector": "links"}},
//	  "children":      [{"scope": "relative", "selectors": ["links"]}]
//	}
type Config struct {
	Selectors     map[string]string         `json:"selectors"`
	ListSelectors map[string]string         `json:"listSelectors"`
	Properties    map[string]PropertyConfig `json:"properties"`
	Children      []ChildConfig             `json:"children"`
}

// PropertyConfig describes a property built from one of the property
// builders.
type PropertyConfig struct {
	Kind     string `json:"kind"`
	Selector string `json:"selector,omitempty"`
	Attr     string `json:"attr,omitempty"`
	Value    any    `json:"value,omitempty"`
}

// ChildConfig marks selectors as child selectors with a scope.
type ChildConfig struct {
	Scope     ChildScope `json:"scope"`
	Selectors []string   `json:"selectors"`
}

// Property kinds.
const (
	PropertyConst    = "const"
	PropertyText     = "text"
	PropertyAttr     = "attr"
	PropertyCount    = "count"
	PropertyHrefs    = "hrefs"
	PropertyMarkdown = "markdown"
)

// LoadConfig decodes a configuration from r. Unknown fields are rejected.
func LoadConfig(r io.Reader) (*Config, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, Errorf(EINVALID, "invalid config: %v", err)
	}
	return &cfg, nil
}

// PropertyNames returns the configured property names in sorted order.
func (c *Config) PropertyNames() []string {
	names := make([]string, 0, len(c.Properties))
	for name := range c.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Func builds the property function described by p. conv is only used by
// markdown properties and may be nil otherwise.
func (p PropertyConfig) Func(conv Converter) (PropertyFunc, error) {
	if p.Kind != PropertyConst && p.Selector == "" {
		return nil, Errorf(EINVALID, "%s property requires a selector", p.Kind)
	}

	switch p.Kind {
	case PropertyConst:
		return ConstProperty(p.Value), nil
	case PropertyText:
		return TextProperty(p.Selector), nil
	case PropertyAttr:
		if p.Attr == "" {
			return nil, Errorf(EINVALID, "attr property requires an attribute name")
		}
		return AttrProperty(p.Selector, p.Attr), nil
	case PropertyCount:
		return CountProperty(p.Selector), nil
	case PropertyHrefs:
		return HrefsProperty(p.Selector), nil
	case PropertyMarkdown:
		if conv == nil {
			return nil, Errorf(EINVALID, "markdown property requires a converter")
		}
		return MarkdownProperty(conv, p.Selector), nil
	}
	return nil, Errorf(EINVALID, "unknown property kind %q", p.Kind)
}
