package scraped

import (
	"net/url"
	"regexp"
	"strings"
)

// ChildScope filters which hrefs of a child selector count as child pages.
type ChildScope int

// Child scopes.
const (
	// ScopeAll accepts any href. Absolute values pass through unchanged,
	// others are joined to the page URL.
	ScopeAll ChildScope = iota
	// ScopeRelative accepts simple relative names (word characters, dots
	// and hashes) and joins them to the page URL.
	ScopeRelative
	// ScopeAbsolute accepts hrefs that parse as absolute URLs with a host.
	ScopeAbsolute
	// ScopeHTTP accepts hrefs starting with "http".
	ScopeHTTP
	// ScopeFile accepts hrefs starting with "file".
	ScopeFile
)

var scopeNames = []string{
	ScopeAll:      "all",
	ScopeRelative: "relative",
	ScopeAbsolute: "absolute",
	ScopeHTTP:     "http",
	ScopeFile:     "file",
}

// ParseChildScope returns the scope with the given name.
func ParseChildScope(name string) (ChildScope, error) {
	for i, n := range scopeNames {
		if strings.EqualFold(name, n) {
			return ChildScope(i), nil
		}
	}
	return 0, Errorf(EINVALID, "unknown child scope %q (want one of %s)", name, strings.Join(scopeNames, ", "))
}

// String returns the scope's name.
func (s ChildScope) String() string {
	if int(s) >= 0 && int(s) < len(scopeNames) {
		return scopeNames[s]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s ChildScope) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ChildScope) UnmarshalText(text []byte) error {
	scope, err := ParseChildScope(string(text))
	if err != nil {
		return err
	}
	*s = scope
	return nil
}

// relativeName matches names of Unicode word characters, dots and hashes.
var relativeName = regexp.MustCompile(`^[\p{L}\p{M}\p{N}\p{Pc}.#]+$`)

// scopeRules maps each scope to its acceptance rule. A rule returns the
// candidate URL and whether href is in scope.
var scopeRules = map[ChildScope]func(href, page string) (string, bool){
	ScopeAll: func(href, page string) (string, bool) {
		if isAbsoluteURL(href) {
			return href, true
		}
		return joinPath(page, href), true
	},
	ScopeHTTP: func(href, _ string) (string, bool) {
		return href, strings.HasPrefix(href, "http")
	},
	ScopeFile: func(href, _ string) (string, bool) {
		return href, strings.HasPrefix(href, "file")
	},
	ScopeRelative: func(href, page string) (string, bool) {
		if !relativeName.MatchString(href) {
			return "", false
		}
		return joinPath(page, href), true
	},
	ScopeAbsolute: func(href, _ string) (string, bool) {
		u, err := url.Parse(href)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return "", false
		}
		return href, true
	},
}

// Resolve applies the scope to href found on pageURL. It returns "" and a
// nil error when href is out of scope, and an EURL error when an in-scope
// candidate is not a valid absolute URL.
func (s ChildScope) Resolve(href, pageURL string) (string, error) {
	if href == "" {
		return "", nil
	}
	rule, ok := scopeRules[s]
	if !ok {
		return "", nil
	}
	candidate, ok := rule(href, pageURL)
	if !ok {
		return "", nil
	}
	if !isAbsoluteURL(candidate) {
		return "", Errorf(EURL, "invalid child URL %q", candidate)
	}
	return candidate, nil
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

// joinPath appends href to page with a single slash. It does not normalize
// the result.
func joinPath(page, href string) string {
	return strings.TrimSuffix(page, "/") + "/" + href
}
