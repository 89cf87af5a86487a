package scraped

import (
	"net/url"
	"path"
	"strings"
)

// hrefRule is one row of the classification table. Rules are tested in
// order and the first match wins.
type hrefRule struct {
	typ     HrefType
	match   func(href string) bool
	resolve func(href string, page *url.URL) string
}

var hrefRules = []hrefRule{
	{
		typ:     HrefEmpty,
		match:   func(href string) bool { return href == "" },
		resolve: noFullHref,
	},
	{
		typ:     HrefAbsolute,
		match:   func(href string) bool { return strings.HasPrefix(href, "http") },
		resolve: func(href string, _ *url.URL) string { return href },
	},
	{
		typ:     HrefSelfReferencingAnchor,
		match:   func(href string) bool { return href == "#" },
		resolve: pageHref,
	},
	{
		// The fragment is dropped: anchor links resolve to the page itself.
		typ:     HrefAnchorLink,
		match:   func(href string) bool { return strings.HasPrefix(href, "#") },
		resolve: pageHref,
	},
	{
		typ:     HrefJavascript,
		match:   func(href string) bool { return strings.Contains(href, "Javascript(") },
		resolve: noFullHref,
	},
	{
		typ:     HrefRelative,
		match:   func(string) bool { return true },
		resolve: resolveRelative,
	},
}

// ClassifyHref classifies href relative to the page it was found on and
// returns the absolute URL it points at. The returned full href is empty for
// empty and javascript hrefs, and for relative hrefs that cannot be parsed.
func ClassifyHref(href string, page *url.URL) (HrefType, string) {
	for _, rule := range hrefRules {
		if rule.match(href) {
			return rule.typ, rule.resolve(href, page)
		}
	}
	return HrefRelative, ""
}

func noFullHref(string, *url.URL) string { return "" }

func pageHref(_ string, page *url.URL) string {
	if page == nil {
		return ""
	}
	return page.String()
}

func resolveRelative(href string, page *url.URL) string {
	if page == nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return page.ResolveReference(ref).String()
}

// FileExtension returns the lowercase extension of the last path segment of
// ref, without the dot. Query strings and fragments are ignored.
func FileExtension(ref string) string {
	p := ref
	if u, err := url.Parse(ref); err == nil {
		p = u.Path
	} else if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	return strings.ToLower(strings.TrimPrefix(path.Ext(path.Base(p)), "."))
}

var (
	fontExtensions = map[string]bool{
		"woff": true, "woff2": true, "ttf": true, "otf": true, "fnt": true,
	}
	imageTargetExtensions = map[string]bool{
		"svg": true, "jpg": true, "jpeg": true, "png": true, "ico": true,
	}
	imageFormats = map[string]ImageType{
		"gif":  ImageGif,
		"jpg":  ImageJpeg,
		"jpeg": ImageJpeg,
		"avif": ImageAvif,
		"webp": ImageWebp,
		"ico":  ImageIco,
		"png":  ImagePng,
		"tiff": ImageTiff,
		"svg":  ImageSvg,
	}
)

// InferTargetType makes a best-effort guess at what an element's href or
// src points at. The extension is taken from href, falling back to src.
func InferTargetType(tag, href, src, fullHref string, hrefType HrefType, page *url.URL) TargetType {
	if tag == "img" {
		return TargetImage
	}

	ref := href
	if ref == "" {
		ref = src
	}
	ext := FileExtension(ref)

	switch {
	case fontExtensions[ext]:
		return TargetFont
	case ext == "css":
		return TargetStyle
	case imageTargetExtensions[ext]:
		return TargetImage
	case ext == "html":
		return htmlTarget(hrefType, fullHref, page)
	case tag == "a":
		return hostTarget(fullHref, page)
	}
	return TargetUnknown
}

func htmlTarget(hrefType HrefType, fullHref string, page *url.URL) TargetType {
	switch hrefType {
	case HrefRelative, HrefAnchorLink, HrefSelfReferencingAnchor:
		return TargetHTMLSameSite
	case HrefAbsolute:
		return hostTarget(fullHref, page)
	}
	return TargetUnknown
}

// hostTarget compares the host of fullHref with the page's host.
func hostTarget(fullHref string, page *url.URL) TargetType {
	if fullHref == "" || page == nil {
		return TargetUnknown
	}
	u, err := url.Parse(fullHref)
	if err != nil || u.Host == "" {
		return TargetUnknown
	}
	if strings.EqualFold(u.Hostname(), page.Hostname()) {
		return TargetHTMLSameSite
	}
	return TargetHTMLForeignSite
}

// InferImageType returns the image format of src. Unrecognized extensions
// are only reported for img tags.
func InferImageType(tag, src string) (ImageType, bool) {
	if src == "" {
		return "", false
	}
	ext := FileExtension(src)
	if t, ok := imageFormats[ext]; ok {
		return t, true
	}
	if tag == "img" {
		return ImageOther(ext), true
	}
	return "", false
}
