package scraped

import "strings"

// HrefType classifies the value of an element's href.
type HrefType string

// Href classifications, in the order ClassifyHref tests them.
const (
	HrefEmpty                 HrefType = "empty"
	HrefAbsolute              HrefType = "absolute"
	HrefSelfReferencingAnchor HrefType = "self-referencing-anchor"
	HrefAnchorLink            HrefType = "anchor-link"
	HrefJavascript            HrefType = "javascript"
	HrefRelative              HrefType = "relative"
)

// HrefSource records where an element's href was found.
type HrefSource string

const (
	// HrefSourceElement means the selected element carries the href itself.
	HrefSourceElement HrefSource = "element"
	// HrefSourceOnlyChild means the element has no href but its single
	// child node does. Headings wrapping a link are the common case.
	HrefSourceOnlyChild HrefSource = "only-child"
)

// TargetType is the broad category of resource an href or src points at.
type TargetType string

// Target types.
const (
	TargetImage           TargetType = "image"
	TargetStyle           TargetType = "style"
	TargetFont            TargetType = "font"
	TargetHTMLSameSite    TargetType = "html-same-site"
	TargetHTMLForeignSite TargetType = "html-foreign-site"
	TargetUnknown         TargetType = "unknown"
)

// ImageType is the format of an image source. Unrecognized formats on img
// tags are reported as "other:<ext>".
type ImageType string

// Recognized image formats.
const (
	ImageGif  ImageType = "gif"
	ImageJpeg ImageType = "jpeg"
	ImageAvif ImageType = "avif"
	ImageWebp ImageType = "webp"
	ImageIco  ImageType = "ico"
	ImagePng  ImageType = "png"
	ImageTiff ImageType = "tiff"
	ImageSvg  ImageType = "svg"
)

const imageOtherPrefix = "other:"

// ImageOther returns the ImageType for an unrecognized extension.
func ImageOther(ext string) ImageType {
	return ImageType(imageOtherPrefix + ext)
}

// IsOther reports whether the image type is an unrecognized format.
func (t ImageType) IsOther() bool {
	return strings.HasPrefix(string(t), imageOtherPrefix)
}

// Element is the record extracted from one DOM node matched by a selector.
// Empty fields are absent and omitted from JSON.
type Element struct {
	TagName    string         `json:"tagName"`
	Text       string         `json:"text,omitempty"`
	HTML       string         `json:"html,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
	Src        string         `json:"src,omitempty"`
	Href       string         `json:"href,omitempty"`
	FullHref   string         `json:"fullHref,omitempty"`
	HrefType   HrefType       `json:"hrefType,omitempty"`
	HrefSource HrefSource     `json:"hrefSource,omitempty"`
	TargetType TargetType     `json:"targetType,omitempty"`
	ImageType  ImageType      `json:"imageType,omitempty"`
}

// HasHref reports whether an href was discovered on the element, including
// an empty one.
func (e *Element) HasHref() bool {
	return e.HrefType != ""
}

// Attr returns the string value of an attribute, or "" when absent.
func (e *Element) Attr(name string) string {
	v, _ := e.Attributes[name].(string)
	return v
}
