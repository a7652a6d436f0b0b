package pagesum

import (
	"strconv"
	"strings"
)

// NodeType identifies the kind of a document node.
type NodeType int

// NodeType constants.
const (
	OtherNode NodeType = iota
	ElementNode
	TextNode
)

// Node is a read-only handle to one node of a rendered document tree.
// Implementations are owned by the host and are never mutated by pagesum.
type Node interface {
	// Type reports whether the node is an element, a text node, or anything
	// else (document, comment, doctype).
	Type() NodeType

	// Tag returns the lowercase tag name for elements and "" otherwise.
	Tag() string

	// Attr returns the value of the named attribute and whether it is set.
	Attr(name string) (string, bool)

	// Text returns the text content. For elements this is the concatenated
	// text of all descendants.
	Text() string

	// Style returns the computed style of an element.
	Style() Style

	// Parent returns the parent node, or nil at the root.
	Parent() Node

	// Children returns the child nodes in document order.
	Children() []Node
}

// Style holds the computed style properties pagesum relies on.
// String fields are raw CSS values; empty means unknown.
type Style struct {
	Display         string
	Visibility      string
	Opacity         string
	BackgroundColor string

	// Width and Height are the rendered size in CSS pixels, 0 when unknown.
	Width  float64
	Height float64
}

// Invisible reports whether the style hides the element and its subtree.
func (s Style) Invisible() bool {
	if strings.EqualFold(strings.TrimSpace(s.Display), "none") {
		return true
	}
	if strings.EqualFold(strings.TrimSpace(s.Visibility), "hidden") {
		return true
	}
	if op := strings.TrimSpace(s.Opacity); op != "" {
		if v, err := strconv.ParseFloat(op, 64); err == nil && v <= 0 {
			return true
		}
	}
	return false
}

// Document is a parsed page together with its base URL.
type Document interface {
	// URL returns the page URL used to resolve relative references.
	URL() string

	// Title returns the raw document title, or "" if none.
	Title() string

	// Root returns the root node of the tree. It fails when the tree is
	// detached or unreachable.
	Root() (Node, error)
}

// DocumentParser turns raw markup into a Document.
type DocumentParser interface {
	// Parse returns EINVALID for empty markup or an unparseable base URL.
	Parse(html string, baseURL string) (Document, error)
}

// Attributes carrying the computed style of a rendered element. A renderer
// stamps them onto every element before serializing the page so that a
// static parser can recover style and layout information.
const (
	AttrComputedDisplay    = "data-pagesum-display"
	AttrComputedVisibility = "data-pagesum-visibility"
	AttrComputedOpacity    = "data-pagesum-opacity"
	AttrComputedBackground = "data-pagesum-bg"
	AttrComputedWidth      = "data-pagesum-width"
	AttrComputedHeight     = "data-pagesum-height"
)
