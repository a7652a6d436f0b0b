package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pranavarora99/pagesum"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var (
	_ pagesum.DocumentParser = (*Parser)(nil)
	_ pagesum.Document       = (*Document)(nil)
	_ pagesum.Node           = (*Node)(nil)
)

// Parser parses HTML into documents backed by golang.org/x/net/html trees.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses html fetched from baseURL.
func (p *Parser) Parse(htmlContent string, baseURL string) (pagesum.Document, error) {
	if strings.TrimSpace(htmlContent) == "" {
		return nil, pagesum.Errorf(pagesum.EINVALID, "empty HTML")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, pagesum.Errorf(pagesum.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, pagesum.Errorf(pagesum.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc, url: baseURL}, nil
}

// Document is a parsed HTML page.
type Document struct {
	doc *goquery.Document
	url string
}

// URL returns the page URL.
func (d *Document) URL() string {
	return d.url
}

// Title returns the text of the first <title> element.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// Root returns the document node.
func (d *Document) Root() (pagesum.Node, error) {
	if len(d.doc.Nodes) == 0 || d.doc.Nodes[0] == nil {
		return nil, pagesum.Errorf(pagesum.EINVALID, "document has no root")
	}
	return &Node{n: d.doc.Nodes[0]}, nil
}

// Node adapts an *html.Node. Computed style is read from the attributes a
// renderer stamps onto each element, falling back to the inline style
// attribute and the width/height attributes.
type Node struct {
	n *html.Node
}

// Type reports the node kind.
func (n *Node) Type() pagesum.NodeType {
	switch n.n.Type {
	case html.ElementNode:
		return pagesum.ElementNode
	case html.TextNode:
		return pagesum.TextNode
	default:
		return pagesum.OtherNode
	}
}

// Tag returns the lowercase tag name of an element.
func (n *Node) Tag() string {
	if n.n.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(n.n.Data)
}

// Attr returns an attribute value.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

// Text returns the concatenated text of the node and its descendants.
func (n *Node) Text() string {
	if n.n.Type == html.TextNode {
		return n.n.Data
	}
	return goquery.NewDocumentFromNode(n.n).Text()
}

// Style returns the computed style of an element.
func (n *Node) Style() pagesum.Style {
	if n.n.Type != html.ElementNode {
		return pagesum.Style{}
	}
	inline := parseInlineStyle(n.attr("style"))

	s := pagesum.Style{
		Display:         n.styleValue(pagesum.AttrComputedDisplay, inline, "display"),
		Visibility:      n.styleValue(pagesum.AttrComputedVisibility, inline, "visibility"),
		Opacity:         n.styleValue(pagesum.AttrComputedOpacity, inline, "opacity"),
		BackgroundColor: n.styleValue(pagesum.AttrComputedBackground, inline, "background-color"),
	}
	if s.BackgroundColor == "" {
		s.BackgroundColor = inline["background"]
	}
	s.Width = n.dimension(pagesum.AttrComputedWidth, inline, "width")
	s.Height = n.dimension(pagesum.AttrComputedHeight, inline, "height")
	return s
}

// Parent returns the parent node, or nil at the root.
func (n *Node) Parent() pagesum.Node {
	if n.n.Parent == nil {
		return nil
	}
	return &Node{n: n.n.Parent}
}

// Children returns the child nodes in document order.
func (n *Node) Children() []pagesum.Node {
	var children []pagesum.Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, &Node{n: c})
	}
	return children
}

func (n *Node) attr(name string) string {
	v, _ := n.Attr(name)
	return v
}

func (n *Node) styleValue(computedAttr string, inline map[string]string, property string) string {
	if v, ok := n.Attr(computedAttr); ok {
		return strings.TrimSpace(v)
	}
	return inline[property]
}

// dimension resolves a rendered size: the computed attribute, then the
// inline style in px, then the plain HTML attribute.
func (n *Node) dimension(computedAttr string, inline map[string]string, property string) float64 {
	if v, ok := n.Attr(computedAttr); ok {
		return parsePixels(v)
	}
	if v, ok := inline[property]; ok {
		return parsePixels(v)
	}
	return parsePixels(n.attr(property))
}

// parseInlineStyle splits a style attribute into lowercase properties.
func parseInlineStyle(style string) map[string]string {
	props := make(map[string]string)
	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "!important"))
		if name != "" && value != "" {
			props[name] = value
		}
	}
	return props
}

// parsePixels parses "200", "200px" or "200.5px". Other units yield 0.
func parsePixels(v string) float64 {
	v = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(v)), "px")
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}
