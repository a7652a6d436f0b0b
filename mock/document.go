package mock

import "github.com/pranavarora99/pagesum"

var _ pagesum.Document = (*Document)(nil)

// Document is a mock implementation of pagesum.Document.
type Document struct {
	URLFn   func() string
	TitleFn func() string
	RootFn  func() (pagesum.Node, error)
}

func (d *Document) URL() string {
	return d.URLFn()
}

func (d *Document) Title() string {
	return d.TitleFn()
}

func (d *Document) Root() (pagesum.Node, error) {
	return d.RootFn()
}

var _ pagesum.Node = (*Node)(nil)

// Node is a mock implementation of pagesum.Node.
type Node struct {
	TypeFn     func() pagesum.NodeType
	TagFn      func() string
	AttrFn     func(name string) (string, bool)
	TextFn     func() string
	StyleFn    func() pagesum.Style
	ParentFn   func() pagesum.Node
	ChildrenFn func() []pagesum.Node
}

func (n *Node) Type() pagesum.NodeType {
	return n.TypeFn()
}

func (n *Node) Tag() string {
	return n.TagFn()
}

func (n *Node) Attr(name string) (string, bool) {
	return n.AttrFn(name)
}

func (n *Node) Text() string {
	return n.TextFn()
}

func (n *Node) Style() pagesum.Style {
	return n.StyleFn()
}

func (n *Node) Parent() pagesum.Node {
	return n.ParentFn()
}

func (n *Node) Children() []pagesum.Node {
	return n.ChildrenFn()
}

var _ pagesum.DocumentParser = (*DocumentParser)(nil)

// DocumentParser is a mock implementation of pagesum.DocumentParser.
type DocumentParser struct {
	ParseFn func(html string, baseURL string) (pagesum.Document, error)
}

func (p *DocumentParser) Parse(html string, baseURL string) (pagesum.Document, error) {
	return p.ParseFn(html, baseURL)
}
