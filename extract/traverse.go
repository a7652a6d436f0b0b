package extract

import (
	"strings"

	"github.com/pranavarora99/pagesum"
)

// minTextNodeLength is the rune count a trimmed text node must exceed to
// enter the raw text stream.
const minTextNodeLength = 5

// skipTags are non-content elements whose subtrees are never visited.
var skipTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
	"embed": true, "iframe": true, "object": true, "applet": true,
	"svg": true, "canvas": true,
}

// metadataTags are exempt from the visibility check; browsers compute
// display:none for the whole head.
var metadataTags = map[string]bool{
	"html": true, "head": true, "title": true, "meta": true, "link": true, "base": true,
}

// Brand color sampling priority, highest first.
const (
	colorHeader = iota
	colorNav
	colorHeaderClass
	colorButton
	colorGroups
)

var headerClasses = map[string]bool{"navbar": true, "header": true}

var buttonClasses = map[string]bool{"btn": true}

// Element is a classified element captured during traversal.
type Element struct {
	Category Category

	// Text is the whitespace-normalized text of the element's surviving
	// descendants; rejected subtrees contribute nothing.
	Text string

	// MainContent is the Main-Content Locator verdict for the element.
	MainContent bool

	// InChrome is set when the element or an ancestor is a chrome container.
	InChrome bool
}

// Image is an image element captured during traversal.
type Image struct {
	Src         string
	Width       float64
	Height      float64
	MainContent bool
}

// Buckets holds everything the finishing stages need. It is built by a
// single Traverse call and only read afterwards.
type Buckets struct {
	Headings   []Element
	ListItems  []Element
	Emphasis   []Element
	Paragraphs []Element
	Images     []Image

	// Meta maps lowercase meta name/property keys to the first non-empty
	// content value.
	Meta map[string]string

	// DocumentTitle is the text of the first <title> element.
	DocumentTitle string

	// BaseHref is the href of the first <base> element.
	BaseHref string

	// ColorSamples holds raw background colors of brand-color candidates,
	// grouped by priority and in document order within a group.
	ColorSamples [colorGroups][]string

	// Text is the raw text stream: every visible body text node longer than
	// five runes, trimmed and joined by single spaces.
	Text string
}

// Traverse walks the tree rooted at root once, in document order, and
// returns the classified buckets. Invisible elements and non-content
// elements are rejected together with their subtrees.
func Traverse(root pagesum.Node) (*Buckets, error) {
	if root == nil {
		return nil, pagesum.Errorf(pagesum.EINVALID, "document has no root node")
	}

	w := &walker{b: &Buckets{Meta: make(map[string]string)}}
	w.walk(root, region{}, false)
	w.b.Text = strings.Join(w.text, " ")
	return w.b, nil
}

type walker struct {
	b    *Buckets
	text []string

	// open collects text for bucketed elements whose subtree is being
	// walked. Every surviving text node is written to all of them.
	open []*strings.Builder
}

// textTarget locates a bucketed element whose text is filled in once its
// subtree has been walked.
type textTarget struct {
	bucket *[]Element
	index  int
}

func (w *walker) walk(n pagesum.Node, r region, inHead bool) {
	var target *textTarget

	switch n.Type() {
	case pagesum.TextNode:
		if inHead {
			return
		}
		raw := n.Text()
		for _, sb := range w.open {
			sb.WriteString(raw)
		}
		if t := strings.TrimSpace(raw); runeLen(t) > minTextNodeLength {
			w.text = append(w.text, t)
		}
		return

	case pagesum.ElementNode:
		tag := n.Tag()
		if skipTags[tag] {
			return
		}
		if !metadataTags[tag] && isHidden(n) {
			return
		}
		r = r.enter(n)
		if tag == "head" {
			inHead = true
		}
		var done bool
		if done, target = w.visit(n, tag, r); done {
			return
		}
	}

	if target == nil {
		for _, child := range n.Children() {
			w.walk(child, r, inHead)
		}
		return
	}

	sb := &strings.Builder{}
	w.open = append(w.open, sb)
	for _, child := range n.Children() {
		w.walk(child, r, inHead)
	}
	w.open = w.open[:len(w.open)-1]
	(*target.bucket)[target.index].Text = normalizeSpace(sb.String())
}

// visit records n into the buckets. It returns true when the subtree has
// been fully consumed, and the bucket slot awaiting the element's text when
// n was bucketed.
func (w *walker) visit(n pagesum.Node, tag string, r region) (bool, *textTarget) {
	switch tag {
	case "title":
		if w.b.DocumentTitle == "" {
			w.b.DocumentTitle = normalizeSpace(n.Text())
		}
		return true, nil
	case "meta":
		w.visitMeta(n)
		return true, nil
	case "base":
		if href, ok := n.Attr("href"); ok && w.b.BaseHref == "" {
			w.b.BaseHref = strings.TrimSpace(href)
		}
		return true, nil
	}

	w.sampleColor(n, tag)

	cat := Classify(n)
	if cat.Kind == KindOther {
		return false, nil
	}
	if cat.Kind == KindImage {
		style := n.Style()
		w.b.Images = append(w.b.Images, Image{
			Src:         imageSource(n),
			Width:       style.Width,
			Height:      style.Height,
			MainContent: r.mainContent(),
		})
		return true, nil
	}

	var bucket *[]Element
	switch cat.Kind {
	case KindHeading:
		bucket = &w.b.Headings
	case KindListItem:
		bucket = &w.b.ListItems
	case KindEmphasis:
		bucket = &w.b.Emphasis
	case KindParagraph:
		bucket = &w.b.Paragraphs
	default:
		return false, nil
	}

	*bucket = append(*bucket, Element{
		Category:    cat,
		MainContent: r.mainContent(),
		InChrome:    r.chrome,
	})
	return false, &textTarget{bucket: bucket, index: len(*bucket) - 1}
}

func (w *walker) visitMeta(n pagesum.Node) {
	key, ok := n.Attr("property")
	if !ok || strings.TrimSpace(key) == "" {
		key, _ = n.Attr("name")
	}
	key = strings.ToLower(strings.TrimSpace(key))
	content, _ := n.Attr("content")
	content = strings.TrimSpace(content)
	if key == "" || content == "" {
		return
	}
	if _, exists := w.b.Meta[key]; !exists {
		w.b.Meta[key] = content
	}
}

func (w *walker) sampleColor(n pagesum.Node, tag string) {
	group := -1
	switch {
	case tag == "header":
		group = colorHeader
	case tag == "nav":
		group = colorNav
	case hasClass(n, headerClasses):
		group = colorHeaderClass
	case tag == "button" || hasClass(n, buttonClasses):
		group = colorButton
	}
	if group < 0 {
		return
	}
	if bg := strings.TrimSpace(n.Style().BackgroundColor); bg != "" {
		w.b.ColorSamples[group] = append(w.b.ColorSamples[group], bg)
	}
}

func isHidden(n pagesum.Node) bool {
	if _, hidden := n.Attr("hidden"); hidden {
		return true
	}
	return n.Style().Invisible()
}

// imageSource returns the image URL, preferring src over lazy-load
// attributes.
func imageSource(n pagesum.Node) string {
	for _, attr := range []string{"src", "data-src", "data-lazy-src"} {
		if v, ok := n.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
